package stringlet

import (
	"fmt"

	"github.com/arloliu/stringlet/errs"
)

// LengthError reports content whose byte length does not satisfy the fit rule
// of the target configuration. It unwraps to errs.ErrLength.
type LengthError struct {
	Kind     Kind
	Capacity int
	Length   int
}

func (e *LengthError) Error() string {
	switch e.Kind {
	case KindFixed:
		return fmt.Sprintf("stringlet: %s<%d> needs exactly %d bytes, got %d", e.Kind, e.Capacity, e.Capacity, e.Length)
	case KindTrim:
		return fmt.Sprintf("stringlet: %s<%d> needs %d or %d bytes, got %d", e.Kind, e.Capacity, e.Capacity, e.Capacity-1, e.Length)
	default:
		return fmt.Sprintf("stringlet: %s<%d> cannot store %d bytes", e.Kind, e.Capacity, e.Length)
	}
}

func (e *LengthError) Unwrap() error { return errs.ErrLength }

// EncodingError reports byte content that is not valid UTF-8. Offset is the
// index of the first byte that does not start a valid sequence. It unwraps to
// errs.ErrEncoding.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("stringlet: invalid UTF-8 at byte offset %d", e.Offset)
}

func (e *EncodingError) Unwrap() error { return errs.ErrEncoding }

// CapacityError reports an illegal (kind, capacity) pair. It unwraps to
// errs.ErrCapacity.
type CapacityError struct {
	Kind     Kind
	Capacity int
}

func (e *CapacityError) Error() string {
	if !e.Kind.IsValid() {
		return fmt.Sprintf("stringlet: invalid kind %d", uint8(e.Kind))
	}

	return fmt.Sprintf("stringlet: capacity %d is out of range 0..%d for %s", e.Capacity, e.Kind.MaxCapacity(), e.Kind)
}

func (e *CapacityError) Unwrap() error { return errs.ErrCapacity }
