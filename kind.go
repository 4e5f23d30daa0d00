package stringlet

import (
	"fmt"
	"strings"

	"github.com/arloliu/stringlet/errs"
)

// Kind identifies how a representation recovers its content length.
type Kind uint8

const (
	// KindFixed stores exactly capacity bytes; no length is tracked.
	KindFixed Kind = iota
	// KindVar stores an explicit one-byte length next to the buffer.
	KindVar
	// KindTrim holds capacity or capacity-1 bytes, told apart by one tagged byte.
	KindTrim
	// KindSlim holds 0..capacity bytes, decoded from the tagged last byte.
	KindSlim
)

const (
	// MaxCapacity is the largest capacity for Fixed, Trim and Slim.
	// The six low bits of the tail tag bound the encodable tail length.
	MaxCapacity = 64
	// MaxVarCapacity is the largest capacity for Var, bounded by its length byte.
	MaxVarCapacity = 255
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindVar:
		return "var"
	case KindTrim:
		return "trim"
	case KindSlim:
		return "slim"
	default:
		return "unknown"
	}
}

// IsValid reports whether k is one of the four defined kinds.
func (k Kind) IsValid() bool {
	return k <= KindSlim
}

// MaxCapacity returns the largest legal capacity for k, or -1 for an invalid kind.
func (k Kind) MaxCapacity() int {
	switch k {
	case KindFixed, KindTrim, KindSlim:
		return MaxCapacity
	case KindVar:
		return MaxVarCapacity
	default:
		return -1
	}
}

// ParseKind parses a kind name as produced by Kind.String. Matching is
// case-insensitive.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed":
		return KindFixed, nil
	case "var":
		return KindVar, nil
	case "trim":
		return KindTrim, nil
	case "slim":
		return KindSlim, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidKind, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidKind, uint8(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// Layout is the closed set of phantom kind markers used as the first type
// parameter of Stringlet. Only Var carries state: its explicit length.
type Layout interface {
	Fixed | Var | Trim | Slim

	// Kind returns the runtime kind of the marker.
	Kind() Kind

	// tailLen returns the stored unused-tail length (Var only, zero otherwise).
	tailLen() uint8
}

// Fixed marks a Stringlet whose content always fills the whole buffer.
type Fixed struct{}

// Var marks a Stringlet with an explicit length byte.
//
// The byte stores the unused-tail length (capacity minus content length), so
// that the zero value describes a full buffer like every other kind.
type Var struct {
	tail uint8
}

// Trim marks a Stringlet holding either capacity or capacity-1 bytes.
type Trim struct{}

// Slim marks a Stringlet holding 0..capacity bytes with the length packed in the
// last byte.
type Slim struct{}

func (Fixed) Kind() Kind { return KindFixed }
func (Var) Kind() Kind   { return KindVar }
func (Trim) Kind() Kind  { return KindTrim }
func (Slim) Kind() Kind  { return KindSlim }

func (Fixed) tailLen() uint8 { return 0 }
func (v Var) tailLen() uint8 { return v.tail }
func (Trim) tailLen() uint8  { return 0 }
func (Slim) tailLen() uint8  { return 0 }
