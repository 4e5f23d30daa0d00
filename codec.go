package stringlet

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/stringlet/errs"
)

// TailTag marks unused tail bytes.
//
// A byte with both top bits set can only start a multi-byte UTF-8 sequence,
// never end one, so it is never the last byte of valid content. The low six
// bits of a tail byte carry the unused-tail length, where zero stands for 64.
//
// Every unused byte of a Var, Trim or Slim buffer holds the same value,
// TailTag|(capacity-length). The fill depends only on capacity and length, so
// two buffers of equal capacity holding equal content are byte-identical
// whatever their kinds. The comparator relies on this.
const TailTag byte = 0b1100_0000

const tailMask = 0b0011_1111

// tailFill returns the byte written to every unused position for a tail of the
// given length. Lengths above 63 wrap in the low bits; only Slim at capacity 64
// decodes that case, where a zero low field means 64.
func tailFill(tail int) byte {
	return TailTag | byte(tail) //nolint:gosec
}

// seal fills raw[n:] with the tail tag and returns the tail length.
func seal(raw []byte, n int) int {
	tail := len(raw) - n
	fill := tailFill(tail)
	for i := n; i < len(raw); i++ {
		raw[i] = fill
	}

	return tail
}

// isTagged returns 1 when b has both top bits set and 0 otherwise, without a
// branch: b>>6 is 3 only for tagged bytes, and (3+1)>>2 is the only non-zero
// result.
func isTagged(b byte) int {
	return int((b>>6)+1) >> 2
}

// tailFromLast decodes the unused-tail length carried by the last byte of a
// Slim buffer: zero for a content byte, the low six bits for a tail byte, and
// 64 for a tail byte whose low bits are zero.
//
// All of it is arithmetic. ((low+63)&64)^64 is 64 exactly when low is zero.
func tailFromLast(last byte) int {
	low := int(last & tailMask)
	low |= ((low + tailMask) & 64) ^ 64

	return isTagged(last) * low
}

// decodeLen recovers the content length of raw for the given kind. varTail is
// the stored tail length of a Var and ignored otherwise. Only the last byte is
// ever read; capacity 0 never touches memory.
func decodeLen(raw []byte, kind Kind, varTail uint8) int {
	c := len(raw)
	switch kind {
	case KindFixed:
		return c
	case KindVar:
		return c - int(varTail)
	}

	if c == 0 {
		return 0
	}

	last := raw[c-1]
	if kind == KindTrim {
		return c - isTagged(last)
	}

	return c - tailFromLast(last)
}

// isEmpty reports whether raw holds no content, without decoding the length.
func isEmpty(raw []byte, kind Kind, varTail uint8) bool {
	c := len(raw)
	switch {
	case c == 0:
		return true
	case kind == KindFixed:
		return false
	case kind == KindVar:
		return int(varTail) == c
	default:
		return raw[c-1] == tailFill(c)
	}
}

// checkUTF8 returns an *EncodingError locating the first invalid byte of b.
func checkUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return &EncodingError{Offset: i}
		}
		i += size
	}

	return &EncodingError{Offset: len(b)}
}

// decodeRecord validates a raw record of configuration c and copies its buffer
// into raw, which must be c.Capacity bytes long. It returns the tail length.
//
// A record is canonical when its length satisfies the fit rule, every tail
// byte equals the fill for that length, and the content is valid UTF-8.
func decodeRecord(c Config, rec []byte, raw []byte) (uint8, error) {
	if len(rec) != c.Stride() {
		return 0, fmt.Errorf("%w: %s record is %d bytes, want %d", errs.ErrInvalidRecord, c, len(rec), c.Stride())
	}

	buf := rec
	var n int
	if c.Kind == KindVar {
		n = int(rec[0])
		buf = rec[1:]
	} else {
		n = decodeLen(buf, c.Kind, 0)
	}

	if !c.Fits(n) {
		return 0, fmt.Errorf("%w: %s record declares length %d", errs.ErrInvalidRecord, c, n)
	}

	fill := tailFill(c.Capacity - n)
	for i := n; i < len(buf); i++ {
		if buf[i] != fill {
			return 0, fmt.Errorf("%w: %s record has non-canonical tail byte %#02x at %d", errs.ErrInvalidRecord, c, buf[i], i)
		}
	}

	if err := checkUTF8(buf[:n]); err != nil {
		return 0, err
	}

	copy(raw, buf)

	return uint8(c.Capacity - n), nil //nolint:gosec
}
