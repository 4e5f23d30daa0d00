package stringlet

import (
	"unicode/utf8"
	"unsafe"
)

// Stringlet is an inline UTF-8 string stored in the byte array B, whose length
// is the capacity. L selects the kind: Fixed, Var, Trim or Slim.
//
// A Stringlet is a plain value. Copying it copies the bytes; there is no
// pointer inside and nothing to release. Values are immutable: every
// constructor produces a complete new value.
//
// Equal content in the same configuration always produces the same bytes, so
// Stringlets of one type compare correctly with == and work as map keys. Use
// Equal and Compare to mix configurations.
//
// The zero value holds capacity NUL bytes, a valid full-length string.
type Stringlet[L Layout, B Buffer] struct {
	meta L
	buf  B
}

// FromString builds a Stringlet holding s.
//
// It returns a *LengthError when len(s) does not satisfy the kind's fit rule:
// exactly the capacity for Fixed, the capacity or one less for Trim, at most
// the capacity for Var and Slim.
func FromString[L Layout, B Buffer](s string) (Stringlet[L, B], error) {
	var out Stringlet[L, B]
	if err := out.Config().checkFit(len(s)); err != nil {
		return Stringlet[L, B]{}, err
	}
	out.setString(s)

	return out, nil
}

// FromBytes builds a Stringlet holding b. Besides the length check of
// FromString it returns an *EncodingError when b is not valid UTF-8.
func FromBytes[L Layout, B Buffer](b []byte) (Stringlet[L, B], error) {
	var out Stringlet[L, B]
	if err := out.Config().checkFit(len(b)); err != nil {
		return Stringlet[L, B]{}, err
	}
	if err := checkUTF8(b); err != nil {
		return Stringlet[L, B]{}, err
	}
	out.setBytes(b)

	return out, nil
}

// FromArray builds a full-length Stringlet from a whole buffer. Full length
// fits every kind, so only UTF-8 validity is checked.
func FromArray[L Layout, B Buffer](b B) (Stringlet[L, B], error) {
	out := Stringlet[L, B]{buf: b}
	if err := checkUTF8(out.raw()); err != nil {
		return Stringlet[L, B]{}, err
	}
	out.seal(out.Cap())

	return out, nil
}

// FromStringUnchecked builds a Stringlet without checking the fit rule.
//
// The caller guarantees that len(s) fits, typically because s is a constant of
// known size. Input that does not fit yields an unspecified value: extra bytes
// are dropped (possibly splitting a UTF-8 sequence), a short Fixed reports tag
// bytes as content, and a Trim of the wrong length decodes wrongly. Memory safety is never affected. Building with the
// stringlet_debug tag turns a violation into a panic.
func FromStringUnchecked[L Layout, B Buffer](s string) Stringlet[L, B] {
	var out Stringlet[L, B]
	if debugChecks && !out.Config().Fits(len(s)) {
		panic((&LengthError{Kind: out.Kind(), Capacity: out.Cap(), Length: len(s)}).Error())
	}
	out.setString(s)

	return out
}

// FromBytesUnchecked is FromStringUnchecked for byte input. The caller also
// guarantees that b is valid UTF-8.
func FromBytesUnchecked[L Layout, B Buffer](b []byte) Stringlet[L, B] {
	var out Stringlet[L, B]
	if debugChecks && (!out.Config().Fits(len(b)) || !utf8.Valid(b)) {
		panic("stringlet: FromBytesUnchecked contract violated for " + out.Config().String())
	}
	out.setBytes(b)

	return out
}

// MustFromString is like FromString but panics on error. It is meant for
// package-level values built from literals.
func MustFromString[L Layout, B Buffer](s string) Stringlet[L, B] {
	out, err := FromString[L, B](s)
	if err != nil {
		panic(err)
	}

	return out
}

// Empty returns the empty Stringlet. Only Var, Slim, capacity 0 and Trim up to
// capacity 1 can be empty; other configurations return a *LengthError.
func Empty[L Layout, B Buffer]() (Stringlet[L, B], error) {
	return FromString[L, B]("")
}

// fromValid builds a Stringlet from content already known to be valid UTF-8.
func fromValid[L Layout, B Buffer](b []byte) (Stringlet[L, B], error) {
	var out Stringlet[L, B]
	if err := out.Config().checkFit(len(b)); err != nil {
		return Stringlet[L, B]{}, err
	}
	out.setBytes(b)

	return out, nil
}

// Kind returns the kind selected by L.
func (s Stringlet[L, B]) Kind() Kind {
	return s.meta.Kind()
}

// Cap returns the capacity: the length of B.
func (s Stringlet[L, B]) Cap() int {
	return len(s.buf)
}

// Config returns the (kind, capacity) pair of the type.
func (s Stringlet[L, B]) Config() Config {
	return Config{Kind: s.meta.Kind(), Capacity: len(s.buf)}
}

// Len returns the content length in bytes.
//
// Fixed returns the capacity and Var its stored length. Trim and Slim decode
// the last byte with a few arithmetic operations and no data-dependent branch.
func (s Stringlet[L, B]) Len() int {
	return decodeLen(s.raw(), s.meta.Kind(), s.meta.tailLen())
}

// IsEmpty reports whether the content is empty.
func (s Stringlet[L, B]) IsEmpty() bool {
	return isEmpty(s.raw(), s.meta.Kind(), s.meta.tailLen())
}

// Bytes returns a copy of the content bytes.
func (s Stringlet[L, B]) Bytes() []byte {
	raw := s.raw()

	return append([]byte(nil), raw[:decodeLen(raw, s.meta.Kind(), s.meta.tailLen())]...)
}

// String returns the content as a string.
func (s Stringlet[L, B]) String() string {
	raw := s.raw()

	return string(raw[:decodeLen(raw, s.meta.Kind(), s.meta.tailLen())])
}

// RawBytes returns a copy of the whole buffer, tagged tail included.
func (s Stringlet[L, B]) RawBytes() []byte {
	return append([]byte(nil), s.raw()...)
}

// Value converts s to its runtime-configured form.
func (s Stringlet[L, B]) Value() Value {
	var v Value
	v.kind = s.meta.Kind()
	v.capacity = uint8(len(s.buf)) //nolint:gosec
	v.tail = s.meta.tailLen()
	copy(v.buf[:], s.raw())

	return v
}

// raw returns the buffer as a slice aliasing s.
func (s *Stringlet[L, B]) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.buf)), len(s.buf))
}

// view returns the comparator view of s, aliasing its storage.
func (s *Stringlet[L, B]) view() view {
	return view{kind: s.meta.Kind(), raw: s.raw(), tail: s.meta.tailLen()}
}

func (s *Stringlet[L, B]) setString(str string) {
	s.seal(copy(s.raw(), str))
}

func (s *Stringlet[L, B]) setBytes(b []byte) {
	s.seal(copy(s.raw(), b))
}

// seal tags the tail after n content bytes and records the length for Var.
func (s *Stringlet[L, B]) seal(n int) {
	tail := seal(s.raw(), n)
	if s.meta.Kind() == KindVar {
		s.meta = any(Var{tail: uint8(tail)}).(L) //nolint:gosec,forcetypeassert
	}
}
