package stringlet

import (
	"bytes"
	"cmp"
)

// Reader is the read surface shared by every representation. It is
// implemented by *Stringlet[L, B] for every instantiation and by *Value.
type Reader interface {
	Kind() Kind
	Cap() int
	Config() Config
	Len() int
	IsEmpty() bool
	String() string

	view() view
}

var (
	_ Reader = (*Value)(nil)
	_ Reader = (*Stringlet[Slim, [16]byte])(nil)
)

// view is the comparator's picture of a representation: its kind, its whole
// buffer and, for Var, its stored tail length. It aliases the representation.
type view struct {
	kind Kind
	raw  []byte
	tail uint8
}

func (v view) length() int {
	return decodeLen(v.raw, v.kind, v.tail)
}

func (v view) content() []byte {
	if v.kind == KindFixed {
		return v.raw
	}

	return v.raw[:v.length()]
}

func (v view) appendRecord(dst []byte) []byte {
	if v.kind == KindVar {
		dst = append(dst, byte(len(v.raw)-int(v.tail))) //nolint:gosec
	}

	return append(dst, v.raw...)
}

func (v view) lengthRange() (lo, hi int) {
	return Config{Kind: v.kind, Capacity: len(v.raw)}.LengthRange()
}

// equalViews decides content equality of two representations of any
// configurations. The dispatch only inspects kinds and capacities until it
// has picked the cheapest sufficient comparison:
//
//  1. Equal capacities: the canonical fill makes whole buffers equal exactly
//     when contents are equal, for every pair of kinds. No length is decoded.
//  2. Disjoint length ranges (Fixed at different capacities, a Fixed longer
//     than the other side's capacity, Trim's two-length window): unequal,
//     without reading memory.
//  3. One side Fixed: its whole buffer against the other side's prefix, once
//     the other side's length matches.
//  4. Otherwise both lengths are decoded and the contents compared.
func equalViews(a, b view) bool {
	ca, cb := len(a.raw), len(b.raw)
	if ca == cb {
		return bytes.Equal(a.raw, b.raw)
	}

	aLo, aHi := a.lengthRange()
	bLo, bHi := b.lengthRange()
	if aHi < bLo || bHi < aLo {
		return false
	}

	switch {
	case a.kind == KindFixed:
		return b.length() == ca && bytes.Equal(a.raw, b.raw[:ca])
	case b.kind == KindFixed:
		return a.length() == cb && bytes.Equal(a.raw[:cb], b.raw)
	default:
		return bytes.Equal(a.content(), b.content())
	}
}

// compareViews orders two representations by the byte order of their content.
// Tail bytes never take part: a Fixed pair compares whole buffers, anything
// else compares decoded content.
func compareViews(a, b view) int {
	if a.kind == KindFixed && b.kind == KindFixed {
		return bytes.Compare(a.raw, b.raw)
	}

	return bytes.Compare(a.content(), b.content())
}

func equalContent(a view, s string) bool {
	if a.kind == KindFixed {
		return len(a.raw) == len(s) && string(a.raw) == s
	}

	return string(a.content()) == s
}

// compareContent is bytes.Compare of the content against s, walking the shared
// prefix so s is never copied.
func compareContent(a view, s string) int {
	c := a.content()
	n := min(len(c), len(s))
	for i := range n {
		if c[i] != s[i] {
			return cmp.Compare(c[i], s[i])
		}
	}

	return cmp.Compare(len(c), len(s))
}

// Equal reports whether a and b hold the same string. The configurations may
// differ in kind and capacity.
func Equal[L1 Layout, B1 Buffer, L2 Layout, B2 Buffer](a Stringlet[L1, B1], b Stringlet[L2, B2]) bool {
	return equalViews(a.view(), b.view())
}

// Compare returns -1, 0 or +1 as the content of a sorts before, equal to or
// after the content of b in byte order. Compare(a, b) == 0 exactly when
// Equal(a, b).
func Compare[L1 Layout, B1 Buffer, L2 Layout, B2 Buffer](a Stringlet[L1, B1], b Stringlet[L2, B2]) int {
	return compareViews(a.view(), b.view())
}

// EqualReaders is Equal for any two representations, generic or Value.
func EqualReaders(a, b Reader) bool {
	return equalViews(a.view(), b.view())
}

// CompareReaders is Compare for any two representations, generic or Value.
func CompareReaders(a, b Reader) int {
	return compareViews(a.view(), b.view())
}

// Equal reports whether s and o hold the same string. Both have the same
// configuration, so this is a whole-value comparison.
func (s Stringlet[L, B]) Equal(o Stringlet[L, B]) bool {
	return s.buf == o.buf
}

// EqualString reports whether s holds str.
func (s Stringlet[L, B]) EqualString(str string) bool {
	return equalContent(s.view(), str)
}

// Compare orders s and o by content. A Fixed compares whole buffers, the other
// kinds exclude their tagged tails.
func (s Stringlet[L, B]) Compare(o Stringlet[L, B]) int {
	if s.meta.Kind() == KindFixed {
		return bytes.Compare(s.raw(), o.raw())
	}

	return compareViews(s.view(), o.view())
}

// CompareString orders s against str by content.
func (s Stringlet[L, B]) CompareString(str string) int {
	return compareContent(s.view(), str)
}

// Less reports whether s sorts before o.
func (s Stringlet[L, B]) Less(o Stringlet[L, B]) bool {
	return s.Compare(o) < 0
}

// Equal reports whether v and o hold the same string, whatever their
// configurations.
func (v Value) Equal(o Value) bool {
	return equalViews(v.view(), o.view())
}

// EqualString reports whether v holds str.
func (v Value) EqualString(str string) bool {
	return equalContent(v.view(), str)
}

// Compare orders v and o by content, whatever their configurations.
func (v Value) Compare(o Value) int {
	return compareViews(v.view(), o.view())
}

// CompareString orders v against str by content.
func (v Value) CompareString(str string) int {
	return compareContent(v.view(), str)
}

// Less reports whether v sorts before o.
func (v Value) Less(o Value) bool {
	return v.Compare(o) < 0
}
