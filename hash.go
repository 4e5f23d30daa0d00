package stringlet

import "github.com/arloliu/stringlet/internal/hash"

// Hash returns the xxHash64 of the content. Tail bytes, the kind and the
// capacity never take part, so values that are Equal across configurations
// hash alike, and so does HashString of the same text.
func (s Stringlet[L, B]) Hash() uint64 {
	return hash.Sum(s.view().content())
}

// Hash returns the xxHash64 of the content; see Stringlet.Hash.
func (v Value) Hash() uint64 {
	return hash.Sum(v.view().content())
}

// HashReader returns the content hash of any representation.
func HashReader(r Reader) uint64 {
	return hash.Sum(r.view().content())
}

// HashString returns the hash a representation holding s would have.
func HashString(s string) uint64 {
	return hash.String(s)
}
