package stringlet

import (
	"strconv"
	"strings"
)

// GoString renders s for %#v: the configuration, the quoted content and one
// 0b11_xxxxxx group per tagged tail byte, e.g. slim<5>{"aha", 0b11_000010, 0b11_000010}.
func (s Stringlet[L, B]) GoString() string {
	return s.view().goString()
}

// GoString renders v for %#v; see Stringlet.GoString.
func (v Value) GoString() string {
	return v.view().goString()
}

func (v view) goString() string {
	n := v.length()

	var sb strings.Builder
	sb.WriteString(Config{Kind: v.kind, Capacity: len(v.raw)}.String())
	sb.WriteByte('{')
	sb.WriteString(strconv.Quote(string(v.raw[:n])))
	for _, b := range v.raw[n:] {
		sb.WriteString(", 0b11_")
		low := strconv.FormatUint(uint64(b&tailMask), 2)
		sb.WriteString(strings.Repeat("0", 6-len(low)))
		sb.WriteString(low)
	}
	sb.WriteByte('}')

	return sb.String()
}
