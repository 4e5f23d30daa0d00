package stringlet

// Value is the runtime-configured representation: the kind and capacity are
// chosen when the value is built rather than by type parameters.
//
// It follows the same layout rules as Stringlet in an inline buffer sized for
// the largest Var, so it covers every legal configuration, including Var
// capacities 65..255 that the generic form cannot express. The price is size:
// a Value is always 258 bytes. Bytes past the capacity are always zero.
//
// Values compare correctly with == (same configuration and content) and work
// as map keys. The zero Value is the empty Fixed string of capacity 0.
type Value struct {
	kind     Kind
	capacity uint8
	tail     uint8 // Var only: capacity minus content length
	buf      [MaxVarCapacity]byte
}

// NewValue builds a Value of the given configuration holding s. It returns a
// *CapacityError for an illegal configuration and a *LengthError when s does
// not fit.
func NewValue(kind Kind, capacity int, s string) (Value, error) {
	return Config{Kind: kind, Capacity: capacity}.New(s)
}

// NewValueBytes is NewValue for byte input, which must also be valid UTF-8.
func NewValueBytes(kind Kind, capacity int, b []byte) (Value, error) {
	return Config{Kind: kind, Capacity: capacity}.NewBytes(b)
}

// MustValue is like NewValue but panics on error.
func MustValue(kind Kind, capacity int, s string) Value {
	v, err := NewValue(kind, capacity, s)
	if err != nil {
		panic(err)
	}

	return v
}

// New builds a Value of configuration c holding s.
func (c Config) New(s string) (Value, error) {
	if err := c.checkFit(len(s)); err != nil {
		return Value{}, err
	}

	v := Value{kind: c.Kind, capacity: uint8(c.Capacity)} //nolint:gosec
	v.seal(copy(v.raw(), s))

	return v, nil
}

// NewBytes builds a Value of configuration c holding b, which must also be
// valid UTF-8.
func (c Config) NewBytes(b []byte) (Value, error) {
	if err := c.checkFit(len(b)); err != nil {
		return Value{}, err
	}
	if err := checkUTF8(b); err != nil {
		return Value{}, err
	}

	v := Value{kind: c.Kind, capacity: uint8(c.Capacity)} //nolint:gosec
	v.seal(copy(v.raw(), b))

	return v, nil
}

// DecodeRecord validates a raw record of configuration c, as written by
// AppendRecord, and returns the Value it holds.
func (c Config) DecodeRecord(rec []byte) (Value, error) {
	if err := c.Validate(); err != nil {
		return Value{}, err
	}

	v := Value{kind: c.Kind, capacity: uint8(c.Capacity)} //nolint:gosec
	tail, err := decodeRecord(c, rec, v.raw())
	if err != nil {
		return Value{}, err
	}
	if c.Kind == KindVar {
		v.tail = tail
	}

	return v, nil
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Cap returns the value's capacity.
func (v Value) Cap() int {
	return int(v.capacity)
}

// Config returns the value's (kind, capacity) pair.
func (v Value) Config() Config {
	return Config{Kind: v.kind, Capacity: int(v.capacity)}
}

// Len returns the content length in bytes.
func (v Value) Len() int {
	return decodeLen(v.raw(), v.kind, v.tail)
}

// IsEmpty reports whether the content is empty.
func (v Value) IsEmpty() bool {
	return isEmpty(v.raw(), v.kind, v.tail)
}

// Bytes returns a copy of the content bytes.
func (v Value) Bytes() []byte {
	raw := v.raw()

	return append([]byte(nil), raw[:decodeLen(raw, v.kind, v.tail)]...)
}

// String returns the content as a string.
func (v Value) String() string {
	raw := v.raw()

	return string(raw[:decodeLen(raw, v.kind, v.tail)])
}

// RawBytes returns a copy of the buffer up to the capacity, tagged tail
// included.
func (v Value) RawBytes() []byte {
	return append([]byte(nil), v.raw()...)
}

// AppendRecord appends the canonical raw record of v to dst: for Var the
// content length byte followed by the buffer, otherwise the buffer alone.
// The record is Config().Stride() bytes long.
func (v Value) AppendRecord(dst []byte) []byte {
	return v.view().appendRecord(dst)
}

// FromValue re-encodes v into the configuration of Stringlet[L, B]. It fails
// with a *LengthError when the content does not fit the target.
func FromValue[L Layout, B Buffer](v Value) (Stringlet[L, B], error) {
	return fromValid[L, B](v.view().content())
}

// Convert re-encodes the content of r into the configuration of
// Stringlet[L, B].
func Convert[L Layout, B Buffer](r Reader) (Stringlet[L, B], error) {
	return fromValid[L, B](r.view().content())
}

// Convert re-encodes v into configuration c.
func (v Value) Convert(c Config) (Value, error) {
	content := v.view().content()
	if err := c.checkFit(len(content)); err != nil {
		return Value{}, err
	}

	out := Value{kind: c.Kind, capacity: uint8(c.Capacity)} //nolint:gosec
	out.seal(copy(out.raw(), content))

	return out, nil
}

func (v *Value) raw() []byte {
	return v.buf[:v.capacity]
}

func (v *Value) view() view {
	return view{kind: v.kind, raw: v.buf[:v.capacity], tail: v.tail}
}

func (v *Value) seal(n int) {
	tail := seal(v.raw(), n)
	if v.kind == KindVar {
		v.tail = uint8(tail) //nolint:gosec
	}
}

// AppendRecord appends the record of r's content re-encoded into
// configuration c. A representation already in configuration c is copied as
// is; any other is checked against c's fit rule first.
func (c Config) AppendRecord(dst []byte, r Reader) ([]byte, error) {
	src := r.view()
	if src.kind == c.Kind && len(src.raw) == c.Capacity {
		return src.appendRecord(dst), nil
	}

	content := src.content()
	if err := c.checkFit(len(content)); err != nil {
		return dst, err
	}

	out := Value{kind: c.Kind, capacity: uint8(c.Capacity)} //nolint:gosec
	out.seal(copy(out.raw(), content))

	return out.AppendRecord(dst), nil
}
