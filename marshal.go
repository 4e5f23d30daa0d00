package stringlet

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/stringlet/errs"
)

// Stringlet encodes as its content in text formats (JSON, YAML, CBOR text
// string) and as its raw record in binary form. Decoding into a Stringlet
// applies the fit rule of its type.

// AppendRecord appends the raw record of s to dst: for Var the content length
// byte followed by the buffer, otherwise the buffer alone.
func (s Stringlet[L, B]) AppendRecord(dst []byte) []byte {
	return s.view().appendRecord(dst)
}

// DecodeRecord validates a raw record written by AppendRecord for the same
// type and returns the Stringlet it holds.
func DecodeRecord[L Layout, B Buffer](rec []byte) (Stringlet[L, B], error) {
	var out Stringlet[L, B]
	tail, err := decodeRecord(out.Config(), rec, out.raw())
	if err != nil {
		return Stringlet[L, B]{}, err
	}
	if out.meta.Kind() == KindVar {
		out.meta = any(Var{tail: tail}).(L) //nolint:forcetypeassert
	}

	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Stringlet[L, B]) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stringlet[L, B]) UnmarshalText(text []byte) error {
	out, err := FromBytes[L, B](text)
	if err != nil {
		return err
	}
	*s = out

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The output is the raw
// record, Config().Stride() bytes long.
func (s Stringlet[L, B]) MarshalBinary() ([]byte, error) {
	return s.AppendRecord(make([]byte, 0, s.Config().Stride())), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The record must be
// canonical.
func (s *Stringlet[L, B]) UnmarshalBinary(data []byte) error {
	out, err := DecodeRecord[L, B](data)
	if err != nil {
		return err
	}
	*s = out

	return nil
}

// MarshalCBOR implements cbor.Marshaler. The content is a CBOR text string.
func (s Stringlet[L, B]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.String())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (s *Stringlet[L, B]) UnmarshalCBOR(data []byte) error {
	var text string
	if err := cbor.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("invalid %s CBOR: %w", s.Config(), err)
	}

	return s.UnmarshalText([]byte(text))
}

// MarshalYAML implements yaml.Marshaler.
func (s Stringlet[L, B]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (s *Stringlet[L, B]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid %s YAML: line %d: expected a scalar", s.Config(), node.Line)
	}

	return s.UnmarshalText([]byte(node.Value))
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return v.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver keeps its
// configuration; set it first with Config.New or NewValue. A zero Value only
// accepts the empty string.
func (v *Value) UnmarshalText(text []byte) error {
	out, err := v.Config().NewBytes(text)
	if err != nil {
		return err
	}
	*v = out

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler: the kind byte, the
// capacity byte and the raw record.
func (v Value) MarshalBinary() ([]byte, error) {
	dst := make([]byte, 0, 2+v.Config().Stride())
	dst = append(dst, byte(v.kind), v.capacity)

	return v.AppendRecord(dst), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces both the
// configuration and the content of v.
func (v *Value) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("%w: value needs at least 2 bytes, got %d", errs.ErrInvalidRecord, len(data))
	}

	cfg := Config{Kind: Kind(data[0]), Capacity: int(data[1])}
	out, err := cfg.DecodeRecord(data[2:])
	if err != nil {
		return err
	}
	*v = out

	return nil
}

type cborValue struct {
	Config string `cbor:"1,keyasint"`
	Text   string `cbor:"2,keyasint"`
}

// MarshalCBOR implements cbor.Marshaler. A Value is a map carrying its
// configuration ("slim<16>") and its content, so it decodes without context.
func (v Value) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cborValue{Config: v.Config().String(), Text: v.String()})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var raw cborValue
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid value CBOR: %w", err)
	}

	cfg, err := ParseConfig(raw.Config)
	if err != nil {
		return err
	}

	out, err := cfg.New(raw.Text)
	if err != nil {
		return err
	}
	*v = out

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Like UnmarshalText it keeps the
// receiver's configuration.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid %s YAML: line %d: expected a scalar", v.Config(), node.Line)
	}

	return v.UnmarshalText([]byte(node.Value))
}
