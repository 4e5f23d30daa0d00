package stringlet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/stringlet/errs"
)

// Config is a (kind, capacity) pair: the full description of a representation's
// byte layout.
type Config struct {
	Kind     Kind `json:"kind" yaml:"kind"`
	Capacity int  `json:"capacity" yaml:"capacity"`
}

// Legal reports whether kind and capacity form a legal configuration.
func Legal(kind Kind, capacity int) bool {
	return capacity >= 0 && capacity <= kind.MaxCapacity()
}

// Validate returns a *CapacityError when the configuration is illegal.
func (c Config) Validate() error {
	if !Legal(c.Kind, c.Capacity) {
		return &CapacityError{Kind: c.Kind, Capacity: c.Capacity}
	}

	return nil
}

// Fits reports whether content of n bytes satisfies the kind's fit rule:
// exactly capacity for Fixed, capacity or capacity-1 for Trim, and at most
// capacity for Var and Slim.
func (c Config) Fits(n int) bool {
	switch c.Kind {
	case KindFixed:
		return n == c.Capacity
	case KindTrim:
		return n == c.Capacity || n+1 == c.Capacity
	default:
		return n >= 0 && n <= c.Capacity
	}
}

// LengthRange returns the smallest and largest content lengths the
// configuration can hold.
func (c Config) LengthRange() (lo, hi int) {
	switch c.Kind {
	case KindFixed:
		return c.Capacity, c.Capacity
	case KindTrim:
		return max(c.Capacity-1, 0), c.Capacity
	default:
		return 0, c.Capacity
	}
}

// Stride returns the size in bytes of one raw record: the buffer, plus the
// explicit length byte for Var.
func (c Config) Stride() int {
	if c.Kind == KindVar {
		return c.Capacity + 1
	}

	return c.Capacity
}

// String formats the configuration as "kind<capacity>", e.g. "slim<16>".
func (c Config) String() string {
	return c.Kind.String() + "<" + strconv.Itoa(c.Capacity) + ">"
}

// checkFit validates the configuration and that n bytes fit it.
func (c Config) checkFit(n int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.Fits(n) {
		return &LengthError{Kind: c.Kind, Capacity: c.Capacity, Length: n}
	}

	return nil
}

// ParseConfig parses "kind:capacity" (e.g. "var:32") or the String form
// "kind<capacity>". The result is validated.
func ParseConfig(spec string) (Config, error) {
	spec = strings.TrimSpace(spec)

	var kindPart, capPart string
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		kindPart, capPart = spec[:i], spec[i+1:]
	} else if i := strings.IndexByte(spec, '<'); i >= 0 && strings.HasSuffix(spec, ">") {
		kindPart, capPart = spec[:i], spec[i+1:len(spec)-1]
	} else {
		return Config{}, fmt.Errorf("%w: malformed configuration %q, want kind:capacity", errs.ErrInvalidKind, spec)
	}

	kind, err := ParseKind(kindPart)
	if err != nil {
		return Config{}, err
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(capPart))
	if err != nil {
		return Config{}, fmt.Errorf("%w: capacity %q: %w", errs.ErrCapacity, capPart, err)
	}

	cfg := Config{Kind: kind, Capacity: capacity}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
