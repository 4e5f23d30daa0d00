package column

import (
	"fmt"

	"github.com/arloliu/stringlet"
	"github.com/arloliu/stringlet/errs"
	"github.com/arloliu/stringlet/format"
	"github.com/arloliu/stringlet/internal/options"
	"github.com/arloliu/stringlet/section"
)

// EncoderConfig holds the header template and codec of an Encoder.
type EncoderConfig struct {
	header   *section.ColumnHeader
	distinct bool
}

func newEncoderConfig(cfg stringlet.Config) (*EncoderConfig, error) {
	header, err := section.NewColumnHeader(cfg)
	if err != nil {
		return nil, err
	}

	return &EncoderConfig{header: header}, nil
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, comp)
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

// Compression returns the configured payload compression.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.header.Flag.GetCompression()
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression configures the payload compression. The default is
// format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		return cfg.setCompression(comp)
	})
}

// WithLittleEndian sets little-endian header fields, the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian header fields.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.header.Flag.WithBigEndian()
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum. It is
// enabled by default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.header.Flag.SetHasChecksum(enabled)
	})
}

// WithDistinct rejects a string that is already in the column with
// errs.ErrDuplicateString.
func WithDistinct() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.distinct = true
	})
}
