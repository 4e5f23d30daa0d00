package section

import (
	"github.com/arloliu/stringlet"
	"github.com/arloliu/stringlet/errs"
	"github.com/arloliu/stringlet/format"
)

// ColumnFlag is the packed flag part of a column header.
type ColumnFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is checksum flag, 1 means the header carries a payload checksum.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are magic number to identify the blob format:
	//   - 0xEC10 (0b1110_1100_0001_0000): stringlet column format v1
	// Options is always stored little-endian so it can be read before the
	// byte order is known.
	Options uint16

	// Kind is the stringlet kind of every record.
	Kind uint8

	// Compression indicates the compression used for the record payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	Compression uint8
}

// NewColumnFlag creates a flag for records of the given kind, little-endian,
// uncompressed and with a checksum.
func NewColumnFlag(kind stringlet.Kind) ColumnFlag {
	flag := ColumnFlag{
		Options:     MagicColumnV1Opt,
		Kind:        uint8(kind),
		Compression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()
	flag.SetHasChecksum(true)

	return flag
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f ColumnFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicColumnV1Opt
}

// GetMagicNumber returns the magic number from the Options field.
func (f ColumnFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsLittleEndian returns whether the data is little-endian.
func (f ColumnFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f ColumnFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *ColumnFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *ColumnFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasChecksum returns whether the header carries a payload checksum.
func (f ColumnFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetHasChecksum enables or disables the payload checksum.
func (f *ColumnFlag) SetHasChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// GetKind returns the record kind.
func (f ColumnFlag) GetKind() stringlet.Kind {
	return stringlet.Kind(f.Kind)
}

// SetCompression sets the payload compression type.
func (f *ColumnFlag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f ColumnFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks if the flag contains valid values.
func (f ColumnFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}
	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.GetKind().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.GetCompression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
