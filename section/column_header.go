package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/stringlet"
	"github.com/arloliu/stringlet/endian"
	"github.com/arloliu/stringlet/errs"
)

// ColumnHeader is the fixed-size header of a column blob. It is 32 bytes and
// describes the records that follow it.
//
// Layout:
//
//	offset  size  field
//	0       2     Flag.Options (always little-endian)
//	2       1     Flag.Kind
//	3       1     Flag.Compression
//	4       1     Capacity
//	5       3     reserved, zero
//	8       4     Count
//	12      4     PayloadSize
//	16      8     Checksum
//	24      4     StoredSize
//	28      4     reserved, zero
type ColumnHeader struct {
	// Flag is a packed field for options, magic number, kind and compression.
	Flag ColumnFlag // 4 bytes, offset 0-3
	// Capacity is the stringlet capacity of every record.
	Capacity uint8 // 1 byte, offset 4
	// Count is the number of records.
	Count uint32 // 4 bytes, offset 8-11
	// PayloadSize is the uncompressed payload size: Count times the record stride.
	PayloadSize uint32 // 4 bytes, offset 12-15
	// Checksum is the xxHash64 of the uncompressed payload, zero without the checksum flag.
	Checksum uint64 // 8 bytes, offset 16-23
	// StoredSize is the size of the payload as stored after the header.
	StoredSize uint32 // 4 bytes, offset 24-27
}

// NewColumnHeader creates a header for records of configuration cfg. The
// configuration must be legal.
func NewColumnHeader(cfg stringlet.Config) (*ColumnHeader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ColumnHeader{
		Flag:     NewColumnFlag(cfg.Kind),
		Capacity: uint8(cfg.Capacity), //nolint:gosec
	}, nil
}

// ParseColumnHeader parses a header from the first HeaderSize bytes of data.
func ParseColumnHeader(data []byte) (*ColumnHeader, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	h := &ColumnHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}

	return h, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags are invalid.
func (h *ColumnHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.Kind = data[2]
	h.Flag.Compression = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()

	h.Capacity = data[4]
	h.Count = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])
	h.StoredSize = engine.Uint32(data[24:28])

	if data[5]|data[6]|data[7]|data[28]|data[29]|data[30]|data[31] != 0 {
		return fmt.Errorf("%w: reserved bytes are not zero", errs.ErrInvalidHeaderFlags)
	}

	return h.Validate()
}

// Bytes serializes the ColumnHeader into a new byte slice.
func (h *ColumnHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *ColumnHeader) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.Kind, h.Flag.Compression, h.Capacity, 0, 0, 0)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)
	dst = engine.AppendUint32(dst, h.StoredSize)

	return append(dst, 0, 0, 0, 0)
}

// Config returns the stringlet configuration of the records.
func (h *ColumnHeader) Config() stringlet.Config {
	return stringlet.Config{Kind: h.Flag.GetKind(), Capacity: int(h.Capacity)}
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *ColumnHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the flags, the record configuration and that PayloadSize
// matches Count records.
func (h *ColumnHeader) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	cfg := h.Config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidHeaderFlags, err)
	}

	if uint64(h.PayloadSize) != uint64(h.Count)*uint64(cfg.Stride()) {
		return fmt.Errorf("%w: %d %s records need %d bytes, header says %d",
			errs.ErrInvalidPayload, h.Count, cfg, uint64(h.Count)*uint64(cfg.Stride()), h.PayloadSize)
	}
	if !h.Flag.HasChecksum() && h.Checksum != 0 {
		return fmt.Errorf("%w: checksum set without checksum flag", errs.ErrInvalidHeaderFlags)
	}

	return nil
}
