package column

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/arloliu/stringlet"
	"github.com/arloliu/stringlet/compress"
	"github.com/arloliu/stringlet/errs"
	"github.com/arloliu/stringlet/internal/hash"
	"github.com/arloliu/stringlet/section"
)

// Decoder gives read access to the records of a column blob.
//
// A Decoder is read-only after NewDecoder returns and is safe for concurrent
// use. For an uncompressed column it aliases the data passed to NewDecoder,
// which must not be modified while the decoder is in use.
type Decoder struct {
	header  section.ColumnHeader
	cfg     stringlet.Config
	stride  int
	count   int
	payload []byte
}

// NewDecoder parses and validates a column blob.
//
// Validation covers the header, the stored payload size, decompression, the
// checksum when present, and the canonical form of every record.
//
// Returns:
//   - *Decoder: Decoder ready for random access
//   - error: Header errors (errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
//     errs.ErrInvalidHeaderFlags), errs.ErrInvalidPayload or
//     errs.ErrChecksumMismatch
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseColumnHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[section.PayloadOffset:]
	if len(stored) != int(header.StoredSize) {
		return nil, fmt.Errorf("%w: stored payload is %d bytes, header says %d",
			errs.ErrInvalidPayload, len(stored), header.StoredSize)
	}

	payload, err := compress.Decompress(header.Flag.GetCompression(), stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d",
			errs.ErrInvalidPayload, len(payload), header.PayloadSize)
	}

	if header.Flag.HasChecksum() {
		if sum := hash.Sum(payload); sum != header.Checksum {
			return nil, fmt.Errorf("%w: got %#016x, want %#016x", errs.ErrChecksumMismatch, sum, header.Checksum)
		}
	}

	d := &Decoder{
		header:  *header,
		cfg:     header.Config(),
		stride:  header.Config().Stride(),
		count:   int(header.Count),
		payload: payload,
	}

	if err := d.validateRecords(); err != nil {
		return nil, err
	}

	return d, nil
}

// validateRecords checks every record once. Zero-stride records are all the
// empty string, so a count alone is not a reason to walk them.
func (d *Decoder) validateRecords() error {
	if d.stride == 0 {
		return nil
	}

	for i := range d.count {
		if _, err := d.cfg.DecodeRecord(d.record(i)); err != nil {
			return fmt.Errorf("%w: record %d: %w", errs.ErrInvalidPayload, i, err)
		}
	}

	return nil
}

func (d *Decoder) record(i int) []byte {
	off := i * d.stride
	return d.payload[off : off+d.stride]
}

// Config returns the record configuration.
func (d *Decoder) Config() stringlet.Config {
	return d.cfg
}

// Header returns a copy of the parsed header.
func (d *Decoder) Header() section.ColumnHeader {
	return d.header
}

// Len returns the number of records.
func (d *Decoder) Len() int {
	return d.count
}

// At returns record i, or false when i is out of range.
func (d *Decoder) At(i int) (stringlet.Value, bool) {
	if i < 0 || i >= d.count {
		return stringlet.Value{}, false
	}

	v, err := d.cfg.DecodeRecord(d.record(i))
	if err != nil {
		// Records were validated by NewDecoder.
		return stringlet.Value{}, false
	}

	return v, true
}

// All iterates over the records in order.
func (d *Decoder) All() iter.Seq2[int, stringlet.Value] {
	return func(yield func(int, stringlet.Value) bool) {
		for i := range d.count {
			v, _ := d.At(i)
			if !yield(i, v) {
				return
			}
		}
	}
}

// Strings iterates over the record contents in order.
func (d *Decoder) Strings() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range d.All() {
			if !yield(v.String()) {
				return
			}
		}
	}
}

// Index returns the position of the first record holding s, or -1. Content
// that cannot fit the column configuration is never found.
//
// Records are canonical, so the search compares whole records without
// decoding them.
func (d *Decoder) Index(s string) int {
	v, err := d.cfg.New(s)
	if err != nil {
		return -1
	}

	want := v.AppendRecord(make([]byte, 0, d.stride))
	for i := range d.count {
		if bytes.Equal(d.record(i), want) {
			return i
		}
	}

	return -1
}

// Get returns record i as a Stringlet[L, B].
//
// When the column configuration differs from the type's, the content is
// re-encoded and must satisfy the type's fit rule; otherwise the error wraps
// both errs.ErrConfigMismatch and the *stringlet.LengthError.
func Get[L stringlet.Layout, B stringlet.Buffer](d *Decoder, i int) (stringlet.Stringlet[L, B], error) {
	if i < 0 || i >= d.count {
		return stringlet.Stringlet[L, B]{}, fmt.Errorf("%w: %d of %d", errs.ErrIndexOutOfRange, i, d.count)
	}

	var zero stringlet.Stringlet[L, B]
	if zero.Config() == d.cfg {
		return stringlet.DecodeRecord[L, B](d.record(i))
	}

	v, _ := d.At(i)
	s, err := stringlet.FromValue[L, B](v)
	if err != nil {
		return stringlet.Stringlet[L, B]{}, fmt.Errorf("%w: record %d of %s into %s: %w",
			errs.ErrConfigMismatch, i, d.cfg, zero.Config(), err)
	}

	return s, nil
}
