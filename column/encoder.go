package column

import (
	"fmt"

	"github.com/arloliu/stringlet"
	"github.com/arloliu/stringlet/compress"
	"github.com/arloliu/stringlet/errs"
	"github.com/arloliu/stringlet/internal/collision"
	"github.com/arloliu/stringlet/internal/hash"
	"github.com/arloliu/stringlet/internal/options"
	"github.com/arloliu/stringlet/internal/pool"
	"github.com/arloliu/stringlet/section"
)

// Encoder writes stringlet records of one configuration into a column blob.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used
// by a single goroutine at a time.
//
// After Finish the encoder rejects further records until Reset is called.
type Encoder struct {
	*EncoderConfig

	cfg    stringlet.Config
	stride int
	count  int
	stats  compress.CompressionStats

	// Pooled buffer holding the uncompressed records
	buf *pool.ByteBuffer

	// Set by WithDistinct
	tracker *collision.Tracker
}

// NewEncoder creates an encoder for records of configuration cfg.
//
// Parameters:
//   - cfg: Record configuration; must be legal
//   - opts: Optional settings (compression, endianness, checksum)
//
// Returns:
//   - *Encoder: New encoder ready for appending
//   - error: *stringlet.CapacityError or an option error
func NewEncoder(cfg stringlet.Config, opts ...EncoderOption) (*Encoder, error) {
	config, err := newEncoderConfig(cfg)
	if err != nil {
		return nil, err
	}

	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	e := &Encoder{
		EncoderConfig: config,
		cfg:           cfg,
		stride:        cfg.Stride(),
		buf:           pool.GetColumnBuffer(),
	}
	if config.distinct {
		e.tracker = collision.NewTracker()
	}

	return e, nil
}

// Config returns the record configuration.
func (e *Encoder) Config() stringlet.Config {
	return e.cfg
}

// Append appends the content of r, re-encoded into the column configuration
// when r has another one. Content that does not fit the column's fit rule is
// rejected with a *stringlet.LengthError.
func (e *Encoder) Append(r stringlet.Reader) error {
	if err := e.reserve(); err != nil {
		return err
	}

	rec, err := e.cfg.AppendRecord(e.buf.B, r)
	if err != nil {
		return err
	}

	if e.tracker != nil {
		if err := e.track(r.String(), stringlet.HashReader(r)); err != nil {
			return err
		}
	}
	e.commit(rec)

	return nil
}

// AppendString appends s.
func (e *Encoder) AppendString(s string) error {
	if err := e.reserve(); err != nil {
		return err
	}

	v, err := e.cfg.New(s)
	if err != nil {
		return err
	}

	if e.tracker != nil {
		if err := e.track(s, v.Hash()); err != nil {
			return err
		}
	}
	e.commit(v.AppendRecord(e.buf.B))

	return nil
}

func (e *Encoder) track(s string, h uint64) error {
	if err := e.tracker.Track(s, h); err != nil {
		return fmt.Errorf("%w: %q", err, s)
	}

	return nil
}

// commit keeps rec, the record buffer with one more record appended.
func (e *Encoder) commit(rec []byte) {
	e.buf.B = rec
	e.count++
}

// AppendStrings appends every string of ss in order and stops at the first
// failure. Strings before the failing one stay appended.
func (e *Encoder) AppendStrings(ss ...string) error {
	for i, s := range ss {
		if err := e.AppendString(s); err != nil {
			return fmt.Errorf("string %d: %w", i, err)
		}
	}

	return nil
}

// reserve checks that one more record is allowed and makes room for it.
func (e *Encoder) reserve() error {
	if e.buf == nil {
		return errs.ErrEncoderFinished
	}
	if int64(e.count) >= section.MaxRecordCount || int64(e.buf.Len()+e.stride) > section.MaxPayloadSize {
		return fmt.Errorf("%w: %d %s records", errs.ErrTooManyRecords, e.count, e.cfg)
	}
	e.buf.Grow(e.stride)

	return nil
}

// Len returns the number of records appended so far.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the uncompressed blob size so far: header plus records.
func (e *Encoder) Size() int {
	if e.buf == nil {
		return section.HeaderSize
	}

	return section.HeaderSize + e.buf.Len()
}

// Finish compresses the records and returns the complete column blob.
//
// The pooled record buffer is released even on error; call Reset to encode
// another column with the same settings.
//
// Returns:
//   - []byte: Newly allocated blob owned by the caller
//   - error: ErrEncoderFinished or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	if e.buf == nil {
		return nil, errs.ErrEncoderFinished
	}
	defer func() {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}()

	header := *e.header
	payload := e.buf.Bytes()

	header.Count = uint32(e.count)
	header.PayloadSize = uint32(len(payload))
	if header.Flag.HasChecksum() {
		header.Checksum = hash.Sum(payload)
	}

	stored, stats, err := compress.Compress(header.Flag.GetCompression(), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	header.StoredSize = uint32(len(stored))
	e.stats = stats

	blob := make([]byte, 0, section.HeaderSize+len(stored))
	blob = header.AppendTo(blob)
	blob = append(blob, stored...)

	return blob, nil
}

// Collisions returns how many strings of a distinct column shared a content
// hash with an earlier, different string. It is always 0 without WithDistinct.
func (e *Encoder) Collisions() int {
	if e.tracker == nil {
		return 0
	}

	return e.tracker.Collisions()
}

// Stats returns the compression statistics of the last Finish.
func (e *Encoder) Stats() compress.CompressionStats {
	return e.stats
}

// Reset discards all records and makes the encoder usable again, keeping its
// configuration and options.
func (e *Encoder) Reset() {
	if e.buf == nil {
		e.buf = pool.GetColumnBuffer()
	} else {
		e.buf.Reset()
	}
	if e.tracker != nil {
		e.tracker.Reset()
	}
	e.count = 0
}
