// Package compress provides the compression codecs applied to column payloads.
//
// A column payload is a run of fixed-stride stringlet records. Compression is
// applied to the whole payload after the records are written and removed
// before any record is read. Four algorithms are supported, identified by
// format.CompressionType:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Architecture
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// GetCodec returns a shared built-in codec; every built-in codec is safe for
// concurrent use.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, err := codec.Compress(payload)
//	original, err := codec.Decompress(compressed)
//
// Compress and Decompress look the codec up by type in one call; Compress also
// reports CompressionStats.
//
// # Algorithm Selection Guide
//
// | Workload Type          | Recommended | Reason                              |
// |------------------------|-------------|-------------------------------------|
// | Storage-constrained    | Zstd        | Best compression ratio              |
// | Write-heavy            | S2          | Balanced speed and compression      |
// | Read-heavy             | LZ4         | Fastest decompression               |
// | Small columns          | None        | Header dominates anyway             |
//
// Short strings in wide configurations compress best: every unused tail byte
// of a record repeats the same tag.
//
// # Zstd Implementations
//
// The default build uses github.com/klauspost/compress/zstd. Building with
// -tags gozstd and cgo enabled uses github.com/valyala/gozstd instead.
package compress
