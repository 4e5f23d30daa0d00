package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stringlet/errs"
	"github.com/arloliu/stringlet/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// recordPayload mimics a Slim<16> column: short names followed by repeated
// tail tags.
func recordPayload(records int) []byte {
	names := []string{"cpu.usage", "mem.free", "disk.io", "net.rx", "net.tx"}
	var buf bytes.Buffer
	for i := range records {
		name := names[i%len(names)]
		buf.WriteString(name)
		fill := byte(0xC0 | (16 - len(name)))
		for range 16 - len(name) {
			buf.WriteByte(fill)
		}
	}

	return buf.Bytes()
}

func randomPayload(n int) []byte {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, n)
	rng.Read(data)

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"records":  recordPayload(1000),
		"random":   randomPayload(4096),
		"one byte": {0x41},
		"tiny":     []byte("ab"),
	}

	for _, typ := range allTypes {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		for name, data := range payloads {
			t.Run(typ.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, decompressed)
			})
		}
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			compressed, stats, err := Compress(typ, nil)
			require.NoError(t, err)
			require.Empty(t, compressed)
			require.Zero(t, stats.SpaceSavings())

			decompressed, err := Decompress(typ, compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecs_CompressRecords(t *testing.T) {
	data := recordPayload(1000)
	for _, typ := range allTypes[1:] {
		t.Run(typ.String(), func(t *testing.T) {
			out, stats, err := Compress(typ, data)
			require.NoError(t, err)
			require.Equal(t, typ, stats.Algorithm)
			require.Equal(t, int64(len(data)), stats.OriginalSize)
			require.Equal(t, int64(len(out)), stats.CompressedSize)
			require.Less(t, stats.CompressionRatio(), 0.5)
			require.Greater(t, stats.SpaceSavings(), 50.0)
		})
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02}
	for _, typ := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(typ.String(), func(t *testing.T) {
			_, err := Decompress(typ, garbage)
			require.ErrorContains(t, err, "decompression failed")
		})
	}
}

func TestCodecs_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, _, err = Compress(format.CompressionType(0x9), []byte("x"))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = Decompress(format.CompressionType(0x7), []byte("x"))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte("abc")
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestCompressionStats_ZeroSize(t *testing.T) {
	var stats CompressionStats
	require.Zero(t, stats.CompressionRatio())
	require.Zero(t, stats.SpaceSavings())
}

func BenchmarkCompress(b *testing.B) {
	data := recordPayload(4096)
	for _, typ := range allTypes {
		codec, _ := GetCodec(typ)
		b.Run(typ.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := recordPayload(4096)
	for _, typ := range allTypes {
		codec, _ := GetCodec(typ)
		compressed, _ := codec.Compress(data)
		b.Run(typ.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
