package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stringlet"
	"github.com/arloliu/stringlet/endian"
	"github.com/arloliu/stringlet/errs"
	"github.com/arloliu/stringlet/format"
)

func testHeader(t *testing.T, cfg stringlet.Config, count int) *ColumnHeader {
	t.Helper()

	header, err := NewColumnHeader(cfg)
	require.NoError(t, err)
	header.Count = uint32(count)
	header.PayloadSize = uint32(count * cfg.Stride())
	header.StoredSize = header.PayloadSize
	header.Checksum = 0xDEADBEEFCAFE

	return header
}

func TestNewColumnHeader(t *testing.T) {
	t.Run("Valid configuration", func(t *testing.T) {
		header, err := NewColumnHeader(stringlet.Config{Kind: stringlet.KindSlim, Capacity: 16})

		require.NoError(t, err)
		require.True(t, header.Flag.IsValidMagicNumber())
		require.True(t, header.Flag.IsLittleEndian())
		require.True(t, header.Flag.HasChecksum())
		require.Equal(t, format.CompressionNone, header.Flag.GetCompression())
		require.Equal(t, stringlet.Config{Kind: stringlet.KindSlim, Capacity: 16}, header.Config())
	})

	t.Run("Wide Var", func(t *testing.T) {
		header, err := NewColumnHeader(stringlet.Config{Kind: stringlet.KindVar, Capacity: 255})
		require.NoError(t, err)
		require.Equal(t, uint8(255), header.Capacity)
	})

	t.Run("Illegal configuration", func(t *testing.T) {
		header, err := NewColumnHeader(stringlet.Config{Kind: stringlet.KindTrim, Capacity: 65})
		require.ErrorIs(t, err, errs.ErrCapacity)
		require.Nil(t, header)
	})
}

func TestColumnHeader_RoundTrip(t *testing.T) {
	for _, big := range []bool{false, true} {
		name := "Little endian"
		if big {
			name = "Big endian"
		}

		t.Run(name, func(t *testing.T) {
			header := testHeader(t, stringlet.Config{Kind: stringlet.KindVar, Capacity: 200}, 1000)
			header.Flag.SetCompression(format.CompressionZstd)
			header.StoredSize = 777
			if big {
				header.Flag.WithBigEndian()
			}

			data := header.Bytes()
			require.Len(t, data, HeaderSize)
			wantOptions := []byte{0x12, 0xEC}
			if big {
				wantOptions[0] = 0x13
			}
			require.Equal(t, wantOptions, data[0:2])

			parsed, err := ParseColumnHeader(data)
			require.NoError(t, err)
			require.Equal(t, header, parsed)
		})
	}
}

func TestColumnHeader_Parse(t *testing.T) {
	valid := testHeader(t, stringlet.Config{Kind: stringlet.KindSlim, Capacity: 8}, 3).Bytes()

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		want   error
	}{
		{"Too short", func(b []byte) []byte { return b[:10] }, errs.ErrInvalidHeaderSize},
		{"Bad magic", func(b []byte) []byte { b[1] = 0xEB; return b }, errs.ErrInvalidMagicNumber},
		{"Reserved option bit", func(b []byte) []byte { b[0] |= 0x04; return b }, errs.ErrInvalidHeaderFlags},
		{"Unknown kind", func(b []byte) []byte { b[2] = 9; return b }, errs.ErrInvalidHeaderFlags},
		{"Unknown compression", func(b []byte) []byte { b[3] = 0; return b }, errs.ErrInvalidHeaderFlags},
		{"Illegal capacity", func(b []byte) []byte { b[4] = 65; return b }, errs.ErrInvalidHeaderFlags},
		{"Reserved byte", func(b []byte) []byte { b[30] = 1; return b }, errs.ErrInvalidHeaderFlags},
		{"Payload size mismatch", func(b []byte) []byte { b[12]++; return b }, errs.ErrInvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(append([]byte(nil), valid...))
			_, err := ParseColumnHeader(data)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("Exact size required by Parse", func(t *testing.T) {
		h := &ColumnHeader{}
		require.ErrorIs(t, h.Parse(append(valid, 0)), errs.ErrInvalidHeaderSize)
	})

	t.Run("Checksum without flag", func(t *testing.T) {
		h := testHeader(t, stringlet.Config{Kind: stringlet.KindSlim, Capacity: 8}, 3)
		h.Flag.SetHasChecksum(false)
		require.ErrorIs(t, h.Validate(), errs.ErrInvalidHeaderFlags)
	})
}

func TestColumnHeader_GetEndianEngine(t *testing.T) {
	header := testHeader(t, stringlet.Config{Kind: stringlet.KindFixed, Capacity: 4}, 1)
	require.Equal(t, endian.GetLittleEndianEngine(), header.GetEndianEngine())

	header.Flag.WithBigEndian()
	require.True(t, header.Flag.IsBigEndian())
	require.Equal(t, endian.GetBigEndianEngine(), header.GetEndianEngine())
}
