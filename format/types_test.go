package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType(t *testing.T) {
	tests := []struct {
		name string
		typ  CompressionType
		str  string
	}{
		{"none", CompressionNone, "None"},
		{"zstd", CompressionZstd, "Zstd"},
		{"s2", CompressionS2, "S2"},
		{"lz4", CompressionLZ4, "LZ4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.typ.IsValid())
			require.Equal(t, tt.str, tt.typ.String())

			parsed, err := ParseCompressionType(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.typ, parsed)

			text, err := tt.typ.MarshalText()
			require.NoError(t, err)
			require.Equal(t, tt.name, string(text))

			var c CompressionType
			require.NoError(t, c.UnmarshalText(text))
			require.Equal(t, tt.typ, c)
		})
	}

	t.Run("Empty means none", func(t *testing.T) {
		c, err := ParseCompressionType("")
		require.NoError(t, err)
		require.Equal(t, CompressionNone, c)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseCompressionType("brotli")
		require.Error(t, err)

		c := CompressionType(9)
		require.False(t, c.IsValid())
		require.Equal(t, "Unknown", c.String())
		_, err = c.MarshalText()
		require.Error(t, err)
	})
}
