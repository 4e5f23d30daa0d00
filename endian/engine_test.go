package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x04, 0x03, 0x02, 0x01}},
		{"big", GetBigEndianEngine(), []byte{0x01, 0x02, 0x03, 0x04}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, Name(tt.engine))

			buf := tt.engine.AppendUint32(nil, 0x01020304)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint32(0x01020304), tt.engine.Uint32(buf))

			put := make([]byte, 8)
			tt.engine.PutUint64(put, 0xC0FFEE)
			require.Equal(t, uint64(0xC0FFEE), tt.engine.Uint64(put))
		})
	}
}

func TestName_Unknown(t *testing.T) {
	require.Equal(t, "unknown", Name(nil))
}
