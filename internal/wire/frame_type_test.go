package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsStreamFrameTypeRange(t *testing.T) {
	for t1 := FrameType(0x00); t1 <= 0x0f; t1++ {
		require.False(t, t1.IsStreamFrameType(), "%#x", t1)
	}
	for t1 := FrameType(0x10); t1 <= 0x17; t1++ {
		require.True(t, t1.IsStreamFrameType(), "%#x", t1)
	}
	require.False(t, CryptoFrameType.IsStreamFrameType())
	require.False(t, AckFrameType.IsStreamFrameType())
	require.False(t, FrameType(0x18).IsStreamFrameType())
}

func TestStreamFrameFlags(t *testing.T) {
	tests := []struct {
		typ               FrameType
		off, length, fin bool
	}{
		{0x10, false, false, false},
		{0x11, false, false, true},
		{0x12, false, true, false},
		{0x13, false, true, true},
		{0x14, true, false, false},
		{0x15, true, false, true},
		{0x16, true, true, false},
		{0x17, true, true, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.off, tt.typ.hasOffset(), "%#x", tt.typ)
		require.Equal(t, tt.length, tt.typ.hasLength(), "%#x", tt.typ)
		require.Equal(t, tt.fin, tt.typ.hasFin(), "%#x", tt.typ)
	}
}
