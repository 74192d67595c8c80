package quicvarint

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimits(t *testing.T) {
	require.Equal(t, uint64(0), uint64(Min))
	require.Equal(t, uint64(1<<62-1), Max)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         []byte
		expectedValue uint64
		expectedLen   int
	}{
		{"1 byte", []byte{0b00011001}, 25, 1},
		{"2 byte", []byte{0b01111011, 0xbd}, 15293, 2},
		{"4 byte", []byte{0b10011101, 0x7f, 0x3e, 0x7d}, 494878333, 4},
		{"8 byte", []byte{0b11000010, 0x19, 0x7c, 0x5e, 0xff, 0x14, 0xe8, 0x8c}, 151288809941952652, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, n, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expectedValue, value)
			require.Equal(t, tt.expectedLen, n)
		})
	}
}

func TestParseWithTrailingBytes(t *testing.T) {
	value, n, err := Parse([]byte{0b00011001, 0xff, 0xff})
	require.NoError(t, err)
	require.Equal(t, uint64(25), value)
	require.Equal(t, 1, n)
}

func TestParseEmpty(t *testing.T) {
	_, _, err := Parse(nil)
	require.Equal(t, io.EOF, err)
}

func TestParseTruncated(t *testing.T) {
	// the length-selector byte promises a 4-byte encoding, only 2 follow.
	_, _, err := Parse([]byte{0b10011101, 0x7f})
	require.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestRead(t *testing.T) {
	r := bytes.NewReader([]byte{0b01111011, 0xbd})
	v, err := Read(r)
	require.NoError(t, err)
	require.Equal(t, uint64(15293), v)
	require.Zero(t, r.Len())
}

func TestReadTruncated(t *testing.T) {
	r := bytes.NewReader([]byte{0b01111011})
	_, err := Read(r)
	require.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestLen(t *testing.T) {
	require.Equal(t, 1, Len(37))
	require.Equal(t, 2, Len(15293))
	require.Equal(t, 4, Len(494878333))
	require.Equal(t, 8, Len(151288809941952652))
}

func TestLenTooLarge(t *testing.T) {
	require.True(t, TooLargeForVarint(Max+1))
	require.False(t, TooLargeForVarint(Max))
	require.Panics(t, func() { Len(Max + 1) })
}
