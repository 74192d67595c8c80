package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/callbay/gen-quic/qerr"
)

func TestParseRstStreamFrame(t *testing.T) {
	f, n, err := parseRstStreamFrame([]byte{0x05, 0x00, 0x07, 0x09})
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.EqualValues(t, 5, f.StreamID)
	require.EqualValues(t, 7, f.AppErrorCode)
	require.EqualValues(t, 9, f.FinalOffset)
}

func TestParseConnectionCloseFrameUnknownErrorCode(t *testing.T) {
	_, _, err := parseConnectionCloseFrame([]byte{0x00, 0x32, 0x00})
	require.Error(t, err)
	var qe *qerr.Error
	require.ErrorAs(t, err, &qe)
	require.Equal(t, qerr.KindBadArgument, qe.Kind)
}

func TestParseConnectionCloseFrameFrameErrorBand(t *testing.T) {
	f, n, err := parseConnectionCloseFrame([]byte{0x00, 107, 0x03, 'b', 'a', 'd'})
	require.NoError(t, err)
	require.Equal(t, 6, n)
	frameType, ok := f.ErrorCode.IsFrameError()
	require.True(t, ok)
	require.EqualValues(t, 7, frameType)
	require.Equal(t, []byte("bad"), f.ErrorMessage)
}

func TestParseApplicationCloseFrame(t *testing.T) {
	f, n, err := parseApplicationCloseFrame([]byte{0x12, 0x34, 0x00})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.EqualValues(t, 0x1234, f.AppErrorCode)
	require.Empty(t, f.ErrorMessage)
}

func TestParseMaxDataFrame(t *testing.T) {
	f, n, err := parseMaxDataFrame([]byte{0x43, 0xe8})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.EqualValues(t, 1000, f.MaxData)
}

func TestParseMaxStreamDataFrame(t *testing.T) {
	f, n, err := parseMaxStreamDataFrame([]byte{0x04, 0x43, 0xe8})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.EqualValues(t, 4, f.StreamID)
	require.EqualValues(t, 1000, f.MaxStreamData)
	require.EqualValues(t, 0, f.StreamOwner())
	require.EqualValues(t, 0, f.StreamType())
}

func TestParseMaxStreamIDFrame(t *testing.T) {
	f, n, err := parseMaxStreamIDFrame([]byte{0x08})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.EqualValues(t, 8, f.MaxStreamID)
}

func TestParseDataBlockedFrame(t *testing.T) {
	f, n, err := parseDataBlockedFrame([]byte{0x09})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.EqualValues(t, 9, f.Offset)
}

func TestParseStreamDataBlockedFrame(t *testing.T) {
	f, n, err := parseStreamDataBlockedFrame([]byte{0x05, 0x09})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.EqualValues(t, 5, f.StreamID)
	require.EqualValues(t, 9, f.Offset)
}

func TestParseStreamIDBlockedFrame(t *testing.T) {
	f, n, err := parseStreamIDBlockedFrame([]byte{0x06})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.EqualValues(t, 6, f.StreamID)
}

func TestParseStopSendingFrame(t *testing.T) {
	f, n, err := parseStopSendingFrame([]byte{0x05, 0x00, 0x2a})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.EqualValues(t, 5, f.StreamID)
	require.EqualValues(t, 0x2a, f.AppErrorCode)
}

func TestParseRetireConnectionIDFrame(t *testing.T) {
	f, n, err := parseRetireConnectionIDFrame([]byte{0x07})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.EqualValues(t, 7, f.SequenceNumber)
}

func TestParsePathChallengeAndResponseFrame(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	c, n, err := parsePathChallengeFrame(data)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, c.Data)

	r, n, err := parsePathResponseFrame(data)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, c.Data, r.Data)
}

func TestParseNewConnectionIDFrame(t *testing.T) {
	b := []byte{0x04, 0x2a}
	b = append(b, 0xaa, 0xbb, 0xcc, 0xdd) // 4-byte connection ID
	for i := byte(1); i <= 16; i++ {
		b = append(b, i) // stateless reset token
	}
	f, n, err := parseNewConnectionIDFrame(b)
	require.NoError(t, err)
	require.Equal(t, len(b), n)
	require.EqualValues(t, 42, f.Sequence)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd}, f.ConnectionID)
	require.Equal(t, [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, f.StatelessResetToken)
}

func TestParseNewConnectionIDFrameZeroLengthCID(t *testing.T) {
	b := []byte{0x00, 0x01}
	for i := byte(0); i < 16; i++ {
		b = append(b, i)
	}
	f, n, err := parseNewConnectionIDFrame(b)
	require.NoError(t, err)
	require.Equal(t, len(b), n)
	require.Empty(t, f.ConnectionID)
}

func TestParseCryptoFrame(t *testing.T) {
	f, n, err := parseCryptoFrame([]byte{0x00, 0x03, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.EqualValues(t, 0, f.Offset)
	require.Equal(t, []byte{1, 2, 3}, f.Data)
	require.Equal(t, 3, f.Length())
}

func TestPingFrameKind(t *testing.T) {
	require.Equal(t, KindRegular, (&PingFrame{}).Kind())
}
