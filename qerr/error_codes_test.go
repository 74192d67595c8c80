package qerr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTransportErrorCodeNamed(t *testing.T) {
	for _, c := range []TransportErrorCode{
		NoError, InternalError, ServerBusy, FlowControlError, StreamIDError,
		StreamStateError, FinalOffsetError, FrameFormatErrorCode, TransportParameterError,
		VersionNegotiationError, ProtocolViolationError, UnsolicitedPathResponse,
	} {
		got, ok := ParseTransportErrorCode(uint16(c))
		require.True(t, ok)
		require.Equal(t, c, got)
	}
}

func TestParseTransportErrorCodeFrameErrorBand(t *testing.T) {
	got, ok := ParseTransportErrorCode(107)
	require.True(t, ok)
	frameType, isFrameErr := got.IsFrameError()
	require.True(t, isFrameErr)
	require.Equal(t, uint16(7), frameType)
}

func TestParseTransportErrorCodeUnknown(t *testing.T) {
	_, ok := ParseTransportErrorCode(50)
	require.False(t, ok)
	_, ok = ParseTransportErrorCode(124)
	require.False(t, ok)
}

func TestAppErrorCodeString(t *testing.T) {
	require.Equal(t, "STOPPING", Stopping.String())
	require.Equal(t, "app_error(42)", AppErrorCode(42).String())
}
