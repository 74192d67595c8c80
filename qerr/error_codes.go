package qerr

import "fmt"

// TransportErrorCode is the semantic connection-level error carried by
// a CONNECTION_CLOSE frame. The numeric values follow the draft-14
// QUIC transport specification.
type TransportErrorCode uint16

const (
	NoError                 TransportErrorCode = 0
	InternalError           TransportErrorCode = 1
	ServerBusy              TransportErrorCode = 2
	FlowControlError        TransportErrorCode = 3
	StreamIDError           TransportErrorCode = 4
	StreamStateError        TransportErrorCode = 5
	FinalOffsetError        TransportErrorCode = 6
	FrameFormatErrorCode    TransportErrorCode = 7
	TransportParameterError TransportErrorCode = 8
	VersionNegotiationError TransportErrorCode = 9
	ProtocolViolationError  TransportErrorCode = 10
	UnsolicitedPathResponse TransportErrorCode = 11

	// frameErrorBandLow and frameErrorBandHigh bound the per-frame-type
	// FRAME_ERROR sub-code band. A value in [100, 123] carries the
	// offending frame type as typ-100 alongside the generic meaning
	// "a specific frame was malformed".
	frameErrorBandLow  = 100
	frameErrorBandHigh = 123
)

func (c TransportErrorCode) String() string {
	if c >= frameErrorBandLow && c <= frameErrorBandHigh {
		return fmt.Sprintf("frame_error(%d)", c-frameErrorBandLow)
	}
	switch c {
	case NoError:
		return "ok"
	case InternalError:
		return "internal"
	case ServerBusy:
		return "server_busy"
	case FlowControlError:
		return "flow_control"
	case StreamIDError:
		return "stream_id"
	case StreamStateError:
		return "stream_state"
	case FinalOffsetError:
		return "final_offset"
	case FrameFormatErrorCode:
		return "frame_format"
	case TransportParameterError:
		return "transport_param"
	case VersionNegotiationError:
		return "version_neg"
	case ProtocolViolationError:
		return "protocol_violation"
	case UnsolicitedPathResponse:
		return "path_response"
	default:
		return "badarg"
	}
}

// IsFrameError reports whether c falls in the [100,123] FRAME_ERROR band,
// and if so the offending frame type it was encoded against.
func (c TransportErrorCode) IsFrameError() (frameType uint16, ok bool) {
	if c >= frameErrorBandLow && c <= frameErrorBandHigh {
		return uint16(c) - frameErrorBandLow, true
	}
	return 0, false
}

// ParseTransportErrorCode maps a wire 16-bit value onto its semantic
// TransportErrorCode. ok is false for values outside both the named
// constants and the FRAME_ERROR band; callers must treat that as
// qerr.KindBadArgument per spec.
func ParseTransportErrorCode(wire uint16) (TransportErrorCode, bool) {
	c := TransportErrorCode(wire)
	if c >= frameErrorBandLow && c <= frameErrorBandHigh {
		return c, true
	}
	switch c {
	case NoError, InternalError, ServerBusy, FlowControlError, StreamIDError,
		StreamStateError, FinalOffsetError, FrameFormatErrorCode, TransportParameterError,
		VersionNegotiationError, ProtocolViolationError, UnsolicitedPathResponse:
		return c, true
	default:
		return 0, false
	}
}

// AppErrorCode is the opaque 16-bit application error code carried by
// RST_STREAM, STOP_SENDING and APPLICATION_CLOSE frames. Only the
// STOPPING sentinel is given symbolic meaning by the transport; any
// other value is passed through to the application layer unchanged.
type AppErrorCode uint16

// Stopping is the distinguished application error code signalling that
// the sender of STOP_SENDING is no longer interested in the stream.
const Stopping AppErrorCode = 0

func (c AppErrorCode) String() string {
	if c == Stopping {
		return "STOPPING"
	}
	return fmt.Sprintf("app_error(%d)", uint16(c))
}
