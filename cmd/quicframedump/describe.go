package main

import (
	"fmt"

	"github.com/callbay/gen-quic/internal/wire"
)

// describeFrame renders a single decoded frame as one line of
// human-readable text, independent of the ambient debug logger in
// internal/wire/log.go (this is presentation for the terminal, not a
// trace).
func describeFrame(f wire.Frame) string {
	switch v := f.(type) {
	case *wire.PingFrame:
		return "  PING"
	case *wire.RstStreamFrame:
		return fmt.Sprintf("  RST_STREAM stream=%d app_error=%s final_offset=%d", v.StreamID, v.AppErrorCode, v.FinalOffset)
	case *wire.ConnectionCloseFrame:
		return fmt.Sprintf("  CONNECTION_CLOSE error=%s message=%q", v.ErrorCode, v.ErrorMessage)
	case *wire.ApplicationCloseFrame:
		return fmt.Sprintf("  APPLICATION_CLOSE error=%s message=%q", v.AppErrorCode, v.ErrorMessage)
	case *wire.MaxDataFrame:
		return fmt.Sprintf("  MAX_DATA max=%d", v.MaxData)
	case *wire.MaxStreamDataFrame:
		return fmt.Sprintf("  MAX_STREAM_DATA stream=%d max=%d", v.StreamID, v.MaxStreamData)
	case *wire.MaxStreamIDFrame:
		return fmt.Sprintf("  MAX_STREAM_ID max=%d", v.MaxStreamID)
	case *wire.DataBlockedFrame:
		return fmt.Sprintf("  DATA_BLOCKED offset=%d", v.Offset)
	case *wire.StreamDataBlockedFrame:
		return fmt.Sprintf("  STREAM_DATA_BLOCKED stream=%d offset=%d", v.StreamID, v.Offset)
	case *wire.StreamIDBlockedFrame:
		return fmt.Sprintf("  STREAM_ID_BLOCKED stream=%d", v.StreamID)
	case *wire.NewConnectionIDFrame:
		return fmt.Sprintf("  NEW_CONNECTION_ID seq=%d conn_id=%x token=%x", v.Sequence, v.ConnectionID, v.StatelessResetToken)
	case *wire.StopSendingFrame:
		return fmt.Sprintf("  STOP_SENDING stream=%d app_error=%s", v.StreamID, v.AppErrorCode)
	case *wire.RetireConnectionIDFrame:
		return fmt.Sprintf("  RETIRE_CONNECTION_ID seq=%d", v.SequenceNumber)
	case *wire.PathChallengeFrame:
		return fmt.Sprintf("  PATH_CHALLENGE data=%x", v.Data)
	case *wire.PathResponseFrame:
		return fmt.Sprintf("  PATH_RESPONSE data=%x", v.Data)
	case *wire.CryptoFrame:
		return fmt.Sprintf("  CRYPTO offset=%d length=%d", v.Offset, v.Length())
	case *wire.StreamFrame:
		return fmt.Sprintf("  STREAM role=%d stream=%d offset=%d data_len=%d unbounded=%v", v.Role, v.StreamID, v.Offset, len(v.Data), v.Unbounded)
	case *wire.AckFrame:
		return fmt.Sprintf("  ACK largest=%d delay=%d ranges=%v ecn=%v", v.LargestAcked, v.AckDelay, v.Ranges, v.ECN)
	default:
		return fmt.Sprintf("  %#v", f)
	}
}
