package wire

import (
	"fmt"

	"github.com/callbay/gen-quic/internal/utils"
)

// LogFrame writes a one-line debug trace of a decoded frame, gated by
// the ambient log level. The decode path itself performs no logging;
// this exists for the cmd/quicframedump front end and for tests that
// want visibility into a parse.
func LogFrame(frame Frame) {
	if !utils.Debug() {
		return
	}
	switch f := frame.(type) {
	case *PingFrame:
		utils.Debugf("PingFrame")
	case *RstStreamFrame:
		utils.Debugf("RstStreamFrame stream_id=%d app_error_code=%s final_offset=%d", f.StreamID, f.AppErrorCode, f.FinalOffset)
	case *ConnectionCloseFrame:
		utils.Debugf("ConnectionCloseFrame error_code=%s message=%q", f.ErrorCode, f.ErrorMessage)
	case *ApplicationCloseFrame:
		utils.Debugf("ApplicationCloseFrame app_error_code=%s message=%q", f.AppErrorCode, f.ErrorMessage)
	case *MaxDataFrame:
		utils.Debugf("MaxDataFrame max_data=%d", f.MaxData)
	case *MaxStreamDataFrame:
		utils.Debugf("MaxStreamDataFrame stream_id=%d max_stream_data=%d", f.StreamID, f.MaxStreamData)
	case *MaxStreamIDFrame:
		utils.Debugf("MaxStreamIDFrame max_stream_id=%d", f.MaxStreamID)
	case *DataBlockedFrame:
		utils.Debugf("DataBlockedFrame offset=%d", f.Offset)
	case *StreamDataBlockedFrame:
		utils.Debugf("StreamDataBlockedFrame stream_id=%d offset=%d", f.StreamID, f.Offset)
	case *StreamIDBlockedFrame:
		utils.Debugf("StreamIDBlockedFrame stream_id=%d", f.StreamID)
	case *NewConnectionIDFrame:
		utils.Debugf("NewConnectionIDFrame seq=%d conn_id=%#x token=%#x", f.Sequence, f.ConnectionID, f.StatelessResetToken)
	case *StopSendingFrame:
		utils.Debugf("StopSendingFrame stream_id=%d app_error_code=%s", f.StreamID, f.AppErrorCode)
	case *RetireConnectionIDFrame:
		utils.Debugf("RetireConnectionIDFrame seq=%d", f.SequenceNumber)
	case *PathChallengeFrame:
		utils.Debugf("PathChallengeFrame data=%#x", f.Data)
	case *PathResponseFrame:
		utils.Debugf("PathResponseFrame data=%#x", f.Data)
	case *CryptoFrame:
		utils.Debugf("CryptoFrame offset=%d length=%d", f.Offset, f.Length())
	case *StreamFrame:
		utils.Debugf("StreamFrame role=%d stream_id=%d offset=%d data_len=%d", f.Role, f.StreamID, f.Offset, len(f.Data))
	case *AckFrame:
		utils.Debugf("AckFrame largest_acked=%d delay=%d ranges=%d ecn=%v", f.LargestAcked, f.AckDelay, len(f.Ranges), f.ECN != nil)
	default:
		utils.Debugf("Frame %s", fmt.Sprintf("%#v", frame))
	}
}
