package wire

import (
	"github.com/callbay/gen-quic/internal/protocol"
	"github.com/callbay/gen-quic/qerr"
)

// A StopSendingFrame is a STOP_SENDING frame.
type StopSendingFrame struct {
	StreamID     protocol.StreamID
	AppErrorCode qerr.AppErrorCode
}

func (f *StopSendingFrame) Kind() FrameKind { return KindRegular }

func parseStopSendingFrame(b []byte) (*StopSendingFrame, int, error) {
	const name = "stop_sending"
	streamID, n1, err := readVarint(name, b)
	if err != nil {
		return nil, 0, err
	}
	errCode, n2, err := readUint16(name, b[n1:])
	if err != nil {
		return nil, 0, err
	}
	return &StopSendingFrame{
		StreamID:     protocol.StreamID(streamID),
		AppErrorCode: qerr.AppErrorCode(errCode),
	}, n1 + n2, nil
}
