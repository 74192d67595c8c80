package wire

import (
	"github.com/callbay/gen-quic/internal/protocol"
	"github.com/callbay/gen-quic/qerr"
)

// A RstStreamFrame is a RST_STREAM frame.
type RstStreamFrame struct {
	StreamID     protocol.StreamID
	AppErrorCode qerr.AppErrorCode
	FinalOffset  uint64
}

func (f *RstStreamFrame) Kind() FrameKind { return KindRegular }

func parseRstStreamFrame(b []byte) (*RstStreamFrame, int, error) {
	const name = "rst_stream"
	var consumed int

	streamID, n, err := readVarint(name, b)
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	errCode, n, err := readUint16(name, b[consumed:])
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	finalOffset, n, err := readVarint(name, b[consumed:])
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	return &RstStreamFrame{
		StreamID:     protocol.StreamID(streamID),
		AppErrorCode: qerr.AppErrorCode(errCode),
		FinalOffset:  finalOffset,
	}, consumed, nil
}
