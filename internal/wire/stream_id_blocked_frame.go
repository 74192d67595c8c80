package wire

import "github.com/callbay/gen-quic/internal/protocol"

// A StreamIDBlockedFrame is a STREAM_ID_BLOCKED frame.
type StreamIDBlockedFrame struct {
	StreamID protocol.StreamID
}

func (f *StreamIDBlockedFrame) Kind() FrameKind { return KindRegular }

func parseStreamIDBlockedFrame(b []byte) (*StreamIDBlockedFrame, int, error) {
	v, n, err := readVarint("stream_id_blocked", b)
	if err != nil {
		return nil, 0, err
	}
	return &StreamIDBlockedFrame{StreamID: protocol.StreamID(v)}, n, nil
}
