package wire

import "github.com/callbay/gen-quic/internal/protocol"

// A StreamDataBlockedFrame is a STREAM_DATA_BLOCKED frame.
type StreamDataBlockedFrame struct {
	StreamID protocol.StreamID
	Offset   uint64
}

func (f *StreamDataBlockedFrame) Kind() FrameKind { return KindRegular }

func (f *StreamDataBlockedFrame) StreamOwner() protocol.StreamOwner { return f.StreamID.Owner() }
func (f *StreamDataBlockedFrame) StreamType() protocol.StreamType   { return f.StreamID.Type() }

func parseStreamDataBlockedFrame(b []byte) (*StreamDataBlockedFrame, int, error) {
	const name = "stream_data_blocked"
	streamID, n1, err := readVarint(name, b)
	if err != nil {
		return nil, 0, err
	}
	offset, n2, err := readVarint(name, b[n1:])
	if err != nil {
		return nil, 0, err
	}
	return &StreamDataBlockedFrame{
		StreamID: protocol.StreamID(streamID),
		Offset:   offset,
	}, n1 + n2, nil
}
