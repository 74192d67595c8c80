package wire

import "github.com/callbay/gen-quic/internal/protocol"

// A MaxStreamDataFrame is a MAX_STREAM_DATA frame. StreamOwner and
// StreamType are derived from StreamID, never stored independently.
type MaxStreamDataFrame struct {
	StreamID       protocol.StreamID
	MaxStreamData  uint64
}

func (f *MaxStreamDataFrame) Kind() FrameKind { return KindRegular }

func (f *MaxStreamDataFrame) StreamOwner() protocol.StreamOwner { return f.StreamID.Owner() }
func (f *MaxStreamDataFrame) StreamType() protocol.StreamType   { return f.StreamID.Type() }

func parseMaxStreamDataFrame(b []byte) (*MaxStreamDataFrame, int, error) {
	const name = "max_stream_data"
	streamID, n1, err := readVarint(name, b)
	if err != nil {
		return nil, 0, err
	}
	value, n2, err := readVarint(name, b[n1:])
	if err != nil {
		return nil, 0, err
	}
	return &MaxStreamDataFrame{
		StreamID:      protocol.StreamID(streamID),
		MaxStreamData: value,
	}, n1 + n2, nil
}
