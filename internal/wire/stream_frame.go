package wire

import "github.com/callbay/gen-quic/internal/protocol"

// StreamFrameRole distinguishes the three stream-frame variants: a
// frame is stream_close when FIN is set, otherwise stream_open when its
// offset is zero (absent or explicitly 0) and it has an explicit length,
// and stream_data otherwise.
type StreamFrameRole uint8

const (
	StreamRoleData StreamFrameRole = iota
	StreamRoleOpen
	StreamRoleClose
)

// A StreamFrame carries application data for one stream. When the
// frame's LEN bit was unset on the wire, it consumes the remainder of
// the payload and Unbounded is true; such a frame is always the last
// one in the payload, since nothing is left to parse afterward.
type StreamFrame struct {
	Role      StreamFrameRole
	StreamID  protocol.StreamID
	Offset    uint64
	Data      []byte
	Unbounded bool
}

func (f *StreamFrame) Kind() FrameKind { return KindRegular }

func (f *StreamFrame) StreamOwner() protocol.StreamOwner { return f.StreamID.Owner() }
func (f *StreamFrame) StreamType() protocol.StreamType   { return f.StreamID.Type() }

func parseStreamFrame(typ FrameType, b []byte) (*StreamFrame, int, error) {
	const name = "stream"
	var consumed int

	streamID, n, err := readVarint(name, b)
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	var offset uint64
	if typ.hasOffset() {
		offset, n, err = readVarint(name, b[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n
	}

	var data []byte
	unbounded := !typ.hasLength()
	if typ.hasLength() {
		data, n, err = readMessage(name, b[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n
	} else {
		data = make([]byte, len(b)-consumed)
		copy(data, b[consumed:])
		consumed = len(b)
	}

	role := StreamRoleData
	switch {
	case typ.hasFin():
		role = StreamRoleClose
	case offset == 0 && typ.hasLength():
		role = StreamRoleOpen
	}

	return &StreamFrame{
		Role:      role,
		StreamID:  protocol.StreamID(streamID),
		Offset:    offset,
		Data:      data,
		Unbounded: unbounded,
	}, consumed, nil
}
