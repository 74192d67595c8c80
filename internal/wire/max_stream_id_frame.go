package wire

// A MaxStreamIDFrame is a MAX_STREAM_ID frame.
type MaxStreamIDFrame struct {
	MaxStreamID uint64
}

func (f *MaxStreamIDFrame) Kind() FrameKind { return KindRegular }

func parseMaxStreamIDFrame(b []byte) (*MaxStreamIDFrame, int, error) {
	v, n, err := readVarint("max_stream_id", b)
	if err != nil {
		return nil, 0, err
	}
	return &MaxStreamIDFrame{MaxStreamID: v}, n, nil
}
