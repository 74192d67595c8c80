package wire

// A DataBlockedFrame is a DATA_BLOCKED frame.
type DataBlockedFrame struct {
	Offset uint64
}

func (f *DataBlockedFrame) Kind() FrameKind { return KindRegular }

func parseDataBlockedFrame(b []byte) (*DataBlockedFrame, int, error) {
	v, n, err := readVarint("data_blocked", b)
	if err != nil {
		return nil, 0, err
	}
	return &DataBlockedFrame{Offset: v}, n, nil
}
