package wire

// A MaxDataFrame is a MAX_DATA frame.
type MaxDataFrame struct {
	MaxData uint64
}

func (f *MaxDataFrame) Kind() FrameKind { return KindRegular }

func parseMaxDataFrame(b []byte) (*MaxDataFrame, int, error) {
	v, n, err := readVarint("max_data", b)
	if err != nil {
		return nil, 0, err
	}
	return &MaxDataFrame{MaxData: v}, n, nil
}
