package wire

// A RetireConnectionIDFrame is a RETIRE_CONNECTION_ID frame.
type RetireConnectionIDFrame struct {
	SequenceNumber uint64
}

func (f *RetireConnectionIDFrame) Kind() FrameKind { return KindRegular }

func parseRetireConnectionIDFrame(b []byte) (*RetireConnectionIDFrame, int, error) {
	seq, n, err := readVarint("retire_conn_id", b)
	if err != nil {
		return nil, 0, err
	}
	return &RetireConnectionIDFrame{SequenceNumber: seq}, n, nil
}
