package wire

// A PathChallengeFrame is a PATH_CHALLENGE frame: an 8-byte opaque
// nonce the recipient must echo back in a PathResponseFrame.
type PathChallengeFrame struct {
	Data [8]byte
}

func (f *PathChallengeFrame) Kind() FrameKind { return KindRegular }

func parsePathChallengeFrame(b []byte) (*PathChallengeFrame, int, error) {
	v, n, err := readUint64BE("path_challenge", b)
	if err != nil {
		return nil, 0, err
	}
	f := &PathChallengeFrame{}
	putUint64BE(f.Data[:], v)
	return f, n, nil
}

// A PathResponseFrame echoes a PathChallengeFrame's nonce.
type PathResponseFrame struct {
	Data [8]byte
}

func (f *PathResponseFrame) Kind() FrameKind { return KindRegular }

func parsePathResponseFrame(b []byte) (*PathResponseFrame, int, error) {
	v, n, err := readUint64BE("path_response", b)
	if err != nil {
		return nil, 0, err
	}
	f := &PathResponseFrame{}
	putUint64BE(f.Data[:], v)
	return f, n, nil
}

func putUint64BE(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}
