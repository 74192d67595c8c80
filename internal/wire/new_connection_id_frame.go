package wire

import "github.com/callbay/gen-quic/qerr"

// A NewConnectionIDFrame is a NEW_CONNECTION_ID frame.
type NewConnectionIDFrame struct {
	Sequence            uint64
	ConnectionID        []byte
	StatelessResetToken [16]byte
}

func (f *NewConnectionIDFrame) Kind() FrameKind { return KindRegular }

func parseNewConnectionIDFrame(b []byte) (*NewConnectionIDFrame, int, error) {
	const name = "new_conn_id"

	if len(b) < 1 {
		return nil, 0, qerr.BadArgument(name, errTruncated)
	}
	// low 5 bits are the connection-ID length; the top 3 bits are
	// reserved and ignored on read.
	cidLen := int(b[0] & 0x1f)
	consumed := 1

	seq, n, err := readVarint(name, b[consumed:])
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	cid, n, err := readBytes(name, b[consumed:], cidLen)
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	token, n, err := readBytes(name, b[consumed:], 16)
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	f := &NewConnectionIDFrame{Sequence: seq, ConnectionID: cid}
	copy(f.StatelessResetToken[:], token)
	return f, consumed, nil
}
