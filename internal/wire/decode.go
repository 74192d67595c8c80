package wire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/callbay/gen-quic/internal/utils"
	"github.com/callbay/gen-quic/qerr"
	"github.com/callbay/gen-quic/quicvarint"
)

var errTruncated = errors.New("truncated frame")

func errUnknownErrorCode(wire uint16) error {
	return fmt.Errorf("unrecognised connection error code %d", wire)
}

// readVarint decodes a varint from the front of b, translating the
// low-level io errors quicvarint reports into the frame's badarg error.
func readVarint(frame string, b []byte) (uint64, int, error) {
	v, n, err := quicvarint.Parse(b)
	if err != nil {
		return 0, 0, qerr.BadArgument(frame, errTruncated)
	}
	return v, n, nil
}

// readUint16 reads a 16-bit big-endian value, used for error codes.
func readUint16(frame string, b []byte) (uint16, int, error) {
	if len(b) < 2 {
		return 0, 0, qerr.BadArgument(frame, errTruncated)
	}
	v, err := utils.BigEndian.ReadUint16(bytes.NewReader(b[:2]))
	if err != nil {
		return 0, 0, qerr.BadArgument(frame, errTruncated)
	}
	return v, 2, nil
}

// readUint64BE reads a fixed 8-byte big-endian value, used for the
// PATH_CHALLENGE/PATH_RESPONSE opaque nonce.
func readUint64BE(frame string, b []byte) (uint64, int, error) {
	if len(b) < 8 {
		return 0, 0, qerr.BadArgument(frame, errTruncated)
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v, 8, nil
}

// readBytes reads exactly n bytes verbatim (used for connection IDs and
// the stateless reset token).
func readBytes(frame string, b []byte, n int) ([]byte, int, error) {
	if len(b) < n {
		return nil, 0, qerr.BadArgument(frame, errTruncated)
	}
	out, err := utils.BigEndian.ReadBytes(bytes.NewReader(b[:n]), n)
	if err != nil {
		return nil, 0, qerr.BadArgument(frame, errTruncated)
	}
	return out, n, nil
}

// readMessage reads a varint length followed by exactly that many
// bytes (the length-prefixed message encoding shared by several
// frame kinds).
func readMessage(frame string, b []byte) ([]byte, int, error) {
	length, n, err := readVarint(frame, b)
	if err != nil {
		return nil, 0, err
	}
	if uint64(len(b)-n) < length {
		return nil, 0, qerr.BadArgument(frame, fmt.Errorf("message length %d exceeds remaining payload", length))
	}
	body := make([]byte, length)
	copy(body, b[n:n+int(length)])
	return body, n + int(length), nil
}
