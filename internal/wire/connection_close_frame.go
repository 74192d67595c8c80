package wire

import "github.com/callbay/gen-quic/qerr"

// A ConnectionCloseFrame is a CONNECTION_CLOSE frame. ErrorCode is the
// semantic mapping of the wire error code; an unrecognised wire value
// outside the named constants and the [100,123] FRAME_ERROR band is a
// badarg, not a silently-accepted opaque value.
type ConnectionCloseFrame struct {
	ErrorCode    qerr.TransportErrorCode
	ErrorMessage []byte
}

func (f *ConnectionCloseFrame) Kind() FrameKind { return KindRegular }

func parseConnectionCloseFrame(b []byte) (*ConnectionCloseFrame, int, error) {
	const name = "conn_close"
	var consumed int

	wire, n, err := readUint16(name, b)
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	code, ok := qerr.ParseTransportErrorCode(wire)
	if !ok {
		return nil, 0, qerr.BadArgument(name, errUnknownErrorCode(wire))
	}

	msg, n, err := readMessage(name, b[consumed:])
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	return &ConnectionCloseFrame{ErrorCode: code, ErrorMessage: msg}, consumed, nil
}

// An ApplicationCloseFrame is an APPLICATION_CLOSE frame. Its error
// code is opaque to the transport layer, so it is carried through
// unmapped.
type ApplicationCloseFrame struct {
	AppErrorCode qerr.AppErrorCode
	ErrorMessage []byte
}

func (f *ApplicationCloseFrame) Kind() FrameKind { return KindRegular }

func parseApplicationCloseFrame(b []byte) (*ApplicationCloseFrame, int, error) {
	const name = "app_close"
	var consumed int

	wire, n, err := readUint16(name, b)
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	msg, n, err := readMessage(name, b[consumed:])
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	return &ApplicationCloseFrame{AppErrorCode: qerr.AppErrorCode(wire), ErrorMessage: msg}, consumed, nil
}
