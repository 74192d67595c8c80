package wire

import (
	"fmt"

	"github.com/callbay/gen-quic/qerr"
)

// ParseFrames decodes the concatenated frame sequence making up the
// decrypted payload of a single QUIC packet. It is all-or-nothing: on
// error no partial DecodedFrames is returned. On success every byte of
// payload was consumed by exactly one frame (PADDING bytes are
// consumed too, but produce no Frame value).
func ParseFrames(payload []byte) (*DecodedFrames, error) {
	out := &DecodedFrames{}
	b := payload

	for len(b) > 0 {
		typ := FrameType(b[0])
		rest := b[1:]

		if typ == PaddingFrameType {
			b = rest
			continue
		}

		frame, n, err := dispatch(typ, rest)
		if err != nil {
			return nil, err
		}
		b = rest[n:]

		switch f := frame.(type) {
		case *AckFrame:
			out.Acks = append(out.Acks, f)
		case *CryptoFrame:
			out.TLS = append(out.TLS, f)
		default:
			out.Frames = append(out.Frames, frame)
		}
	}

	return out, nil
}

// dispatch decodes the single frame whose type byte was typ from the
// bytes immediately following it, returning the decoded frame and the
// number of bytes of b it consumed.
func dispatch(typ FrameType, b []byte) (Frame, int, error) {
	if typ.IsStreamFrameType() {
		return parseStreamFrame(typ, b)
	}

	switch typ {
	case RstStreamFrameType:
		return parseRstStreamFrame(b)
	case ConnectionCloseFrameType:
		return parseConnectionCloseFrame(b)
	case ApplicationCloseFrameType:
		return parseApplicationCloseFrame(b)
	case MaxDataFrameType:
		return parseMaxDataFrame(b)
	case MaxStreamDataFrameType:
		return parseMaxStreamDataFrame(b)
	case MaxStreamIDFrameType:
		return parseMaxStreamIDFrame(b)
	case PingFrameType:
		return &PingFrame{}, 0, nil
	case DataBlockedFrameType:
		return parseDataBlockedFrame(b)
	case StreamDataBlockedFrameType:
		return parseStreamDataBlockedFrame(b)
	case StreamIDBlockedFrameType:
		return parseStreamIDBlockedFrame(b)
	case NewConnectionIDFrameType:
		return parseNewConnectionIDFrame(b)
	case StopSendingFrameType:
		return parseStopSendingFrame(b)
	case RetireConnectionIDFrameType:
		return parseRetireConnectionIDFrame(b)
	case PathChallengeFrameType:
		return parsePathChallengeFrame(b)
	case PathResponseFrameType:
		return parsePathResponseFrame(b)
	case CryptoFrameType:
		return parseCryptoFrame(b)
	case AckFrameType:
		return parseAckFrame(b, false)
	case AckECNFrameType:
		return parseAckFrame(b, true)
	default:
		return nil, 0, qerr.BadArgument("frame_type", fmt.Errorf("unknown frame type %#x", byte(typ)))
	}
}
