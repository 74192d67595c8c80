package wire

// FrameType is the first octet of a frame, or (for STREAM frames) the
// 4-bit type nibble combined with its flag bits. The numeric values
// below match the draft-14 QUIC wire format exactly; any deviation
// breaks interoperability.
type FrameType uint8

const (
	PaddingFrameType             FrameType = 0x00
	RstStreamFrameType           FrameType = 0x01
	ConnectionCloseFrameType     FrameType = 0x02
	ApplicationCloseFrameType    FrameType = 0x03
	MaxDataFrameType             FrameType = 0x04
	MaxStreamDataFrameType       FrameType = 0x05
	MaxStreamIDFrameType         FrameType = 0x06
	PingFrameType                FrameType = 0x07
	DataBlockedFrameType         FrameType = 0x08
	StreamDataBlockedFrameType   FrameType = 0x09
	StreamIDBlockedFrameType     FrameType = 0x0a
	NewConnectionIDFrameType     FrameType = 0x0b
	StopSendingFrameType         FrameType = 0x0c
	RetireConnectionIDFrameType  FrameType = 0x0d
	PathChallengeFrameType       FrameType = 0x0e
	PathResponseFrameType        FrameType = 0x0f

	// streamFrameTypeMin/Max bound the STREAM frame range 0x10..0x17:
	// top 4 bits 0001, one reserved bit, then OFF/LEN/FIN flags.
	streamFrameTypeMin FrameType = 0x10
	streamFrameTypeMax FrameType = 0x17

	CryptoFrameType FrameType = 0x18
	AckFrameType    FrameType = 0x1a
	AckECNFrameType FrameType = 0x1b
)

// stream frame flag bits within a 0x10..0x17 type byte.
const (
	streamFlagOff FrameType = 0x04
	streamFlagLen FrameType = 0x02
	streamFlagFin FrameType = 0x01
)

// IsStreamFrameType reports whether t is one of the eight STREAM frame
// type bytes.
func (t FrameType) IsStreamFrameType() bool {
	return t >= streamFrameTypeMin && t <= streamFrameTypeMax
}

func (t FrameType) hasOffset() bool { return t&streamFlagOff != 0 }
func (t FrameType) hasLength() bool { return t&streamFlagLen != 0 }
func (t FrameType) hasFin() bool    { return t&streamFlagFin != 0 }
