// Package wire implements the draft-14 QUIC frame dispatcher, field
// decoders and frame assembler. ParseFrames is the only exported decoding
// entry point (LogFrame is a debug helper): given the decrypted payload of a single QUIC packet, it
// decodes the concatenated frame sequence into three ordered
// categories. The function is pure, synchronous and reentrant; it
// retains no process-wide state and performs no I/O.
package wire

// Frame is the common interface implemented by every decoded frame
// kind. PADDING frames are consumed silently by the dispatcher and
// never produce a Frame value.
type Frame interface {
	// Kind identifies which of the three output lists a frame belongs
	// to: regular, ack, or tls (crypto).
	Kind() FrameKind
}

// FrameKind categorises a decoded Frame for routing into one of the
// three DecodedFrames lists.
type FrameKind uint8

const (
	KindRegular FrameKind = iota
	KindAck
	KindCrypto
)

// DecodedFrames is the result of a successful ParseFrames call. The
// three lists are disjoint and each preserves wire order.
type DecodedFrames struct {
	Frames []Frame // regular data/control frames
	Acks   []*AckFrame
	TLS    []*CryptoFrame
}
