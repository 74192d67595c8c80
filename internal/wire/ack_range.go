package wire

import "github.com/callbay/gen-quic/internal/protocol"

// An AckRange is an inclusive, ascending packet-number interval
// reconstructed from the wire's differential gap encoding.
type AckRange struct {
	Smallest protocol.PacketNumber
	Largest  protocol.PacketNumber
}
