package wire

import (
	"fmt"

	"github.com/callbay/gen-quic/internal/protocol"
	"github.com/callbay/gen-quic/qerr"
)

// ECNCounts are the three ECN marking counters attached to the ECN
// variant of an ACK frame, in their wire order.
type ECNCounts struct {
	ECT0  uint64
	ECT1  uint64
	ECNCE uint64
}

// An AckFrame is an ACK frame. Ranges is in ascending order (the
// smallest range first); within a frame the ranges are pairwise
// disjoint, each satisfying 0 <= Smallest <= Largest <= LargestAcked.
type AckFrame struct {
	LargestAcked uint64
	AckDelay     uint64
	Ranges       []AckRange
	ECN          *ECNCounts
}

func (f *AckFrame) Kind() FrameKind { return KindAck }

// parseAckFrame decodes an ACK frame's body (the bytes after the type
// byte). ecn selects the 0x1b wire variant that carries three trailing
// ECN counters.
func parseAckFrame(b []byte, ecn bool) (*AckFrame, int, error) {
	const name = "ack"
	var consumed int

	largest, n, err := readVarint(name, b)
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	delay, n, err := readVarint(name, b[consumed:])
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	blockCount, n, err := readVarint(name, b[consumed:])
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	firstRange, n, err := readVarint(name, b[consumed:])
	if err != nil {
		return nil, 0, err
	}
	consumed += n

	largestPN := protocol.PacketNumber(largest)
	p := largestPN
	lo := p - protocol.PacketNumber(firstRange)
	if p < 0 || lo < 0 {
		return nil, 0, qerr.FrameFormat(name, errNegativeAckBound)
	}

	// blockCount is an attacker-controlled varint; each gap/range pair
	// needs at least two more bytes, so anything claiming more pairs
	// than the remaining bytes could possibly hold is already
	// truncated. Reject it here, before it can be used to size an
	// allocation.
	if blockCount > uint64(len(b)-consumed)/2 {
		return nil, 0, qerr.BadArgument(name, errTruncated)
	}

	// Ranges are reconstructed from largest to smallest; descending is
	// reversed into the externally-observable ascending order at the end.
	descending := make([]AckRange, 1, blockCount+1)
	descending[0] = AckRange{Smallest: lo, Largest: p}
	prevSmallest := lo

	for i := uint64(0); i < blockCount; i++ {
		gap, n, err := readVarint(name, b[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n

		ackRange, n, err := readVarint(name, b[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n

		pi := prevSmallest - protocol.PacketNumber(gap) - 2
		loI := pi - protocol.PacketNumber(ackRange)
		if pi < 0 || loI < 0 {
			return nil, 0, qerr.FrameFormat(name, errNegativeAckBound)
		}

		descending = append(descending, AckRange{Smallest: loI, Largest: pi})
		prevSmallest = loI
	}

	ranges := make([]AckRange, len(descending))
	for i, r := range descending {
		ranges[len(descending)-1-i] = r
	}

	var ecnCounts *ECNCounts
	if ecn {
		ect0, n, err := readVarint(name, b[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n

		ect1, n, err := readVarint(name, b[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n

		ecnce, n, err := readVarint(name, b[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n

		ecnCounts = &ECNCounts{ECT0: ect0, ECT1: ect1, ECNCE: ecnce}
	}

	return &AckFrame{
		LargestAcked: largest,
		AckDelay:     delay,
		Ranges:       ranges,
		ECN:          ecnCounts,
	}, consumed, nil
}

var errNegativeAckBound = fmt.Errorf("ack range reconstruction produced a negative packet number")
