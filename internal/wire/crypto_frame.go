package wire

// A CryptoFrame carries TLS 1.3 handshake bytes over QUIC, routed
// separately from application data into the TLS output list.
type CryptoFrame struct {
	Offset uint64
	Data   []byte
}

func (f *CryptoFrame) Kind() FrameKind { return KindCrypto }

// Length is the number of bytes in Data.
func (f *CryptoFrame) Length() int { return len(f.Data) }

func parseCryptoFrame(b []byte) (*CryptoFrame, int, error) {
	const name = "crypto"
	offset, n1, err := readVarint(name, b)
	if err != nil {
		return nil, 0, err
	}
	data, n2, err := readMessage(name, b[n1:])
	if err != nil {
		return nil, 0, err
	}
	return &CryptoFrame{Offset: offset, Data: data}, n1 + n2, nil
}
