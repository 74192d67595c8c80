package wire

// A PingFrame carries no fields; its presence alone is the signal.
type PingFrame struct{}

func (f *PingFrame) Kind() FrameKind { return KindRegular }
