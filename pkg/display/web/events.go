package web

// Type is the first byte of every message sent to clients.
type Type = uint8

const (
	// Frame carries a full frame:
	//
	//	[Frame][flags][width uint16][height uint16][RGB pixels]
	Frame Type = iota
	// FrameRepeat tells clients the frame is unchanged since the
	// last one, it has no payload.
	FrameRepeat
	// Closing is sent when the server is shutting down.
	Closing = 255
)

// Flags describe how a Frame payload is encoded.
type Flags = uint8

const (
	// Compressed is set when the payload is brotli compressed.
	Compressed Flags = 1 << iota
)
