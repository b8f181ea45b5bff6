// Package packet defines the audience input wire format and its decoder.
package packet

// Kind classifies an inbound audience pointer message.
type Kind string

const (
	KindClick   Kind = "click"
	KindHover   Kind = "hover"
	KindDrag    Kind = "drag"
	KindRelease Kind = "release"
)

// Button identifies the mouse button named by a packet.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Index returns the local button index (left=1, right=2, middle=3),
// or 0 for ButtonNone.
func (b Button) Index() int {
	switch b {
	case ButtonLeft:
		return 1
	case ButtonRight:
		return 2
	case ButtonMiddle:
		return 3
	}
	return 0
}

// Mask returns the button's bit in a button mask, or 0 for ButtonNone.
func (b Button) Mask() int {
	if i := b.Index(); i > 0 {
		return 1 << (i - 1)
	}
	return 0
}

// Packet is one decoded audience pointer message. Coordinates are
// normalized to the remote overlay (0..1 on each axis) and are carried
// through unclamped.
type Packet struct {
	Kind    Kind
	ID      string // remote session identifier
	X       float64
	Y       float64
	Button  Button
	Alt     bool
	Ctrl    bool
	Shift   bool
	Time    float64 // remote-clock timestamp
	Latency float64 // estimated network delay
}
