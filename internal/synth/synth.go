// Package synth builds locally-dispatchable pointer events from decoded
// audience packets.
package synth

import (
	"github.com/Venorrak/greenheatgd/internal/geom"
	"github.com/Venorrak/greenheatgd/internal/packet"
)

// Provenance identifies a synthesized event as remotely sourced and
// preserves the originating packet's semantic fields.
type Provenance struct {
	ID      string
	Time    float64
	Latency float64
	Kind    packet.Kind
}

// Event is one fully-populated synthetic pointer event. Button events
// carry Pressed/ButtonIndex/ButtonMask; motion events carry Relative and
// Pressure. Every event carries the mapped position, modifier flags and
// provenance.
type Event struct {
	Kind        packet.Kind
	Position    geom.Vec2
	Relative    geom.Vec2
	Pressed     bool
	ButtonIndex int
	ButtonMask  int
	Pressure    float64
	Alt         bool
	Ctrl        bool
	Shift       bool
	Provenance  Provenance
}

// Synthesize builds the pointer event for a decoded packet, its mapped
// local position and the tracker's motion delta. It is total over valid
// packets; the decoder has already rejected anything else.
func Synthesize(pkt *packet.Packet, pos, delta geom.Vec2) *Event {
	ev := &Event{
		Kind:     pkt.Kind,
		Position: pos,
		Alt:      pkt.Alt,
		Ctrl:     pkt.Ctrl,
		Shift:    pkt.Shift,
		Provenance: Provenance{
			ID:      pkt.ID,
			Time:    pkt.Time,
			Latency: pkt.Latency,
			Kind:    pkt.Kind,
		},
	}

	switch pkt.Kind {
	case packet.KindClick:
		ev.Pressed = true
		ev.ButtonIndex = pkt.Button.Index()
		ev.ButtonMask = pkt.Button.Mask()
	case packet.KindRelease:
		ev.Pressed = false
		ev.ButtonIndex = pkt.Button.Index()
		ev.ButtonMask = pkt.Button.Mask()
	case packet.KindHover:
		// Motion with no button held: mask cleared, zero pressure.
		ev.Relative = delta
		ev.Pressure = 0
	case packet.KindDrag:
		// Motion with the button held: mask only, no index.
		ev.Relative = delta
		ev.ButtonMask = pkt.Button.Mask()
		ev.Pressure = 1
	}

	return ev
}
