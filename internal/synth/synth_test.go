package synth

import (
	"testing"

	"github.com/Venorrak/greenheatgd/internal/geom"
	"github.com/Venorrak/greenheatgd/internal/packet"
)

func basePacket(kind packet.Kind) *packet.Packet {
	return &packet.Packet{
		Kind:    kind,
		ID:      "viewer-7",
		X:       0.5,
		Y:       0.5,
		Button:  packet.ButtonLeft,
		Ctrl:    true,
		Time:    99.5,
		Latency: 12,
	}
}

func TestSynthesize_Click(t *testing.T) {
	ev := Synthesize(basePacket(packet.KindClick), geom.Vec2{X: 640, Y: 360}, geom.Vec2{})
	if !ev.Pressed {
		t.Fatalf("expected click to be a press")
	}
	if ev.ButtonIndex != 1 || ev.ButtonMask != 1 {
		t.Fatalf("expected left button index 1 mask 1, got %d/%d", ev.ButtonIndex, ev.ButtonMask)
	}
	if ev.Position != (geom.Vec2{X: 640, Y: 360}) {
		t.Fatalf("expected mapped position to pass through, got %+v", ev.Position)
	}
	if !ev.Ctrl || ev.Alt || ev.Shift {
		t.Fatalf("expected modifier flags to carry over")
	}
}

func TestSynthesize_Release(t *testing.T) {
	pkt := basePacket(packet.KindRelease)
	pkt.Button = packet.ButtonMiddle
	ev := Synthesize(pkt, geom.Vec2{X: 10, Y: 10}, geom.Vec2{})
	if ev.Pressed {
		t.Fatalf("expected release to be a non-press")
	}
	if ev.ButtonIndex != 3 || ev.ButtonMask != 4 {
		t.Fatalf("expected middle button index 3 mask 4, got %d/%d", ev.ButtonIndex, ev.ButtonMask)
	}
}

func TestSynthesize_Hover(t *testing.T) {
	ev := Synthesize(basePacket(packet.KindHover), geom.Vec2{X: 20, Y: 30}, geom.Vec2{X: 2, Y: 3})
	if ev.Relative != (geom.Vec2{X: 2, Y: 3}) {
		t.Fatalf("expected tracker delta on hover, got %+v", ev.Relative)
	}
	if ev.ButtonMask != 0 || ev.ButtonIndex != 0 {
		t.Fatalf("expected hover mask cleared, got index %d mask %d", ev.ButtonIndex, ev.ButtonMask)
	}
	if ev.Pressure != 0 {
		t.Fatalf("expected zero pressure on hover, got %v", ev.Pressure)
	}
}

func TestSynthesize_Drag(t *testing.T) {
	ev := Synthesize(basePacket(packet.KindDrag), geom.Vec2{X: 20, Y: 30}, geom.Vec2{X: -4, Y: 1})
	if ev.Relative != (geom.Vec2{X: -4, Y: 1}) {
		t.Fatalf("expected tracker delta on drag, got %+v", ev.Relative)
	}
	if ev.ButtonMask != 1 {
		t.Fatalf("expected held-button mask on drag, got %d", ev.ButtonMask)
	}
	if ev.ButtonIndex != 0 {
		t.Fatalf("expected no button index on drag, got %d", ev.ButtonIndex)
	}
	if ev.Pressure != 1 {
		t.Fatalf("expected full pressure on drag, got %v", ev.Pressure)
	}
}

func TestSynthesize_ButtonlessClick(t *testing.T) {
	pkt := basePacket(packet.KindClick)
	pkt.Button = packet.ButtonNone
	ev := Synthesize(pkt, geom.Vec2{}, geom.Vec2{})
	if ev.ButtonIndex != 0 || ev.ButtonMask != 0 {
		t.Fatalf("expected buttonless click to leave index and mask unset, got %d/%d", ev.ButtonIndex, ev.ButtonMask)
	}
	if !ev.Pressed {
		t.Fatalf("expected buttonless click to still be a press")
	}
}

func TestSynthesize_Provenance(t *testing.T) {
	for _, kind := range []packet.Kind{packet.KindClick, packet.KindHover, packet.KindDrag, packet.KindRelease} {
		ev := Synthesize(basePacket(kind), geom.Vec2{}, geom.Vec2{})
		p := ev.Provenance
		if p.ID != "viewer-7" || p.Time != 99.5 || p.Latency != 12 || p.Kind != kind {
			t.Fatalf("%s: expected provenance to mirror the packet, got %+v", kind, p)
		}
	}
}
