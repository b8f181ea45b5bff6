package display

import (
	"testing"

	"github.com/Venorrak/greenheatgd/internal/geom"
	"github.com/Venorrak/greenheatgd/internal/packet"
	"github.com/Venorrak/greenheatgd/internal/synth"
)

func event(kind packet.Kind, id string, x, y float64) *synth.Event {
	return &synth.Event{
		Kind:       kind,
		Position:   geom.Vec2{X: x, Y: y},
		Provenance: synth.Provenance{ID: id, Kind: kind},
	}
}

func TestHandleEvent_TracksSessions(t *testing.T) {
	o := NewOverlay(640, 480)

	if err := o.HandleEvent(event(packet.KindHover, "a", 10, 10)); err != nil {
		t.Fatalf("HandleEvent returned error: %v", err)
	}
	o.HandleEvent(event(packet.KindHover, "b", 20, 20))
	o.HandleEvent(event(packet.KindDrag, "a", 30, 30))

	if len(o.cursors) != 2 {
		t.Fatalf("expected 2 session cursors, got %d", len(o.cursors))
	}
	a := o.cursors["a"]
	if a.pos != (geom.Vec2{X: 30, Y: 30}) {
		t.Fatalf("expected session a at its latest position, got %+v", a.pos)
	}
	if !a.dragging {
		t.Fatalf("expected session a to be dragging")
	}
}

func TestUpdate_PrunesExpiredMarks(t *testing.T) {
	o := NewOverlay(640, 480)
	o.HandleEvent(event(packet.KindClick, "a", 5, 5))
	o.HandleEvent(event(packet.KindRelease, "a", 5, 5))

	if len(o.marks) != 2 {
		t.Fatalf("expected a mark per click and release, got %d", len(o.marks))
	}
	for i := 0; i < markLife; i++ {
		if err := o.Update(); err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
	}
	if len(o.marks) != 0 {
		t.Fatalf("expected marks to expire, %d left", len(o.marks))
	}
}
