// Package inject replays synthesized pointer events as real OS input, so
// the audience can drive whatever application is focused on the host.
package inject

import (
	"math"

	"github.com/go-vgo/robotgo"

	"github.com/Venorrak/greenheatgd/internal/packet"
	"github.com/Venorrak/greenheatgd/internal/synth"
)

var buttonNames = map[int]string{
	1: "left",
	2: "right",
	3: "middle",
}

// Robotgo dispatches events through the OS cursor. Hover and drag move the
// cursor, click presses the mapped button, release lets it go. Events with
// no button mapped only move.
type Robotgo struct{}

// Dispatch implements ingest.Sink.
func (Robotgo) Dispatch(ev *synth.Event) error {
	x := int(math.Round(ev.Position.X))
	y := int(math.Round(ev.Position.Y))
	robotgo.Move(x, y)

	name, ok := buttonNames[ev.ButtonIndex]
	if !ok {
		return nil
	}
	switch ev.Kind {
	case packet.KindClick:
		robotgo.MouseDown(name)
	case packet.KindRelease:
		robotgo.MouseUp(name)
	}
	return nil
}
