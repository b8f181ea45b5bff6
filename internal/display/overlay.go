// Package display renders a demo surface showing the audience's pointers,
// standing in for the interactive application the pipeline normally feeds.
package display

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Venorrak/greenheatgd/internal/geom"
	"github.com/Venorrak/greenheatgd/internal/packet"
	"github.com/Venorrak/greenheatgd/internal/synth"
)

const (
	cursorRadius = 6
	markLife     = 30 // frames a click/release ring stays visible
)

var palette = []color.RGBA{
	{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	{R: 0x21, G: 0x96, B: 0xf3, A: 0xff},
	{R: 0xff, G: 0x98, B: 0x00, A: 0xff},
	{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff},
	{R: 0x9c, G: 0x27, B: 0xb0, A: 0xff},
	{R: 0x00, G: 0xbc, B: 0xd4, A: 0xff},
	{R: 0xff, G: 0xeb, B: 0x3b, A: 0xff},
	{R: 0x79, G: 0x55, B: 0x48, A: 0xff},
}

type remoteCursor struct {
	pos      geom.Vec2
	dragging bool
	col      color.RGBA
}

type mark struct {
	pos     geom.Vec2
	col     color.RGBA
	age     int
	release bool
}

// Overlay is an Ebitengine surface that draws one cursor per remote
// session plus fading rings for clicks and releases. Its HandleEvent
// method satisfies the ingestion loop's sink interface.
type Overlay struct {
	mu      sync.Mutex
	cursors map[string]*remoteCursor
	marks   []*mark

	screenW int
	screenH int
}

// NewOverlay creates an overlay with the given logical size.
func NewOverlay(w, h int) *Overlay {
	return &Overlay{
		cursors: make(map[string]*remoteCursor),
		screenW: w,
		screenH: h,
	}
}

// HandleEvent records a synthesized event for rendering. Called from the
// ingestion goroutine.
func (o *Overlay) HandleEvent(ev *synth.Event) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.cursors[ev.Provenance.ID]
	if !ok {
		c = &remoteCursor{col: sessionColor(ev.Provenance.ID)}
		o.cursors[ev.Provenance.ID] = c
	}
	c.pos = ev.Position

	switch ev.Kind {
	case packet.KindClick:
		c.dragging = true
		o.marks = append(o.marks, &mark{pos: ev.Position, col: c.col})
	case packet.KindRelease:
		c.dragging = false
		o.marks = append(o.marks, &mark{pos: ev.Position, col: c.col, release: true})
	case packet.KindDrag:
		c.dragging = true
	case packet.KindHover:
		c.dragging = false
	}
	return nil
}

// Run starts the Ebitengine game loop. Must be called from the main
// goroutine.
func (o *Overlay) Run() error {
	ebiten.SetWindowSize(o.screenW, o.screenH)
	ebiten.SetWindowTitle("greenheat overlay")
	return ebiten.RunGame(o)
}

// --- ebiten.Game interface ---

func (o *Overlay) Update() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	kept := o.marks[:0]
	for _, m := range o.marks {
		m.age++
		if m.age < markLife {
			kept = append(kept, m)
		}
	}
	o.marks = kept
	return nil
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.mu.Lock()
	defer o.mu.Unlock()

	screen.Fill(color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff})

	for _, m := range o.marks {
		r := float32(cursorRadius + m.age)
		col := m.col
		col.A = uint8(255 * (markLife - m.age) / markLife)
		width := float32(2)
		if m.release {
			width = 1
		}
		vector.StrokeCircle(screen, float32(m.pos.X), float32(m.pos.Y), r, width, col, true)
	}

	for id, c := range o.cursors {
		x, y := float32(c.pos.X), float32(c.pos.Y)
		vector.DrawFilledCircle(screen, x, y, cursorRadius, c.col, true)
		if c.dragging {
			vector.StrokeCircle(screen, x, y, cursorRadius+3, 1, c.col, true)
		}
		ebitenutil.DebugPrintAt(screen, shortID(id), int(c.pos.X)+cursorRadius+2, int(c.pos.Y)-cursorRadius)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("sessions: %d", len(o.cursors)))
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return o.screenW, o.screenH
}

func sessionColor(id string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(id))
	return palette[h.Sum32()%uint32(len(palette))]
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
