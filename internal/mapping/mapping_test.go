package mapping

import (
	"testing"

	"github.com/Venorrak/greenheatgd/internal/geom"
)

func TestMap_ViewportCorners(t *testing.T) {
	m := Mapper{Viewport: geom.Vec2{X: 1280, Y: 720}}

	if got := m.Map(0, 0); got != (geom.Vec2{}) {
		t.Fatalf("expected (0,0) to map to the origin, got %+v", got)
	}
	if got := m.Map(1, 1); got != (geom.Vec2{X: 1280, Y: 720}) {
		t.Fatalf("expected (1,1) to map to the far corner, got %+v", got)
	}
	if got := m.Map(0.5, 0.5); got != (geom.Vec2{X: 640, Y: 360}) {
		t.Fatalf("expected the center, got %+v", got)
	}
}

func TestMap_Region(t *testing.T) {
	region := &geom.Rect{
		Pos:  geom.Vec2{X: 100, Y: 50},
		Size: geom.Vec2{X: 200, Y: 400},
	}
	m := Mapper{Viewport: geom.Vec2{X: 1280, Y: 720}, Region: region}

	if got := m.Map(0, 0); got != region.Pos {
		t.Fatalf("expected (0,0) on the region's top-left, got %+v", got)
	}
	if got := m.Map(1, 1); got != (geom.Vec2{X: 300, Y: 450}) {
		t.Fatalf("expected (1,1) on the region's bottom-right, got %+v", got)
	}
}

func TestMap_DegenerateRegionFallsBack(t *testing.T) {
	m := Mapper{
		Viewport: geom.Vec2{X: 1000, Y: 500},
		Region:   &geom.Rect{Pos: geom.Vec2{X: 10, Y: 10}},
	}
	if got := m.Map(1, 1); got != (geom.Vec2{X: 1000, Y: 500}) {
		t.Fatalf("expected zero-size region to fall back to the viewport, got %+v", got)
	}
}

func TestMap_NoClamping(t *testing.T) {
	m := Mapper{Viewport: geom.Vec2{X: 100, Y: 100}}
	if got := m.Map(1.5, -0.5); got != (geom.Vec2{X: 150, Y: -50}) {
		t.Fatalf("expected linear extrapolation outside [0,1], got %+v", got)
	}
}

func TestMap_Deterministic(t *testing.T) {
	m := Mapper{
		Viewport: geom.Vec2{X: 1280, Y: 720},
		Region:   &geom.Rect{Pos: geom.Vec2{X: 5, Y: 5}, Size: geom.Vec2{X: 50, Y: 50}},
	}
	first := m.Map(0.3, 0.7)
	second := m.Map(0.3, 0.7)
	if first != second {
		t.Fatalf("expected repeated mapping to agree, got %+v then %+v", first, second)
	}
}
