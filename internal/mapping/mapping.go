// Package mapping projects normalized overlay coordinates into local pixel
// space.
package mapping

import "github.com/Venorrak/greenheatgd/internal/geom"

// Mapper converts normalized [0,1] coordinates into local pixels, either
// against the full viewport or against a configured sub-region.
type Mapper struct {
	Viewport geom.Vec2
	Region   *geom.Rect
}

// Map returns the local position for the given normalized coordinates.
// With a non-degenerate region set, (0,0) lands on the region's top-left
// corner and (1,1) on its bottom-right; otherwise the viewport plays that
// role. Values outside [0,1] extrapolate linearly; nothing is clamped.
func (m Mapper) Map(nx, ny float64) geom.Vec2 {
	n := geom.Vec2{X: nx, Y: ny}
	if m.Region != nil && !m.Region.Degenerate() {
		return m.Region.Pos.Add(n.Mul(m.Region.Size))
	}
	return n.Mul(m.Viewport)
}
