// Package geom provides the small float64 vector and rectangle types the
// pointer pipeline works in.
package geom

// Vec2 is a 2D point or offset in local pixel space.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o component-wise.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o component-wise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v * o component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Rect is an axis-aligned rectangle in local pixel space.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// Degenerate reports whether the rectangle has no usable area.
func (r Rect) Degenerate() bool {
	return r.Size.X == 0 || r.Size.Y == 0
}
