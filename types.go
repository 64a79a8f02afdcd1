package textinput

// Vec2 represents a 2D point or size in surface pixels.
type Vec2 struct {
	X, Y float32
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains reports whether p lies inside the rectangle.
// All four edges are inclusive, so a point on the right or bottom border
// still counts as a hit.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// clampi clamps an int to [lo, hi].
func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
