package namecell

import "fmt"

// Point is a position in surface units
type Point struct {
	X, Y int
}

// Size is a width and height in surface units
type Size struct {
	W, H int
}

// Empty reports whether either dimension is not positive
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of r and o, or an empty rect
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.W, r.H)
}
