package world

// Rect is an axis-aligned rectangle of cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the rectangle
}

// Bounds returns a rectangle anchored at the origin.
func Bounds(width, height int) Rect {
	return Rect{Width: width, Height: height}
}

// Center returns the center coordinate of the rectangle.
func (r Rect) Center() Coord {
	return Coord{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.X && c.X < r.X+r.Width && c.Y >= r.Y && c.Y < r.Y+r.Height
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
