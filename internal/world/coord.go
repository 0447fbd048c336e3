package world

// Coord identifies a grid cell.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Chebyshev returns the chessboard distance between two coordinates.
func (c Coord) Chebyshev(o Coord) int {
	return max(abs(c.X-o.X), abs(c.Y-o.Y))
}

// DistSq returns the squared Euclidean distance between two coordinates.
func (c Coord) DistSq(o Coord) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx*dx + dy*dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
