package world

// Cell is a read-only copy of one grid position for rendering.
type Cell struct {
	Coord    Coord
	Tile     Tile
	InBounds bool
}

// Window is a rectangular snapshot of the grid. Cells are stored row-major.
type Window struct {
	Area  Rect
	Cells []Cell
}

// At returns the cell at c, which must lie inside the window area.
func (w Window) At(c Coord) Cell {
	return w.Cells[(c.Y-w.Area.Y)*w.Area.Width+(c.X-w.Area.X)]
}

// Window copies the square of the given radius around center. Positions
// outside the world are included with InBounds false. The radius is capped at
// the larger world edge, past which every further ring is out of bounds.
func (g *Grid) Window(center Coord, radius int) Window {
	radius = min(max(radius, 0), max(g.bounds.Width, g.bounds.Height))
	size := 2*radius + 1
	return g.snapshot(Rect{X: center.X - radius, Y: center.Y - radius, Width: size, Height: size})
}

// Overview copies the whole grid.
func (g *Grid) Overview() Window {
	return g.snapshot(g.bounds)
}

func (g *Grid) snapshot(area Rect) Window {
	w := Window{Area: area, Cells: make([]Cell, 0, max(area.Area(), 0))}
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			c := Coord{X: x, Y: y}
			cell := Cell{Coord: c}
			if g.InBounds(c) {
				i := g.index(c)
				cell.InBounds = true
				cell.Tile = Tile{Type: g.types[i], Discovered: g.discovered[i]}
			}
			w.Cells = append(w.Cells, cell)
		}
	}
	return w
}
