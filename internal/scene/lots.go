package scene

import "github.com/samdwyer/wayfarer/internal/world"

// lotNode represents a node in the BSP tree of building plots.
type lotNode struct {
	area        world.Rect
	left, right *lotNode
	vertical    bool // split direction: true means left/right halves
	split       int  // absolute x (vertical) or y (horizontal) of the right/bottom half
}

// isLeaf returns true if this node has no children.
func (n *lotNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a node until lots are too small to divide.
func (b *builder) splitNode(node *lotNode) {
	a := node.area
	canSplitW := a.Width >= minLeafSize*2
	canSplitH := a.Height >= minLeafSize*2

	switch {
	case canSplitW && (a.Width > a.Height || !canSplitH):
		node.vertical = true
	case canSplitH:
		node.vertical = false
	default:
		return
	}

	if node.vertical {
		pos := minLeafSize + b.rng.Intn(a.Width-2*minLeafSize+1)
		node.split = a.X + pos
		node.left = &lotNode{area: world.Rect{X: a.X, Y: a.Y, Width: pos, Height: a.Height}}
		node.right = &lotNode{area: world.Rect{X: a.X + pos, Y: a.Y, Width: a.Width - pos, Height: a.Height}}
	} else {
		pos := minLeafSize + b.rng.Intn(a.Height-2*minLeafSize+1)
		node.split = a.Y + pos
		node.left = &lotNode{area: world.Rect{X: a.X, Y: a.Y, Width: a.Width, Height: pos}}
		node.right = &lotNode{area: world.Rect{X: a.X, Y: a.Y + pos, Width: a.Width, Height: a.Height - pos}}
	}

	b.splitNode(node.left)
	b.splitNode(node.right)
}

// buildLots lays a road along every split line and raises a building (or a
// garden) inside every leaf, one tile in from the leaf edge.
func (b *builder) buildLots(node *lotNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		b.carveRoad(node)
		b.buildLots(node.left)
		b.buildLots(node.right)
		return
	}

	a := node.area
	maxW, maxH := a.Width-2, a.Height-2
	if maxW < 2 || maxH < 2 {
		return
	}
	w := 2 + b.rng.Intn(maxW-1)
	h := 2 + b.rng.Intn(maxH-1)
	lot := world.Rect{
		X:      a.X + 1 + b.rng.Intn(maxW-w+1),
		Y:      a.Y + 1 + b.rng.Intn(maxH-h+1),
		Width:  w,
		Height: h,
	}

	fill := Building
	if b.rng.Intn(5) == 0 {
		fill = Garden
	}
	for y := lot.Y; y < lot.Y+lot.Height; y++ {
		for x := lot.X; x < lot.X+lot.Width; x++ {
			b.scene.set(world.C(x, y), fill)
		}
	}
	b.scene.Lots = append(b.scene.Lots, lot)
}

// carveRoad paves the first row or column of the node's second half.
func (b *builder) carveRoad(node *lotNode) {
	a := node.area
	if node.vertical {
		for y := a.Y; y < a.Y+a.Height; y++ {
			b.scene.set(world.C(node.split, y), Road)
		}
		return
	}
	for x := a.X; x < a.X+a.Width; x++ {
		b.scene.set(world.C(x, node.split), Road)
	}
}

// placeFeatures puts the market, temple and tavern on open tiles near the centre.
func (b *builder) placeFeatures() {
	center := b.scene.Bounds().Center()
	for _, f := range []TileType{Market, Temple, Tavern} {
		target := center
		if f != Market {
			target = center.Add(b.rng.Intn(2*featureReach+1)-featureReach, b.rng.Intn(2*featureReach+1)-featureReach)
		}
		if p, ok := b.nearestOpen(target); ok {
			b.scene.set(p, f)
		}
	}
}

// nearestOpen finds the closest open tile to c.
func (b *builder) nearestOpen(c world.Coord) (world.Coord, bool) {
	s := b.scene
	for r := 0; r < max(s.Width, s.Height); r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				p := c.Add(dx, dy)
				if c.Chebyshev(p) != r || !s.Bounds().Contains(p) {
					continue
				}
				if s.get(p).isOpen() {
					return p, true
				}
			}
		}
	}
	return world.Coord{}, false
}
