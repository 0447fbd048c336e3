package scene

// TileType is a single cell of a scene map.
type TileType uint8

const (
	Ground TileType = iota
	Road
	Wall
	Building
	Market
	Temple
	Tavern
	Garden
	Path
	Treehouse
	Shrine
	Rubble
)

// ID returns the identifier used in data files.
func (t TileType) ID() string {
	switch t {
	case Ground:
		return "ground"
	case Road:
		return "road"
	case Wall:
		return "wall"
	case Building:
		return "building"
	case Market:
		return "market"
	case Temple:
		return "temple"
	case Tavern:
		return "tavern"
	case Garden:
		return "garden"
	case Path:
		return "path"
	case Treehouse:
		return "treehouse"
	case Shrine:
		return "shrine"
	case Rubble:
		return "rubble"
	default:
		return "unknown"
	}
}

// IsWalkable returns true if the tile can be walked on.
func (t TileType) IsWalkable() bool {
	return t != Wall && t != Building && t != Treehouse
}

// IsFeature reports whether the tile is a named landmark.
func (t TileType) IsFeature() bool {
	return t == Market || t == Temple || t == Tavern || t == Shrine
}

// isOpen reports whether a feature or building may be placed on the tile.
func (t TileType) isOpen() bool {
	return t == Ground || t == Road || t == Path
}
