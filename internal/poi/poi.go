// Package poi places and looks up points of interest on the overworld.
package poi

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/wayfarer/internal/scene"
	"github.com/samdwyer/wayfarer/internal/terrain"
	"github.com/samdwyer/wayfarer/internal/world"
)

// ErrNotAPOI is returned when no point of interest is registered at a coordinate.
var ErrNotAPOI = errors.New("no point of interest at coordinate")

// namespace scopes the name-based POI identifiers.
var namespace = uuid.MustParse("6f1c2a4e-8d0b-4c1e-9a57-3b2d1e0f7c64")

// PointOfInterest is a fixed overworld location leading into a sub-scene.
type PointOfInterest struct {
	ID       uuid.UUID
	Location world.Coord
	Terrain  terrain.Type
	Scene    *scene.Scene
}

// Name returns the settlement name.
func (p *PointOfInterest) Name() string {
	return p.Scene.Descriptor.Name
}

// String returns a short label for logs.
func (p *PointOfInterest) String() string {
	return fmt.Sprintf("%s (%d,%d)", p.Name(), p.Location.X, p.Location.Y)
}

// poiID derives a stable identifier from the world seed and location.
func poiID(seed int64, c world.Coord) uuid.UUID {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:], uint64(seed))
	binary.BigEndian.PutUint64(buf[8:], uint64(int64(c.X)))
	binary.BigEndian.PutUint64(buf[16:], uint64(int64(c.Y)))
	return uuid.NewSHA1(namespace, buf[:])
}

// sceneSeed derives the seed of a POI's sub-scene.
func sceneSeed(seed int64, c world.Coord) int64 {
	id := poiID(seed, c)
	return int64(binary.BigEndian.Uint64(id[:8]))
}
