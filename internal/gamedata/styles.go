package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfarer/internal/terrain"
)

// StyleDef defines how a tile is drawn, loaded from JSON.
type StyleDef struct {
	ID    string `json:"id"`    // Tile identifier (e.g., "forest")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "♣")
	Color string `json:"color"` // Hex color code (e.g., "#2E8B3A")
}

// GlyphRune returns the glyph as a rune for rendering.
func (s StyleDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the color as a tcell.Color.
func (s StyleDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// StylesFile represents the structure of styles.json.
type StylesFile struct {
	Player  StyleDef   `json:"player"`
	Unknown StyleDef   `json:"unknown"`
	Terrain []StyleDef `json:"terrain"`
	Scene   []StyleDef `json:"scene"`
}

// Styles holds glyph and colour lookups for every drawable tile.
type Styles struct {
	player  StyleDef
	unknown StyleDef
	terrain map[string]StyleDef
	scene   map[string]StyleDef
}

// LoadStyles loads tile styles from the embedded styles.json file.
func LoadStyles() (*Styles, error) {
	file, err := Load[StylesFile]("styles.json")
	if err != nil {
		return nil, err
	}

	s := &Styles{
		player:  file.Player,
		unknown: file.Unknown,
		terrain: make(map[string]StyleDef, len(file.Terrain)),
		scene:   make(map[string]StyleDef, len(file.Scene)),
	}
	for _, def := range file.Terrain {
		s.terrain[def.ID] = def
	}
	for _, def := range file.Scene {
		s.scene[def.ID] = def
	}
	return s, nil
}

// Player returns the player marker style.
func (s *Styles) Player() StyleDef {
	return s.player
}

// Unknown returns the style for undiscovered or out-of-bounds cells.
func (s *Styles) Unknown() StyleDef {
	return s.unknown
}

// Terrain returns the style for an overworld terrain type.
func (s *Styles) Terrain(t terrain.Type) StyleDef {
	if def, ok := s.terrain[t.ID()]; ok {
		return def
	}
	return StyleDef{ID: t.ID(), Glyph: "?", Color: "#FFFFFF"}
}

// Scene returns the style for a sub-scene tile identifier.
func (s *Styles) Scene(id string) StyleDef {
	if def, ok := s.scene[id]; ok {
		return def
	}
	return StyleDef{ID: id, Glyph: "?", Color: "#FFFFFF"}
}
