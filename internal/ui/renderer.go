package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfarer/internal/game"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/world"
)

// statusLines is the number of rows reserved below the map.
const statusLines = 2

// Renderer draws game views to the screen.
type Renderer struct {
	screen *Screen
	styles *gamedata.Styles
	tables *gamedata.SettlementTables
}

// NewRenderer creates a renderer. tables colours settlement markers by species.
func NewRenderer(screen *Screen, styles *gamedata.Styles, tables *gamedata.SettlementTables) *Renderer {
	return &Renderer{screen: screen, styles: styles, tables: tables}
}

// Render draws one frame for v.
func (r *Renderer) Render(v game.View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	mapHeight := max(h-statusLines, 0)

	switch v.Mode {
	case game.ModeOverworld:
		r.drawViewport(v, w, mapHeight)
	case game.ModeWorldMap:
		r.drawOverview(v, w, mapHeight)
	case game.ModeInsidePOI:
		r.drawScene(v, w, mapHeight)
	}
	r.drawStatus(v, h)

	r.screen.Show()
}

func (r *Renderer) drawViewport(v game.View, w, h int) {
	area := v.Viewport.Area
	ox, oy := centerOffset(area.Width, w), centerOffset(area.Height, h)

	for _, cell := range v.Viewport.Cells {
		def := r.styles.Unknown()
		if cell.InBounds && cell.Tile.Discovered {
			def = r.styles.Terrain(cell.Tile.Type)
		}
		r.put(ox+cell.Coord.X-area.X, oy+cell.Coord.Y-area.Y, def)
	}
	for _, l := range v.Landmarks {
		if area.Contains(l.Location) {
			r.put(ox+l.Location.X-area.X, oy+l.Location.Y-area.Y, r.landmarkStyle(l))
		}
	}
	r.putBold(ox+v.Position.X-area.X, oy+v.Position.Y-area.Y, r.styles.Player())
}

func (r *Renderer) drawOverview(v game.View, w, h int) {
	if v.Overview == nil || w <= 0 || h <= 0 {
		return
	}
	ov := *v.Overview
	step := overviewStep(ov.Area.Width, ov.Area.Height, w, h)
	cols, rows := ceilDiv(ov.Area.Width, step), ceilDiv(ov.Area.Height, step)
	ox, oy := centerOffset(cols, w), centerOffset(rows, h)

	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < cols; sx++ {
			def := r.styles.Unknown()
			if tile, ok := firstDiscovered(ov, world.C(ov.Area.X+sx*step, ov.Area.Y+sy*step), step); ok {
				def = r.styles.Terrain(tile.Type)
			}
			r.put(ox+sx, oy+sy, def)
		}
	}
	for _, l := range v.Landmarks {
		r.put(ox+(l.Location.X-ov.Area.X)/step, oy+(l.Location.Y-ov.Area.Y)/step, r.landmarkStyle(l))
	}
	r.putBold(ox+(v.Position.X-ov.Area.X)/step, oy+(v.Position.Y-ov.Area.Y)/step, r.styles.Player())
}

func (r *Renderer) drawScene(v game.View, w, h int) {
	sc := v.Scene
	if sc == nil {
		return
	}
	ox, oy := centerOffset(sc.Width, w), centerOffset(sc.Height, h)

	for y := 0; y < sc.Height; y++ {
		for x := 0; x < sc.Width; x++ {
			t, err := sc.TileAt(world.C(x, y))
			if err != nil {
				continue
			}
			if t.IsFeature() {
				r.putBold(ox+x, oy+y, r.styles.Scene(t.ID()))
				continue
			}
			r.put(ox+x, oy+y, r.styles.Scene(t.ID()))
		}
	}
	r.putBold(ox+v.Local.X, oy+v.Local.Y, r.styles.Player())
}

func (r *Renderer) drawStatus(v game.View, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, h-2, v.Message, style)
	r.screen.DrawText(0, h-1, statusLine(v), style.Foreground(tcell.ColorGray))
}

// statusLine summarises the view for the bottom row.
func statusLine(v game.View) string {
	explored := 0.0
	if v.Total > 0 {
		explored = 100 * float64(v.Discovered) / float64(v.Total)
	}
	switch v.Mode {
	case game.ModeWorldMap:
		return fmt.Sprintf("World map | %.1f%% explored | (M) Close", explored)
	case game.ModeInsidePOI:
		name := ""
		if v.Inside != nil {
			name = v.Inside.Name()
		}
		return fmt.Sprintf("%s | (%d,%d) | (Q) Leave", name, v.Local.X, v.Local.Y)
	default:
		return fmt.Sprintf("(%d,%d) %s | %.1f%% explored | (M) Map (Esc) Quit",
			v.Position.X, v.Position.Y, v.Terrain, explored)
	}
}

func (r *Renderer) landmarkStyle(l game.Landmark) gamedata.StyleDef {
	if r.tables != nil {
		if sp := r.tables.SpeciesByID(l.Species); sp != nil {
			return sp.Style()
		}
	}
	return gamedata.StyleDef{ID: l.Species, Glyph: "*", Color: "#FFFFFF"}
}

func (r *Renderer) put(x, y int, def gamedata.StyleDef) {
	r.screen.SetContent(x, y, def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor()))
}

func (r *Renderer) putBold(x, y int, def gamedata.StyleDef) {
	r.screen.SetContent(x, y, def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor()).Bold(true))
}

// overviewStep returns the smallest block size that fits a worldW x worldH
// grid into screenW x screenH cells.
func overviewStep(worldW, worldH, screenW, screenH int) int {
	if screenW <= 0 || screenH <= 0 {
		return max(worldW, worldH, 1)
	}
	return max(ceilDiv(worldW, screenW), ceilDiv(worldH, screenH), 1)
}

// firstDiscovered scans the step x step block at origin for a discovered tile.
func firstDiscovered(w world.Window, origin world.Coord, step int) (world.Tile, bool) {
	for dy := 0; dy < step; dy++ {
		for dx := 0; dx < step; dx++ {
			c := origin.Add(dx, dy)
			if !w.Area.Contains(c) {
				continue
			}
			if cell := w.At(c); cell.InBounds && cell.Tile.Discovered {
				return cell.Tile, true
			}
		}
	}
	return world.Tile{}, false
}

func centerOffset(content, available int) int {
	return max((available-content)/2, 0)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
