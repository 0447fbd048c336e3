package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/wayfarer/internal/game"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/world"
)

var flagReveal bool

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the generated world as glyphs",
	Long: `Generates the world for the current seed and config and prints it to
stdout, one glyph per tile. Settlements are marked by species and the spawn
point by the player glyph. With --reveal only tiles discovered at spawn are shown.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagReveal, "reveal", false, "Print only tiles discovered at spawn")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	env, err := setup(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer env.close(ctx)

	g, err := env.newGame(ctx)
	if err != nil {
		return err
	}
	styles, err := gamedata.LoadStyles()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, line := range previewLines(g, styles, env.tables, flagReveal) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\nSeed %d, %d settlements.\n", env.cfg.World.Seed, g.POIs().Len())
	return w.Flush()
}

// previewLines renders the whole overworld as one string per row.
func previewLines(g *game.Game, styles *gamedata.Styles, tables *gamedata.SettlementTables, revealOnly bool) []string {
	ov := g.Grid().Overview()
	markers := make(map[world.Coord]rune, g.POIs().Len()+1)
	for _, p := range g.POIs().All() {
		glyph := '*'
		if sp := tables.SpeciesByID(p.Scene.Descriptor.Species); sp != nil {
			glyph = sp.Style().GlyphRune()
		}
		markers[p.Location] = glyph
	}
	markers[g.Player().Position] = styles.Player().GlyphRune()

	lines := make([]string, 0, ov.Area.Height)
	row := make([]rune, 0, ov.Area.Width)
	for y := ov.Area.Y; y < ov.Area.Y+ov.Area.Height; y++ {
		row = row[:0]
		for x := ov.Area.X; x < ov.Area.X+ov.Area.Width; x++ {
			c := world.C(x, y)
			cell := ov.At(c)
			if revealOnly && !cell.Tile.Discovered {
				row = append(row, styles.Unknown().GlyphRune())
				continue
			}
			if m, ok := markers[c]; ok {
				row = append(row, m)
				continue
			}
			row = append(row, styles.Terrain(cell.Tile.Type).GlyphRune())
		}
		lines = append(lines, string(row))
	}
	return lines
}
