package main

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/samdwyer/wayfarer/internal/config"
	"github.com/samdwyer/wayfarer/internal/game"
	"github.com/samdwyer/wayfarer/internal/gamedata"
)

func TestPreviewLines(t *testing.T) {
	cfg := config.Default()
	cfg.World.Seed = 42
	cfg.World.Width = 30
	cfg.World.Height = 20
	cfg.Noise.Scale = 8
	cfg.POI.Count = 3
	cfg.POI.MinDistance = 5

	tables, err := gamedata.LoadSettlementTables()
	if err != nil {
		t.Fatalf("LoadSettlementTables() error = %v", err)
	}
	styles, err := gamedata.LoadStyles()
	if err != nil {
		t.Fatalf("LoadStyles() error = %v", err)
	}
	g, err := game.New(context.Background(), cfg, game.WithTables(tables))
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}

	lines := previewLines(g, styles, tables, false)
	if len(lines) != cfg.World.Height {
		t.Fatalf("len(previewLines()) = %d, want %d", len(lines), cfg.World.Height)
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != cfg.World.Width {
			t.Errorf("line %d has %d glyphs, want %d", i, n, cfg.World.Width)
		}
	}

	spawn := g.Player().Position
	if got := []rune(lines[spawn.Y])[spawn.X]; got != styles.Player().GlyphRune() {
		t.Errorf("glyph at spawn = %q, want %q", got, styles.Player().GlyphRune())
	}

	revealed := strings.Join(previewLines(g, styles, tables, true), "")
	unknown := strings.Count(revealed, string(styles.Unknown().GlyphRune()))
	if want := g.Grid().Len() - g.Grid().DiscoveredCount(); unknown < want {
		t.Errorf("unknown glyphs with --reveal = %d, want at least %d", unknown, want)
	}
}
