// Package app runs the interactive terminal session.
package app

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfarer/internal/game"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/ui"
)

// App connects the terminal to a game.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.Game
	keys     ui.KeyMap
	logger   *log.Logger
	running  bool
}

// New opens the terminal for g.
func New(g *game.Game, tables *gamedata.SettlementTables, logger *log.Logger) (*App, error) {
	styles, err := gamedata.LoadStyles()
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newApp(screen, styles, g, tables, logger), nil
}

func newApp(screen *ui.Screen, styles *gamedata.Styles, g *game.Game, tables *gamedata.SettlementTables, logger *log.Logger) *App {
	return &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles, tables),
		game:     g,
		keys:     ui.DefaultKeyMap(),
		logger:   logger,
		running:  true,
	}
}

// Run executes the main loop until the player quits or ctx is cancelled.
// Each key is fully applied before the next frame is drawn.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Close()

	// PollEvent blocks, so cancellation has to arrive as an event.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			if err := a.screen.Interrupt(); err != nil {
				a.logger.Debug("interrupt not delivered", "error", err)
			}
		case <-done:
		}
	}()

	for a.running && ctx.Err() == nil {
		a.renderer.Render(a.game.View())
		a.handleInput(ctx)
	}

	a.logger.Info("session ended",
		"seed", a.game.Config().World.Seed,
		"discovered", a.game.Grid().DiscoveredCount(),
		"total", a.game.Grid().Len(),
	)
	return nil
}

// handleInput processes a single input event.
func (a *App) handleInput(ctx context.Context) {
	switch ev := a.screen.PollEvent().(type) {
	case *tcell.EventKey:
		intent, quit := a.keys.Intent(ev)
		if quit {
			a.running = false
			return
		}
		if intent != game.IntentNone {
			a.game.Handle(ctx, intent)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		// Posted on cancellation; the loop condition ends the session.
	case nil:
		// Screen finalized.
		a.running = false
	}
}
