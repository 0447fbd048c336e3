package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/samdwyer/wayfarer/internal/config"
	"github.com/samdwyer/wayfarer/internal/game"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/telemetry"
)

// environment is everything a command needs before it builds a world.
type environment struct {
	cfg      config.Config
	logger   *log.Logger
	tables   *gamedata.SettlementTables
	logFile  *os.File
	shutdown func(context.Context) error
}

// setup loads .env, logging, config and telemetry. fallback receives logs when
// no --log-file is given; nil discards them.
func setup(ctx context.Context, fallback io.Writer) (*environment, error) {
	env := &environment{shutdown: func(context.Context) error { return nil }}

	var out io.Writer = io.Discard
	if fallback != nil {
		out = fallback
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		env.logFile = f
		out = f
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		env.close(ctx)
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	env.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "wayfarer",
		Level:           level,
	})

	// .env makes HONEYCOMB_WAYFARER_API_KEY available for local development
	if err := godotenv.Load(); err != nil {
		env.logger.Debug(".env file not loaded", "error", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		env.close(ctx)
		return nil, err
	}
	if flagSeed != 0 {
		cfg.World.Seed = flagSeed
	}
	if cfg.World.Seed == 0 {
		cfg.World.Seed = time.Now().UnixNano()
	}
	env.cfg = cfg
	env.logger.Info("using seed", "seed", cfg.World.Seed)

	shutdown, err := telemetry.Setup(ctx, telemetry.OptionsFromEnv())
	if err != nil {
		// Not fatal; the game runs without tracing.
		env.logger.Warn("telemetry setup failed", "error", err)
	} else {
		env.shutdown = shutdown
	}

	env.tables, err = gamedata.LoadSettlementTables()
	if err != nil {
		env.close(ctx)
		return nil, err
	}
	return env, nil
}

// newGame generates the configured world.
func (e *environment) newGame(ctx context.Context) (*game.Game, error) {
	g, err := game.New(ctx, e.cfg, game.WithLogger(e.logger), game.WithTables(e.tables))
	if err != nil {
		return nil, fmt.Errorf("failed to generate world: %w", err)
	}
	return g, nil
}

// close flushes telemetry and the log file.
func (e *environment) close(ctx context.Context) {
	if err := e.shutdown(ctx); err != nil && e.logger != nil {
		e.logger.Error("telemetry shutdown failed", "error", err)
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}
