// wayfarer is a terminal exploration game over a procedurally generated world.
//
// Usage:
//
//	wayfarer                 - Explore a new world
//	wayfarer preview         - Print the generated world as glyphs
//	wayfarer pois            - List the world's settlements
//
// Global flags:
//
//	--seed <value>       - World seed (0 = from config, then from the clock)
//	--config <path>      - Config file (default search: ~/.wayfarer, ./configs, embedded)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/samdwyer/wayfarer/internal/app"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wayfarer",
	Short: "Wayfarer - explore a procedurally generated world in your terminal",
	Long: `Wayfarer generates a world from a seed and lets you walk it, revealing
terrain as you go and visiting the settlements scattered across it.

Controls:
  arrows / WASD  move
  e              enter a settlement
  q              leave a settlement
  m              toggle the world map
  Esc / Ctrl+C   quit

Examples:
  wayfarer --seed 42
  wayfarer preview --seed 42
  wayfarer pois --seed 42`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = use config, then the clock)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(poisCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// The terminal belongs to tcell; logs only go to a file.
	env, err := setup(ctx, nil)
	if err != nil {
		return err
	}
	defer env.close(ctx)

	g, err := env.newGame(ctx)
	if err != nil {
		return err
	}

	a, err := app.New(g, env.tables, env.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := a.Run(ctx); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Explored %d of %d tiles. Seed: %d\n",
		g.Grid().DiscoveredCount(), g.Grid().Len(), env.cfg.World.Seed)
	return nil
}
