package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var poisCmd = &cobra.Command{
	Use:   "pois",
	Short: "List the settlements of the generated world",
	Long:  `Generates the world for the current seed and config and lists every settlement with its location and description.`,
	RunE:  runPOIs,
}

func runPOIs(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	pois := g.POIs().All()
	if len(pois) == 0 {
		fmt.Fprintln(out, "No settlements in this world.")
		return nil
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range pois {
		maxNameLen = max(maxNameLen, len(p.Name()))
	}

	fmt.Fprintf(out, "Seed %d, spawn (%d,%d)\n\n", env.cfg.World.Seed, g.Player().Position.X, g.Player().Position.Y)
	fmt.Fprintf(out, "  %-*s  %-9s  %-8s  %-6s  %s\n", maxNameLen, "Name", "Location", "Terrain", "Layout", "Description")
	fmt.Fprintf(out, "  %-*s  %-9s  %-8s  %-6s  %s\n", maxNameLen, "----", "--------", "-------", "------", "-----------")
	for _, p := range pois {
		loc := fmt.Sprintf("(%d,%d)", p.Location.X, p.Location.Y)
		fmt.Fprintf(out, "  %-*s  %-9s  %-8s  %-6s  %s\n", maxNameLen, p.Name(), loc, p.Terrain, p.Scene.Layout,
			p.Scene.Descriptor.Description())
	}
	return nil
}
