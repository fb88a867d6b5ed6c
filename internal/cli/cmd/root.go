// Package cmd provides Cobra CLI commands for tiler.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tiler/internal/cli"
	"github.com/bnema/tiler/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "tiler",
		Short: "A binary-split tiling layout engine",
		Long: `Tiler - a binary-split tiling layout engine.

Tiles live in a tree of split containers. Adding a tile splits the focused
one, closing a tile collapses its container, and every tile gets a
rectangle on a 100x100 canvas.

Drive the engine with a small script:

  add Editor
  add Logs
  split Logs v
  ratio Editor 0.3

then print the resulting rectangles ('tiler layout'), the tree
('tiler tree'), or explore it interactively ('tiler preview').`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
