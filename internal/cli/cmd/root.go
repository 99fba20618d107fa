// Package cmd provides Cobra CLI commands for lightbox.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/lightbox/internal/cli"
	"github.com/bnema/lightbox/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	verbose   bool
	rootCmd   = &cobra.Command{
		Use:   "lightbox",
		Short: "A terminal image gallery with zoom, pan and pinch",
		Long: `Lightbox - browse image galleries in the terminal.

Every subdirectory of the gallery root is a group. Open a group to view its
images in a full-screen overlay:
  - Click a point of the image to zoom in there, click again to zoom out
  - Drag to pan a zoomed image
  - Left/Right to navigate, Escape to close

Touch input mode replaces click zoom with two-finger pinch zoom. Use
'lightbox replay' to play recorded input scripts against the same controller.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{
				// Full-screen views own the terminal.
				Verbose: verbose && cmd.Name() != viewCmd.Name(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
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

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

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
