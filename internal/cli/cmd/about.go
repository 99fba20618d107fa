package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lightbox/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info and repository URL.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo))
	return nil
}
