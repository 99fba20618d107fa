package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lightbox/internal/cli"
	"github.com/bnema/lightbox/internal/cli/styles"
)

var (
	groupsRoot  string
	groupsMatch string
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List gallery groups",
	Long: `List the groups under the gallery root with their image counts.

Examples:
  lightbox groups                      # All groups
  lightbox groups --match stump        # Fuzzy match on id and title`,
	Args: cobra.NoArgs,
	RunE: runGroups,
}

func init() {
	rootCmd.AddCommand(groupsCmd)

	groupsCmd.Flags().StringVarP(&groupsRoot, "root", "r", "", "gallery root directory (default: gallery.root)")
	groupsCmd.Flags().StringVarP(&groupsMatch, "match", "m", "", "fuzzy filter on group id and title")
}

func runGroups(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	viewer, err := app.NewViewer(cli.ViewerOptions{Root: groupsRoot})
	if err != nil {
		return err
	}

	groups, err := viewer.OpenUC.ListGroups(app.Ctx())
	if err != nil {
		return err
	}
	groups = cli.MatchGroups(groups, groupsMatch)

	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No groups found under "+viewer.Source.Root()))
		return nil
	}

	fmt.Fprintln(out, styles.RenderGroupTable(app.Theme, groups))
	return nil
}
