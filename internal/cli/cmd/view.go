package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/lightbox/internal/cli"
	"github.com/bnema/lightbox/internal/cli/model"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/infrastructure/config"
	"github.com/bnema/lightbox/internal/infrastructure/raster"
	"github.com/bnema/lightbox/internal/logging"
)

var (
	viewRoot      string
	viewIndex     int
	viewInputMode string
	viewHQ        bool
)

var viewCmd = &cobra.Command{
	Use:   "view [group]",
	Short: "Browse the gallery in the terminal",
	Long: `Open the gallery browser. Pick a group to view it in the lightbox overlay.

With a group argument the overlay opens directly on that group.

Examples:
  lightbox view                        # Browse groups under gallery.root
  lightbox view --root ~/Pictures      # Browse another directory
  lightbox view services --index 2     # Open the third image of "services"
  lightbox view --input-mode touch     # Drag to pan, no click zoom`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringVarP(&viewRoot, "root", "r", "", "gallery root directory (default: gallery.root)")
	viewCmd.Flags().IntVarP(&viewIndex, "index", "i", 0, "image to open when a group is given")
	viewCmd.Flags().StringVar(&viewInputMode, "input-mode", "", "pointer or touch (default: lightbox.input_mode)")
	viewCmd.Flags().BoolVar(&viewHQ, "hq", false, "use high quality scaling")
}

func runView(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := logging.WithComponent(app.Ctx(), "view")
	viewer, err := app.NewViewer(cli.ViewerOptions{Root: viewRoot, InputMode: viewInputMode})
	if err != nil {
		return err
	}

	quality := raster.QualityFast
	if viewHQ {
		quality = raster.QualityHigh
	}

	var group entity.GroupID
	if len(args) > 0 {
		group = entity.GroupID(args[0])
	}

	m := model.NewGalleryModel(ctx, app.Theme, model.GalleryModelConfig{
		OpenUC:       viewer.OpenUC,
		Lightbox:     viewer.Lightbox,
		Dispatcher:   viewer.Dispatcher,
		Images:       viewer.Images,
		Config:       app.Config,
		Quality:      quality,
		InitialGroup: group,
		InitialIndex: viewIndex,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if mgr := app.ConfigManager; mgr != nil && app.ConfigErr == nil {
		mgr.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: cfg})
		})
		if err := mgr.Watch(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if gm, ok := finalModel.(model.GalleryModel); ok && gm.Err() != nil {
		return gm.Err()
	}
	return nil
}
