package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/lightbox/internal/cli"
	"github.com/bnema/lightbox/internal/infrastructure/replay"
	"github.com/bnema/lightbox/internal/logging"
)

var (
	replayRoot      string
	replayInputMode string
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Play an input script through the lightbox",
	Long: `Play a JSON-lines input script through the lightbox controller and print
the state after every step. Reads stdin when no script (or "-") is given.

Each line is one event:
  {"type":"open","images":[{"url":"a.jpg"},{"url":"b.jpg"}]}
  {"type":"open","group":"services","index":1}
  {"type":"click","target":"image","x":30,"y":40,"bounds":{"x":0,"y":0,"width":120,"height":80}}
  {"type":"pointerdown","x":10,"y":10}
  {"type":"touchstart","touches":[{"x":100,"y":100},{"x":200,"y":100}]}
  {"type":"keydown","key":"ArrowRight"}
  {"type":"close"}

Output columns: line, * when the event was consumed, type, state.

Examples:
  lightbox replay session.jsonl
  lightbox replay --input-mode touch pinch.jsonl
  lightbox replay --root ./site < clicks.jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replayRoot, "root", "r", "", "gallery root for group opens (default: gallery.root)")
	replayCmd.Flags().StringVar(&replayInputMode, "input-mode", "", "pointer or touch (default: lightbox.input_mode)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "replay")

	steps, err := readScript(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var player *replay.Player
	viewer, err := app.NewViewer(cli.ViewerOptions{Root: replayRoot, InputMode: replayInputMode})
	switch {
	case err == nil:
		player = replay.NewPlayer(viewer.Lightbox, viewer.Dispatcher, viewer.OpenUC)
	case replayRoot != "":
		return err
	default:
		// No usable gallery: scripts may still open inline images.
		logging.FromContext(ctx).Debug().Err(err).Msg("replaying without gallery")
		lightbox, dispatcher, lbErr := app.NewLightbox(replayInputMode, nil)
		if lbErr != nil {
			return lbErr
		}
		player = replay.NewPlayer(lightbox, dispatcher, nil)
	}

	out := cmd.OutOrStdout()
	return player.Run(ctx, steps, func(r replay.Result) {
		fmt.Fprintln(out, r.String())
	})
}

func readScript(stdin io.Reader, args []string) ([]replay.Step, error) {
	if len(args) == 0 || args[0] == "-" {
		return replay.Parse(stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	return replay.Parse(f)
}
