package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/lightbox/internal/cli/styles"
	"github.com/bnema/lightbox/internal/logging"
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
)

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View application logs",
	Long: `Show the tail of the lightbox log file.

Examples:
  lightbox logs               # Last 50 lines
  lightbox logs -n 200        # Last 200 lines
  lightbox logs -f            # Follow while the viewer runs
  lightbox logs clear         # Remove rotated log files`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Args:  cobra.NoArgs,
	RunE:  runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath := logging.LogFilePath(app.Config.Logging.LogDir)
	if _, err := os.Stat(logPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No logs yet at "+logPath))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		return followLog(cmd.Context(), logPath, cmd.OutOrStdout(), app.Theme)
	}
	return showLog(logPath, logsLines, cmd.OutOrStdout(), app.Theme)
}

// showLog prints the last n lines of a log file.
func showLog(logPath string, n int, out io.Writer, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	lines, err := tailLines(file, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
	return nil
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// followLog prints lines appended to a log file until ctx is done.
func followLog(ctx context.Context, logPath string, out io.Writer, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(out)

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err != nil {
			if err != io.EOF {
				return fmt.Errorf("read log file: %w", err)
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followInterval):
			}
			continue
		}

		fmt.Fprintln(out, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
		pending = ""
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	// Console format
	switch {
	case strings.Contains(line, " ERR "):
		return theme.ErrorStyle.Render(line)
	case strings.Contains(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case strings.Contains(line, " DBG "), strings.Contains(line, " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir := app.Config.Logging.LogDir
	active := filepath.Base(logging.LogFilePath(logDir))
	backups, err := filepath.Glob(filepath.Join(logDir, active+".*"))
	if err != nil {
		return fmt.Errorf("list log backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No rotated logs to clear"))
		return nil
	}

	removed := 0
	for _, path := range backups {
		if err := os.Remove(path); err != nil {
			logging.FromContext(app.Ctx()).Warn().Err(err).Str("path", path).Msg("failed to remove log backup")
			continue
		}
		removed++
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(fmt.Sprintf("Removed %d rotated log file(s)", removed)))
	return nil
}
