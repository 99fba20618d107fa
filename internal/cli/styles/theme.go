// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lightbox/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.ColorPalette)
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Component styles
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemTitle    lipgloss.Style
	ListItemDesc     lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style

	// Lightbox overlay
	Caption   lipgloss.Style
	StatusBar lipgloss.Style
}

// NewTheme creates a Theme from the active palette of cfg.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewThemeFromPalette(cfg.Appearance.ActivePalette())
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Surface),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),

		// Semantic colors (not in config, use sensible defaults)
		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(p.Accent), // Use accent as success
	}

	// Build derived styles
	t.buildStyles()
	return t
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	// Text styles
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	// List item styles
	t.ListItem = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(2)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		PaddingLeft(2).
		Bold(true)

	t.ListItemTitle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.ListItemDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Badge styles
	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Padding(0, 1)

	// Help styles
	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Box/container styles
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	t.Caption = lipgloss.NewStyle().
		Foreground(t.Text).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface)
}
