package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lightbox/internal/infrastructure/config"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// GalleryKeyMap defines keybindings for the group browser.
type GalleryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Filter  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Filter, k.Refresh},
		{k.Help, k.Quit},
	}
}

// DefaultGalleryKeyMap returns the default group browser keybindings.
func DefaultGalleryKeyMap() GalleryKeyMap {
	return GalleryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LightboxKeyMap describes the overlay controls. Key bindings come from
// config; mouse gestures are listed for help only.
type LightboxKeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Close    key.Binding
	Zoom     key.Binding
	Pan      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k LightboxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Zoom, k.Pan, k.Close}
}

// FullHelp returns keybindings for expanded help.
func (k LightboxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.Zoom, k.Pan},
		{k.Close},
	}
}

// NewLightboxKeyMap builds the overlay help from configured keybindings.
func NewLightboxKeyMap(cfg config.KeybindingsConfig) LightboxKeyMap {
	return LightboxKeyMap{
		Previous: configBinding(cfg.Previous, "previous"),
		Next:     configBinding(cfg.Next, "next"),
		Close:    configBinding(cfg.Close, "close"),
		Zoom: key.NewBinding(
			key.WithKeys("click"),
			key.WithHelp("click", "zoom"),
		),
		Pan: key.NewBinding(
			key.WithKeys("drag"),
			key.WithHelp("drag", "pan"),
		),
	}
}

func configBinding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
