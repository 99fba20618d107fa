package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lightbox/internal/domain/entity"
)

// LightboxRenderer renders the overlay status line under the image.
type LightboxRenderer struct {
	theme       *Theme
	showCaption bool
}

// NewLightboxRenderer creates a status renderer. showCaption toggles the alt text.
func NewLightboxRenderer(theme *Theme, showCaption bool) *LightboxRenderer {
	return &LightboxRenderer{theme: theme, showCaption: showCaption}
}

// RenderStatus renders position, zoom and caption in a single line of the given width.
func (r *LightboxRenderer) RenderStatus(out entity.RenderOutput, width int) string {
	if !out.Visible {
		return ""
	}

	left := lipgloss.JoinHorizontal(
		lipgloss.Left,
		r.theme.PositionBadge(out.Index, out.Count),
		" ",
		r.theme.ZoomBadge(out.Transform.Scale),
	)

	caption := ""
	if r.showCaption && out.Image != nil && out.Image.Alt != "" {
		room := width - lipgloss.Width(left) - 2
		if room > 0 {
			caption = r.theme.Caption.Render(truncate(out.Image.Alt, room))
		}
	}

	line := lipgloss.JoinHorizontal(lipgloss.Left, left, "  ", caption)
	return r.theme.StatusBar.Width(width).Render(line)
}

func truncate(s string, n int) string {
	const ellipsis = "…"
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return ellipsis
	}
	return strings.TrimSpace(string(runes[:n-1])) + ellipsis
}
