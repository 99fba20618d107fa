package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ImageCountBadge renders an image count badge.
func (t *Theme) ImageCountBadge(count int) string {
	text := fmt.Sprintf("%d images", count)
	if count == 1 {
		text = "1 image"
	}
	return t.BadgeMuted.Render(text)
}

// PositionBadge renders "index/count" for the displayed image (index is zero-based).
func (t *Theme) PositionBadge(index, count int) string {
	return t.Badge.Render(fmt.Sprintf("%d/%d", index+1, count))
}

// ZoomBadge renders the scale as a percentage; the identity scale is muted.
func (t *Theme) ZoomBadge(scale float64) string {
	text := fmt.Sprintf("%s %d%%", IconZoom, int(scale*100+0.5))
	if scale <= 1 {
		return t.BadgeMuted.Render(text)
	}
	return t.Badge.Render(text)
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}
