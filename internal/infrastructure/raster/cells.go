package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const upperHalfBlock = "▀"

// Lines renders the frame as terminal rows. Each cell draws the upper
// pixel as foreground and the lower pixel as background of a half block.
func (f *Frame) Lines() []string {
	if f == nil || f.Pixels == nil {
		return nil
	}
	b := f.Pixels.Bounds()
	rows := (b.Dy() + 1) / 2
	lines := make([]string, 0, rows)

	// Terminal images repeat colors heavily; reuse styles per pair.
	styles := make(map[[2]color.RGBA]lipgloss.Style)

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		sb.Reset()
		y := b.Min.Y + row*2
		for x := b.Min.X; x < b.Max.X; x++ {
			top := f.Pixels.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = f.Pixels.RGBAAt(x, y+1)
			}
			key := [2]color.RGBA{top, bottom}
			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(Hex(top))).
					Background(lipgloss.Color(Hex(bottom)))
				styles[key] = style
			}
			sb.WriteString(style.Render(upperHalfBlock))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String joins Lines with newlines.
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rgb or #rrggbb into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(s) == len(digits) || len(digits) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
