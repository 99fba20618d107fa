package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lightbox/internal/domain/entity"
)

// ConfigSchemaRenderer renders configuration key listings.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders keys in boxes, one per section, in the order sections
// first appear.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	order, sections := groupBySection(keys)

	parts := []string{r.renderHeader(), ""}
	for _, name := range order {
		parts = append(parts, r.renderSection(name, sections[name]), "")
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Keys"))
}

func groupBySection(keys []entity.ConfigKeyInfo) ([]string, map[string][]entity.ConfigKeyInfo) {
	var order []string
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		if _, seen := sections[key.Section]; !seen {
			order = append(order, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}
	return order, sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, r.theme.Highlight.Render(name))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	out := fmt.Sprintf("%s  %s  %s\n  %s",
		keyStyle.Render(key.Key),
		r.theme.Subtle.Render(key.Type),
		defaultStyle.Render(key.Default),
		r.theme.Subtle.Render(key.Description),
	)

	switch {
	case len(key.Values) > 0:
		out += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	case key.Range != "":
		out += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}
	return out
}
