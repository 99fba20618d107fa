package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigPath renders the config file location.
func (r *ConfigRenderer) RenderConfigPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := ""
	if !exists {
		status = " " + r.theme.WarningStyle.Render("(not created yet)")
	}

	return fmt.Sprintf("\n  %s Config %s%s\n", iconStyle.Render(IconConfig), pathStyle.Render(path), status)
}

// RenderSchemaWritten renders the success message after writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Schema written to %s\n", iconStyle.Render(IconSchema), r.theme.Subtle.Render(path))
}

// RenderValidationErrors renders a validation error message, one issue per line.
func (r *ConfigRenderer) RenderValidationErrors(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render("Invalid configuration")))
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s\n", r.theme.Subtle.Render(line)))
	}
	return sb.String()
}

// RenderValid renders the message for a config that passed validation.
func (r *ConfigRenderer) RenderValid(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s is valid\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	msgStyle := r.theme.ErrorStyle

	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), msgStyle.Render(err.Error()))
}
