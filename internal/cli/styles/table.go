package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lightbox/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// GroupTableColumns returns columns for the gallery group table.
func GroupTableColumns() []table.Column {
	return []table.Column{
		{Title: "Group", Width: 20},
		{Title: "Title", Width: 30},
		{Title: "Images", Width: 8},
		{Title: "First image", Width: 30},
	}
}

// GroupRow converts a gallery group to a table row.
func GroupRow(g *entity.Group) table.Row {
	item := NewGroupItem(g)
	return table.Row{string(item.ID), item.Title, strconv.Itoa(item.Count), item.Sample}
}

// RenderGroupTable renders groups as a static table.
func RenderGroupTable(theme *Theme, groups []*entity.Group) string {
	rows := make([]table.Row, len(groups))
	width := 0
	for _, c := range GroupTableColumns() {
		width += c.Width + 2
	}
	for i, g := range groups {
		rows[i] = GroupRow(g)
	}
	// Header and border take two lines.
	const chrome = 2
	t := NewStyledTable(theme, GroupTableColumns(), rows, width, len(rows)+chrome)
	return t.View()
}
