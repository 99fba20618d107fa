package styles

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/bnema/lightbox/internal/domain/entity"
)

// GroupItem represents a gallery group for the list.
type GroupItem struct {
	ID     entity.GroupID
	Title  string
	Count  int
	Sample string // first image file name
}

// NewGroupItem converts a gallery group.
func NewGroupItem(g *entity.Group) GroupItem {
	item := GroupItem{ID: g.ID, Title: g.Title, Count: g.Len()}
	if g.Len() > 0 {
		item.Sample = filepath.Base(g.Images[0].URL)
	}
	return item
}

// FilterValue implements list.Item.
func (i GroupItem) FilterValue() string {
	return i.Title + " " + string(i.ID)
}

// GroupDelegate renders gallery groups with theme styling.
type GroupDelegate struct {
	Theme *Theme
}

// NewGroupDelegate creates a themed group list delegate.
func NewGroupDelegate(theme *Theme) GroupDelegate {
	return GroupDelegate{Theme: theme}
}

// Height returns the height of each item.
func (d GroupDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d GroupDelegate) Spacing() int {
	return 0
}

// Update handles item-level events.
func (d GroupDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single list item.
func (d GroupDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	gi, ok := item.(GroupItem)
	if !ok {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()
	const (
		maxTitleLength = 60
		ellipsisLength = 3
	)

	title := gi.Title
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength-ellipsisLength] + "..."
	}

	cursor := cursorEmpty
	if isSelected {
		cursor = cursorSelected
	}

	cursorStyle := t.Highlight
	titleStyle := t.ListItemTitle
	descStyle := t.ListItemDesc
	if isSelected {
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		descStyle = descStyle.Foreground(t.Text)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		cursorStyle.Render(cursor),
		titleStyle.Render(title),
	)

	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", 3), // Indent under cursor
		descStyle.Render(string(gi.ID)),
		" ",
		t.ImageCountBadge(gi.Count),
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewGroupList creates a themed list for gallery groups.
func NewGroupList(theme *Theme, groups []*entity.Group, width, height int) list.Model {
	l := list.New(GroupItems(groups), NewGroupDelegate(theme), width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)
	l.Filter = GroupFilter

	// Apply theme colors to pagination and filter
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)
	l.FilterInput.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	l.FilterInput.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return l
}

// GroupItems converts groups to list items.
func GroupItems(groups []*entity.Group) []list.Item {
	items := make([]list.Item, len(groups))
	for i, g := range groups {
		items[i] = NewGroupItem(g)
	}
	return items
}

// GroupFilter ranks list items by fuzzy match, best first.
func GroupFilter(term string, targets []string) []list.Rank {
	matches := fuzzy.Find(term, targets)
	ranks := make([]list.Rank, len(matches))
	for i, match := range matches {
		ranks[i] = list.Rank{Index: match.Index, MatchedIndexes: match.MatchedIndexes}
	}
	return ranks
}
