// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/adapters/driving/tui/styles"
)

// Item is one row of an ItemList.
type Item struct {
	Title  string
	Detail string
}

// ItemList displays items in a navigable list.
type ItemList struct {
	title    string
	items    []Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItemList creates a new list component.
func NewItemList(s *styles.Styles, title string) *ItemList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ItemList{
		title:  title,
		styles: s,
		width:  80,
		height: 10,
	}
}

// Update handles list navigation messages.
func (l *ItemList) Update(msg tea.Msg) (*ItemList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *ItemList) View() string {
	header := l.styles.Subtitle.Render(l.title)
	if len(l.items) == 0 {
		return header + "\n\n" + l.styles.Muted.Render("Nothing here yet")
	}

	// Each item takes two lines
	visible := (l.height - 2) / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.items))

	lines := []string{header, ""}
	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i))
	}
	return strings.Join(lines, "\n")
}

func (l *ItemList) renderItem(index int) string {
	item := l.items[index]
	title := truncate(item.Title, l.width-4)
	detail := truncate(item.Detail, l.width-6)

	if index == l.selected {
		return l.styles.Selected.Render("> "+title) + "\n" + l.styles.Muted.Render("    "+detail)
	}
	return l.styles.Normal.Render("  "+title) + "\n" + l.styles.Muted.Render("    "+detail)
}

func truncate(s string, limit int) string {
	if limit < 10 {
		limit = 10
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// SetItems replaces the list contents.
func (l *ItemList) SetItems(items []Item) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = max(len(items)-1, 0)
	}
}

// Items returns the current items.
func (l *ItemList) Items() []Item {
	return l.items
}

// Selected returns the index of the selected item.
func (l *ItemList) Selected() int {
	return l.selected
}

// MoveUp moves selection up.
func (l *ItemList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ItemList) MoveDown() {
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ItemList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of items.
func (l *ItemList) Count() int {
	return len(l.items)
}
