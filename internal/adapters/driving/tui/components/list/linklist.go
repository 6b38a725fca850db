// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/styles"
)

// LinkList displays the document links of a case result, in server order,
// as a navigable list.
type LinkList struct {
	links    []string
	selected int
	focused  bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewLinkList creates a new link list component.
func NewLinkList(s *styles.Styles) *LinkList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &LinkList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the link list.
func (l *LinkList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *LinkList) Update(msg tea.Msg) (*LinkList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the link list.
func (l *LinkList) View() string {
	if len(l.links) == 0 {
		return l.styles.Muted.Render("No documents")
	}

	visible := l.height
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.links) {
		end = len(l.links)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderLink(i))
	}
	return strings.Join(lines, "\n")
}

// renderLink formats one entry: a numbered "Download PDF" label followed
// by the link target.
func (l *LinkList) renderLink(index int) string {
	indicator := "  "
	if l.focused && index == l.selected {
		indicator = "> "
	}

	target := l.links[index]
	maxLen := l.width - 24
	if maxLen < 10 {
		maxLen = 10
	}
	if len(target) > maxLen {
		target = target[:maxLen-3] + "..."
	}

	label := fmt.Sprintf("%s%d. Download PDF", indicator, index+1)
	if l.focused && index == l.selected {
		return l.styles.Selected.Render(label) + " " + l.styles.Link.Render(target)
	}
	return l.styles.Normal.Render(label) + " " + l.styles.Muted.Render(target)
}

// SetLinks replaces the links and resets the selection.
func (l *LinkList) SetLinks(links []string) {
	l.links = append([]string(nil), links...)
	l.selected = 0
}

// Links returns the current links.
func (l *LinkList) Links() []string {
	return l.links
}

// Selected returns the index of the selected link.
func (l *LinkList) Selected() int {
	return l.selected
}

// SelectedLink returns the selected link, or "" if there is none.
func (l *LinkList) SelectedLink() string {
	if l.selected < 0 || l.selected >= len(l.links) {
		return ""
	}
	return l.links[l.selected]
}

// MoveUp moves selection up.
func (l *LinkList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *LinkList) MoveDown() {
	if l.selected < len(l.links)-1 {
		l.selected++
	}
}

// Focus gives the list keyboard focus.
func (l *LinkList) Focus() {
	l.focused = true
}

// Blur removes keyboard focus.
func (l *LinkList) Blur() {
	l.focused = false
}

// Focused returns whether the list has focus.
func (l *LinkList) Focused() bool {
	return l.focused
}

// SetDimensions sets the component dimensions.
func (l *LinkList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of links.
func (l *LinkList) Count() int {
	return len(l.links)
}

// IsEmpty returns whether the list is empty.
func (l *LinkList) IsEmpty() bool {
	return len(l.links) == 0
}
