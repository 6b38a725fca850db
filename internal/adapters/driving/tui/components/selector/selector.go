// Package selector provides a single-choice option picker for the TUI.
package selector

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/styles"
)

// Selector cycles through a fixed list of options with left and right.
// Only listed options can be selected.
type Selector struct {
	label    string
	options  []string
	selected int
	focused  bool
	styles   *styles.Styles
}

// New creates a selector with the first option selected.
func New(s *styles.Styles, label string, options []string) *Selector {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Selector{
		label:   label,
		options: append([]string(nil), options...),
		styles:  s,
	}
}

// Init initialises the selector.
func (s *Selector) Init() tea.Cmd {
	return nil
}

// Update handles option navigation while focused.
func (s *Selector) Update(msg tea.Msg) (*Selector, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyLeft:
			s.Prev()
		case tea.KeyRight:
			s.Next()
		case tea.KeyHome:
			s.selected = 0
		case tea.KeyEnd:
			if len(s.options) > 0 {
				s.selected = len(s.options) - 1
			}
		}
	}
	return s, nil
}

// View renders the label and current option.
func (s *Selector) View() string {
	labelStyle := s.styles.Label
	valueStyle := s.styles.Normal
	if s.focused {
		labelStyle = s.styles.FocusedLabel
		valueStyle = s.styles.Selected
	}

	value := "(none)"
	if v, ok := s.Value(); ok {
		value = v
	}
	control := fmt.Sprintf("‹ %s ›", value)
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render(s.label),
		" ",
		valueStyle.Render(control),
	)
}

// Value returns the selected option.
func (s *Selector) Value() (string, bool) {
	if len(s.options) == 0 {
		return "", false
	}
	return s.options[s.selected], true
}

// Select selects option if it is listed.
func (s *Selector) Select(option string) bool {
	for i, o := range s.options {
		if o == option {
			s.selected = i
			return true
		}
	}
	return false
}

// Index returns the index of the selected option.
func (s *Selector) Index() int {
	return s.selected
}

// Options returns the available options.
func (s *Selector) Options() []string {
	return s.options
}

// Next selects the following option, wrapping around.
func (s *Selector) Next() {
	if len(s.options) > 0 {
		s.selected = (s.selected + 1) % len(s.options)
	}
}

// Prev selects the preceding option, wrapping around.
func (s *Selector) Prev() {
	if len(s.options) > 0 {
		s.selected = (s.selected - 1 + len(s.options)) % len(s.options)
	}
}

// Focus gives the selector keyboard focus.
func (s *Selector) Focus() {
	s.focused = true
}

// Blur removes keyboard focus.
func (s *Selector) Blur() {
	s.focused = false
}

// Focused returns whether the selector has focus.
func (s *Selector) Focused() bool {
	return s.focused
}
