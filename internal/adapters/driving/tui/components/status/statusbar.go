// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/casefetch/internal/core/domain"
)

// Bar displays the workflow status message and keybinding hints. While
// busy, a spinner precedes the message.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	spinner spinner.Model
	hints   []key.Binding
	visible bool
	kind    domain.StatusKind
	message string
	busy    bool
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Info

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: sp,
		hints:   km.FormHelp(),
		width:   80,
	}
}

// Init starts the spinner.
func (b *Bar) Init() tea.Cmd {
	return b.spinner.Tick
}

// Update advances the spinner.
func (b *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd
	}
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := b.width - leftLen - rightLen - 2
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}

// renderLeft renders the status message.
func (b *Bar) renderLeft() string {
	if !b.visible {
		return ""
	}
	var msg string
	switch b.kind {
	case domain.StatusError:
		msg = b.styles.Error.Render(b.message)
	default:
		msg = b.styles.Info.Render(b.message)
	}
	if b.busy {
		return b.spinner.View() + " " + msg
	}
	return msg
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	hints := make([]string, 0, len(b.hints))
	for _, k := range b.hints {
		h := k.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Help.Render(strings.Join(hints, " | "))
}

// SetStatus shows message with the given kind.
func (b *Bar) SetStatus(kind domain.StatusKind, message string) {
	b.visible = true
	b.kind = kind
	b.message = message
}

// Clear hides the status message.
func (b *Bar) Clear() {
	b.visible = false
	b.message = ""
}

// Visible reports whether a status message is shown.
func (b *Bar) Visible() bool {
	return b.visible
}

// Kind returns the kind of the shown message.
func (b *Bar) Kind() domain.StatusKind {
	return b.kind
}

// Message returns the shown message.
func (b *Bar) Message() string {
	return b.message
}

// SetBusy toggles the spinner.
func (b *Bar) SetBusy(busy bool) {
	b.busy = busy
}

// Busy reports whether the spinner is shown.
func (b *Bar) Busy() bool {
	return b.busy
}

// SetHints sets the keybindings listed on the right.
func (b *Bar) SetHints(bindings []key.Binding) {
	b.hints = bindings
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}
