// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Info is for in-progress and informational status messages.
	Info lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Link is for document links.
	Link lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Disabled is for controls that cannot be used right now.
	Disabled lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"), // Blue
		Secondary:  lipgloss.Color("#0EA5E9"), // Sky
		Foreground: lipgloss.Color("#E2E8F0"), // Slate
		Muted:      lipgloss.Color("#64748B"), // Slate gray
		Info:       lipgloss.Color("#93C5FD"), // Light blue
		Error:      lipgloss.Color("#F87171"), // Red
		Link:       lipgloss.Color("#60A5FA"), // Link blue
		Border:     lipgloss.Color("#334155"), // Dark slate
		Disabled:   lipgloss.Color("#475569"), // Gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Label style for form labels.
	Label lipgloss.Style

	// FocusedLabel style for the label of the focused control.
	FocusedLabel lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Info style for informational status messages.
	Info lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Link style for document links.
	Link lipgloss.Style

	// Button style for an enabled, unfocused button.
	Button lipgloss.Style

	// ButtonFocused style for an enabled, focused button.
	ButtonFocused lipgloss.Style

	// ButtonDisabled style for a disabled button.
	ButtonDisabled lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Panel style for bordered blocks such as the CAPTCHA and the result.
	Panel lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	button := lipgloss.NewStyle().Padding(0, 2)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Label: lipgloss.NewStyle().
			Width(14).
			Foreground(theme.Muted),

		FocusedLabel: lipgloss.NewStyle().
			Width(14).
			Bold(true).
			Foreground(theme.Secondary),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Info: lipgloss.NewStyle().
			Foreground(theme.Info),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.Link),

		Button: button.
			Foreground(theme.Foreground).
			Background(theme.Border),

		ButtonFocused: button.
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		ButtonDisabled: button.
			Foreground(theme.Muted).
			Background(theme.Disabled),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
