// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/casefetch/internal/core/domain"
)

// BoardChanged is sent whenever the workflow presenter changes state.
type BoardChanged struct{}

// ChallengeLoaded is sent when a challenge request finishes.
type ChallengeLoaded struct {
	Challenge domain.Challenge
	Err       error
}

// QueryFinished is sent when a case query finishes. On failure the
// replacement challenge has already been requested.
type QueryFinished struct {
	Result *domain.CaseResult
	Err    error
}

// LinkAction identifies what was done with a document link.
type LinkAction string

// Link actions.
const (
	LinkOpened LinkAction = "opened"
	LinkCopied LinkAction = "copied"
)

// LinkActionDone is sent when a document link has been opened or copied.
type LinkActionDone struct {
	Action LinkAction
	Link   string
	Err    error
}

// FocusTarget identifies a focusable control of the lookup form.
type FocusTarget int

// Focus order of the lookup form.
const (
	FocusCaseType FocusTarget = iota
	FocusCaseNumber
	FocusCaseYear
	FocusCaptcha
	FocusSubmit
	FocusLinks
)

// String returns the string representation of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusCaseType:
		return "case_type"
	case FocusCaseNumber:
		return "case_number"
	case FocusCaseYear:
		return "case_year"
	case FocusCaptcha:
		return "captcha"
	case FocusSubmit:
		return "submit"
	case FocusLinks:
		return "links"
	default:
		return "unknown"
	}
}

// Quit signals the application should exit.
type Quit struct{}
