package driven

import "github.com/custodia-labs/casefetch/internal/core/domain"

// Presenter is the user-facing surface of the lookup workflow: a status
// line, the challenge image, the result block and the submit control.
//
// Implementations must be safe for concurrent use. Workflow operations
// run off the UI loop and may overlap.
type Presenter interface {
	// ShowStatus displays msg, replacing any previous status.
	ShowStatus(kind domain.StatusKind, msg string)

	// ClearStatus hides the status line.
	ClearStatus()

	// ShowChallenge displays a new challenge image.
	ShowChallenge(challenge domain.Challenge)

	// ShowResult displays result in place of any prior result.
	ShowResult(result domain.CaseResult)

	// HideResult hides the result block.
	HideResult()

	// SetSubmitControl sets the enabled state and label of the submit control.
	SetSubmitControl(enabled bool, label string)
}
