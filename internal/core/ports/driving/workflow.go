package driving

import (
	"context"

	"github.com/custodia-labs/casefetch/internal/core/domain"
)

// Workflow drives the CAPTCHA-verified case lookup.
type Workflow interface {
	// RequestChallenge fetches and displays a fresh challenge. On success
	// the returned session token replaces the current one; on failure the
	// current token is left as it was.
	RequestChallenge(ctx context.Context) (domain.Challenge, error)

	// RefreshChallenge is the user-triggered alias of RequestChallenge.
	RefreshChallenge(ctx context.Context) (domain.Challenge, error)

	// SubmitQuery sends form under the current session token. On failure
	// a fresh challenge has been requested by the time it returns.
	SubmitQuery(ctx context.Context, form domain.QueryForm) (*domain.CaseResult, error)

	// SessionToken returns the current token, if any.
	SessionToken() (domain.SessionToken, bool)
}
