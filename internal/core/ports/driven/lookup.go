package driven

import (
	"context"

	"github.com/custodia-labs/casefetch/internal/core/domain"
)

// ChallengeService issues CAPTCHA challenges. Each call yields a fresh,
// independent session; nothing is cancelled or reused server-side.
type ChallengeService interface {
	// IssueChallenge requests a new challenge.
	// Errors are *domain.TransportError or *domain.RejectionError.
	IssueChallenge(ctx context.Context) (domain.ChallengeEnvelope, error)
}

// QueryService resolves case queries.
type QueryService interface {
	// LookupCase submits query exactly once. A nil session token is sent
	// as-is; the server decides what to do with it.
	// Errors are *domain.TransportError or *domain.RejectionError.
	LookupCase(ctx context.Context, query domain.CaseQuery) (*domain.CaseResult, error)
}
