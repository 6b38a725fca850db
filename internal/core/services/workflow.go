package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
	"github.com/custodia-labs/casefetch/internal/core/ports/driving"
	"github.com/custodia-labs/casefetch/internal/logger"
)

// Ensure WorkflowController implements the interface.
var _ driving.Workflow = (*WorkflowController)(nil)

// Errors returned when the controller is misconfigured.
var (
	ErrNoChallengeService = errors.New("workflow: challenge service is required")
	ErrNoQueryService     = errors.New("workflow: query service is required")
	ErrNoPresenter        = errors.New("workflow: presenter is required")
)

// WorkflowController owns the session token and sequences the challenge
// and query calls, reporting every step through the presenter.
//
// Operations may overlap. Overlapping challenge requests are not
// cancelled; whichever response is applied last supplies the token.
type WorkflowController struct {
	challenges driven.ChallengeService
	queries    driven.QueryService
	presenter  driven.Presenter

	mu    sync.Mutex
	token *domain.SessionToken
}

// NewWorkflowController creates a controller with no session token.
func NewWorkflowController(
	challenges driven.ChallengeService,
	queries driven.QueryService,
	presenter driven.Presenter,
) (*WorkflowController, error) {
	if challenges == nil {
		return nil, ErrNoChallengeService
	}
	if queries == nil {
		return nil, ErrNoQueryService
	}
	if presenter == nil {
		return nil, ErrNoPresenter
	}
	return &WorkflowController{
		challenges: challenges,
		queries:    queries,
		presenter:  presenter,
	}, nil
}

// RequestChallenge fetches a fresh challenge and makes its token current.
// A failed fetch leaves the previous token in place even though its image
// is gone; the server will reject it if it is used.
func (w *WorkflowController) RequestChallenge(ctx context.Context) (domain.Challenge, error) {
	return w.fetchChallenge(ctx, true)
}

// RefreshChallenge is the user-triggered alias of RequestChallenge.
func (w *WorkflowController) RefreshChallenge(ctx context.Context) (domain.Challenge, error) {
	return w.RequestChallenge(ctx)
}

// SubmitQuery sends form under the current session token.
//
// The submit control is disabled for the duration of the call and always
// restored afterwards. On failure the error is shown and, once the control
// has been restored, a fresh challenge is requested since the server has
// consumed the old session.
func (w *WorkflowController) SubmitQuery(ctx context.Context, form domain.QueryForm) (*domain.CaseResult, error) {
	result, err := w.submit(ctx, form)
	if err != nil {
		// The recovery fetch reports its own failure; the query error is
		// what the caller gets back.
		_, _ = w.fetchChallenge(ctx, false)
		return nil, err
	}
	return result, nil
}

// SessionToken returns the current token, if any.
func (w *WorkflowController) SessionToken() (domain.SessionToken, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.token == nil {
		return "", false
	}
	return *w.token, true
}

// submit performs one query attempt while holding the submit control.
func (w *WorkflowController) submit(ctx context.Context, form domain.QueryForm) (*domain.CaseResult, error) {
	release := w.acquireSubmit()
	defer release()

	w.presenter.ShowStatus(domain.StatusInfo, domain.MsgFetchingCase)
	w.presenter.HideResult()

	query := domain.NewCaseQuery(w.currentToken(), form)
	if !query.HasSession() {
		logger.Warn("submitting case query without a session token")
	}
	logger.Debug("submitting %s/%s/%d", query.CaseType, query.CaseNumber, query.CaseYear)

	result, err := w.queries.LookupCase(ctx, query)
	if err != nil {
		logger.Debug("case query failed: %v", err)
		w.presenter.ShowStatus(domain.StatusError, domain.UserMessage(err, domain.MsgQueryFailed))
		return nil, err
	}

	w.presenter.ShowResult(*result)
	w.presenter.ClearStatus()
	logger.Debug("case query succeeded with %d document links", len(result.PDFLinks))
	return result, nil
}

// fetchChallenge requests a challenge. When announce is false the
// loading status is not shown and a success does not clear the status
// line, so an error already on screen stays readable.
func (w *WorkflowController) fetchChallenge(ctx context.Context, announce bool) (domain.Challenge, error) {
	if announce {
		w.presenter.ShowStatus(domain.StatusInfo, domain.MsgLoadingChallenge)
	}

	envelope, err := w.challenges.IssueChallenge(ctx)
	if err == nil {
		var challenge domain.Challenge
		challenge, err = envelope.Decode()
		if err == nil {
			w.applyChallenge(challenge)
			if announce {
				w.presenter.ClearStatus()
			}
			logger.Debug("challenge loaded for session %s", challenge.SessionID)
			return challenge, nil
		}
	}

	logger.Debug("challenge fetch failed: %v", err)
	w.presenter.ShowStatus(domain.StatusError, domain.ChallengeFailureMessage(err))
	return domain.Challenge{}, err
}

// acquireSubmit disables the submit control and returns the function
// that restores it. The release function is safe to call more than once.
func (w *WorkflowController) acquireSubmit() (release func()) {
	w.presenter.SetSubmitControl(false, domain.SubmitBusyLabel)
	var once sync.Once
	return func() {
		once.Do(func() {
			w.presenter.SetSubmitControl(true, domain.SubmitLabel)
		})
	}
}

func (w *WorkflowController) currentToken() *domain.SessionToken {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.token == nil {
		return nil
	}
	t := *w.token
	return &t
}

// applyChallenge shows challenge and makes its token current in one step,
// so the image on screen and the stored token always belong together.
func (w *WorkflowController) applyChallenge(challenge domain.Challenge) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.presenter.ShowChallenge(challenge)
	token := challenge.SessionID
	w.token = &token
}
