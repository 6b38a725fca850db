package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/casefetch/internal/core/domain"
)

// MockChallengeService implements driven.ChallengeService for testing.
type MockChallengeService struct {
	mu    sync.Mutex
	calls int

	IssueChallengeFunc func(ctx context.Context) (domain.ChallengeEnvelope, error)
}

func (m *MockChallengeService) IssueChallenge(ctx context.Context) (domain.ChallengeEnvelope, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.IssueChallengeFunc != nil {
		return m.IssueChallengeFunc(ctx)
	}
	return domain.ChallengeEnvelope{}, nil
}

// Calls returns how many challenges were requested.
func (m *MockChallengeService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockQueryService implements driven.QueryService for testing.
type MockQueryService struct {
	mu      sync.Mutex
	queries []domain.CaseQuery

	LookupCaseFunc func(ctx context.Context, query domain.CaseQuery) (*domain.CaseResult, error)
}

func (m *MockQueryService) LookupCase(ctx context.Context, query domain.CaseQuery) (*domain.CaseResult, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()
	if m.LookupCaseFunc != nil {
		return m.LookupCaseFunc(ctx, query)
	}
	return &domain.CaseResult{}, nil
}

// Queries returns the queries received so far.
func (m *MockQueryService) Queries() []domain.CaseQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CaseQuery(nil), m.queries...)
}

// RecordingPresenter implements driven.Presenter and keeps both the
// resulting UI state and the ordered list of calls.
type RecordingPresenter struct {
	mu     sync.Mutex
	events []string

	statusVisible bool
	statusKind    domain.StatusKind
	statusMsg     string
	challenge     *domain.Challenge
	result        *domain.CaseResult
	resultVisible bool
	submitEnabled bool
	submitLabel   string
}

// NewRecordingPresenter returns a presenter in the page's initial state.
func NewRecordingPresenter() *RecordingPresenter {
	return &RecordingPresenter{submitEnabled: true, submitLabel: domain.SubmitLabel}
}

func (p *RecordingPresenter) record(format string, args ...any) {
	p.events = append(p.events, fmt.Sprintf(format, args...))
}

func (p *RecordingPresenter) ShowStatus(kind domain.StatusKind, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statusVisible, p.statusKind, p.statusMsg = true, kind, msg
	p.record("status %s: %s", kind, msg)
}

func (p *RecordingPresenter) ClearStatus() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statusVisible, p.statusKind, p.statusMsg = false, "", ""
	p.record("status cleared")
}

func (p *RecordingPresenter) ShowChallenge(challenge domain.Challenge) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := challenge
	p.challenge = &c
	p.record("challenge %s", challenge.SessionID)
}

func (p *RecordingPresenter) ShowResult(result domain.CaseResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r := result
	p.result, p.resultVisible = &r, true
	p.record("result shown")
}

func (p *RecordingPresenter) HideResult() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resultVisible = false
	p.record("result hidden")
}

func (p *RecordingPresenter) SetSubmitControl(enabled bool, label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitEnabled, p.submitLabel = enabled, label
	p.record("submit enabled=%t label=%s", enabled, label)
}

// Events returns a copy of the recorded calls.
func (p *RecordingPresenter) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

// Status returns the visible status line.
func (p *RecordingPresenter) Status() (visible bool, kind domain.StatusKind, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.statusVisible, p.statusKind, p.statusMsg
}

// Challenge returns the displayed challenge, if any.
func (p *RecordingPresenter) Challenge() *domain.Challenge {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.challenge
}

// Result returns the displayed result, or nil if the block is hidden.
func (p *RecordingPresenter) Result() *domain.CaseResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.resultVisible {
		return nil
	}
	return p.result
}

// Submit returns the submit control state.
func (p *RecordingPresenter) Submit() (enabled bool, label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitEnabled, p.submitLabel
}

// MockLinkOpener implements driven.LinkOpener for testing.
type MockLinkOpener struct {
	mu     sync.Mutex
	opened []string
	copied []string

	Err error
}

func (m *MockLinkOpener) Open(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.opened = append(m.opened, url)
	return nil
}

func (m *MockLinkOpener) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.copied = append(m.copied, text)
	return nil
}

// Opened returns the URLs passed to Open.
func (m *MockLinkOpener) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}

// Copied returns the text passed to Copy.
func (m *MockLinkOpener) Copied() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.copied...)
}
