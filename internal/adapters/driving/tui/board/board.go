// Package board holds the on-screen state of the lookup workflow. It is
// the TUI's implementation of the workflow presenter: workflow calls run
// in background commands and write here, and the UI loop renders from
// snapshots.
package board

import (
	"sync"

	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
)

// Ensure Board implements the interface.
var _ driven.Presenter = (*Board)(nil)

// Snapshot is a consistent copy of the board.
type Snapshot struct {
	// Version increases with every change.
	Version uint64

	StatusVisible bool
	StatusKind    domain.StatusKind
	Status        string

	// Challenge is nil until the first challenge is shown.
	Challenge *domain.Challenge

	// Result is nil while the result block is hidden.
	Result *domain.CaseResult

	SubmitEnabled bool
	SubmitLabel   string
}

// Board is a goroutine-safe presenter.
type Board struct {
	mu     sync.Mutex
	state  Snapshot
	notify func()
}

// New returns a board in the initial page state: no status, no challenge,
// no result and an enabled submit control.
func New() *Board {
	return &Board{
		state: Snapshot{
			SubmitEnabled: true,
			SubmitLabel:   domain.SubmitLabel,
		},
	}
}

// OnChange registers fn to be called after every change. fn is called
// without the board lock held and must not block.
func (b *Board) OnChange(fn func()) {
	b.mu.Lock()
	b.notify = fn
	b.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// ShowStatus implements driven.Presenter.
func (b *Board) ShowStatus(kind domain.StatusKind, msg string) {
	b.update(func(s *Snapshot) {
		s.StatusVisible = true
		s.StatusKind = kind
		s.Status = msg
	})
}

// ClearStatus implements driven.Presenter.
func (b *Board) ClearStatus() {
	b.update(func(s *Snapshot) {
		s.StatusVisible = false
		s.Status = ""
	})
}

// ShowChallenge implements driven.Presenter.
func (b *Board) ShowChallenge(challenge domain.Challenge) {
	b.update(func(s *Snapshot) {
		c := challenge
		s.Challenge = &c
	})
}

// ShowResult implements driven.Presenter.
func (b *Board) ShowResult(result domain.CaseResult) {
	b.update(func(s *Snapshot) {
		r := result
		r.PDFLinks = append([]string(nil), result.PDFLinks...)
		s.Result = &r
	})
}

// HideResult implements driven.Presenter.
func (b *Board) HideResult() {
	b.update(func(s *Snapshot) {
		s.Result = nil
	})
}

// SetSubmitControl implements driven.Presenter.
func (b *Board) SetSubmitControl(enabled bool, label string) {
	b.update(func(s *Snapshot) {
		s.SubmitEnabled = enabled
		s.SubmitLabel = label
	})
}

func (b *Board) update(fn func(*Snapshot)) {
	b.mu.Lock()
	fn(&b.state)
	b.state.Version++
	notify := b.notify
	b.mu.Unlock()

	if notify != nil {
		notify()
	}
}
