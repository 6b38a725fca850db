// Package tui provides the interactive terminal user interface for
// casefetch. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/board"
	"github.com/custodia-labs/casefetch/internal/core/ports/driving"
)

// Ports aggregates everything the TUI drives or renders from.
type Ports struct {
	// Workflow runs the CAPTCHA-verified lookup.
	Workflow driving.Workflow

	// Board is the presenter the workflow reports to.
	Board *board.Board

	// ResultAction opens and copies document links. Optional.
	ResultAction driving.ResultActionService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(workflow driving.Workflow, b *board.Board, resultAction driving.ResultActionService) *Ports {
	return &Ports{
		Workflow:     workflow,
		Board:        b,
		ResultAction: resultAction,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Workflow == nil {
		return ErrMissingWorkflow
	}
	if p.Board == nil {
		return ErrMissingBoard
	}
	return nil
}
