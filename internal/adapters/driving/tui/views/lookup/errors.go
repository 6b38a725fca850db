package lookup

import "errors"

// Error definitions for the lookup view.
var (
	// ErrNoWorkflow indicates that no workflow was provided.
	ErrNoWorkflow = errors.New("lookup workflow is required")

	// ErrNoBoard indicates that no board was provided.
	ErrNoBoard = errors.New("lookup board is required")
)
