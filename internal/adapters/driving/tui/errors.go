package tui

import "errors"

// ErrMissingWorkflow is returned when the lookup workflow is not provided.
var ErrMissingWorkflow = errors.New("tui: lookup workflow is required")

// ErrMissingBoard is returned when the presenter board is not provided.
var ErrMissingBoard = errors.New("tui: presenter board is required")
