package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent the failure taxonomy of the lookup workflow.
var (
	// ErrTransport indicates the request could not be completed at all
	// (DNS, connection refused, timeout, truncated body).
	ErrTransport = errors.New("transport failure")

	// ErrChallengeRejected indicates the server answered the CAPTCHA
	// request with a non-success status or an unusable payload.
	ErrChallengeRejected = errors.New("challenge rejected")

	// ErrQueryRejected indicates the server refused a case query. The
	// client cannot tell a wrong answer from an expired session or bad
	// case identifiers; the server's detail text is all it has.
	ErrQueryRejected = errors.New("query rejected")

	// ErrInvalidImage indicates a challenge image payload could not be decoded.
	ErrInvalidImage = errors.New("invalid challenge image")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// TransportError wraps a failure to complete a request.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrTransport and the underlying cause.
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// RejectionError is a non-success answer from the server.
type RejectionError struct {
	// Op names the endpoint that rejected the request.
	Op string

	// StatusCode is the HTTP status, or 0 when the status was a success
	// but the body could not be used.
	StatusCode int

	// Detail is the server-provided explanation, if any.
	Detail string

	// Kind is ErrChallengeRejected or ErrQueryRejected.
	Kind error
}

func (e *RejectionError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the rejection kind so errors.Is works on the sentinels.
func (e *RejectionError) Unwrap() error {
	return e.Kind
}

// UserMessage converts err into the single line shown to the user.
// A server detail wins; otherwise fallback is used.
func UserMessage(err error, fallback string) string {
	var rej *RejectionError
	if errors.As(err, &rej) && rej.Detail != "" {
		return rej.Detail
	}
	return fallback
}

// ChallengeFailureMessage describes a failed challenge fetch. Transport
// failures report their cause since the user can act on it.
func ChallengeFailureMessage(err error) string {
	var te *TransportError
	if errors.As(err, &te) {
		return "Could not reach the server: " + te.Err.Error()
	}
	if errors.Is(err, ErrInvalidImage) {
		return MsgChallengeFailed
	}
	return UserMessage(err, MsgChallengeFailed)
}
