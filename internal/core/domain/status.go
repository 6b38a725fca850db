package domain

// StatusKind classifies a status message shown to the user.
type StatusKind string

// Status kinds.
const (
	// StatusInfo is an informational or in-progress message.
	StatusInfo StatusKind = "info"

	// StatusError is a failure message.
	StatusError StatusKind = "error"
)

// String returns the string representation.
func (k StatusKind) String() string {
	return string(k)
}

// Submit control labels.
const (
	SubmitLabel     = "Fetch Data"
	SubmitBusyLabel = "Fetching..."
)

// User-visible status messages.
const (
	MsgLoadingChallenge = "Loading new CAPTCHA..."
	MsgFetchingCase     = "Fetching case data, this may take a moment..."
	MsgChallengeFailed  = "Failed to load CAPTCHA from server."
	MsgQueryFailed      = "An unknown error occurred."
)
