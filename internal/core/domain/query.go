package domain

import "time"

// MinCaseYear is the oldest year offered by the year selector.
const MinCaseYear = 1980

// DefaultCaseTypes lists the case types offered when none are configured.
var DefaultCaseTypes = []string{
	"Civil",
	"Criminal",
	"Appeal",
	"Execution",
	"Miscellaneous",
}

// QueryForm holds the four user-entered fields of a lookup, verbatim.
type QueryForm struct {
	CaseType    string
	CaseNumber  string
	CaseYear    int
	CaptchaText string
}

// CaseQuery is a single lookup request. SessionID is nil when no
// challenge has been loaded yet; the server is left to reject it.
type CaseQuery struct {
	SessionID   *SessionToken
	CaseType    string
	CaseNumber  string
	CaseYear    int
	CaptchaText string
}

// NewCaseQuery builds the query sent for form under the given token.
func NewCaseQuery(token *SessionToken, form QueryForm) CaseQuery {
	var sid *SessionToken
	if token != nil {
		t := *token
		sid = &t
	}
	return CaseQuery{
		SessionID:   sid,
		CaseType:    form.CaseType,
		CaseNumber:  form.CaseNumber,
		CaseYear:    form.CaseYear,
		CaptchaText: form.CaptchaText,
	}
}

// HasSession reports whether the query carries a session token.
func (q CaseQuery) HasSession() bool {
	return q.SessionID != nil
}

// YearOptions returns the selectable case years, newest first,
// from the year of now down to MinCaseYear.
func YearOptions(now time.Time) []int {
	current := now.Year()
	if current < MinCaseYear {
		return nil
	}
	years := make([]int, 0, current-MinCaseYear+1)
	for y := current; y >= MinCaseYear; y-- {
		years = append(years, y)
	}
	return years
}

// IsSelectableYear reports whether year is one the year selector offers.
func IsSelectableYear(year int, now time.Time) bool {
	return year >= MinCaseYear && year <= now.Year()
}
