package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// sessionID is the wire form of a session token. Servers in the wild send
// it either as a JSON string or as an integer counter; it is always sent
// back as a string.
type sessionID string

// UnmarshalJSON accepts a string or a number.
func (s *sessionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = sessionID(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("session_id must be a string or number: %w", err)
	}
	*s = sessionID(num.String())
	return nil
}

// captchaResponse is the GET /api/captcha response body.
type captchaResponse struct {
	CaptchaImage string    `json:"captcha_image"`
	SessionID    sessionID `json:"session_id"`
}

// caseDataRequest is the POST /api/case-data request body. SessionID has
// no omitempty: an absent token is sent as null.
type caseDataRequest struct {
	SessionID   *string `json:"session_id"`
	CaseType    string  `json:"case_type"`
	CaseNumber  string  `json:"case_number"`
	CaseYear    int     `json:"case_year"`
	CaptchaText string  `json:"captcha_text"`
}

// caseDataResponse is the POST /api/case-data success body.
type caseDataResponse struct {
	Parties         string   `json:"parties"`
	FilingDate      string   `json:"filing_date"`
	NextHearingDate string   `json:"next_hearing_date"`
	PDFLinks        []string `json:"pdf_links"`
}

// errorResponse is the failure body. Detail is usually a string, but
// request validation failures carry a list of {loc, msg, type} objects.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// parseDetail extracts a user-facing message from a failure body.
// Anything unrecognised yields "".
func parseDetail(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(resp.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var issues []validationIssue
	if err := json.Unmarshal(resp.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if m := strings.TrimSpace(issue.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
