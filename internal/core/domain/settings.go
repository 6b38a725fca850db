package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Default settings values.
const (
	DefaultBaseURL           = "http://localhost:8000"
	DefaultTimeout           = 60 * time.Second
	DefaultRequestsPerSecond = 2.0
	DefaultBurst             = 4
	DefaultCaptchaWidth      = 60
)

// ServerSettings locates the case lookup API.
type ServerSettings struct {
	// BaseURL is prepended to /api/captcha and /api/case-data.
	BaseURL string

	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration
}

// ClientSettings throttles outgoing requests.
type ClientSettings struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the maximum number of back-to-back requests.
	Burst int
}

// FormSettings configures the lookup form controls.
type FormSettings struct {
	// CaseTypes are the values offered by the case type selector.
	CaseTypes []string
}

// UISettings configures rendering.
type UISettings struct {
	// CaptchaWidth is the width, in terminal cells, of rendered challenges.
	CaptchaWidth int
}

// Settings is the complete client configuration.
type Settings struct {
	Server ServerSettings
	Client ClientSettings
	Form   FormSettings
	UI     UISettings
}

// DefaultSettings returns settings with all defaults applied.
func DefaultSettings() *Settings {
	types := make([]string, len(DefaultCaseTypes))
	copy(types, DefaultCaseTypes)
	return &Settings{
		Server: ServerSettings{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Client: ClientSettings{
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultBurst,
		},
		Form: FormSettings{
			CaseTypes: types,
		},
		UI: UISettings{
			CaptchaWidth: DefaultCaptchaWidth,
		},
	}
}

// Validate checks the settings are usable.
func (s *Settings) Validate() error {
	u, err := url.Parse(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: server.base_url: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: server.base_url must be http or https", ErrInvalidInput)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: server.base_url has no host", ErrInvalidInput)
	}
	if s.Server.Timeout <= 0 {
		return fmt.Errorf("%w: server.timeout_seconds must be positive", ErrInvalidInput)
	}
	if s.Client.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: client.requests_per_second must be positive", ErrInvalidInput)
	}
	if s.Client.Burst < 1 {
		return fmt.Errorf("%w: client.burst must be at least 1", ErrInvalidInput)
	}
	if len(s.Form.CaseTypes) == 0 {
		return fmt.Errorf("%w: form.case_types is empty", ErrInvalidInput)
	}
	if s.UI.CaptchaWidth < 8 {
		return fmt.Errorf("%w: ui.captcha_width must be at least 8", ErrInvalidInput)
	}
	return nil
}

// IsKnownCaseType reports whether caseType is offered by the selector.
func (s *Settings) IsKnownCaseType(caseType string) bool {
	for _, t := range s.Form.CaseTypes {
		if t == caseType {
			return true
		}
	}
	return false
}
