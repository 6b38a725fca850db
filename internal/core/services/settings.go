package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
	"github.com/custodia-labs/casefetch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyBaseURL           = "server.base_url"
	KeyTimeoutSeconds    = "server.timeout_seconds"
	KeyRequestsPerSecond = "client.requests_per_second"
	KeyBurst             = "client.burst"
	KeyCaseTypes         = "form.case_types"
	KeyCaptchaWidth      = "ui.captcha_width"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or unusable
// values fall back to their defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Server: domain.ServerSettings{
			BaseURL: s.getString(KeyBaseURL, defaults.Server.BaseURL),
			Timeout: s.getSeconds(KeyTimeoutSeconds, defaults.Server.Timeout),
		},
		Client: domain.ClientSettings{
			RequestsPerSecond: s.getPositiveFloat(KeyRequestsPerSecond, defaults.Client.RequestsPerSecond),
			Burst:             s.getPositiveInt(KeyBurst, defaults.Client.Burst),
		},
		Form: domain.FormSettings{
			CaseTypes: s.getStringSlice(KeyCaseTypes, defaults.Form.CaseTypes),
		},
		UI: domain.UISettings{
			CaptchaWidth: s.getPositiveInt(KeyCaptchaWidth, defaults.UI.CaptchaWidth),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyBaseURL, strings.TrimRight(settings.Server.BaseURL, "/")},
		{KeyTimeoutSeconds, int64(settings.Server.Timeout / time.Second)},
		{KeyRequestsPerSecond, settings.Client.RequestsPerSecond},
		{KeyBurst, int64(settings.Client.Burst)},
		{KeyCaseTypes, settings.Form.CaseTypes},
		{KeyCaptchaWidth, int64(settings.UI.CaptchaWidth)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the resulting settings and saves them.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyBaseURL:
		settings.Server.BaseURL = value
	case KeyTimeoutSeconds:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Server.Timeout = time.Duration(n) * time.Second
	case KeyRequestsPerSecond:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.Client.RequestsPerSecond = f
	case KeyBurst:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Client.Burst = n
	case KeyCaseTypes:
		settings.Form.CaseTypes = splitList(value)
	case KeyCaptchaWidth:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.UI.CaptchaWidth = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys lists the config keys accepted by Set, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyBaseURL, KeyTimeoutSeconds, KeyRequestsPerSecond,
		KeyBurst, KeyCaseTypes, KeyCaptchaWidth,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return *domain.DefaultSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if v := strings.TrimSpace(s.configStore.GetString(key)); v != "" {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getPositiveFloat(key string, defaultVal float64) float64 {
	if v := s.configStore.GetFloat(key); v > 0 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	if v := s.configStore.GetInt(key); v > 0 {
		return time.Duration(v) * time.Second
	}
	return defaultVal
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if v := s.configStore.GetStringSlice(key); len(v) > 0 {
		return v
	}
	return defaultVal
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
