package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/services"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "set", "keys", "path"}, names)
}

func TestSettingsShow_Defaults(t *testing.T) {
	env := setupTestServices(t)

	stdout, _, err := execute("", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Base URL: "+domain.DefaultBaseURL)
	assert.Contains(t, stdout, "(overridden by --server: "+env.server.URL+")")
	assert.Contains(t, stdout, "Timeout: 1m0s")
	assert.Contains(t, stdout, "Burst: 4")
	assert.Contains(t, stdout, "Case types: "+strings.Join(domain.DefaultCaseTypes, ", "))
	assert.Contains(t, stdout, "Settings are valid.")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute("", "settings")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Current Settings")
}

func TestSettingsSet(t *testing.T) {
	env := setupTestServices(t)

	stdout, _, err := execute("", "settings", "set", services.KeyCaseTypes, "Civil, Writ")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Set form.case_types")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Civil", "Writ"}, settings.Form.CaseTypes)
}

func TestSettingsSet_Invalid(t *testing.T) {
	env := setupTestServices(t)

	_, _, err := execute("", "settings", "set", services.KeyBurst, "many")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, stored := env.store.Get(services.KeyBurst)
	assert.False(t, stored)
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute("", "settings", "set", services.KeyBurst)

	assert.Error(t, err)
}

func TestSettingsKeys(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute("", "settings", "keys")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, services.NewSettingsService(nil).Keys(), lines)
}

func TestSettingsPath_Memory(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := execute("", "settings", "path")

	require.NoError(t, err)
	assert.Equal(t, "(not stored)\n", stdout)
}

func TestSettings_NoService(t *testing.T) {
	setupTestServices(t)
	SetBootstrap(func(Options) (*Runtime, error) {
		return &Runtime{Settings: domain.DefaultSettings()}, nil
	})

	_, _, err := execute("", "settings", "keys")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
