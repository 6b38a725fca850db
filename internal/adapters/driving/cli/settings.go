package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/casefetch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the server address, request pacing and form options.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. Run 'casefetch settings keys' to list the keys.

Lists such as form.case_types are given comma separated.`,
	Example: `  casefetch settings set server.base_url https://cases.example.org
  casefetch settings set form.case_types "Civil,Criminal,Appeal"`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingsRuntime returns the runtime, requiring a settings service.
func settingsRuntime() (*Runtime, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	if rt.SettingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	return rt, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	rt, err := settingsRuntime()
	if err != nil {
		return err
	}

	settings, err := rt.SettingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Base URL: %s\n", settings.Server.BaseURL)
	if rt.Settings != nil && rt.Settings.Server.BaseURL != settings.Server.BaseURL {
		cmd.Printf("  (overridden by --server: %s)\n", rt.Settings.Server.BaseURL)
	}
	cmd.Printf("  Timeout: %s\n", settings.Server.Timeout)
	cmd.Println()

	cmd.Println("[Client]")
	cmd.Printf("  Requests per second: %g\n", settings.Client.RequestsPerSecond)
	cmd.Printf("  Burst: %d\n", settings.Client.Burst)
	cmd.Println()

	cmd.Println("[Form]")
	cmd.Printf("  Case types: %s\n", strings.Join(settings.Form.CaseTypes, ", "))
	cmd.Printf("  Case years: %d to current year\n", domain.MinCaseYear)
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  CAPTCHA width: %d\n", settings.UI.CaptchaWidth)
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Settings are valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	rt, err := settingsRuntime()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := rt.SettingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	rt, err := settingsRuntime()
	if err != nil {
		return err
	}
	for _, key := range rt.SettingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	rt, err := settingsRuntime()
	if err != nil {
		return err
	}
	path := rt.SettingsService.Path()
	if path == "" {
		path = "(not stored)"
	}
	cmd.Println(path)
	return nil
}
