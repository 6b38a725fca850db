// Package cli provides the casefetch command line interface. It is a
// driving adapter: commands translate flags and prompts into workflow
// calls and print what the presenter reports.
package cli

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
	"github.com/custodia-labs/casefetch/internal/core/ports/driving"
	"github.com/custodia-labs/casefetch/internal/logger"
)

// version is set by Execute.
var version = "dev"

// Persistent flag values.
var (
	verboseFlag   bool
	configDirFlag string
	noConfigFlag  bool
	serverFlag    string
)

// Options are the global flag values handed to the bootstrap function.
type Options struct {
	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// NoConfig ignores the configuration file and uses defaults.
	NoConfig bool

	// Server overrides the configured server base URL.
	Server string
}

// Runtime is the wired application the commands operate on.
type Runtime struct {
	// Settings are the effective settings after flag overrides.
	Settings *domain.Settings

	// SettingsService reads and writes the configuration file.
	SettingsService driving.SettingsService

	// NewWorkflow creates a lookup workflow that reports to presenter.
	NewWorkflow func(presenter driven.Presenter) (driving.Workflow, error)

	// ResultActions opens and copies document links. May be nil.
	ResultActions driving.ResultActionService

	// LogPath is where the terminal UI writes logs. Empty disables
	// file logging.
	LogPath string
}

// BootstrapFunc builds the runtime from the global flags.
type BootstrapFunc func(opts Options) (*Runtime, error)

var (
	bootstrap BootstrapFunc

	runtimeMu sync.Mutex
	current   *Runtime
)

// errNotConfigured is returned when a command runs without a bootstrap.
var errNotConfigured = errors.New("casefetch is not configured")

var rootCmd = &cobra.Command{
	Use:   "casefetch",
	Short: "Look up court case data behind a CAPTCHA",
	Long: `casefetch fetches case metadata from a case lookup server.

Every lookup is verified with a CAPTCHA: casefetch loads a challenge,
shows it in the terminal, and sends your answer together with the case
type, number and year. A rejected answer always needs a fresh CAPTCHA,
which is loaded automatically.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log requests and workflow steps to stderr")
	flags.StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.casefetch)")
	flags.BoolVar(&noConfigFlag, "no-config", false, "ignore the configuration file")
	flags.StringVar(&serverFlag, "server", "", "server base URL, overrides server.base_url")
}

// SetBootstrap sets the function that wires the application.
func SetBootstrap(fn BootstrapFunc) {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	bootstrap = fn
	current = nil
}

// loadRuntime builds the runtime on first use.
func loadRuntime() (*Runtime, error) {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	if current != nil {
		return current, nil
	}
	if bootstrap == nil {
		return nil, errNotConfigured
	}

	rt, err := bootstrap(Options{
		ConfigDir: configDirFlag,
		NoConfig:  noConfigFlag,
		Server:    serverFlag,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise: %w", err)
	}
	current = rt
	return rt, nil
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
