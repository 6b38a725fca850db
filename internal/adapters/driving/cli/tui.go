package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/board"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/views/lookup"
	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive lookup form.

The form shows the CAPTCHA next to the case fields. After a lookup the
document links can be opened or copied.

Controls:
  Tab, Shift+Tab - Move between fields
  ←/→            - Change case type or year
  Enter          - Fetch data / open link
  Ctrl+R         - Load a new CAPTCHA
  y              - Copy link
  Esc, Ctrl+C    - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	// The alternate screen hides stderr, so logs go to a file.
	if rt.LogPath != "" {
		restore, err := logger.SetOutputFile(rt.LogPath)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = restore() }()
	}

	b := board.New()
	workflow, err := rt.NewWorkflow(b)
	if err != nil {
		return fmt.Errorf("failed to create workflow: %w", err)
	}

	app, err := tui.NewApp(tui.NewPorts(workflow, b, rt.ResultActions), lookup.Options{
		CaseTypes:    rt.Settings.Form.CaseTypes,
		Years:        domain.YearOptions(now()),
		CaptchaWidth: rt.Settings.UI.CaptchaWidth,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
