package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/casefetch/internal/termimage"
)

var captchaOut string

var captchaCmd = &cobra.Command{
	Use:   "captcha",
	Short: "Fetch a CAPTCHA and print its session id",
	Long: `Fetch a single CAPTCHA from the server, draw it on stderr and print the
session id it belongs to. Useful for checking that the server is reachable.`,
	Args: cobra.NoArgs,
	RunE: runCaptcha,
}

func init() {
	captchaCmd.Flags().StringVarP(&captchaOut, "out", "o", "", "save the image to this file")
	rootCmd.AddCommand(captchaCmd)
}

func runCaptcha(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}

	con := newConsole(cmd.ErrOrStderr(), rt.Settings.UI.CaptchaWidth, "")
	workflow, err := rt.NewWorkflow(con)
	if err != nil {
		return fmt.Errorf("failed to create workflow: %w", err)
	}

	challenge, err := workflow.RequestChallenge(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not load CAPTCHA: %w", err)
	}

	if captchaOut != "" {
		if err := termimage.WriteFile(captchaOut, challenge.Image); err != nil {
			return fmt.Errorf("failed to save image: %w", err)
		}
		cmd.PrintErrf("Saved %s image to %s\n", termimage.Extension(challenge.Image), captchaOut)
	}

	cmd.Println(challenge.SessionID)
	return nil
}
