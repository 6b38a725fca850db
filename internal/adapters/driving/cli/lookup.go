package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/casefetch/internal/core/domain"
)

// Lookup command flags.
var (
	lookupType       string
	lookupNumber     string
	lookupYear       int
	lookupCaptchaOut string
	lookupJSON       bool
	lookupAttempts   int
	lookupOpen       int
)

// errNoAnswer is returned when input ends before an answer is given.
var errNoAnswer = errors.New("no CAPTCHA answer given")

// now is replaced in tests.
var now = time.Now

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up a case",
	Long: `Look up a case by type, number and year.

A CAPTCHA is loaded and drawn on stderr, then you are asked for the
characters it shows. Press Enter on an empty line to load a different
CAPTCHA. When the server rejects an answer a new CAPTCHA is loaded and
you are asked again, up to --attempts times.`,
	Example: `  casefetch lookup --type Civil --number 1234 --year 2020
  casefetch lookup --type Civil --number 1234 --json
  casefetch lookup --number 1234 --captcha-out captcha.png`,
	Args: cobra.NoArgs,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupType, "type", "t", "", "case type (default: first configured type)")
	lookupCmd.Flags().StringVarP(&lookupNumber, "number", "n", "", "case number (prompted for when omitted)")
	lookupCmd.Flags().IntVarP(&lookupYear, "year", "y", 0, "case year (default: current year)")
	lookupCmd.Flags().StringVar(&lookupCaptchaOut, "captcha-out", "", "also save each CAPTCHA image to this file")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print the result as JSON")
	lookupCmd.Flags().IntVar(&lookupAttempts, "attempts", 3, "maximum number of answers to submit")
	lookupCmd.Flags().IntVar(&lookupOpen, "open", 0, "open the Nth document link after a successful lookup")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	if lookupAttempts < 1 {
		return fmt.Errorf("%w: --attempts must be at least 1", domain.ErrInvalidInput)
	}

	in := bufio.NewReader(cmd.InOrStdin())
	stderr := cmd.ErrOrStderr()

	form, err := lookupForm(rt.Settings, in, stderr)
	if err != nil {
		return err
	}

	con := newConsole(stderr, rt.Settings.UI.CaptchaWidth, lookupCaptchaOut)
	workflow, err := rt.NewWorkflow(con)
	if err != nil {
		return fmt.Errorf("failed to create workflow: %w", err)
	}

	ctx := cmd.Context()
	if _, err := workflow.RequestChallenge(ctx); err != nil {
		return fmt.Errorf("could not load CAPTCHA: %w", err)
	}

	for attempt := 1; ; {
		answer, err := prompt(in, stderr, "Enter the characters shown (blank for a new CAPTCHA): ")
		if err != nil {
			return err
		}
		if answer == "" {
			if _, err := workflow.RefreshChallenge(ctx); err != nil {
				return fmt.Errorf("could not load CAPTCHA: %w", err)
			}
			continue
		}

		form.CaptchaText = answer
		shown := con.Challenges()
		result, err := workflow.SubmitQuery(ctx, form)
		if err == nil {
			if err := printResult(cmd, rt, result); err != nil {
				return err
			}
			return openDocument(cmd, rt, result)
		}

		// Only a rejected answer with a replacement challenge on screen
		// is worth another try.
		if attempt >= lookupAttempts || con.Challenges() == shown {
			return fmt.Errorf("lookup failed: %w", err)
		}
		attempt++
	}
}

// lookupForm collects the case fields from flags, prompting for a
// missing case number.
func lookupForm(settings *domain.Settings, in *bufio.Reader, out io.Writer) (domain.QueryForm, error) {
	caseType := lookupType
	if caseType == "" {
		caseType = settings.Form.CaseTypes[0]
	}
	if !settings.IsKnownCaseType(caseType) {
		return domain.QueryForm{}, fmt.Errorf("%w: unknown case type %q (choose from %s)",
			domain.ErrInvalidInput, caseType, strings.Join(settings.Form.CaseTypes, ", "))
	}

	year := lookupYear
	if year == 0 {
		year = now().Year()
	}
	if !domain.IsSelectableYear(year, now()) {
		return domain.QueryForm{}, fmt.Errorf("%w: case year must be between %d and %d",
			domain.ErrInvalidInput, domain.MinCaseYear, now().Year())
	}

	number := lookupNumber
	if number == "" {
		var err error
		number, err = prompt(in, out, "Case number: ")
		if err != nil {
			return domain.QueryForm{}, err
		}
	}

	return domain.QueryForm{
		CaseType:   caseType,
		CaseNumber: number,
		CaseYear:   year,
	}, nil
}

// prompt writes label and reads one trimmed line.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(out)
		if errors.Is(err, io.EOF) {
			return "", errNoAnswer
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// resultOutput is the JSON form of a lookup result.
type resultOutput struct {
	Parties         string   `json:"parties"`
	FilingDate      string   `json:"filing_date"`
	NextHearingDate string   `json:"next_hearing_date"`
	PDFLinks        []string `json:"pdf_links"`
}

func printResult(cmd *cobra.Command, rt *Runtime, result *domain.CaseResult) error {
	links := resolveLinks(rt, result.PDFLinks)

	if lookupJSON {
		data, err := json.MarshalIndent(resultOutput{
			Parties:         result.Parties,
			FilingDate:      result.FilingDate,
			NextHearingDate: result.NextHearingDate,
			PDFLinks:        links,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Parties:           %s\n", result.Parties)
	cmd.Printf("Filing Date:       %s\n", result.FilingDate)
	cmd.Printf("Next Hearing Date: %s\n", result.NextHearingDate)
	cmd.Println("Orders/Judgments:")
	if len(links) == 0 {
		cmd.Println("  none")
		return nil
	}
	for i, link := range links {
		cmd.Printf("  %d. Download PDF  %s\n", i+1, link)
	}
	return nil
}

// resolveLinks makes document links absolute where possible.
func resolveLinks(rt *Runtime, links []string) []string {
	out := make([]string, len(links))
	for i, link := range links {
		out[i] = link
		if rt.ResultActions == nil {
			continue
		}
		if abs, err := rt.ResultActions.ResolveLink(link); err == nil {
			out[i] = abs
		}
	}
	return out
}

func openDocument(cmd *cobra.Command, rt *Runtime, result *domain.CaseResult) error {
	if lookupOpen == 0 {
		return nil
	}
	if lookupOpen < 0 || lookupOpen > len(result.PDFLinks) {
		return fmt.Errorf("%w: --open %d but the case has %d documents",
			domain.ErrInvalidInput, lookupOpen, len(result.PDFLinks))
	}
	if rt.ResultActions == nil {
		return errors.New("link actions not configured")
	}
	if err := rt.ResultActions.OpenLink(cmd.Context(), result.PDFLinks[lookupOpen-1]); err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	return nil
}
