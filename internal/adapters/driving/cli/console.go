package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
	"github.com/custodia-labs/casefetch/internal/logger"
	"github.com/custodia-labs/casefetch/internal/termimage"
)

// Ensure console implements the interface.
var _ driven.Presenter = (*console)(nil)

// console presents workflow state on a terminal stream. Status lines and
// challenge images go to w so that stdout carries only results.
type console struct {
	mu sync.Mutex

	w          io.Writer
	renderer   *termimage.Renderer
	width      int
	captchaOut string

	status     string
	kind       domain.StatusKind
	challenges int
	last       *domain.Challenge
	result     *domain.CaseResult
	enabled    bool
	label      string
}

// newConsole creates a console writing to w. Challenges are drawn in
// colour only when w is a terminal.
func newConsole(w io.Writer, width int, captchaOut string) *console {
	renderer := termimage.NewPlainRenderer()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		renderer = termimage.NewRenderer()
	}
	return &console{
		w:          w,
		renderer:   renderer,
		width:      width,
		captchaOut: captchaOut,
		enabled:    true,
		label:      domain.SubmitLabel,
	}
}

func (c *console) ShowStatus(kind domain.StatusKind, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.kind = kind
	c.status = msg
	if kind == domain.StatusError {
		fmt.Fprintf(c.w, "Error: %s\n", msg)
		return
	}
	fmt.Fprintln(c.w, msg)
}

func (c *console) ClearStatus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = ""
	c.kind = ""
}

func (c *console) ShowChallenge(challenge domain.Challenge) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.challenges++
	ch := challenge
	c.last = &ch

	if c.captchaOut != "" {
		if err := termimage.WriteFile(c.captchaOut, challenge.Image); err != nil {
			fmt.Fprintf(c.w, "Could not save CAPTCHA image: %v\n", err)
		} else {
			fmt.Fprintf(c.w, "CAPTCHA image saved to %s\n", c.captchaOut)
		}
	}

	art, err := c.renderer.RenderBytes(challenge.Image, c.width)
	if err != nil {
		logger.Debug("cannot render challenge: %v", err)
		if c.captchaOut == "" {
			fmt.Fprintln(c.w, "The CAPTCHA image cannot be shown here; use --captcha-out to save it.")
		}
		return
	}
	fmt.Fprintln(c.w, art)
}

func (c *console) ShowResult(result domain.CaseResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := result
	c.result = &r
}

func (c *console) HideResult() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = nil
}

func (c *console) SetSubmitControl(enabled bool, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
	c.label = label
	logger.Debug("submit control: enabled=%t label=%q", enabled, label)
}

// Challenges returns how many challenges have been shown.
func (c *console) Challenges() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.challenges
}

// Status returns the message currently on the status line.
func (c *console) Status() (domain.StatusKind, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kind, c.status
}

// Result returns the result currently displayed, if any.
func (c *console) Result() *domain.CaseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// SubmitControl returns the submit control state.
func (c *console) SubmitControl() (bool, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled, c.label
}

// LastChallenge returns the most recently shown challenge.
func (c *console) LastChallenge() *domain.Challenge {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
