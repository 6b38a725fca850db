// Package lookup provides the case lookup screen: the query form, the
// CAPTCHA panel, the result panel and the status bar.
package lookup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/board"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/components/selector"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/ports/driving"
	"github.com/custodia-labs/casefetch/internal/termimage"
)

// Options configures the form controls.
type Options struct {
	// CaseTypes are offered by the case type selector.
	CaseTypes []string

	// Years are offered by the year selector, newest first.
	Years []int

	// CaptchaWidth is the rendered challenge width in cells.
	CaptchaWidth int

	// Renderer draws the challenge image. Defaults to termimage.NewRenderer.
	Renderer *termimage.Renderer
}

// View is the lookup screen.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	caseType   *selector.Selector
	caseNumber *input.Field
	year       *selector.Selector
	captcha    *input.Field
	links      *list.LinkList
	statusbar  *status.Bar

	board    *board.Board
	workflow driving.Workflow
	actions  driving.ResultActionService
	ctx      context.Context

	renderer     *termimage.Renderer
	captchaWidth int
	captchaArt   string

	snap    board.Snapshot
	pending bool
	focus   messages.FocusTarget
	notice  string

	width  int
	height int
}

// NewView creates a new lookup view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	b *board.Board,
	workflow driving.Workflow,
	actions driving.ResultActionService,
	opts Options,
) (*View, error) {
	if workflow == nil {
		return nil, ErrNoWorkflow
	}
	if b == nil {
		return nil, ErrNoBoard
	}
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if len(opts.CaseTypes) == 0 {
		opts.CaseTypes = domain.DefaultCaseTypes
	}
	if opts.CaptchaWidth <= 0 {
		opts.CaptchaWidth = domain.DefaultCaptchaWidth
	}
	if opts.Renderer == nil {
		opts.Renderer = termimage.NewRenderer()
	}

	years := make([]string, len(opts.Years))
	for i, y := range opts.Years {
		years[i] = strconv.Itoa(y)
	}

	v := &View{
		styles:       s,
		keymap:       km,
		caseType:     selector.New(s, "Case Type", opts.CaseTypes),
		caseNumber:   input.NewField(s, "Case Number", "e.g. 1234", 64),
		year:         selector.New(s, "Case Year", years),
		captcha:      input.NewField(s, "CAPTCHA", "type the characters shown", 32),
		links:        list.NewLinkList(s),
		statusbar:    status.NewBar(s, km),
		board:        b,
		workflow:     workflow,
		actions:      actions,
		ctx:          context.Background(),
		renderer:     opts.Renderer,
		captchaWidth: opts.CaptchaWidth,
		snap:         b.Snapshot(),
		width:        80,
		height:       24,
	}
	v.setFocus(messages.FocusCaseType)
	return v, nil
}

// WithContext sets the context used for workflow calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init requests the first challenge and starts the spinner.
func (v *View) Init() tea.Cmd {
	return tea.Batch(
		v.requestChallenge(false),
		v.statusbar.Init(),
		v.caseNumber.Init(),
	)
}

// Update handles messages for the lookup view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.BoardChanged, messages.ChallengeLoaded:
		v.Sync()
		return v, nil

	case messages.QueryFinished:
		v.pending = false
		v.Sync()
		if msg.Err == nil && v.links.Count() > 0 {
			v.setFocus(messages.FocusLinks)
		}
		return v, nil

	case messages.LinkActionDone:
		v.notice = linkNotice(msg)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.statusbar, cmd = v.statusbar.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	// Forward anything else (cursor blink) to the focused field
	return v, v.updateFocusedField(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Refresh):
		return v, v.requestChallenge(true)
	case key.Matches(msg, v.keymap.Next):
		return v, v.moveFocus(1)
	case key.Matches(msg, v.keymap.Prev):
		return v, v.moveFocus(-1)
	}

	if v.focus == messages.FocusLinks {
		return v.handleLinksKey(msg)
	}

	if key.Matches(msg, v.keymap.Submit) {
		return v, v.Submit()
	}

	switch v.focus {
	case messages.FocusCaseType:
		v.caseType, _ = v.caseType.Update(msg)
	case messages.FocusCaseYear:
		v.year, _ = v.year.Update(msg)
	case messages.FocusCaseNumber, messages.FocusCaptcha:
		return v, v.updateFocusedField(msg)
	case messages.FocusSubmit, messages.FocusLinks:
		// Nothing to edit
	}
	return v, nil
}

// handleLinksKey processes keys while the document list is focused.
func (v *View) handleLinksKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	link := v.links.SelectedLink()
	switch {
	case key.Matches(msg, v.keymap.Open):
		if link == "" {
			return v, nil
		}
		return v, v.linkAction(messages.LinkOpened, link)
	case key.Matches(msg, v.keymap.Copy):
		if link == "" {
			return v, nil
		}
		return v, v.linkAction(messages.LinkCopied, link)
	}
	v.links, _ = v.links.Update(msg)
	return v, nil
}

// Submit sends the form unless the submit control is disabled or a
// submission from this view is still in flight.
func (v *View) Submit() tea.Cmd {
	if v.pending || !v.snap.SubmitEnabled {
		return nil
	}
	v.pending = true
	form := v.Form()
	workflow, ctx := v.workflow, v.ctx

	// The board notification may arrive after the next key press.
	v.statusbar.SetBusy(true)

	return func() tea.Msg {
		result, err := workflow.SubmitQuery(ctx, form)
		return messages.QueryFinished{Result: result, Err: err}
	}
}

// Form returns the current form values.
func (v *View) Form() domain.QueryForm {
	caseType, _ := v.caseType.Value()
	yearText, _ := v.year.Value()
	year, _ := strconv.Atoi(yearText)
	return domain.QueryForm{
		CaseType:    caseType,
		CaseNumber:  v.caseNumber.Value(),
		CaseYear:    year,
		CaptchaText: v.captcha.Value(),
	}
}

func (v *View) requestChallenge(userTriggered bool) tea.Cmd {
	workflow, ctx := v.workflow, v.ctx
	return func() tea.Msg {
		var (
			ch  domain.Challenge
			err error
		)
		if userTriggered {
			ch, err = workflow.RefreshChallenge(ctx)
		} else {
			ch, err = workflow.RequestChallenge(ctx)
		}
		return messages.ChallengeLoaded{Challenge: ch, Err: err}
	}
}

func (v *View) linkAction(action messages.LinkAction, link string) tea.Cmd {
	actions, ctx := v.actions, v.ctx
	return func() tea.Msg {
		if actions == nil {
			return messages.LinkActionDone{Action: action, Link: link, Err: fmt.Errorf("link actions are not available")}
		}
		var err error
		if action == messages.LinkCopied {
			err = actions.CopyLink(ctx, link)
		} else {
			err = actions.OpenLink(ctx, link)
		}
		return messages.LinkActionDone{Action: action, Link: link, Err: err}
	}
}

// Sync pulls the latest board state into the view.
func (v *View) Sync() {
	snap := v.board.Snapshot()
	prev := v.snap
	v.snap = snap

	if snap.StatusVisible {
		v.statusbar.SetStatus(snap.StatusKind, snap.Status)
	} else {
		v.statusbar.Clear()
	}
	v.statusbar.SetBusy(v.pending || !snap.SubmitEnabled)

	if snap.Challenge != nil && snap.Challenge != prev.Challenge {
		v.captchaArt = v.renderChallenge(snap.Challenge)
		// A previous answer cannot match the new image.
		v.captcha.Reset()
	}

	if snap.Result != prev.Result {
		v.notice = ""
		if snap.Result != nil {
			v.links.SetLinks(snap.Result.PDFLinks)
		} else {
			v.links.SetLinks(nil)
		}
		if v.focus == messages.FocusLinks && v.links.IsEmpty() {
			v.setFocus(messages.FocusSubmit)
		}
	}
}

func (v *View) renderChallenge(ch *domain.Challenge) string {
	art, err := v.renderer.RenderBytes(ch.Image, v.captchaWidth)
	if err != nil {
		return v.styles.Muted.Render("(challenge image cannot be shown in this terminal)")
	}
	return art
}

// moveFocus cycles focus by delta, skipping the document list when it is empty.
func (v *View) moveFocus(delta int) tea.Cmd {
	count := int(messages.FocusLinks) + 1
	next := v.focus
	for i := 0; i < count; i++ {
		next = messages.FocusTarget((int(next) + delta + count) % count)
		if next != messages.FocusLinks || !v.links.IsEmpty() {
			break
		}
	}
	return v.setFocus(next)
}

func (v *View) setFocus(target messages.FocusTarget) tea.Cmd {
	v.focus = target
	v.caseType.Blur()
	v.year.Blur()
	v.caseNumber.Blur()
	v.captcha.Blur()
	v.links.Blur()

	hints := v.keymap.FormHelp()
	var cmd tea.Cmd
	switch target {
	case messages.FocusCaseType:
		v.caseType.Focus()
		hints = v.keymap.SelectorHelp()
	case messages.FocusCaseYear:
		v.year.Focus()
		hints = v.keymap.SelectorHelp()
	case messages.FocusCaseNumber:
		cmd = v.caseNumber.Focus()
	case messages.FocusCaptcha:
		cmd = v.captcha.Focus()
	case messages.FocusLinks:
		v.links.Focus()
		hints = v.keymap.LinksHelp()
	case messages.FocusSubmit:
		// Button focus is drawn in View
	}
	v.statusbar.SetHints(hints)
	return cmd
}

func (v *View) updateFocusedField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch v.focus {
	case messages.FocusCaseNumber:
		v.caseNumber, cmd = v.caseNumber.Update(msg)
	case messages.FocusCaptcha:
		v.captcha, cmd = v.captcha.Update(msg)
	case messages.FocusCaseType, messages.FocusCaseYear,
		messages.FocusSubmit, messages.FocusLinks:
		// Not a text field
	}
	return cmd
}

// View renders the lookup screen.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render("Case Lookup"),
		"",
		v.caseType.View(),
		v.caseNumber.View(),
		v.year.View(),
		"",
		v.renderCaptchaPanel(),
		v.captcha.View(),
		"",
		v.renderSubmit(),
	}

	if v.snap.Result != nil {
		sections = append(sections, "", v.renderResult())
	}
	if v.notice != "" {
		sections = append(sections, v.styles.Muted.Render(v.notice))
	}
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderCaptchaPanel() string {
	body := v.captchaArt
	if v.snap.Challenge == nil {
		body = v.styles.Muted.Render("No CAPTCHA loaded. Press ctrl+r to try again.")
	}
	return v.styles.Panel.Render(body)
}

func (v *View) renderSubmit() string {
	label := v.snap.SubmitLabel
	switch {
	case v.pending || !v.snap.SubmitEnabled:
		return v.styles.ButtonDisabled.Render(label)
	case v.focus == messages.FocusSubmit:
		return v.styles.ButtonFocused.Render(label)
	default:
		return v.styles.Button.Render(label)
	}
}

func (v *View) renderResult() string {
	r := v.snap.Result
	row := func(label, value string) string {
		return v.styles.Subtitle.Render(label+": ") + v.styles.Normal.Render(value)
	}
	lines := []string{
		row("Parties", r.Parties),
		row("Filing Date", r.FilingDate),
		row("Next Hearing Date", r.NextHearingDate),
		v.styles.Subtitle.Render("Orders/Judgments:"),
		v.links.View(),
	}
	return v.styles.Panel.Render(strings.Join(lines, "\n"))
}

func linkNotice(msg messages.LinkActionDone) string {
	verb, done := "open", "Opened"
	if msg.Action == messages.LinkCopied {
		verb, done = "copy", "Copied"
	}
	if msg.Err != nil {
		return fmt.Sprintf("Could not %s link: %v", verb, msg.Err)
	}
	return fmt.Sprintf("%s %s", done, msg.Link)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.caseNumber.SetWidth(min(width, 60))
	v.captcha.SetWidth(min(width, 60))
	v.statusbar.SetWidth(width)
	v.links.SetDimensions(width-4, max(1, height/4))
}

// Focus returns the focused control.
func (v *View) Focus() messages.FocusTarget {
	return v.focus
}

// Snapshot returns the board state the view last rendered.
func (v *View) Snapshot() board.Snapshot {
	return v.snap
}

// CaptchaArt returns the rendered challenge.
func (v *View) CaptchaArt() string {
	return v.captchaArt
}

// Notice returns the last link action message.
func (v *View) Notice() string {
	return v.notice
}

// CaseNumber returns the case number field.
func (v *View) CaseNumber() *input.Field {
	return v.caseNumber
}

// Captcha returns the CAPTCHA answer field.
func (v *View) Captcha() *input.Field {
	return v.captcha
}

// CaseType returns the case type selector.
func (v *View) CaseType() *selector.Selector {
	return v.caseType
}

// Year returns the year selector.
func (v *View) Year() *selector.Selector {
	return v.year
}

// Links returns the document list.
func (v *View) Links() *list.LinkList {
	return v.links
}
