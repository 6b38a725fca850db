package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/board"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/views/lookup"
	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/termimage"
)

func newTestApp(t *testing.T) (*App, *MockWorkflow) {
	t.Helper()
	b := board.New()
	wf := &MockWorkflow{presenter: b}
	app, err := NewApp(NewPorts(wf, b, nil), lookup.Options{
		Years:    []int{2024, 2023},
		Renderer: termimage.NewPlainRenderer(),
	})
	require.NoError(t, err)
	return app, wf
}

// drain runs cmd and its batches, returning the leaf messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewApp_Success(t *testing.T) {
	app, _ := newTestApp(t)

	require.NotNil(t, app)
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Board: board.New()}, lookup.Options{})

	assert.ErrorIs(t, err, ErrMissingWorkflow)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := newTestApp(t)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_InitRequestsChallenge(t *testing.T) {
	app, wf := newTestApp(t)

	var loaded bool
	for _, msg := range drain(app.Init()) {
		if _, ok := msg.(messages.ChallengeLoaded); ok {
			loaded = true
			app.Update(msg)
		}
	}

	assert.True(t, loaded)
	assert.Equal(t, 1, wf.Requests())
	assert.NotEmpty(t, app.Lookup().CaptchaArt())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := newTestApp(t)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, model.(*App).Ready())
	assert.Contains(t, app.View(), "Case Lookup")
}

func TestApp_Update_Quit(t *testing.T) {
	app, _ := newTestApp(t)

	for _, k := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := app.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}

	_, cmd := app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_BoardChangedRefreshesView(t *testing.T) {
	app, _ := newTestApp(t)
	app.SetDimensions(100, 30)

	app.ports.Board.ShowStatus(domain.StatusError, "Invalid CAPTCHA")
	assert.NotContains(t, app.View(), "Invalid CAPTCHA")

	app.Update(messages.BoardChanged{})
	assert.Contains(t, app.View(), "Invalid CAPTCHA")
}

func TestApp_KeysReachLookupView(t *testing.T) {
	app, _ := newTestApp(t)
	app.SetDimensions(100, 30)

	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, messages.FocusCaseNumber, app.Lookup().Focus())
}
