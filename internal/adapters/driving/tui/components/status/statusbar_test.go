package status

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/casefetch/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	b := NewBar(nil, nil)

	require.NotNil(t, b)
	assert.False(t, b.Visible())
	assert.False(t, b.Busy())
	assert.Equal(t, 80, b.Width())
	assert.NotNil(t, b.Init())
}

func TestBar_SetStatus(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetStatus(domain.StatusError, "Invalid CAPTCHA")

	assert.True(t, b.Visible())
	assert.Equal(t, domain.StatusError, b.Kind())
	assert.Equal(t, "Invalid CAPTCHA", b.Message())
	assert.Contains(t, b.View(), "Invalid CAPTCHA")

	b.Clear()
	assert.False(t, b.Visible())
	assert.NotContains(t, b.View(), "Invalid CAPTCHA")
}

func TestBar_Hints(t *testing.T) {
	km := keymap.DefaultKeyMap()
	b := NewBar(nil, km)

	assert.Contains(t, b.View(), "ctrl+r: new captcha")

	b.SetHints(km.LinksHelp())
	assert.Contains(t, b.View(), "y: copy link")
}

func TestBar_Busy(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetStatus(domain.StatusInfo, domain.MsgFetchingCase)
	idle := b.View()

	b.SetBusy(true)
	assert.True(t, b.Busy())
	busy := b.View()
	assert.Contains(t, busy, domain.MsgFetchingCase)
	assert.NotEqual(t, idle, busy)
}

func TestBar_UpdateIgnoresOtherMessages(t *testing.T) {
	b := NewBar(nil, nil)
	_, cmd := b.Update("unrelated")
	assert.Nil(t, cmd)

	_, cmd = b.Update(spinner.TickMsg{})
	assert.NotNil(t, cmd)
}

func TestBar_SetWidth(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(120)
	assert.Equal(t, 120, b.Width())
}
