package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkList(t *testing.T) {
	l := NewLinkList(nil)

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Count())
	assert.Empty(t, l.SelectedLink())
	assert.Nil(t, l.Init())
}

func TestLinkList_EmptyView(t *testing.T) {
	l := NewLinkList(nil)
	assert.Contains(t, l.View(), "No documents")
}

func TestLinkList_SetLinksKeepsOrder(t *testing.T) {
	l := NewLinkList(nil)
	l.SetLinks([]string{"/f1.pdf", "/f2.pdf", "/f3.pdf"})

	assert.Equal(t, []string{"/f1.pdf", "/f2.pdf", "/f3.pdf"}, l.Links())
	view := l.View()
	assert.Less(t, strings.Index(view, "/f1.pdf"), strings.Index(view, "/f2.pdf"))
	assert.Less(t, strings.Index(view, "/f2.pdf"), strings.Index(view, "/f3.pdf"))
	assert.Equal(t, 3, strings.Count(view, "Download PDF"))
}

func TestLinkList_Navigation(t *testing.T) {
	l := NewLinkList(nil)
	l.SetLinks([]string{"/a", "/b", "/c"})

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "/b", l.SelectedLink())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, "/c", l.SelectedLink())

	l.MoveDown()
	assert.Equal(t, 2, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, "/b", l.SelectedLink())
}

func TestLinkList_SetLinksResetsSelection(t *testing.T) {
	l := NewLinkList(nil)
	l.SetLinks([]string{"/a", "/b"})
	l.MoveDown()
	l.SetLinks([]string{"/x"})
	assert.Equal(t, 0, l.Selected())
}

func TestLinkList_FocusIndicator(t *testing.T) {
	l := NewLinkList(nil)
	l.SetLinks([]string{"/a"})

	assert.NotContains(t, l.View(), "> ")
	l.Focus()
	assert.True(t, l.Focused())
	assert.Contains(t, l.View(), "> ")
	l.Blur()
	assert.False(t, l.Focused())
}

func TestLinkList_ScrollsToSelection(t *testing.T) {
	l := NewLinkList(nil)
	l.SetDimensions(80, 2)
	l.SetLinks([]string{"/a", "/b", "/c", "/d"})
	l.MoveDown()
	l.MoveDown()

	view := l.View()
	assert.NotContains(t, view, "/a")
	assert.Contains(t, view, "/b")
	assert.Contains(t, view, "/c")
}

func TestLinkList_TruncatesLongLinks(t *testing.T) {
	l := NewLinkList(nil)
	l.SetDimensions(40, 5)
	l.SetLinks([]string{"/" + strings.Repeat("x", 100) + ".pdf"})
	assert.Contains(t, l.View(), "...")
}
