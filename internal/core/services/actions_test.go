package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/casefetch/internal/core/domain"
)

func TestResultActionService_ResolveLink(t *testing.T) {
	svc := NewResultActionService("http://localhost:8000", nil)

	tests := []struct {
		link string
		want string
	}{
		{"/f1.pdf", "http://localhost:8000/f1.pdf"},
		{"docs/f2.pdf", "http://localhost:8000/docs/f2.pdf"},
		{"  /f3.pdf ", "http://localhost:8000/f3.pdf"},
		{"https://cdn.example.org/x.pdf", "https://cdn.example.org/x.pdf"},
	}
	for _, tt := range tests {
		got, err := svc.ResolveLink(tt.link)
		require.NoError(t, err, tt.link)
		assert.Equal(t, tt.want, got)
	}
}

func TestResultActionService_ResolveLinkErrors(t *testing.T) {
	svc := NewResultActionService("http://localhost:8000", nil)
	_, err := svc.ResolveLink("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	noBase := NewResultActionService("", nil)
	_, err = noBase.ResolveLink("/f1.pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	abs, err := noBase.ResolveLink("http://example.org/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a.pdf", abs)
}

func TestResultActionService_OpenAndCopy(t *testing.T) {
	opener := &MockLinkOpener{}
	svc := NewResultActionService("http://localhost:8000", opener)

	require.NoError(t, svc.OpenLink(context.Background(), "/f1.pdf"))
	require.NoError(t, svc.CopyLink(context.Background(), "/f2.pdf"))

	assert.Equal(t, []string{"http://localhost:8000/f1.pdf"}, opener.Opened())
	assert.Equal(t, []string{"http://localhost:8000/f2.pdf"}, opener.Copied())
}

func TestResultActionService_OpenerFailure(t *testing.T) {
	boom := errors.New("no display")
	svc := NewResultActionService("http://localhost:8000", &MockLinkOpener{Err: boom})

	assert.ErrorIs(t, svc.OpenLink(context.Background(), "/f1.pdf"), boom)
	assert.ErrorIs(t, svc.CopyLink(context.Background(), "/f1.pdf"), boom)
}

func TestResultActionService_NoOpener(t *testing.T) {
	svc := NewResultActionService("http://localhost:8000", nil)
	assert.ErrorIs(t, svc.OpenLink(context.Background(), "/f1.pdf"), ErrNoOpener)
	assert.ErrorIs(t, svc.CopyLink(context.Background(), "/f1.pdf"), ErrNoOpener)
}
