package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
	"github.com/custodia-labs/casefetch/internal/core/ports/driving"
	"github.com/custodia-labs/casefetch/internal/logger"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ErrNoOpener is returned when link actions are requested without an opener.
var ErrNoOpener = errors.New("link actions are not available")

// ResultActionService provides actions on the document links of a result.
type ResultActionService struct {
	baseURL string
	opener  driven.LinkOpener
}

// NewResultActionService creates a result action service. Relative links
// are resolved against baseURL.
func NewResultActionService(baseURL string, opener driven.LinkOpener) *ResultActionService {
	return &ResultActionService{
		baseURL: baseURL,
		opener:  opener,
	}
}

// ResolveLink converts a document link to an absolute URL.
func (s *ResultActionService) ResolveLink(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", fmt.Errorf("%w: empty link", domain.ErrInvalidInput)
	}

	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	base, err := url.Parse(s.baseURL)
	if err != nil || !base.IsAbs() {
		return "", fmt.Errorf("%w: cannot resolve %q without a server address", domain.ErrInvalidInput, link)
	}
	return base.ResolveReference(ref).String(), nil
}

// OpenLink opens the document in the default application.
func (s *ResultActionService) OpenLink(_ context.Context, link string) error {
	if s.opener == nil {
		return ErrNoOpener
	}
	target, err := s.ResolveLink(link)
	if err != nil {
		return err
	}
	logger.Debug("opening %s", target)
	return s.opener.Open(target)
}

// CopyLink copies the absolute document URL to the clipboard.
func (s *ResultActionService) CopyLink(_ context.Context, link string) error {
	if s.opener == nil {
		return ErrNoOpener
	}
	target, err := s.ResolveLink(link)
	if err != nil {
		return err
	}
	return s.opener.Copy(target)
}
