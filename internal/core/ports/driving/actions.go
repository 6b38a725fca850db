package driving

import "context"

// ResultActionService provides actions on document links of a case result.
// This is used by the TUI and CLI adapters.
type ResultActionService interface {
	// ResolveLink turns a server-relative link into an absolute URL.
	ResolveLink(link string) (string, error)

	// OpenLink opens the document in the default application.
	OpenLink(ctx context.Context, link string) error

	// CopyLink copies the absolute document URL to the system clipboard.
	CopyLink(ctx context.Context, link string) error
}
