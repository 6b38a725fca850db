package driven

// LinkOpener hands URLs and text to the operating system.
type LinkOpener interface {
	// Open opens url in the default application.
	Open(url string) error

	// Copy places text on the system clipboard.
	Copy(text string) error
}
