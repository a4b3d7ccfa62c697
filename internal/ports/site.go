package ports

import "launchpad/internal/domain"

// SiteRepository defines the filesystem operations of the generator:
// collecting entries beneath the source directory and persisting the
// rendered index into the output directory.
type SiteRepository interface {
	// Scan returns the ordered entries for all qualifying markup files
	// beneath the source directory.
	Scan() ([]domain.Entry, error)

	// WriteIndex persists the rendered page as index.html in the output
	// directory, replacing any previous version. Returns the written path.
	WriteIndex(page []byte) (string, error)

	// SourceDir and OutputDir report the configured directories after
	// normalization (used for reporting and history records).
	SourceDir() string
	OutputDir() string
}
