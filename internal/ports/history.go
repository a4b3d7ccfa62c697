package ports

import "launchpad/internal/domain"

// RunHistory provides durable records of past generations.
type RunHistory interface {
	// Lifecycle
	Open() error
	Close() error

	// RecordRun stores a completed generation.
	RecordRun(run *domain.Run) error

	// ListRuns returns up to limit runs, newest first.
	ListRuns(limit int) ([]domain.Run, error)

	// LastDigest returns the page digest of the most recent run for the
	// given source/output pair, or "" if none exists.
	LastDigest(sourceDir, outputDir string) (string, error)
}
