package domain

import "time"

// Run records one successful index generation.
type Run struct {
	ID          int64
	SourceDir   string
	OutputDir   string
	EntryCount  int
	Digest      string // SHA-256 of the rendered page, hex encoded
	GeneratedAt time.Time
}
