package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"launchpad/internal/application"
	"launchpad/internal/domain"
	"launchpad/internal/ports"
)

// GenerateResult contains the result of generating the index
type GenerateResult struct {
	Count      int
	OutputPath string
	Digest     string
	Skipped    bool  // true when SkipUnchanged found an identical prior run
	HistoryErr error // non-fatal: recording the run failed
}

// GenerateCommand scans the source tree, renders the launcher page and
// writes it into the output directory. History recording is best-effort
// and never fails the generation.
type GenerateCommand struct {
	repo    ports.SiteRepository
	history ports.RunHistory // nil disables history

	// SkipUnchanged skips the write when the rendered page matches the
	// digest of the previous run for the same source/output pair.
	SkipUnchanged bool
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(repo ports.SiteRepository, history ports.RunHistory) *GenerateCommand {
	return &GenerateCommand{
		repo:    repo,
		history: history,
	}
}

// Validate checks if the generate operation is valid
func (c *GenerateCommand) Validate() error {
	if c.repo == nil {
		return &application.ValidationError{
			Field:   "repo",
			Message: "site repository is required",
		}
	}
	if c.SkipUnchanged && c.history == nil {
		return &application.ValidationError{
			Field:   "history",
			Message: "run history is required to skip unchanged output",
		}
	}
	return nil
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.repo.Scan()
	if err != nil {
		return nil, err
	}

	page := domain.RenderPage(domain.BuildCards(entries))
	sum := sha256.Sum256([]byte(page))
	digest := hex.EncodeToString(sum[:])

	result := &GenerateResult{
		Count:  len(entries),
		Digest: digest,
	}

	if c.SkipUnchanged {
		last, err := c.history.LastDigest(c.repo.SourceDir(), c.repo.OutputDir())
		if err != nil {
			result.HistoryErr = err
		} else if last == digest {
			result.Skipped = true
			result.OutputPath = filepath.Join(c.repo.OutputDir(), domain.IndexFileName)
			return result, nil
		}
	}

	path, err := c.repo.WriteIndex([]byte(page))
	if err != nil {
		return nil, fmt.Errorf("failed to write index: %w", err)
	}
	result.OutputPath = path

	if c.history != nil {
		run := &domain.Run{
			SourceDir:   c.repo.SourceDir(),
			OutputDir:   c.repo.OutputDir(),
			EntryCount:  len(entries),
			Digest:      digest,
			GeneratedAt: time.Now(),
		}
		if err := c.history.RecordRun(run); err != nil {
			result.HistoryErr = err
		}
	}

	return result, nil
}
