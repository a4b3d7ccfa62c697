package commands

import (
	"context"

	"launchpad/internal/domain"
	"launchpad/internal/ports"
)

// ScanCommand collects and renders the card list without writing anything
type ScanCommand struct {
	repo ports.SiteRepository
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(repo ports.SiteRepository) *ScanCommand {
	return &ScanCommand{repo: repo}
}

// Execute runs the scan command
func (c *ScanCommand) Execute(ctx context.Context) ([]domain.Card, error) {
	entries, err := c.repo.Scan()
	if err != nil {
		return nil, err
	}
	return domain.BuildCards(entries), nil
}
