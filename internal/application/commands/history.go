package commands

import (
	"context"

	"launchpad/internal/application"
	"launchpad/internal/domain"
	"launchpad/internal/ports"
)

// DefaultRunLimit bounds history listings when no limit is given.
const DefaultRunLimit = 10

// ListRunsCommand lists recent generation runs, newest first
type ListRunsCommand struct {
	history ports.RunHistory
	Limit   int
}

// NewListRunsCommand creates a new ListRunsCommand
func NewListRunsCommand(history ports.RunHistory, limit int) *ListRunsCommand {
	if limit <= 0 {
		limit = DefaultRunLimit
	}
	return &ListRunsCommand{
		history: history,
		Limit:   limit,
	}
}

// Validate checks if the list operation is valid
func (c *ListRunsCommand) Validate() error {
	if c.history == nil {
		return &application.ValidationError{
			Field:   "history",
			Message: "run history is required",
		}
	}
	return nil
}

// Execute runs the list runs command
func (c *ListRunsCommand) Execute(ctx context.Context) ([]domain.Run, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.history.ListRuns(c.Limit)
}
