package commands

import (
	"context"

	"snipkit/internal/domain"
	"snipkit/internal/ports"
)

// DefaultHistoryLimit is the number of runs shown when no limit is given
const DefaultHistoryLimit = 20

// HistoryCommand lists recent install runs, newest first
type HistoryCommand struct {
	journal ports.InstallJournal
	Limit   int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(journal ports.InstallJournal, limit int) *HistoryCommand {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryCommand{journal: journal, Limit: limit}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]domain.InstallRun, error) {
	return c.journal.Recent(ctx, c.Limit)
}
