package driven

import (
	"context"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// RunStore persists sync run reports for later inspection.
type RunStore interface {
	// SaveRun stores a completed run report.
	SaveRun(ctx context.Context, run *domain.SyncRun) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)

	// LastRun returns the most recent run, or domain.ErrNotFound.
	LastRun(ctx context.Context) (*domain.SyncRun, error)
}
