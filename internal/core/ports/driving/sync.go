package driving

import (
	"context"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// SyncService runs one synchronisation pass against the remote service.
type SyncService interface {
	// Run executes the full pipeline: list ids, fetch and reshape each
	// observation, reconcile against the content store. The returned run
	// report is populated even when err is non-nil, up to the point of
	// failure.
	Run(ctx context.Context) (*domain.SyncRun, error)
}
