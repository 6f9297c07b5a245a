package driven

import (
	"context"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// ContentStore is the directory of per-observation markdown files,
// treated as a key-value store keyed by observation id.
type ContentStore interface {
	// ExistingIDs returns the set of observation ids already present.
	ExistingIDs(ctx context.Context) (map[int64]bool, error)

	// Read loads a stored observation's frontmatter and content body.
	// The frontmatter comes back as decoded JSON for order-independent
	// comparison against freshly fetched metadata.
	Read(ctx context.Context, id int64) (frontmatter map[string]any, content string, err error)

	// Write persists an observation, replacing any existing file. The
	// replacement is atomic: a failed write never leaves a partial file.
	Write(ctx context.Context, obs *domain.Observation) error
}
