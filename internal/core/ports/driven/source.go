package driven

import (
	"context"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// ObservationSource fetches observations from the remote service.
type ObservationSource interface {
	// ListIDs returns every observation id belonging to the configured
	// user, newest first. It pages through the listing endpoint until an
	// empty page. Any listing failure is fatal to the run: pagination
	// cannot safely continue past an unknown gap.
	ListIDs(ctx context.Context) ([]int64, error)

	// Fetch retrieves one observation's detail document and reshapes it.
	// Transport and decode failures are recoverable per id; a missing
	// required field is reported as domain.ErrMissingField and aborts
	// the run.
	Fetch(ctx context.Context, id int64) (*domain.Observation, error)
}
