package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driven"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driving"
	"github.com/verdant-labs/obsync-cli/internal/logger"
)

// Ensure Syncer implements the interface.
var _ driving.SyncService = (*Syncer)(nil)

// Syncer runs the synchronisation pipeline: list remote ids, fetch and
// reshape each observation, then reconcile against the content store.
// Execution is strictly sequential; the only pacing is the connector's
// request limiter.
type Syncer struct {
	source driven.ObservationSource
	store  driven.ContentStore
	runs   driven.RunStore
	userID string
	out    io.Writer
}

// NewSyncer creates a new sync service. The run store is optional; when
// nil, no run history is recorded.
func NewSyncer(
	source driven.ObservationSource,
	store driven.ContentStore,
	runs driven.RunStore,
	userID string,
) *Syncer {
	return &Syncer{
		source: source,
		store:  store,
		runs:   runs,
		userID: userID,
		out:    os.Stdout,
	}
}

// SetOutput redirects progress lines. Defaults to os.Stdout.
func (s *Syncer) SetOutput(w io.Writer) {
	s.out = w
}

// Run executes one full synchronisation pass.
//
// Failure handling is two-tiered: listing failures and missing required
// fields abort the run with an error; per-id fetch, local read, and
// write failures are reported, counted, and skipped.
func (s *Syncer) Run(ctx context.Context) (*domain.SyncRun, error) {
	run := &domain.SyncRun{
		ID:        uuid.NewString(),
		UserID:    s.userID,
		StartedAt: time.Now(),
	}
	defer s.saveRun(ctx, run)

	// Stage 1: list every observation id, newest first.
	logger.Info("Listing observation ids for %s", s.userID)
	ids, err := s.source.ListIDs(ctx)
	if err != nil {
		return run, fmt.Errorf("list observation ids: %w", err)
	}
	run.IDsListed = len(ids)
	fmt.Fprintf(s.out, "Parsed a total of %d ids from server\n", len(ids))

	// Stage 2: fetch and reshape each observation, preserving listing
	// order. Per-id failures are skipped; a missing required field means
	// the API shape has drifted and aborts the run.
	logger.Info("Fetching %d observations", len(ids))
	fetched := make([]*domain.Observation, 0, len(ids))
	for _, id := range ids {
		obs, err := s.source.Fetch(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrMissingField) {
				return run, err
			}
			if ctx.Err() != nil {
				return run, ctx.Err()
			}
			run.FetchErrors++
			fmt.Fprintf(s.out, "Unable to grab observation %d from iNaturalist.\n", id)
			logger.Debug("Fetch %d failed: %v", id, err)
			continue
		}
		fetched = append(fetched, obs)
	}
	run.Fetched = len(fetched)
	fmt.Fprintf(s.out, "Successfully obtained %d observations from the server.\n", len(fetched))

	// Stage 3: reconcile against the content store.
	logger.Info("Reconciling %d observations against local content", len(fetched))
	existing, err := s.store.ExistingIDs(ctx)
	if err != nil {
		return run, fmt.Errorf("list local observations: %w", err)
	}

	for _, obs := range fetched {
		s.reconcile(ctx, run, obs, existing[obs.ID])
	}

	fmt.Fprintln(s.out, "Completed")
	return run, nil
}

// reconcile decides and performs the write for one observation.
func (s *Syncer) reconcile(ctx context.Context, run *domain.SyncRun, obs *domain.Observation, exists bool) {
	if !exists {
		fmt.Fprintf(s.out, "Creating id %d\n", obs.ID)
		if s.write(ctx, run, obs) {
			run.Created++
		}
		return
	}

	frontmatter, _, err := s.store.Read(ctx, obs.ID)
	if err != nil {
		// Don't clobber a file we could not read.
		run.ReadErrors++
		fmt.Fprintf(s.out, "Unable to read saved data id %d\n", obs.ID)
		logger.Debug("Read %d failed: %v", obs.ID, err)
		return
	}

	if obs.Metadata.Equal(frontmatter) {
		run.Unchanged++
		return
	}

	fmt.Fprintf(s.out, "Updating id %d\n", obs.ID)
	if s.write(ctx, run, obs) {
		run.Updated++
	}
}

// write persists one observation, reporting and counting a failure.
func (s *Syncer) write(ctx context.Context, run *domain.SyncRun, obs *domain.Observation) bool {
	if err := s.store.Write(ctx, obs); err != nil {
		run.WriteErrors++
		fmt.Fprintf(s.out, "Failed to write %d\n", obs.ID)
		logger.Debug("Write %d failed: %v", obs.ID, err)
		return false
	}
	return true
}

// saveRun records the run report, best effort.
func (s *Syncer) saveRun(ctx context.Context, run *domain.SyncRun) {
	run.FinishedAt = time.Now()
	if s.runs == nil {
		return
	}
	if err := s.runs.SaveRun(ctx, run); err != nil {
		logger.Warn("Failed to save run report: %v", err)
	}
}
