package domain

import "time"

// SyncRun records the outcome of one synchronisation run. Runs are kept
// for reporting only; nothing in the sync pipeline reads them back, so
// each run still re-lists the remote collection from scratch.
type SyncRun struct {
	// ID is a generated identifier for the run.
	ID string

	// UserID is the iNaturalist account that was synchronised.
	UserID string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time

	// IDsListed is how many observation ids the listing stage returned.
	IDsListed int

	// Fetched is how many observations were fetched and reshaped.
	Fetched int

	// Created, Updated and Unchanged count reconciliation outcomes.
	Created   int
	Updated   int
	Unchanged int

	// FetchErrors counts per-id fetch or decode failures that were
	// skipped. ReadErrors counts local files that could not be read
	// before comparison. WriteErrors counts failed file writes.
	FetchErrors int
	ReadErrors  int
	WriteErrors int
}

// Writes returns the number of files the run actually wrote.
func (r SyncRun) Writes() int {
	return r.Created + r.Updated
}
