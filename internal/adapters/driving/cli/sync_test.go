package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driving"
)

// mockSyncService implements driving.SyncService for testing.
type mockSyncService struct {
	out io.Writer
	run *domain.SyncRun
	err error
}

func (m *mockSyncService) Run(_ context.Context) (*domain.SyncRun, error) {
	if m.out != nil && m.err == nil {
		fmt.Fprintln(m.out, "Completed")
	}
	return m.run, m.err
}

// setupSyncTest swaps the sync service construction hook.
func setupSyncTest(run *domain.SyncRun, runErr, buildErr error) func() {
	old := newSyncService
	newSyncService = func(out io.Writer) (driving.SyncService, func(), error) {
		if buildErr != nil {
			return nil, nil, buildErr
		}
		return &mockSyncService{out: out, run: run, err: runErr}, func() {}, nil
	}
	return func() { newSyncService = old }
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSyncCmd_Use(t *testing.T) {
	assert.Equal(t, "sync", syncCmd.Use)
}

func TestSyncCmd_RunsService(t *testing.T) {
	cleanup := setupSyncTest(&domain.SyncRun{Created: 2, Updated: 1, Unchanged: 5}, nil, nil)
	defer cleanup()

	out, err := execute(t, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")
	assert.NotContains(t, out, "Up to date")
}

func TestSyncCmd_ReportsUpToDate(t *testing.T) {
	cleanup := setupSyncTest(&domain.SyncRun{Unchanged: 7}, nil, nil)
	defer cleanup()

	out, err := execute(t, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Up to date: 7 observations, no changes.")
}

func TestSyncCmd_FatalErrorExitsNonzero(t *testing.T) {
	cleanup := setupSyncTest(&domain.SyncRun{}, errors.New("list observations: status 502"), nil)
	defer cleanup()

	_, err := execute(t, "sync")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync failed")
}

func TestSyncCmd_UnconfiguredFails(t *testing.T) {
	cleanup := setupSyncTest(nil, nil, fmt.Errorf("invalid configuration: %w", domain.ErrUserNotConfigured))
	defer cleanup()

	_, err := execute(t, "sync")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotConfigured)
}
