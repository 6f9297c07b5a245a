package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/obsync-cli/internal/adapters/driven/config/file"
	"github.com/verdant-labs/obsync-cli/internal/core/domain"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driven"
)

// Run history is observability only: a data directory that cannot be
// created must not stop sync construction.
func TestNewSyncService_UnusableRunHistoryDegrades(t *testing.T) {
	dir := t.TempDir()

	// A regular file where the data directory should go makes MkdirAll fail.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	old := openConfigStore
	openConfigStore = func() (driven.ConfigStore, error) {
		cfg, err := file.NewConfigStore(dir)
		if err != nil {
			return nil, err
		}
		if err := cfg.Set(domain.ConfigKeyUserID, "brandonrozek"); err != nil {
			return nil, err
		}
		if err := cfg.Set(domain.ConfigKeyContentDir, filepath.Join(dir, "content")); err != nil {
			return nil, err
		}
		if err := cfg.Set(domain.ConfigKeyDataDir, filepath.Join(blocker, "data")); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	defer func() { openConfigStore = old }()

	service, cleanup, err := newSyncService(io.Discard)
	require.NoError(t, err)
	defer cleanup()
	require.NotNil(t, service)
}
