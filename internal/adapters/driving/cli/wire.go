package cli

import (
	"fmt"
	"io"

	"github.com/verdant-labs/obsync-cli/internal/adapters/driven/config/file"
	"github.com/verdant-labs/obsync-cli/internal/adapters/driven/storage/hugo"
	"github.com/verdant-labs/obsync-cli/internal/adapters/driven/storage/sqlite"
	"github.com/verdant-labs/obsync-cli/internal/connectors/inaturalist"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driven"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driving"
	"github.com/verdant-labs/obsync-cli/internal/core/services"
	"github.com/verdant-labs/obsync-cli/internal/logger"
)

// Construction hooks. Commands build their dependencies through these so
// tests can substitute fakes without touching the filesystem or network.
var (
	openConfigStore = func() (driven.ConfigStore, error) {
		return file.NewConfigStore(configDirFlag)
	}

	newSyncService = func(out io.Writer) (driving.SyncService, func(), error) {
		cfg, err := openConfigStore()
		if err != nil {
			return nil, nil, fmt.Errorf("open config: %w", err)
		}

		settings := services.LoadSettings(cfg)
		if err := settings.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid configuration: %w (run 'obsync config set user_id <login>' and 'obsync config set content_dir <dir>')", err)
		}

		content, err := hugo.NewStore(settings.ContentDir)
		if err != nil {
			return nil, nil, err
		}

		// Run history is observability only; an unusable history DB must
		// never stop a sync.
		var runStore driven.RunStore
		cleanup := func() {}
		if runs, err := sqlite.NewStore(settings.DataDir); err != nil {
			logger.Warn("Run history unavailable: %v", err)
		} else {
			runStore = runs
			cleanup = func() { runs.Close() }
		}

		source := inaturalist.New(inaturalist.FromSettings(settings))
		syncer := services.NewSyncer(source, content, runStore, settings.UserID)
		syncer.SetOutput(out)

		return syncer, cleanup, nil
	}

	openRunStore = func() (driven.RunStore, func(), error) {
		cfg, err := openConfigStore()
		if err != nil {
			return nil, nil, fmt.Errorf("open config: %w", err)
		}

		settings := services.LoadSettings(cfg)
		runs, err := sqlite.NewStore(settings.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return runs, func() { runs.Close() }, nil
	}
)
