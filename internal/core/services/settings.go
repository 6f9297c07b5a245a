package services

import (
	"time"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driven"
)

// LoadSettings resolves runtime settings from the config store, filling
// unset values with defaults.
func LoadSettings(cfg driven.ConfigStore) domain.Settings {
	s := domain.Settings{
		UserID:     cfg.GetString(domain.ConfigKeyUserID),
		ContentDir: cfg.GetString(domain.ConfigKeyContentDir),
		DataDir:    cfg.GetString(domain.ConfigKeyDataDir),
		BaseURL:    cfg.GetString(domain.ConfigKeyBaseURL),
	}
	if secs := cfg.GetInt(domain.ConfigKeyRequestInterval); secs > 0 {
		s.RequestInterval = time.Duration(secs) * time.Second
	}
	if secs := cfg.GetInt(domain.ConfigKeyHTTPTimeout); secs > 0 {
		s.HTTPTimeout = time.Duration(secs) * time.Second
	}
	return s.WithDefaults()
}
