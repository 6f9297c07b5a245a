package domain

import "time"

// Default settings values.
const (
	// DefaultBaseURL is the public iNaturalist API endpoint.
	DefaultBaseURL = "https://api.inaturalist.org/v1"

	// DefaultRequestInterval spaces outbound API requests.
	// iNaturalist asks clients to stay at or below one request per second.
	DefaultRequestInterval = time.Second

	// DefaultHTTPTimeout bounds a single API request.
	DefaultHTTPTimeout = 30 * time.Second
)

// Configuration keys recognised in the config file.
const (
	ConfigKeyUserID          = "user_id"
	ConfigKeyContentDir      = "content_dir"
	ConfigKeyDataDir         = "data_dir"
	ConfigKeyBaseURL         = "api_base_url"
	ConfigKeyRequestInterval = "request_interval_seconds"
	ConfigKeyHTTPTimeout     = "http_timeout_seconds"
)

// Settings holds the resolved runtime configuration for a sync run.
type Settings struct {
	// UserID is the iNaturalist login whose observations are synchronised.
	UserID string

	// ContentDir is the directory of per-observation markdown files.
	ContentDir string

	// DataDir holds obsync's own state (the run-history database).
	DataDir string

	// BaseURL is the API endpoint, overridable for testing.
	BaseURL string

	// RequestInterval spaces outbound API requests.
	RequestInterval time.Duration

	// HTTPTimeout bounds a single API request.
	HTTPTimeout time.Duration
}

// WithDefaults fills unset fields with their default values.
func (s Settings) WithDefaults() Settings {
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.RequestInterval <= 0 {
		s.RequestInterval = DefaultRequestInterval
	}
	if s.HTTPTimeout <= 0 {
		s.HTTPTimeout = DefaultHTTPTimeout
	}
	return s
}

// Validate checks that the settings are usable for a sync run.
func (s Settings) Validate() error {
	if s.UserID == "" {
		return ErrUserNotConfigured
	}
	if s.ContentDir == "" {
		return ErrInvalidInput
	}
	return nil
}
