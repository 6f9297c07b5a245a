package inaturalist

import (
	"time"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// Config holds the connector configuration.
type Config struct {
	// UserID is the iNaturalist login whose observations are listed.
	UserID string

	// BaseURL is the API endpoint without a trailing slash.
	BaseURL string

	// RequestInterval spaces outbound requests. The public API allows at
	// most one request per second.
	RequestInterval time.Duration

	// Timeout bounds a single HTTP request.
	Timeout time.Duration
}

// FromSettings builds a connector config from resolved settings.
func FromSettings(s domain.Settings) Config {
	return Config{
		UserID:          s.UserID,
		BaseURL:         s.BaseURL,
		RequestInterval: s.RequestInterval,
		Timeout:         s.HTTPTimeout,
	}
}

// withDefaults fills unset fields with their default values.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = domain.DefaultBaseURL
	}
	if c.RequestInterval <= 0 {
		c.RequestInterval = domain.DefaultRequestInterval
	}
	if c.Timeout <= 0 {
		c.Timeout = domain.DefaultHTTPTimeout
	}
	return c
}
