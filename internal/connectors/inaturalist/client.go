package inaturalist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// Client is a rate-limited HTTP client for the iNaturalist API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a client paced at one request per cfg.RequestInterval.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		limiter:    rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
	}
}

// getJSON performs a rate-limited GET against path and decodes the
// response body into out. The limiter applies to every request, success
// or failure, so total pacing is uniform across listing and detail calls.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request %s: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w: %w", path, domain.ErrMalformedResponse, err)
	}
	return nil
}
