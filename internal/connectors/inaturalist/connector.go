package inaturalist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
	"github.com/verdant-labs/obsync-cli/internal/core/ports/driven"
	"github.com/verdant-labs/obsync-cli/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.ObservationSource = (*Connector)(nil)

// Connector fetches a user's observations from the iNaturalist API.
type Connector struct {
	config Config
	client *Client
}

// New creates a new iNaturalist connector.
func New(cfg Config) *Connector {
	cfg = cfg.withDefaults()
	return &Connector{
		config: cfg,
		client: NewClient(cfg),
	}
}

// listResponse is the wire shape of the listing endpoint.
type listResponse struct {
	Results []struct {
		ID int64 `json:"id"`
	} `json:"results"`
}

// detailResponse is the wire shape of the per-id detail endpoint.
// Results holds a single element for an id lookup.
type detailResponse struct {
	Results []json.RawMessage `json:"results"`
}

// ListIDs pages through the listing endpoint newest-first, threading the
// last id of each page as the id_below cursor for the next, until an
// empty page. The cursor is local to this call; it is never persisted,
// so every run re-lists from the newest observation.
func (c *Connector) ListIDs(ctx context.Context) ([]int64, error) {
	var all []int64
	var idBelow int64

	for {
		query := url.Values{}
		query.Set("order", "desc")
		query.Set("order_by", "created_at")
		query.Set("only_id", "true")
		query.Set("user_id", c.config.UserID)
		if idBelow > 0 {
			query.Set("id_below", strconv.FormatInt(idBelow, 10))
		}

		var page listResponse
		if err := c.client.getJSON(ctx, "/observations", query, &page); err != nil {
			return nil, fmt.Errorf("list observations: %w", err)
		}

		if len(page.Results) == 0 {
			break
		}

		for _, r := range page.Results {
			all = append(all, r.ID)
		}
		idBelow = page.Results[len(page.Results)-1].ID
		logger.Debug("Listed page ending at id %d (%d ids total)", idBelow, len(all))
	}

	return all, nil
}

// Fetch retrieves one observation's detail document and reshapes it.
func (c *Connector) Fetch(ctx context.Context, id int64) (*domain.Observation, error) {
	var resp detailResponse
	path := "/observations/" + strconv.FormatInt(id, 10)
	if err := c.client.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch observation %d: %w", id, err)
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("fetch observation %d: empty results: %w", id, domain.ErrMalformedResponse)
	}

	var detail map[string]any
	if err := json.Unmarshal(resp.Results[0], &detail); err != nil {
		return nil, fmt.Errorf("fetch observation %d: %w: %w", id, domain.ErrMalformedResponse, err)
	}

	return Reshape(id, detail)
}
