package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/domain"
)

const DefaultBase = "https://maps.googleapis.com/maps/api/place"

// Client resolves a property to a place id and fetches its reviews. With no
// API key, or whenever the lookup comes back empty or fails, it serves the
// fixed sample batch instead.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) *Client {
	if base == "" {
		base = DefaultBase
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type searchResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Reviews []domain.GoogleReview `json:"reviews"`
	} `json:"result"`
}

// Reviews fetches the places batch for a property. The only surfaced error
// is a canceled context; upstream problems degrade to the sample batch.
func (c *Client) Reviews(ctx context.Context, propertyName, address string) ([]domain.GoogleReview, error) {
	if c.key == "" {
		log.Info().Str("property", propertyName).Msg("no places API key, serving sample batch")
		return Sample(), nil
	}

	placeID, err := c.searchPlace(ctx, propertyName, address)
	if err != nil || placeID == "" {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn().Err(err).Str("property", propertyName).Msg("place lookup failed, serving sample batch")
		return Sample(), nil
	}

	reviews, err := c.fetchReviews(ctx, placeID)
	if err != nil || len(reviews) == 0 {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn().Err(err).Str("property", propertyName).Msg("places reviews empty, serving sample batch")
		return Sample(), nil
	}
	return reviews, nil
}

func (c *Client) searchPlace(ctx context.Context, propertyName, address string) (string, error) {
	query := propertyName
	if address != "" {
		query = propertyName + " " + address
	}
	q := url.Values{
		"input":     {query},
		"inputtype": {"textquery"},
		"fields":    {"place_id,name,formatted_address"},
		"key":       {c.key},
	}

	var resp searchResponse
	if err := c.get(ctx, "/findplacefromtext/json", q, &resp); err != nil {
		return "", err
	}
	if resp.Status != "OK" || len(resp.Candidates) == 0 {
		return "", nil
	}
	return resp.Candidates[0].PlaceID, nil
}

func (c *Client) fetchReviews(ctx context.Context, placeID string) ([]domain.GoogleReview, error) {
	q := url.Values{
		"place_id": {placeID},
		"fields":   {"name,rating,reviews,user_ratings_total"},
		"key":      {c.key},
	}

	var resp detailsResponse
	if err := c.get(ctx, "/details/json", q, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("googleplaces: status %s", resp.Status)
	}
	return resp.Result.Reviews, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("googleplaces", path, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("googleplaces: bad status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
