// Package usgs fetches recent earthquakes from the USGS FDSN event API and
// maps them onto disaster events. Results are cached for five minutes; on a
// failed refresh the last cached batch is served instead, so a flaky upstream
// degrades to stale data rather than an empty feed.
package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/planetmode/worldstate/internal/cache"
	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/observability"
	"github.com/planetmode/worldstate/internal/refdata"
)

const (
	cacheKey = "usgs-earthquakes"
	cacheTTL = 5 * time.Minute

	minMagnitude = 2.5
	maxResults   = 50
	lookback     = 24 * time.Hour
)

// Stats is a snapshot of adapter activity for the health endpoint.
type Stats struct {
	Fetches   int64
	Errors    int64
	LastFetch time.Time
}

// Client queries the USGS earthquake feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.TTL[[]domain.Event]
	logger     *slog.Logger
	metrics    *observability.Metrics

	mu    sync.Mutex
	stats Stats
}

// NewClient creates a USGS client. The cache is owned by the client; callers
// share earthquake data through FetchEarthquakes.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache.New[[]domain.Event](nil),
		logger:     logger,
		metrics:    metrics,
	}
}

// FetchEarthquakes returns recent earthquakes above the magnitude floor,
// newest first. It never returns an error: a failed refresh falls back to the
// most recent cached batch, or an empty slice when nothing was ever fetched.
func (c *Client) FetchEarthquakes(ctx context.Context) []domain.Event {
	if events, ok := c.cache.Get(cacheKey); ok {
		c.metrics.CacheLookups.WithLabelValues("usgs", "hit").Inc()
		return events
	}
	c.metrics.CacheLookups.WithLabelValues("usgs", "miss").Inc()

	events, err := c.fetch(ctx)
	if err != nil {
		c.recordError()
		c.logger.Warn("usgs fetch failed", "error", err)
		if stale, ok := c.cache.GetStale(cacheKey); ok {
			c.metrics.CacheLookups.WithLabelValues("usgs", "stale").Inc()
			return stale
		}
		return nil
	}

	c.cache.Set(cacheKey, events, cacheTTL)
	c.recordFetch()
	return events
}

// RandomEarthquake picks one earthquake at random from the current batch.
// Returns nil when no live data is available.
func (c *Client) RandomEarthquake(ctx context.Context) *domain.Event {
	events := c.FetchEarthquakes(ctx)
	if len(events) == 0 {
		return nil
	}
	ev := events[rand.IntN(len(events))]
	return &ev
}

// Stats returns a snapshot of fetch counters.
func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// CacheSize returns the number of cache entries, for the health endpoint.
func (c *Client) CacheSize() int {
	return c.cache.Len()
}

func (c *Client) fetch(ctx context.Context) ([]domain.Event, error) {
	params := url.Values{
		"format":       {"geojson"},
		"starttime":    {domain.Now().Add(-lookback).UTC().Format(time.RFC3339)},
		"minmagnitude": {fmt.Sprintf("%g", minMagnitude)},
		"limit":        {fmt.Sprintf("%d", maxResults)},
		"orderby":      {"time"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.APIFetchDuration.WithLabelValues("usgs").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.APIFetches.WithLabelValues("usgs", "error").Inc()
		return nil, fmt.Errorf("usgs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.APIFetches.WithLabelValues("usgs", "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("usgs API error: status %d: %s", resp.StatusCode, body)
	}

	var feed geoJSONResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		c.metrics.APIFetches.WithLabelValues("usgs", "error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}
	c.metrics.APIFetches.WithLabelValues("usgs", "success").Inc()

	events := make([]domain.Event, 0, len(feed.Features))
	for _, f := range feed.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		events = append(events, mapFeature(f))
	}
	return events, nil
}

func (c *Client) recordFetch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Fetches++
	c.stats.LastFetch = domain.Now()
}

func (c *Client) recordError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Errors++
}

func mapFeature(f feature) domain.Event {
	mag := f.Properties.Mag
	var depth float64
	if len(f.Geometry.Coordinates) > 2 {
		depth = f.Geometry.Coordinates[2]
	}
	return domain.Event{
		ID:       "usgs-" + f.ID,
		Type:     domain.TypeDisaster,
		Severity: domain.QuakeSeverity(mag),
		// GeoJSON order is [lng, lat]; events carry [lat, lng].
		Coords:    domain.Coords{f.Geometry.Coordinates[1], f.Geometry.Coordinates[0]},
		Timestamp: time.UnixMilli(f.Properties.Time).UTC(),
		Source: domain.Source{
			Name:            "USGS Earthquake Hazards Program",
			URL:             "https://earthquake.usgs.gov/",
			UpdateFrequency: "Real-time",
			Reliability:     "scientific",
			LastVerified:    domain.Now().Format("2006-01-02"),
			Badge:           refdata.BadgeFor("scientific"),
			Live:            true,
		},
		Metadata: domain.QuakeMeta{
			Location:  f.Properties.Place,
			Region:    extractRegion(f.Properties.Place),
			Message:   fmt.Sprintf("Magnitude %.1f earthquake near %s", mag, f.Properties.Place),
			Magnitude: mag,
			Depth:     depth,
			Verified:  true,
			Sources:   1,
			USGSURL:   f.Properties.URL,
		},
	}
}

// extractRegion pulls the coarse region out of a USGS place string, which
// reads like "42 km SW of Tokyo, Japan".
func extractRegion(place string) string {
	if place == "" {
		return "Unknown"
	}
	if i := strings.LastIndex(place, ", "); i >= 0 {
		return place[i+2:]
	}
	return place
}

// USGS GeoJSON response types.

type geoJSONResponse struct {
	Features []feature `json:"features"`
}

type feature struct {
	ID         string `json:"id"`
	Properties struct {
		Mag   float64 `json:"mag"`
		Place string  `json:"place"`
		Time  int64   `json:"time"` // unix millis
		URL   string  `json:"url"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lng, lat, depth]
	} `json:"geometry"`
}
