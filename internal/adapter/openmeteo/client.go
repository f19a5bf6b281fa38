// Package openmeteo fetches current conditions from the Open-Meteo forecast
// API and maps them onto weather events. Readings are cached per city for
// thirty minutes, matching the upstream model update cadence.
package openmeteo

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

const cacheTTL = 30 * time.Minute

// Stats is a snapshot of adapter activity for the health endpoint.
type Stats struct {
	Fetches   int64
	Errors    int64
	LastFetch time.Time
}

// Client queries the Open-Meteo current-weather endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.TTL[currentWeather]
	logger     *slog.Logger
	metrics    *observability.Metrics

	mu    sync.Mutex
	stats Stats
}

// NewClient creates an Open-Meteo client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache.New[currentWeather](nil),
		logger:     logger,
		metrics:    metrics,
	}
}

// RandomWeatherEvent fetches current conditions for a randomly chosen city
// and maps them onto a weather event. Returns nil when the upstream is
// unreachable and no cached reading exists for the chosen city.
func (c *Client) RandomWeatherEvent(ctx context.Context) *domain.Event {
	city := refdata.WeatherCities[rand.IntN(len(refdata.WeatherCities))]
	return c.WeatherEventFor(ctx, city)
}

// WeatherEventFor builds a weather event for one city, using the cached
// reading when fresh.
func (c *Client) WeatherEventFor(ctx context.Context, city refdata.Place) *domain.Event {
	key := "weather-" + slug(city.Name)

	current, ok := c.cache.Get(key)
	if ok {
		c.metrics.CacheLookups.WithLabelValues("openmeteo", "hit").Inc()
	} else {
		c.metrics.CacheLookups.WithLabelValues("openmeteo", "miss").Inc()
		fetched, err := c.fetch(ctx, city)
		if err != nil {
			c.recordError()
			c.logger.Warn("open-meteo fetch failed", "city", city.Name, "error", err)
			stale, staleOK := c.cache.GetStale(key)
			if !staleOK {
				return nil
			}
			c.metrics.CacheLookups.WithLabelValues("openmeteo", "stale").Inc()
			current = stale
		} else {
			c.cache.Set(key, fetched, cacheTTL)
			c.recordFetch()
			current = fetched
		}
	}

	return c.mapEvent(city, current)
}

// Stats returns a snapshot of fetch counters.
func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// CacheSize returns the number of cached city readings.
func (c *Client) CacheSize() int {
	return c.cache.Len()
}

func (c *Client) fetch(ctx context.Context, city refdata.Place) (currentWeather, error) {
	params := url.Values{
		"latitude":  {fmt.Sprintf("%.4f", city.Coords.Lat())},
		"longitude": {fmt.Sprintf("%.4f", city.Coords.Lng())},
		"current":   {"temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return currentWeather{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.APIFetchDuration.WithLabelValues("openmeteo").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.APIFetches.WithLabelValues("openmeteo", "error").Inc()
		return currentWeather{}, fmt.Errorf("open-meteo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.APIFetches.WithLabelValues("openmeteo", "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return currentWeather{}, fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.APIFetches.WithLabelValues("openmeteo", "error").Inc()
		return currentWeather{}, fmt.Errorf("decode response: %w", err)
	}
	c.metrics.APIFetches.WithLabelValues("openmeteo", "success").Inc()

	return payload.Current, nil
}

func (c *Client) mapEvent(city refdata.Place, current currentWeather) *domain.Event {
	wc := refdata.WeatherCodeFor(current.WeatherCode)
	severity := domain.EscalateWeatherSeverity(wc.Severity, current.Temperature, current.WindSpeed)

	now := domain.Now()
	return &domain.Event{
		ID:        fmt.Sprintf("weather-%s-%d", slug(city.Name), now.UnixMilli()),
		Type:      domain.TypeWeather,
		Severity:  severity,
		Coords:    city.Coords,
		Timestamp: now,
		Source: domain.Source{
			Name:            "Open-Meteo",
			URL:             "https://open-meteo.com/",
			UpdateFrequency: "Real-time",
			Reliability:     "scientific",
			LastVerified:    now.Format("2006-01-02"),
			Badge:           refdata.BadgeFor("scientific"),
			Live:            true,
		},
		Metadata: domain.WeatherMeta{
			Location:           city.Name,
			Region:             city.Region,
			Message:            fmt.Sprintf("%s in %s: %.1f°C, wind %.0f km/h", wc.Description, city.Name, current.Temperature, current.WindSpeed),
			Temperature:        current.Temperature,
			WindSpeed:          current.WindSpeed,
			Humidity:           current.Humidity,
			WeatherCode:        current.WeatherCode,
			WeatherIcon:        wc.Icon,
			WeatherDescription: wc.Description,
			Verified:           true,
			Sources:            1,
		},
	}
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

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// Open-Meteo response types.

type forecastResponse struct {
	Current currentWeather `json:"current"`
}

type currentWeather struct {
	Temperature float64 `json:"temperature_2m"`
	Humidity    float64 `json:"relative_humidity_2m"`
	WindSpeed   float64 `json:"wind_speed_10m"`
	WeatherCode int     `json:"weather_code"`
}
