package openmeteo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/observability"
	"github.com/planetmode/worldstate/internal/refdata"
)

var testCity = refdata.Place{Name: "Cape Town", Coords: domain.Coords{-33.9249, 18.4241}, Region: "Africa"}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, testLogger(), observability.NewMetricsForTesting())
}

func serveConditions(temp, wind, humidity float64, code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current": {` +
			`"temperature_2m": ` + formatFloat(temp) + `,` +
			`"relative_humidity_2m": ` + formatFloat(humidity) + `,` +
			`"wind_speed_10m": ` + formatFloat(wind) + `,` +
			`"weather_code": ` + formatInt(code) + `}}`))
	}
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
func formatInt(n int) string       { return strconv.Itoa(n) }

func TestWeatherEventFor_MapsConditions(t *testing.T) {
	c := newTestClient(t, serveConditions(21.5, 12, 64, 63))

	ev := c.WeatherEventFor(context.Background(), testCity)
	require.NotNil(t, ev)

	assert.Equal(t, domain.TypeWeather, ev.Type)
	assert.Equal(t, domain.SeverityMedium, ev.Severity)
	assert.Equal(t, testCity.Coords, ev.Coords)
	assert.True(t, ev.Source.Live)
	assert.Contains(t, ev.ID, "weather-cape-town-")

	meta, ok := ev.Metadata.(domain.WeatherMeta)
	require.True(t, ok)
	assert.InDelta(t, 21.5, meta.Temperature, 0.001)
	assert.InDelta(t, 64, meta.Humidity, 0.001)
	assert.Equal(t, 63, meta.WeatherCode)
	assert.Equal(t, "Rain", meta.WeatherDescription)
	assert.Contains(t, meta.Message, "Cape Town")
}

func TestWeatherEventFor_EscalatesExtremeReadings(t *testing.T) {
	// Clear sky, but 43°C: conditions escalate past the code's base severity.
	c := newTestClient(t, serveConditions(43, 5, 20, 0))

	ev := c.WeatherEventFor(context.Background(), testCity)
	require.NotNil(t, ev)
	assert.Equal(t, domain.SeverityCritical, ev.Severity)
}

func TestWeatherEventFor_ServesFromCache(t *testing.T) {
	var hits atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		serveConditions(10, 10, 50, 2)(w, r)
	})

	first := c.WeatherEventFor(context.Background(), testCity)
	second := c.WeatherEventFor(context.Background(), testCity)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, int64(1), hits.Load(), "second call must be served from cache")
	assert.Equal(t, int64(1), c.Stats().Fetches)
}

func TestWeatherEventFor_CacheIsPerCity(t *testing.T) {
	var hits atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		serveConditions(10, 10, 50, 2)(w, r)
	})

	other := refdata.Place{Name: "Reykjavik", Coords: domain.Coords{64.1466, -21.9426}, Region: "Europe"}
	c.WeatherEventFor(context.Background(), testCity)
	c.WeatherEventFor(context.Background(), other)

	assert.Equal(t, int64(2), hits.Load())
	assert.Equal(t, 2, c.CacheSize())
}

func TestWeatherEventFor_NilOnFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	ev := c.WeatherEventFor(context.Background(), testCity)
	assert.Nil(t, ev)
	assert.Equal(t, int64(1), c.Stats().Errors)
}

func TestRandomWeatherEvent_UsesKnownCity(t *testing.T) {
	c := newTestClient(t, serveConditions(15, 8, 70, 1))

	ev := c.RandomWeatherEvent(context.Background())
	require.NotNil(t, ev)

	meta, ok := ev.Metadata.(domain.WeatherMeta)
	require.True(t, ok)

	names := make([]string, 0, len(refdata.WeatherCities))
	for _, city := range refdata.WeatherCities {
		names = append(names, city.Name)
	}
	assert.Contains(t, names, meta.Location)
}
