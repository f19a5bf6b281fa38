// Package broadcast owns the WebSocket fan-out and the emission loop that
// drives it. The channel is one-directional: the hub pushes frames, clients
// only listen.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/observability"
	"github.com/planetmode/worldstate/internal/refdata"
)

const initRecentQuakes = 10

// Session is one connected listener. The http adapter wraps *websocket.Conn
// behind this so hub tests can use in-memory fakes.
type Session interface {
	WriteMessage(data []byte) error
	Close() error
}

// EarthquakeSource supplies live earthquake data.
type EarthquakeSource interface {
	FetchEarthquakes(ctx context.Context) []domain.Event
	RandomEarthquake(ctx context.Context) *domain.Event
}

// WeatherSource supplies live weather observations.
type WeatherSource interface {
	RandomWeatherEvent(ctx context.Context) *domain.Event
}

// SyntheticSource supplies fabricated events when no live data applies.
type SyntheticSource interface {
	Event() domain.Event
}

// Exporter receives every broadcast event, best effort. Used for the
// optional Kafka sink.
type Exporter interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Stats is a snapshot of emission counters for the health endpoint.
type Stats struct {
	EventsEmitted     int64
	RealEventsEmitted int64
	Clients           int
}

// Options configures a Hub.
type Options struct {
	TickMin       time.Duration
	TickMax       time.Duration
	LiveDataRatio float64

	// Clock and RNG default to the real clock and a random seed.
	Clock clockwork.Clock
	RNG   *rand.Rand

	// Exporter is optional.
	Exporter Exporter
}

// Hub fans events out to connected sessions and runs the emission loop.
type Hub struct {
	quakes  EarthquakeSource
	weather WeatherSource
	synth   SyntheticSource

	opts    Options
	logger  *slog.Logger
	metrics *observability.Metrics

	mu       sync.Mutex
	sessions map[Session]struct{}
	emitted  int64
	real     int64
}

// NewHub creates a hub. Zero tick bounds default to the 2–5 s window.
func NewHub(quakes EarthquakeSource, weather WeatherSource, synth SyntheticSource, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Hub {
	if opts.TickMin <= 0 {
		opts.TickMin = 2 * time.Second
	}
	if opts.TickMax < opts.TickMin {
		opts.TickMax = opts.TickMin + 3*time.Second
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.RNG == nil {
		opts.RNG = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Hub{
		quakes:   quakes,
		weather:  weather,
		synth:    synth,
		opts:     opts,
		logger:   logger,
		metrics:  metrics,
		sessions: make(map[Session]struct{}),
	}
}

type frame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type initPayload struct {
	Regions           []refdata.Region `json:"regions"`
	ServerTime        time.Time        `json:"serverTime"`
	RecentEarthquakes []domain.Event   `json:"recentEarthquakes"`
}

// Register sends the init frame to a new session and adds it to the fan-out
// set. The session is not registered when the init write fails.
func (h *Hub) Register(ctx context.Context, s Session) error {
	recent := h.quakes.FetchEarthquakes(ctx)
	if len(recent) > initRecentQuakes {
		recent = recent[:initRecentQuakes]
	}
	if recent == nil {
		recent = []domain.Event{}
	}

	data, err := json.Marshal(frame{Type: "init", Payload: initPayload{
		Regions:           refdata.Regions,
		ServerTime:        domain.Now(),
		RecentEarthquakes: recent,
	}})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := s.WriteMessage(data); err != nil {
		return err
	}
	h.sessions[s] = struct{}{}
	h.metrics.ClientsConnected.Set(float64(len(h.sessions)))
	h.logger.Info("client connected", "clients", len(h.sessions))
	return nil
}

// Unregister removes a session, closing it.
func (h *Hub) Unregister(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(s)
}

func (h *Hub) dropLocked(s Session) {
	if _, ok := h.sessions[s]; !ok {
		return
	}
	delete(h.sessions, s)
	_ = s.Close()
	h.metrics.ClientsConnected.Set(float64(len(h.sessions)))
	h.logger.Info("client disconnected", "clients", len(h.sessions))
}

// ClientCount returns the number of registered sessions.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Broadcast serializes the event once and writes it to every session.
// Sessions whose write fails are dropped.
func (h *Hub) Broadcast(ev domain.Event) {
	data, err := json.Marshal(frame{Type: "event", Payload: ev})
	if err != nil {
		h.logger.Error("marshal event", "error", err, "id", ev.ID)
		return
	}

	h.mu.Lock()
	var failed []Session
	for s := range h.sessions {
		if err := s.WriteMessage(data); err != nil {
			failed = append(failed, s)
		}
	}
	for _, s := range failed {
		h.metrics.SessionsDropped.Inc()
		h.dropLocked(s)
	}

	h.emitted++
	if ev.Source.Live {
		h.real++
		h.metrics.RealEventsEmitted.Inc()
	}
	h.mu.Unlock()

	h.metrics.EventsEmitted.Inc()

	if h.opts.Exporter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.opts.Exporter.Publish(ctx, ev); err != nil {
			h.logger.Warn("export failed", "error", err, "id", ev.ID)
		} else {
			h.metrics.EventsExported.Inc()
		}
	}
}

// Stats returns a snapshot of emission counters.
func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{EventsEmitted: h.emitted, RealEventsEmitted: h.real, Clients: len(h.sessions)}
}

// Run drives the emission loop until ctx is cancelled. Each tick waits a
// uniform random duration within the configured window, then emits one event
// unless nobody is listening.
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("emission loop started", "tick_min", h.opts.TickMin, "tick_max", h.opts.TickMax)
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("emission loop stopped")
			return
		case <-h.opts.Clock.After(h.nextTick()):
		}

		if h.ClientCount() == 0 {
			continue
		}
		h.Broadcast(h.NextEvent(ctx))
	}
}

func (h *Hub) nextTick() time.Duration {
	window := h.opts.TickMax - h.opts.TickMin
	if window <= 0 {
		return h.opts.TickMin
	}
	return h.opts.TickMin + time.Duration(h.opts.RNG.Int64N(int64(window)))
}

// NextEvent prefers live data at the configured ratio, coin-flipping between
// earthquake and weather sources, and falls back to a synthetic event when
// the chosen source has nothing.
func (h *Hub) NextEvent(ctx context.Context) domain.Event {
	if h.opts.RNG.Float64() < h.opts.LiveDataRatio {
		var live *domain.Event
		if h.opts.RNG.Float64() < 0.5 {
			live = h.quakes.RandomEarthquake(ctx)
		} else {
			live = h.weather.RandomWeatherEvent(ctx)
		}
		if live != nil {
			return *live
		}
	}
	return h.synth.Event()
}
