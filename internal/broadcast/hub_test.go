package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/observability"
	"github.com/planetmode/worldstate/internal/refdata"
)

type fakeSession struct {
	mu     sync.Mutex
	frames [][]byte
	fail   bool
	closed bool
}

func (s *fakeSession) WriteMessage(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("write on closed connection")
	}
	s.frames = append(s.frames, append([]byte(nil), data...))
	return nil
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSession) frameCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

func (s *fakeSession) frame(i int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames[i]
}

type fakeQuakes struct{ events []domain.Event }

func (f *fakeQuakes) FetchEarthquakes(context.Context) []domain.Event { return f.events }

func (f *fakeQuakes) RandomEarthquake(context.Context) *domain.Event {
	if len(f.events) == 0 {
		return nil
	}
	ev := f.events[0]
	return &ev
}

type fakeWeather struct{ ev *domain.Event }

func (f *fakeWeather) RandomWeatherEvent(context.Context) *domain.Event { return f.ev }

type fakeSynth struct{}

func (fakeSynth) Event() domain.Event {
	return domain.Event{ID: "evt-synthetic", Type: domain.TypeProtest, Severity: domain.SeverityLow}
}

func quakeEvent(id string) domain.Event {
	return domain.Event{
		ID: id, Type: domain.TypeDisaster, Severity: domain.SeverityHigh,
		Source: domain.Source{Name: "USGS", Live: true},
	}
}

func newTestHub(opts Options, quakes *fakeQuakes, weather *fakeWeather) *Hub {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHub(quakes, weather, fakeSynth{}, opts, logger, observability.NewMetricsForTesting())
}

type wireFrame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func TestRegister_SendsInitFrame(t *testing.T) {
	var quakes fakeQuakes
	for i := range 12 {
		quakes.events = append(quakes.events, quakeEvent(fmt.Sprintf("usgs-%d", i)))
	}
	h := newTestHub(Options{}, &quakes, &fakeWeather{})

	s := &fakeSession{}
	require.NoError(t, h.Register(context.Background(), s))
	require.Equal(t, 1, s.frameCount())

	var f wireFrame
	require.NoError(t, json.Unmarshal(s.frame(0), &f))
	assert.Equal(t, "init", f.Type)

	var payload struct {
		Regions           []refdata.Region `json:"regions"`
		ServerTime        time.Time        `json:"serverTime"`
		RecentEarthquakes []domain.Event   `json:"recentEarthquakes"`
	}
	require.NoError(t, json.Unmarshal(f.Payload, &payload))
	assert.Len(t, payload.Regions, len(refdata.Regions))
	assert.Len(t, payload.RecentEarthquakes, 10, "init carries at most ten recent earthquakes")
	assert.False(t, payload.ServerTime.IsZero())
	assert.Equal(t, 1, h.ClientCount())
}

func TestRegister_FailedInitWriteKeepsSessionOut(t *testing.T) {
	h := newTestHub(Options{}, &fakeQuakes{}, &fakeWeather{})

	s := &fakeSession{fail: true}
	require.Error(t, h.Register(context.Background(), s))
	assert.Zero(t, h.ClientCount())
}

func TestBroadcast_FansOutAndDropsFailed(t *testing.T) {
	h := newTestHub(Options{}, &fakeQuakes{}, &fakeWeather{})

	good := []*fakeSession{{}, {}, {}}
	for _, s := range good {
		require.NoError(t, h.Register(context.Background(), s))
	}
	bad := &fakeSession{}
	require.NoError(t, h.Register(context.Background(), bad))
	bad.fail = true

	h.Broadcast(quakeEvent("usgs-abc"))

	for _, s := range good {
		require.Equal(t, 2, s.frameCount(), "init plus one event")
		var f wireFrame
		require.NoError(t, json.Unmarshal(s.frame(1), &f))
		assert.Equal(t, "event", f.Type)

		ev, err := domain.DecodeEvent(f.Payload)
		require.NoError(t, err)
		assert.Equal(t, "usgs-abc", ev.ID)
	}

	assert.Equal(t, 3, h.ClientCount(), "failed session is dropped")
	assert.True(t, bad.closed)

	stats := h.Stats()
	assert.Equal(t, int64(1), stats.EventsEmitted)
	assert.Equal(t, int64(1), stats.RealEventsEmitted)
}

func TestBroadcast_SyntheticDoesNotCountAsReal(t *testing.T) {
	h := newTestHub(Options{}, &fakeQuakes{}, &fakeWeather{})
	s := &fakeSession{}
	require.NoError(t, h.Register(context.Background(), s))

	h.Broadcast(fakeSynth{}.Event())

	stats := h.Stats()
	assert.Equal(t, int64(1), stats.EventsEmitted)
	assert.Zero(t, stats.RealEventsEmitted)
}

func TestNextEvent_PrefersLiveData(t *testing.T) {
	quakes := &fakeQuakes{events: []domain.Event{quakeEvent("usgs-live")}}
	weather := &fakeWeather{ev: &domain.Event{ID: "weather-live", Type: domain.TypeWeather, Source: domain.Source{Live: true}}}
	h := newTestHub(Options{
		LiveDataRatio: 1.0,
		RNG:           rand.New(rand.NewPCG(1, 2)),
	}, quakes, weather)

	for range 50 {
		ev := h.NextEvent(context.Background())
		assert.True(t, ev.Source.Live, "ratio 1.0 with live data available must emit live events")
	}
}

func TestNextEvent_SyntheticOnly(t *testing.T) {
	h := newTestHub(Options{
		LiveDataRatio: 0,
		RNG:           rand.New(rand.NewPCG(1, 2)),
	}, &fakeQuakes{}, &fakeWeather{})

	ev := h.NextEvent(context.Background())
	assert.False(t, ev.Source.Live)
	assert.Equal(t, "evt-synthetic", ev.ID)
}

func TestNextEvent_FallsBackWhenLiveUnavailable(t *testing.T) {
	h := newTestHub(Options{
		LiveDataRatio: 1.0,
		RNG:           rand.New(rand.NewPCG(1, 2)),
	}, &fakeQuakes{}, &fakeWeather{})

	ev := h.NextEvent(context.Background())
	assert.Equal(t, "evt-synthetic", ev.ID, "no live data means synthetic fallback")
}

type recordingExporter struct {
	mu  sync.Mutex
	ids []string
}

func (r *recordingExporter) Publish(_ context.Context, ev domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, ev.ID)
	return nil
}

func TestBroadcast_PublishesToExporter(t *testing.T) {
	exp := &recordingExporter{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := observability.NewMetricsForTesting()
	h := NewHub(&fakeQuakes{}, &fakeWeather{}, fakeSynth{}, Options{Exporter: exp}, logger, m)

	h.Broadcast(quakeEvent("usgs-exported"))

	assert.Equal(t, []string{"usgs-exported"}, exp.ids)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsExported))
}

type failingExporter struct{}

func (failingExporter) Publish(context.Context, domain.Event) error {
	return errors.New("broker unavailable")
}

func TestBroadcast_FailedExportNotCounted(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := observability.NewMetricsForTesting()
	h := NewHub(&fakeQuakes{}, &fakeWeather{}, fakeSynth{}, Options{Exporter: failingExporter{}}, logger, m)

	h.Broadcast(quakeEvent("usgs-lost"))

	assert.Zero(t, testutil.ToFloat64(m.EventsExported))
	assert.Equal(t, int64(1), h.Stats().EventsEmitted, "broadcast still counts when export fails")
}

func TestRun_SkipsTicksWithoutClients(t *testing.T) {
	clk := clockwork.NewFakeClock()
	quakes := &fakeQuakes{events: []domain.Event{quakeEvent("usgs-tick")}}
	h := newTestHub(Options{
		TickMin:       2 * time.Second,
		TickMax:       5 * time.Second,
		LiveDataRatio: 1.0,
		Clock:         clk,
		RNG:           rand.New(rand.NewPCG(3, 4)),
	}, quakes, &fakeWeather{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	// No clients: ticks pass without emitting.
	clk.BlockUntil(1)
	clk.Advance(5 * time.Second)
	clk.BlockUntil(1)
	assert.Zero(t, h.Stats().EventsEmitted)

	s := &fakeSession{}
	require.NoError(t, h.Register(ctx, s))

	clk.Advance(5 * time.Second)
	require.Eventually(t, func() bool {
		return s.frameCount() >= 2
	}, time.Second, 5*time.Millisecond, "registered client should receive the tick event")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("emission loop did not stop on cancel")
	}
}
