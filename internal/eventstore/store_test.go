package eventstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetmode/worldstate/internal/domain"
)

func event(id string, typ domain.EventType, sev domain.Severity) domain.Event {
	return domain.Event{ID: id, Type: typ, Severity: sev}
}

func TestStore_NewestFirst(t *testing.T) {
	s := New(10)
	s.Add(event("a", domain.TypeWeather, domain.SeverityLow))
	s.Add(event("b", domain.TypeConflict, domain.SeverityHigh))
	s.Add(event("c", domain.TypeProtest, domain.SeverityMedium))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)
}

func TestStore_EvictsBeyondBound(t *testing.T) {
	const max = 500
	s := New(max)

	for i := range max + 5 {
		s.Add(event(fmt.Sprintf("evt-%d", i), domain.TypeWeather, domain.SeverityLow))
	}

	assert.Equal(t, max, s.Len())
	all := s.All()
	assert.Equal(t, fmt.Sprintf("evt-%d", max+4), all[0].ID, "newest survives")
	assert.Equal(t, "evt-5", all[max-1].ID, "oldest five evicted")
}

func TestStore_Recent(t *testing.T) {
	s := New(10)
	for i := range 4 {
		s.Add(event(fmt.Sprintf("evt-%d", i), domain.TypeWeather, domain.SeverityLow))
	}

	recent := s.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "evt-3", recent[0].ID)

	assert.Len(t, s.Recent(100), 4, "n above length returns everything")
}

func TestStore_Filters(t *testing.T) {
	s := New(10)
	s.Add(event("w1", domain.TypeWeather, domain.SeverityLow))
	s.Add(event("c1", domain.TypeConflict, domain.SeverityCritical))
	s.Add(event("w2", domain.TypeWeather, domain.SeverityHigh))

	weather := s.ByType(domain.TypeWeather)
	require.Len(t, weather, 2)
	assert.Equal(t, "w2", weather[0].ID)

	alerts := s.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, "w2", alerts[0].ID)
	assert.Equal(t, "c1", alerts[1].ID)

	assert.Empty(t, s.BySeverity(domain.SeverityMedium))
}

func TestStore_SubscribeNotifiesSynchronously(t *testing.T) {
	s := New(10)

	var seen []string
	s.Subscribe(func(ev domain.Event) { seen = append(seen, ev.ID) })

	s.Add(event("a", domain.TypeWeather, domain.SeverityLow))
	s.Add(event("b", domain.TypeWeather, domain.SeverityLow))

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestStore_DefaultMax(t *testing.T) {
	s := New(0)
	for i := range DefaultMax + 1 {
		s.Add(event(fmt.Sprintf("evt-%d", i), domain.TypeWeather, domain.SeverityLow))
	}
	assert.Equal(t, DefaultMax, s.Len())
}
