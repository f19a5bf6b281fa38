package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/streamclient"
)

func TestFeedLine(t *testing.T) {
	ev := domain.Event{
		ID:        "usgs-abc",
		Type:      domain.TypeDisaster,
		Severity:  domain.SeverityHigh,
		Timestamp: time.Date(2026, 2, 15, 12, 0, 5, 0, time.UTC),
		Source:    domain.Source{Name: "USGS Earthquake Hazards Program", Live: true},
		Metadata:  domain.QuakeMeta{Message: "Magnitude 5.6 earthquake near Tokyo"},
	}

	line := FeedLine(ev)
	assert.Contains(t, line, "12:00:05")
	assert.Contains(t, line, "[HIGH]")
	assert.Contains(t, line, "disaster")
	assert.Contains(t, line, "Magnitude 5.6 earthquake near Tokyo")
	assert.Contains(t, line, "live")
}

func TestFeedLine_SyntheticMarkedSim(t *testing.T) {
	ev := domain.Event{
		Type:      domain.TypeProtest,
		Severity:  domain.SeverityLow,
		Timestamp: time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
		Source:    domain.Source{Name: "CIVICUS Monitor", Live: false},
		Metadata:  domain.HotspotMeta{Message: "Large-scale demonstration forming", Location: "Manila"},
	}

	line := FeedLine(ev)
	assert.Contains(t, line, "sim")
	assert.Contains(t, line, "Manila")
}

func TestFeedLine_UnknownTypeAndSeverityFallBack(t *testing.T) {
	ev := domain.Event{
		Type:      domain.EventType("powder_alert"),
		Severity:  domain.Severity("epic"),
		Timestamp: time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
		Metadata:  domain.RawMeta{"message": "Fresh snow reported"},
	}

	line := FeedLine(ev)
	assert.Contains(t, line, "❓")
	assert.Contains(t, line, "[??? ]")
	assert.Contains(t, line, "Fresh snow reported")
}

func TestMessage_RawMetaWithoutMessageField(t *testing.T) {
	ev := domain.Event{Type: domain.EventType("mystery"), Metadata: domain.RawMeta{"foo": 1}}
	assert.Equal(t, "mystery", Message(ev))

	assert.Equal(t, "weather", Message(domain.Event{Type: domain.TypeWeather}))
}

func TestMessage_UrbanGrowth(t *testing.T) {
	ev := domain.Event{
		Type: domain.TypeUrbanGrowth,
		Metadata: domain.UrbanGrowthMeta{
			Message: "Urban sprawl boundary shift detected",
			City:    "Lagos", Country: "Nigeria", GrowthRate: "+28.3%",
		},
	}
	msg := Message(ev)
	assert.Contains(t, msg, "Lagos, Nigeria")
	assert.Contains(t, msg, "+28.3%")
}

func TestAlerts(t *testing.T) {
	events := []domain.Event{
		{Type: domain.TypeConflict, Severity: domain.SeverityCritical, Metadata: domain.HotspotMeta{Message: "Artillery fire detected via acoustic sensors", Location: "Donetsk"}},
		{Type: domain.TypeWeather, Severity: domain.SeverityLow, Metadata: domain.WeatherMeta{Message: "Clear sky in Oslo"}},
		{Type: domain.TypeDisaster, Severity: domain.SeverityHigh, Metadata: domain.QuakeMeta{Message: "Magnitude 5.6 earthquake near Tokyo"}},
	}

	out := Alerts(events)
	assert.Contains(t, out, "Donetsk")
	assert.Contains(t, out, "earthquake")
	assert.NotContains(t, out, "Oslo", "low severity events stay out of the alert block")
}

func TestAlerts_Empty(t *testing.T) {
	assert.Contains(t, Alerts(nil), "no active alerts")
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "● connecting", StatusLine(streamclient.StateConnecting, 0))
	assert.Equal(t, "● reconnecting (attempt 3)", StatusLine(streamclient.StateConnecting, 3))
	assert.Equal(t, "● connected", StatusLine(streamclient.StateOpen, 0))
	assert.Equal(t, "● disconnected, retrying", StatusLine(streamclient.StateDisconnected, 1))
	assert.Equal(t, "● connection failed, giving up", StatusLine(streamclient.StateFailed, 20))
	assert.Equal(t, "● idle", StatusLine(streamclient.StateIdle, 0))
}
