// Package view renders events into terminal lines. All functions are pure:
// input in, string out, no I/O.
package view

import (
	"fmt"
	"strings"

	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/streamclient"
)

var typeIcons = map[domain.EventType]string{
	domain.TypeUrbanGrowth:    "🏗",
	domain.TypeConflict:       "⚔️",
	domain.TypeInfrastructure: "🔌",
	domain.TypeDisaster:       "🌋",
	domain.TypeProtest:        "📢",
	domain.TypeWeather:        "🌩",
	domain.TypeCyber:          "🛡",
}

var severityTags = map[domain.Severity]string{
	domain.SeverityLow:      "LOW ",
	domain.SeverityMedium:   "MED ",
	domain.SeverityHigh:     "HIGH",
	domain.SeverityCritical: "CRIT",
}

// TypeIcon returns the icon for an event type, with a neutral fallback for
// types this build does not know.
func TypeIcon(typ domain.EventType) string {
	if icon, ok := typeIcons[typ]; ok {
		return icon
	}
	return "❓"
}

// SeverityTag returns the fixed-width severity column value.
func SeverityTag(sev domain.Severity) string {
	if tag, ok := severityTags[sev]; ok {
		return tag
	}
	return "??? "
}

// Message extracts the human-readable message from an event's metadata.
// Unknown metadata shapes fall back to their raw "message" field, then to
// the event type.
func Message(ev domain.Event) string {
	switch m := ev.Metadata.(type) {
	case domain.UrbanGrowthMeta:
		return fmt.Sprintf("%s — %s, %s (%s)", m.Message, m.City, m.Country, m.GrowthRate)
	case domain.HotspotMeta:
		return fmt.Sprintf("%s — %s", m.Message, m.Location)
	case domain.QuakeMeta:
		return m.Message
	case domain.WeatherMeta:
		return m.Message
	case domain.CyberMeta:
		return fmt.Sprintf("%s — %s", m.Message, m.Location)
	case domain.RawMeta:
		if msg, ok := m["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return string(ev.Type)
}

// FeedLine renders one event as a single feed row.
func FeedLine(ev domain.Event) string {
	live := "sim "
	if ev.Source.Live {
		live = "live"
	}
	return fmt.Sprintf("%s  [%s] %s %-14s %s  (%s, %s)",
		ev.Timestamp.Format("15:04:05"),
		SeverityTag(ev.Severity),
		TypeIcon(ev.Type),
		ev.Type,
		Message(ev),
		live,
		ev.Source.Name,
	)
}

// Alerts renders the high and critical events as a block, newest first,
// with a placeholder line when there are none.
func Alerts(events []domain.Event) string {
	var b strings.Builder
	b.WriteString("── Alerts ──\n")
	count := 0
	for _, ev := range events {
		if ev.Severity != domain.SeverityHigh && ev.Severity != domain.SeverityCritical {
			continue
		}
		b.WriteString(FeedLine(ev))
		b.WriteByte('\n')
		count++
	}
	if count == 0 {
		b.WriteString("(no active alerts)\n")
	}
	return b.String()
}

// StatusLine renders the stream connection state.
func StatusLine(state streamclient.State, attempt int) string {
	switch state {
	case streamclient.StateConnecting:
		if attempt > 0 {
			return fmt.Sprintf("● reconnecting (attempt %d)", attempt)
		}
		return "● connecting"
	case streamclient.StateOpen:
		return "● connected"
	case streamclient.StateDisconnected:
		return "● disconnected, retrying"
	case streamclient.StateFailed:
		return "● connection failed, giving up"
	default:
		return "● idle"
	}
}
