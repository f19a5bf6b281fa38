package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// Severity is the ordered four-level scale shared by all event types.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities lists all known levels in ascending order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Rank returns the position of s in the ordered scale, or -1 for an
// unrecognized value. Unrecognized severities are tolerated everywhere;
// they render via a fallback and never match an alert filter.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

// Known reports whether s is a member of the closed enumeration.
func (s Severity) Known() bool { return s.Rank() >= 0 }

// EventType is the closed enumeration of feed event categories.
type EventType string

const (
	TypeUrbanGrowth    EventType = "urban_growth"
	TypeConflict       EventType = "conflict"
	TypeInfrastructure EventType = "infrastructure"
	TypeDisaster       EventType = "disaster"
	TypeProtest        EventType = "protest"
	TypeWeather        EventType = "weather"
	TypeCyber          EventType = "cyber"
)

// Known reports whether t is a member of the closed enumeration.
func (t EventType) Known() bool {
	switch t {
	case TypeUrbanGrowth, TypeConflict, TypeInfrastructure, TypeDisaster, TypeProtest, TypeWeather, TypeCyber:
		return true
	}
	return false
}

// Coords is a [latitude, longitude] pair in WGS-84 degrees.
type Coords [2]float64

func (c Coords) Lat() float64 { return c[0] }
func (c Coords) Lng() float64 { return c[1] }

// Badge is the reliability-tier marker shown next to a source attribution.
type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Source attributes an event to its data provider. Live distinguishes real
// external-API data from synthetic demonstration data; the two must never be
// conflated where trust matters.
type Source struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	UpdateFrequency string `json:"updateFrequency"`
	Reliability     string `json:"reliability"`
	LastVerified    string `json:"lastVerified"`
	Badge           Badge  `json:"badge"`
	Live            bool   `json:"live"`
}

// Event is the single entity with a real lifecycle in the system. Once
// broadcast it is immutable; consumers copy, filter, and render but never
// mutate.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Severity  Severity  `json:"severity"`
	Coords    Coords    `json:"coords"`
	Timestamp time.Time `json:"timestamp"`
	Source    Source    `json:"source"`
	Metadata  Metadata  `json:"metadata,omitempty"`
}

// Metadata is the tagged union of per-type payloads. Exactly one concrete
// shape exists per event type; DecodeEvent selects it from the wire form.
type Metadata interface {
	isMetadata()
}

// UrbanGrowthMeta accompanies urban_growth events.
type UrbanGrowthMeta struct {
	City          string       `json:"city"`
	Country       string       `json:"country"`
	Message       string       `json:"message"`
	Population    int          `json:"population"`
	ImperviousKm2 float64      `json:"imperviousKm2"`
	GrowthRate    string       `json:"growthRate"`
	Polygon       [][2]float64 `json:"polygon,omitempty"`
}

// HotspotMeta accompanies synthetic conflict, infrastructure, disaster, and
// protest events.
type HotspotMeta struct {
	Location string `json:"location"`
	Region   string `json:"region"`
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
	Sources  int    `json:"sources"`
}

// QuakeMeta accompanies live disaster events from the USGS catalog. It is a
// superset of HotspotMeta so synthetic disaster events decode into it with
// the measurement fields zero.
type QuakeMeta struct {
	Location  string  `json:"location"`
	Region    string  `json:"region"`
	Message   string  `json:"message"`
	Magnitude float64 `json:"magnitude,omitempty"`
	Depth     float64 `json:"depth,omitempty"`
	Verified  bool    `json:"verified"`
	Sources   int     `json:"sources"`
	USGSURL   string  `json:"usgsUrl,omitempty"`
}

// WeatherMeta accompanies weather events.
type WeatherMeta struct {
	Location           string  `json:"location"`
	Region             string  `json:"region"`
	Message            string  `json:"message"`
	Temperature        float64 `json:"temperature"`
	WindSpeed          float64 `json:"windSpeed"`
	Humidity           float64 `json:"humidity"`
	WeatherCode        int     `json:"weatherCode"`
	WeatherIcon        string  `json:"weatherIcon"`
	WeatherDescription string  `json:"weatherDescription"`
	Verified           bool    `json:"verified"`
	Sources            int     `json:"sources"`
}

// CyberMeta accompanies cyber threat marker events.
type CyberMeta struct {
	Location   string `json:"location"`
	Region     string `json:"region"`
	Message    string `json:"message"`
	ThreatKind string `json:"threatKind"` // "c2" or "malware_url"
	Family     string `json:"family,omitempty"`
	Verified   bool   `json:"verified"`
	Sources    int    `json:"sources"`
}

// RawMeta holds the payload of an event whose type is not in the closed
// enumeration. Kept as-is so rendering can fall back instead of failing.
type RawMeta map[string]any

func (UrbanGrowthMeta) isMetadata() {}
func (HotspotMeta) isMetadata()     {}
func (QuakeMeta) isMetadata()       {}
func (WeatherMeta) isMetadata()     {}
func (CyberMeta) isMetadata()       {}
func (RawMeta) isMetadata()         {}

const idAlphabetSize = 36

// NewEventID produces a synthetic event ID: "evt-<unix-ms>-<6 base36 chars>".
// IDs are opaque and never reused; uniqueness within the store's retention
// window comes from the millisecond timestamp plus the random suffix.
func NewEventID() string {
	suffix := strconv.FormatInt(rand.Int64N(idAlphabetSize*idAlphabetSize*idAlphabetSize*idAlphabetSize*idAlphabetSize*idAlphabetSize), idAlphabetSize)
	for len(suffix) < 6 {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("evt-%d-%s", clock.Now().UnixMilli(), suffix)
}

var jsonNull = []byte("null")

// DecodeEvent deserializes a wire event, selecting the metadata shape from
// the type tag. Unknown event types decode into RawMeta rather than failing.
func DecodeEvent(data []byte) (Event, error) {
	var w struct {
		ID        string          `json:"id"`
		Type      EventType       `json:"type"`
		Severity  Severity        `json:"severity"`
		Coords    Coords          `json:"coords"`
		Timestamp time.Time       `json:"timestamp"`
		Source    Source          `json:"source"`
		Metadata  json.RawMessage `json:"metadata"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}

	ev := Event{
		ID:        w.ID,
		Type:      w.Type,
		Severity:  w.Severity,
		Coords:    w.Coords,
		Timestamp: w.Timestamp,
		Source:    w.Source,
	}
	if len(w.Metadata) == 0 || bytes.Equal(w.Metadata, jsonNull) {
		return ev, nil
	}

	meta, err := decodeMetadata(w.Type, w.Metadata)
	if err != nil {
		return Event{}, err
	}
	ev.Metadata = meta
	return ev, nil
}

func decodeMetadata(t EventType, raw json.RawMessage) (Metadata, error) {
	switch t {
	case TypeUrbanGrowth:
		var m UrbanGrowthMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode %s metadata: %w", t, err)
		}
		return m, nil
	case TypeConflict, TypeInfrastructure, TypeProtest:
		var m HotspotMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode %s metadata: %w", t, err)
		}
		return m, nil
	case TypeDisaster:
		var m QuakeMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode %s metadata: %w", t, err)
		}
		return m, nil
	case TypeWeather:
		var m WeatherMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode %s metadata: %w", t, err)
		}
		return m, nil
	case TypeCyber:
		var m CyberMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode %s metadata: %w", t, err)
		}
		return m, nil
	default:
		var m RawMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode %s metadata: %w", t, err)
		}
		return m, nil
	}
}
