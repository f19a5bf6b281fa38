// Package generator produces synthetic events when no live data is available
// or when the drawn event type has no live backing source. Synthetic events
// are plausible fabrications: real locations and real source organizations,
// invented occurrences, always marked Live=false.
package generator

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/refdata"
)

// Coordinate jitter keeps repeated events at the same place from stacking
// into a single map marker.
const (
	urbanJitter   = 0.03
	hotspotJitter = 0.08
)

type weightedType struct {
	typ    domain.EventType
	weight float64
}

var baseWeights = []weightedType{
	{domain.TypeUrbanGrowth, 0.20},
	{domain.TypeConflict, 0.20},
	{domain.TypeInfrastructure, 0.10},
	{domain.TypeDisaster, 0.15},
	{domain.TypeProtest, 0.10},
	{domain.TypeWeather, 0.25},
}

const cyberWeight = 0.10

var malwareFamilies = []string{"Emotet", "QakBot", "IcedID", "Pikabot", "AgentTesla", "Remcos"}

// Generator draws synthetic events from a weighted type distribution.
type Generator struct {
	rng     *rand.Rand
	weights []weightedType
	total   float64
	logger  *slog.Logger
}

// New creates a generator. With enableCyber set, cyber threat markers join
// the type distribution.
func New(enableCyber bool, logger *slog.Logger) *Generator {
	return newWithRand(enableCyber, logger, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newWithRand(enableCyber bool, logger *slog.Logger, rng *rand.Rand) *Generator {
	weights := baseWeights
	if enableCyber {
		weights = append(append([]weightedType{}, baseWeights...), weightedType{domain.TypeCyber, cyberWeight})
	}
	var total float64
	for _, w := range weights {
		total += w.weight
	}
	return &Generator{rng: rng, weights: weights, total: total, logger: logger}
}

// DrawType picks an event type from the weighted distribution.
func (g *Generator) DrawType() domain.EventType {
	r := g.rng.Float64() * g.total
	for _, w := range g.weights {
		r -= w.weight
		if r < 0 {
			return w.typ
		}
	}
	return g.weights[len(g.weights)-1].typ
}

// Event produces one synthetic event of a randomly drawn type.
func (g *Generator) Event() domain.Event {
	return g.EventOfType(g.DrawType())
}

// EventOfType produces one synthetic event of the given type.
func (g *Generator) EventOfType(typ domain.EventType) domain.Event {
	switch typ {
	case domain.TypeUrbanGrowth:
		return g.urbanGrowthEvent()
	case domain.TypeWeather:
		return g.weatherEvent()
	case domain.TypeCyber:
		return g.cyberEvent()
	default:
		return g.hotspotEvent(typ)
	}
}

func (g *Generator) urbanGrowthEvent() domain.Event {
	region := refdata.Regions[g.rng.IntN(len(refdata.Regions))]
	rate := region.GrowthRatePct()

	ev := g.base(domain.TypeUrbanGrowth, region.Center, urbanJitter)
	ev.Severity = domain.GrowthSeverity(rate)
	ev.Metadata = domain.UrbanGrowthMeta{
		City:          region.Name,
		Country:       region.Country,
		Message:       g.template(domain.TypeUrbanGrowth),
		Population:    region.Population,
		ImperviousKm2: region.ImperviousKm2.Y2024,
		GrowthRate:    fmt.Sprintf("+%.1f%%", rate),
		Polygon:       region.Polygon,
	}
	return ev
}

func (g *Generator) hotspotEvent(typ domain.EventType) domain.Event {
	place := refdata.Hotspots[g.rng.IntN(len(refdata.Hotspots))]

	ev := g.base(typ, place.Coords, hotspotJitter)
	ev.Severity = g.drawSeverity()
	meta := domain.HotspotMeta{
		Location: place.Name,
		Region:   place.Region,
		Message:  g.template(typ),
		Verified: g.drawVerified(),
		Sources:  g.drawSources(),
	}
	if typ == domain.TypeDisaster {
		ev.Metadata = domain.QuakeMeta{
			Location: meta.Location,
			Region:   meta.Region,
			Message:  meta.Message,
			Verified: meta.Verified,
			Sources:  meta.Sources,
		}
	} else {
		ev.Metadata = meta
	}
	return ev
}

func (g *Generator) weatherEvent() domain.Event {
	city := refdata.WeatherCities[g.rng.IntN(len(refdata.WeatherCities))]

	ev := g.base(domain.TypeWeather, city.Coords, urbanJitter)
	ev.Severity = g.drawSeverity()
	ev.Metadata = domain.WeatherMeta{
		Location: city.Name,
		Region:   city.Region,
		Message:  g.template(domain.TypeWeather),
		Verified: g.drawVerified(),
		Sources:  g.drawSources(),
	}
	return ev
}

func (g *Generator) cyberEvent() domain.Event {
	place := refdata.Hotspots[g.rng.IntN(len(refdata.Hotspots))]

	kind := "c2"
	if g.rng.Float64() < 0.5 {
		kind = "malware_url"
	}

	ev := g.base(domain.TypeCyber, place.Coords, hotspotJitter)
	ev.Severity = g.drawSeverity()
	ev.Metadata = domain.CyberMeta{
		Location:   place.Name,
		Region:     place.Region,
		Message:    g.template(domain.TypeCyber),
		ThreatKind: kind,
		Family:     malwareFamilies[g.rng.IntN(len(malwareFamilies))],
		Verified:   g.drawVerified(),
		Sources:    g.drawSources(),
	}
	return ev
}

// base fills the fields common to all synthetic events.
func (g *Generator) base(typ domain.EventType, at domain.Coords, jitter float64) domain.Event {
	src := g.source(typ)
	return domain.Event{
		ID:        domain.NewEventID(),
		Type:      typ,
		Coords:    g.jitter(at, jitter),
		Timestamp: domain.Now(),
		Source: domain.Source{
			Name:            src.Name,
			URL:             src.URL,
			UpdateFrequency: src.UpdateFrequency,
			Reliability:     src.Reliability,
			LastVerified:    src.LastVerified,
			Badge:           refdata.BadgeFor(src.Reliability),
			Live:            false,
		},
	}
}

func (g *Generator) jitter(c domain.Coords, amount float64) domain.Coords {
	return domain.Coords{
		c.Lat() + (g.rng.Float64()*2-1)*amount,
		c.Lng() + (g.rng.Float64()*2-1)*amount,
	}
}

func (g *Generator) template(typ domain.EventType) string {
	pool := refdata.Templates[typ]
	return pool[g.rng.IntN(len(pool))]
}

func (g *Generator) source(typ domain.EventType) refdata.SourceDef {
	pool := refdata.Sources[typ]
	return pool[g.rng.IntN(len(pool))]
}

// Fabricated reports lean verified and cite one to five sources.
func (g *Generator) drawVerified() bool { return g.rng.Float64() < 0.7 }

func (g *Generator) drawSources() int { return 1 + g.rng.IntN(5) }

// drawSeverity skews toward the low end so critical markers stay rare.
func (g *Generator) drawSeverity() domain.Severity {
	r := g.rng.Float64()
	switch {
	case r < 0.35:
		return domain.SeverityLow
	case r < 0.70:
		return domain.SeverityMedium
	case r < 0.92:
		return domain.SeverityHigh
	default:
		return domain.SeverityCritical
	}
}
