package generator

import (
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/refdata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seeded(enableCyber bool) *Generator {
	return newWithRand(enableCyber, testLogger(), rand.New(rand.NewPCG(7, 13)))
}

func TestDrawType_MatchesWeights(t *testing.T) {
	g := seeded(false)

	const draws = 20000
	counts := map[domain.EventType]int{}
	for range draws {
		counts[g.DrawType()]++
	}

	expected := map[domain.EventType]float64{
		domain.TypeUrbanGrowth:    0.20,
		domain.TypeConflict:       0.20,
		domain.TypeInfrastructure: 0.10,
		domain.TypeDisaster:       0.15,
		domain.TypeProtest:        0.10,
		domain.TypeWeather:        0.25,
	}
	for typ, want := range expected {
		got := float64(counts[typ]) / draws
		assert.InDelta(t, want, got, 0.02, "type %s drifted from its weight", typ)
	}
	assert.Zero(t, counts[domain.TypeCyber], "cyber events need the flag")
}

func TestDrawType_CyberRequiresFlag(t *testing.T) {
	g := seeded(true)

	sawCyber := false
	for range 5000 {
		if g.DrawType() == domain.TypeCyber {
			sawCyber = true
			break
		}
	}
	assert.True(t, sawCyber)
}

func TestEvent_AlwaysSynthetic(t *testing.T) {
	g := seeded(true)

	for range 200 {
		ev := g.Event()
		assert.False(t, ev.Source.Live, "synthetic events must never claim live data")
		assert.True(t, ev.Type.Known())
		assert.True(t, ev.Severity.Known())
		assert.NotEmpty(t, ev.ID)
		assert.NotNil(t, ev.Metadata)
	}
}

func TestUrbanGrowthEvent_DerivedFromRegion(t *testing.T) {
	clk := clockwork.NewFakeClockAt(time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC))
	domain.SetClock(clk)
	t.Cleanup(func() { domain.SetClock(nil) })

	g := seeded(false)
	ev := g.EventOfType(domain.TypeUrbanGrowth)

	require.Equal(t, domain.TypeUrbanGrowth, ev.Type)
	meta, ok := ev.Metadata.(domain.UrbanGrowthMeta)
	require.True(t, ok)

	var region refdata.Region
	found := false
	for _, r := range refdata.Regions {
		if r.Name == meta.City {
			region = r
			found = true
			break
		}
	}
	require.True(t, found, "city %q is not a monitored region", meta.City)

	assert.Equal(t, region.Country, meta.Country)
	assert.Equal(t, region.Population, meta.Population)
	assert.Equal(t, domain.GrowthSeverity(region.GrowthRatePct()), ev.Severity)
	assert.NotEmpty(t, meta.Polygon)
	assert.Equal(t, clk.Now(), ev.Timestamp)

	// Jitter stays within the urban bound.
	assert.LessOrEqual(t, math.Abs(ev.Coords.Lat()-region.Center.Lat()), urbanJitter)
	assert.LessOrEqual(t, math.Abs(ev.Coords.Lng()-region.Center.Lng()), urbanJitter)
}

func TestHotspotEvent_JitterBound(t *testing.T) {
	g := seeded(false)

	for range 100 {
		ev := g.EventOfType(domain.TypeConflict)
		meta, ok := ev.Metadata.(domain.HotspotMeta)
		require.True(t, ok)

		var place refdata.Place
		found := false
		for _, p := range refdata.Hotspots {
			if p.Name == meta.Location {
				place = p
				found = true
				break
			}
		}
		require.True(t, found)
		assert.LessOrEqual(t, math.Abs(ev.Coords.Lat()-place.Coords.Lat()), hotspotJitter)
		assert.LessOrEqual(t, math.Abs(ev.Coords.Lng()-place.Coords.Lng()), hotspotJitter)
	}
}

func TestDisasterEvent_DecodableMetadata(t *testing.T) {
	g := seeded(false)

	ev := g.EventOfType(domain.TypeDisaster)
	meta, ok := ev.Metadata.(domain.QuakeMeta)
	require.True(t, ok, "synthetic disasters share the quake metadata shape")
	assert.Zero(t, meta.Magnitude)
	assert.GreaterOrEqual(t, meta.Sources, 1)
	assert.LessOrEqual(t, meta.Sources, 5)
}

func TestHotspotEvent_MetadataDistributions(t *testing.T) {
	g := seeded(false)

	const draws = 5000
	verified := 0
	sources := map[int]int{}
	for range draws {
		ev := g.EventOfType(domain.TypeConflict)
		meta, ok := ev.Metadata.(domain.HotspotMeta)
		require.True(t, ok)
		if meta.Verified {
			verified++
		}
		sources[meta.Sources]++
	}

	assert.InDelta(t, 0.7, float64(verified)/draws, 0.03, "verified leans yes at seventy percent")
	require.Len(t, sources, 5, "source counts stay within one to five")
	for n := 1; n <= 5; n++ {
		assert.Positive(t, sources[n], "source count %d never drawn", n)
	}
}

func TestCyberEvent_ThreatKind(t *testing.T) {
	g := seeded(true)

	kinds := map[string]bool{}
	for range 100 {
		ev := g.EventOfType(domain.TypeCyber)
		meta, ok := ev.Metadata.(domain.CyberMeta)
		require.True(t, ok)
		assert.Contains(t, []string{"c2", "malware_url"}, meta.ThreatKind)
		assert.NotEmpty(t, meta.Family)
		kinds[meta.ThreatKind] = true
	}
	assert.Len(t, kinds, 2, "both threat kinds should appear over 100 draws")
}
