// Package domain models the WorldState event feed.
//
// # Event sources
//
// Events come from two kinds of producers and the distinction is load-bearing:
//
//   - Live adapters query public, unauthenticated APIs: the USGS earthquake
//     catalog (https://earthquake.usgs.gov/fdsnws/event/1/) and Open-Meteo
//     current conditions (https://open-meteo.com/). Their events carry
//     Source.Live = true.
//   - The synthetic generator fabricates plausible demonstration events from
//     static reference tables. Its events carry Source.Live = false and a
//     cosmetic attribution record. Consumers must be able to tell the two
//     apart, so Live is forced to false on every synthetic event before it
//     leaves the server.
//
// # Severity classification
//
// The four-level scale (low < medium < high < critical) is shared by all
// event types. Where a measurement exists, severity is deterministic:
//
//	Earthquake: magnitude >=7.0 critical | >=5.0 high | >=4.0 medium | else low
//	Weather:    WMO code base severity, escalated by extremes —
//	            temp >40°C critical, >35°C high, <-25°C critical, <-15°C high;
//	            wind >100 km/h critical, >60 km/h high (wind applied last)
//	Urban growth: 4-year impervious-surface growth rate >10% high | >5% medium | else low
//
// Boundary values map to the higher tier (>= comparisons throughout).
//
// # Metadata
//
// Event.Metadata is a tagged union keyed by Event.Type: one payload shape per
// variant so producers get exhaustiveness checking instead of an untyped bag.
// DecodeEvent selects the shape; unknown types decode into RawMeta rather
// than failing, because an unrecognized event must never break a consumer.
//
// # ID generation
//
// Synthetic IDs are "evt-<unix-ms>-<6 base36 chars>" from the package clock
// plus a random suffix. Live events reuse the upstream identifier
// ("usgs-<catalog id>", "weather-<city>-<unix-ms>") so repeated fetches of
// the same upstream record produce the same ID.
package domain
