// Package refdata holds the immutable reference tables behind the event
// feed: urban-boundary regions, geopolitical hotspot locations, weather
// sampling cities, per-type message templates, source-attribution lists,
// reliability badges, and the WMO weather-code table.
//
// Pure data, no behavior. The urban region figures are simplified
// impervious-surface areas derived from the Global Urban Boundaries
// dataset (Landsat/Sentinel-2, 2000-2024); they exist to make the
// synthetic feed plausible, not to be authoritative.
package refdata
