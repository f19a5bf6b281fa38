package refdata

import "github.com/planetmode/worldstate/internal/domain"

// SourceDef is one entry in a per-type attribution pool. For synthetic
// events the attribution is cosmetic: real organizations, fabricated
// association. The reliability tier maps to a display badge.
type SourceDef struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	UpdateFrequency string `json:"updateFrequency"`
	Reliability     string `json:"reliability"`
	LastVerified    string `json:"lastVerified"`
}

// Badges maps a reliability tier to its UI badge.
var Badges = map[string]domain.Badge{
	"scientific":   {Label: "Scientific", Icon: "🔬", Color: "#00ff88"},
	"governmental": {Label: "Governmental", Icon: "🏛", Color: "#4a9eff"},
	"commercial":   {Label: "Commercial", Icon: "📈", Color: "#ffa500"},
	"community":    {Label: "Community", Icon: "🌐", Color: "#9d4edd"},
}

// BadgeFor returns the badge for a reliability tier, falling back to the
// community badge for unknown tiers.
func BadgeFor(reliability string) domain.Badge {
	if b, ok := Badges[reliability]; ok {
		return b
	}
	return Badges["community"]
}

// Sources maps each event type to its attribution pool.
var Sources = map[domain.EventType][]SourceDef{
	domain.TypeUrbanGrowth: {
		{Name: "ESA Copernicus Sentinel-2", URL: "https://sentinels.copernicus.eu/web/sentinel/missions/sentinel-2", UpdateFrequency: "5-day cycle", Reliability: "scientific", LastVerified: "2026-02-15"},
		{Name: "NASA Landsat Program", URL: "https://landsat.gsfc.nasa.gov/", UpdateFrequency: "16-day cycle", Reliability: "scientific", LastVerified: "2026-02-15"},
		{Name: "Global Human Settlement Layer", URL: "https://ghsl.jrc.ec.europa.eu/", UpdateFrequency: "Yearly", Reliability: "scientific", LastVerified: "2026-01-10"},
		{Name: "World Bank Urban Development", URL: "https://www.worldbank.org/en/topic/urbandevelopment", UpdateFrequency: "Quarterly", Reliability: "governmental", LastVerified: "2026-02-01"},
	},
	domain.TypeConflict: {
		{Name: "ACLED – Armed Conflict Data", URL: "https://acleddata.com/", UpdateFrequency: "Weekly", Reliability: "scientific", LastVerified: "2026-02-14"},
		{Name: "Uppsala Conflict Data Program", URL: "https://ucdp.uu.se/", UpdateFrequency: "Monthly", Reliability: "scientific", LastVerified: "2026-02-10"},
		{Name: "International Crisis Group", URL: "https://www.crisisgroup.org/", UpdateFrequency: "Weekly", Reliability: "scientific", LastVerified: "2026-02-13"},
		{Name: "OSCE Conflict Prevention", URL: "https://www.osce.org/conflict-prevention", UpdateFrequency: "Daily", Reliability: "governmental", LastVerified: "2026-02-15"},
	},
	domain.TypeInfrastructure: {
		{Name: "IEA – International Energy Agency", URL: "https://www.iea.org/", UpdateFrequency: "Monthly", Reliability: "governmental", LastVerified: "2026-02-01"},
		{Name: "World Bank Infrastructure", URL: "https://www.worldbank.org/en/topic/infrastructure", UpdateFrequency: "Quarterly", Reliability: "governmental", LastVerified: "2026-01-15"},
		{Name: "ITU – International Telecom Union", URL: "https://www.itu.int/", UpdateFrequency: "Yearly", Reliability: "governmental", LastVerified: "2026-01-20"},
		{Name: "MarineTraffic", URL: "https://www.marinetraffic.com/", UpdateFrequency: "Real-time", Reliability: "commercial", LastVerified: "2026-02-15"},
	},
	domain.TypeDisaster: {
		{Name: "USGS Earthquake Hazards", URL: "https://earthquake.usgs.gov/", UpdateFrequency: "Real-time", Reliability: "scientific", LastVerified: "2026-02-15"},
		{Name: "NOAA – National Weather Service", URL: "https://www.weather.gov/", UpdateFrequency: "Real-time", Reliability: "scientific", LastVerified: "2026-02-15"},
		{Name: "GDACS – Global Disaster Alert", URL: "https://www.gdacs.org/", UpdateFrequency: "Real-time", Reliability: "governmental", LastVerified: "2026-02-15"},
		{Name: "ReliefWeb – OCHA", URL: "https://reliefweb.int/", UpdateFrequency: "Daily", Reliability: "governmental", LastVerified: "2026-02-14"},
	},
	domain.TypeProtest: {
		{Name: "ACLED – Disorder Tracker", URL: "https://acleddata.com/early-warning-research-hub/disorder-tracker/", UpdateFrequency: "Weekly", Reliability: "scientific", LastVerified: "2026-02-14"},
		{Name: "CIVICUS Monitor", URL: "https://monitor.civicus.org/", UpdateFrequency: "Monthly", Reliability: "community", LastVerified: "2026-02-01"},
		{Name: "V-Dem Institute", URL: "https://www.v-dem.net/", UpdateFrequency: "Yearly", Reliability: "scientific", LastVerified: "2026-01-15"},
		{Name: "Freedom House", URL: "https://freedomhouse.org/", UpdateFrequency: "Yearly", Reliability: "community", LastVerified: "2026-01-20"},
	},
	domain.TypeWeather: {
		{Name: "ECMWF – European Weather Centre", URL: "https://www.ecmwf.int/", UpdateFrequency: "Real-time", Reliability: "scientific", LastVerified: "2026-02-15"},
		{Name: "DWD – Deutscher Wetterdienst", URL: "https://www.dwd.de/", UpdateFrequency: "Real-time", Reliability: "governmental", LastVerified: "2026-02-15"},
		{Name: "NOAA Climate.gov", URL: "https://www.climate.gov/", UpdateFrequency: "Daily", Reliability: "scientific", LastVerified: "2026-02-15"},
		{Name: "Copernicus Climate Service", URL: "https://climate.copernicus.eu/", UpdateFrequency: "Real-time", Reliability: "scientific", LastVerified: "2026-02-15"},
	},
	domain.TypeCyber: {
		{Name: "Feodo Tracker (abuse.ch)", URL: "https://feodotracker.abuse.ch/", UpdateFrequency: "Hourly", Reliability: "community", LastVerified: "2026-02-15"},
		{Name: "URLhaus (abuse.ch)", URL: "https://urlhaus.abuse.ch/", UpdateFrequency: "Hourly", Reliability: "community", LastVerified: "2026-02-15"},
		{Name: "Shadowserver Foundation", URL: "https://www.shadowserver.org/", UpdateFrequency: "Daily", Reliability: "community", LastVerified: "2026-02-10"},
	},
}
