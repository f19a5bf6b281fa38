package refdata

import "github.com/planetmode/worldstate/internal/domain"

// Templates maps each event type to its pool of synthetic message texts.
var Templates = map[domain.EventType][]string{
	domain.TypeUrbanGrowth: {
		"New residential zone detected via Sentinel-2",
		"Impervious surface expansion identified",
		"Urban sprawl boundary shift detected",
		"Construction activity cluster identified",
		"New industrial zone development",
		"Suburban growth corridor emerging",
		"Land use change: agricultural → urban",
		"Road network expansion detected",
	},
	domain.TypeConflict: {
		"Armed clash reported near border region",
		"Artillery fire detected via acoustic sensors",
		"Military convoy movement tracked",
		"Drone strike reported",
		"Cross-border incident escalation",
		"Ceasefire violation detected",
		"IED detonation reported",
		"Militia activity surge detected",
	},
	domain.TypeInfrastructure: {
		"Undersea cable maintenance alert",
		"Pipeline pressure anomaly detected",
		"Power grid overload warning",
		"Port congestion alert — vessel queue growing",
		"Railway disruption reported",
		"Telecom tower outage detected",
		"Dam water level critical threshold",
		"Refinery incident reported",
	},
	domain.TypeDisaster: {
		"Earthquake detected — magnitude assessment pending",
		"Tropical storm formation tracked",
		"Flood warning issued",
		"Wildfire spread accelerating",
		"Volcanic activity increase detected",
		"Landslide risk elevated",
		"Tsunami advisory issued",
		"Severe drought conditions expanding",
	},
	domain.TypeProtest: {
		"Large-scale demonstration forming",
		"Anti-government protest reported",
		"Labor strike — major industry affected",
		"Student protest movement growing",
		"Environmental activism blockade",
		"Election-related unrest detected",
		"Social media mobilization surge",
		"Transport workers strike affecting services",
	},
	domain.TypeWeather: {
		"Severe storm warning issued",
		"Heat wave advisory — temperatures exceeding threshold",
		"Heavy rainfall warning — flash flood risk",
		"Snow storm approaching — travel disruption expected",
		"Dense fog advisory — visibility reduced",
		"High wind warning — gusts exceeding 80 km/h",
		"Freezing rain alert — surface icing expected",
		"Thunderstorm cluster detected — lightning rate increasing",
	},
	domain.TypeCyber: {
		"Botnet C2 server identified",
		"Malware distribution URL flagged",
		"Credential phishing campaign traced",
		"Ransomware staging infrastructure detected",
		"DDoS reflector pool activity observed",
		"Compromised host beaconing detected",
	},
}
