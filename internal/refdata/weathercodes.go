package refdata

import "github.com/planetmode/worldstate/internal/domain"

// WeatherCode describes one WMO 4677 present-weather code.
type WeatherCode struct {
	Description string
	Icon        string
	Severity    domain.Severity
}

// WeatherCodes maps WMO weather codes to display info and base severity.
var WeatherCodes = map[int]WeatherCode{
	0:  {Description: "Clear sky", Icon: "☀️", Severity: domain.SeverityLow},
	1:  {Description: "Mainly clear", Icon: "🌤", Severity: domain.SeverityLow},
	2:  {Description: "Partly cloudy", Icon: "⛅", Severity: domain.SeverityLow},
	3:  {Description: "Overcast", Icon: "☁️", Severity: domain.SeverityLow},
	45: {Description: "Fog", Icon: "🌫", Severity: domain.SeverityMedium},
	48: {Description: "Depositing rime fog", Icon: "🌫", Severity: domain.SeverityMedium},
	51: {Description: "Light drizzle", Icon: "🌦", Severity: domain.SeverityLow},
	53: {Description: "Drizzle", Icon: "🌦", Severity: domain.SeverityLow},
	55: {Description: "Dense drizzle", Icon: "🌧", Severity: domain.SeverityMedium},
	61: {Description: "Light rain", Icon: "🌧", Severity: domain.SeverityLow},
	63: {Description: "Rain", Icon: "🌧", Severity: domain.SeverityMedium},
	65: {Description: "Heavy rain", Icon: "🌧", Severity: domain.SeverityHigh},
	66: {Description: "Freezing rain", Icon: "🧊", Severity: domain.SeverityHigh},
	67: {Description: "Heavy freezing rain", Icon: "🧊", Severity: domain.SeverityCritical},
	71: {Description: "Light snowfall", Icon: "🌨", Severity: domain.SeverityMedium},
	73: {Description: "Snowfall", Icon: "🌨", Severity: domain.SeverityMedium},
	75: {Description: "Heavy snowfall", Icon: "❄️", Severity: domain.SeverityHigh},
	77: {Description: "Snow grains", Icon: "🌨", Severity: domain.SeverityMedium},
	80: {Description: "Light rain showers", Icon: "🌦", Severity: domain.SeverityLow},
	81: {Description: "Rain showers", Icon: "🌧", Severity: domain.SeverityMedium},
	82: {Description: "Violent rain showers", Icon: "⛈", Severity: domain.SeverityHigh},
	85: {Description: "Light snow showers", Icon: "🌨", Severity: domain.SeverityMedium},
	86: {Description: "Heavy snow showers", Icon: "❄️", Severity: domain.SeverityHigh},
	95: {Description: "Thunderstorm", Icon: "⛈", Severity: domain.SeverityHigh},
	96: {Description: "Thunderstorm with hail", Icon: "⛈", Severity: domain.SeverityCritical},
	99: {Description: "Severe thunderstorm with hail", Icon: "⛈", Severity: domain.SeverityCritical},
}

// WeatherCodeFor returns the entry for a WMO code, falling back to clear
// sky for codes outside the table so an odd reading never breaks an event.
func WeatherCodeFor(code int) WeatherCode {
	if wc, ok := WeatherCodes[code]; ok {
		return wc
	}
	return WeatherCodes[0]
}
