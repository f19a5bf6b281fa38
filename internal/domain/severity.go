package domain

// QuakeSeverity maps an earthquake magnitude to the four-level scale using
// fixed thresholds. Boundary values map to the higher tier.
func QuakeSeverity(magnitude float64) Severity {
	switch {
	case magnitude >= 7.0:
		return SeverityCritical
	case magnitude >= 5.0:
		return SeverityHigh
	case magnitude >= 4.0:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// EscalateWeatherSeverity raises a WMO base severity under extreme
// temperature or wind. Wind is applied last, so a hurricane-force reading
// forces critical regardless of temperature.
func EscalateWeatherSeverity(base Severity, tempC, windKmh float64) Severity {
	s := base
	switch {
	case tempC > 40:
		s = SeverityCritical
	case tempC > 35:
		s = SeverityHigh
	case tempC < -25:
		s = SeverityCritical
	case tempC < -15:
		s = SeverityHigh
	}
	switch {
	case windKmh > 100:
		s = SeverityCritical
	case windKmh > 60:
		if s != SeverityCritical {
			s = SeverityHigh
		}
	}
	return s
}

// GrowthSeverity maps a four-year urban growth rate (percent) to severity.
// The one place synthetic severity is deterministic given its inputs.
func GrowthSeverity(ratePct float64) Severity {
	switch {
	case ratePct > 10:
		return SeverityHigh
	case ratePct > 5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
