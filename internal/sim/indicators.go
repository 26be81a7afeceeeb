package sim

import "math"

// Display labels for the conceptual descent indicators.
const (
	IndicatorNone = "N/A"

	AngleOfAttackVertical = "~0° (vertical)"

	TemperatureNormal    = "Normal"
	TemperatureLow       = "Low/Normal"
	TemperatureRising    = "Increasing"
	TemperatureModerate  = "Moderate heating"
	TemperatureIntensive = "Intense heating"
)

// Heating thresholds for the surface temperature label.
const (
	heatingAltHigh   = 80_000.0 // m
	heatingAltLow    = 30_000.0 // m
	heatingSpeedLow  = 100.0    // m/s
	heatingSpeedHigh = 500.0    // m/s
)

func neutralIndicators() Indicators {
	return Indicators{AngleOfAttack: IndicatorNone, SurfaceTemperature: IndicatorNone}
}

// SurfaceTemperature classifies reentry heating from altitude and speed.
func SurfaceTemperature(altitude, velocity float64) string {
	speed := math.Abs(velocity)
	if altitude >= heatingAltHigh || speed <= heatingSpeedLow {
		return TemperatureLow
	}
	switch {
	case altitude < heatingAltLow && speed > heatingSpeedHigh:
		return TemperatureIntensive
	case altitude < heatingAltLow || speed > heatingSpeedLow:
		return TemperatureModerate
	default:
		// unreachable with the current thresholds
		return TemperatureRising
	}
}

// reentryIndicators is recomputed every Reentry tick.
func reentryIndicators(altitude, velocity float64) Indicators {
	return Indicators{
		AngleOfAttack:      AngleOfAttackVertical,
		SurfaceTemperature: SurfaceTemperature(altitude, velocity),
	}
}
