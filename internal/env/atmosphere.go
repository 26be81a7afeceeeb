package env

import "math"

// Atmosphere is a single-layer exponential atmosphere.
//
// Density falls off as SeaLevelDensity * exp(-h / ScaleHeight). Far above the
// thermosphere the curve is held at a small floor instead of collapsing to
// zero: the floor is the density the curve would have at FloorAltitude,
// scaled down by FloorMultiplier.
type Atmosphere struct {
	// SeaLevelDensity is rho0 in kg/m^3.
	SeaLevelDensity float64 `json:"seaLevelDensity" mapstructure:"seaLevelDensity"`
	// ScaleHeight is the e-folding altitude in meters.
	ScaleHeight float64 `json:"scaleHeight" mapstructure:"scaleHeight"`
	// FloorAltitude is the reference altitude for the high-altitude floor.
	FloorAltitude float64 `json:"floorAltitude" mapstructure:"floorAltitude"`
	// FloorMultiplier scales the density at FloorAltitude down to the floor.
	FloorMultiplier float64 `json:"floorMultiplier" mapstructure:"floorMultiplier"`
}

// DefaultAtmosphere returns the tuning used for a New Shepard style profile.
// The scale height is slightly above the textbook 8500 m so that density
// drops off more gently during ascent.
func DefaultAtmosphere() Atmosphere {
	return Atmosphere{
		SeaLevelDensity: 1.225,
		ScaleHeight:     9500,
		FloorAltitude:   150_000,
		FloorMultiplier: 0.0001,
	}
}

// Density returns the air density at altitude, never below FloorDensity or
// MinDensity.
func (a Atmosphere) Density(altitude float64) float64 {
	if a.ScaleHeight <= 0 {
		return floor(a.SeaLevelDensity)
	}
	base := a.SeaLevelDensity * math.Exp(-altitude/a.ScaleHeight)
	return floor(math.Max(base, a.FloorDensity()))
}

// FloorDensity is the high-altitude density floor.
func (a Atmosphere) FloorDensity() float64 {
	if a.ScaleHeight <= 0 {
		return 0
	}
	return a.SeaLevelDensity * math.Exp(-a.FloorAltitude/a.ScaleHeight) * a.FloorMultiplier
}

// CrossoverAltitude is the altitude above which the floor, not the
// exponential curve, determines the density. Below it Density is strictly
// decreasing.
func (a Atmosphere) CrossoverAltitude() float64 {
	f := a.FloorDensity()
	if f <= 0 || a.SeaLevelDensity <= 0 {
		return math.Inf(1)
	}
	return a.ScaleHeight * math.Log(a.SeaLevelDensity/f)
}
