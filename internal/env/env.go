package env

import "math"

// MinDensity is the absolute lower bound on any air density handed to the
// force model.
const MinDensity = 1e-15

// Medium is the air the vehicle flies through.
// Implementations must be pure and total: Density is defined for every
// altitude and always returns a finite value of at least MinDensity.
type Medium interface {
	// Density returns the air density in kg/m^3 at the given altitude in meters.
	Density(altitude float64) float64
}

// Uniform is a medium with the same density at every altitude.
// It is useful for fixed-density checks and for approximating vacuum.
type Uniform float64

// Density returns the constant density, floored by MinDensity.
func (u Uniform) Density(altitude float64) float64 {
	return floor(float64(u))
}

// Vacuum approximates empty space: every altitude returns MinDensity.
var Vacuum Medium = Uniform(0)

// Sample is one point of a density profile.
type Sample struct {
	Altitude float64 `json:"altitude"`
	Density  float64 `json:"density"`
}

// DensityProfile samples m at each of the given altitudes, in order.
func DensityProfile(m Medium, altitudes []float64) []Sample {
	out := make([]Sample, 0, len(altitudes))
	for _, alt := range altitudes {
		out = append(out, Sample{Altitude: alt, Density: m.Density(alt)})
	}
	return out
}

func floor(rho float64) float64 {
	if math.IsNaN(rho) || rho < MinDensity {
		return MinDensity
	}
	if math.IsInf(rho, 1) {
		return math.MaxFloat64
	}
	return rho
}
