package sim

import (
	"errors"
	"fmt"
)

// Constants is the fixed configuration of a flight. A Simulator copies it at
// construction and never changes it afterwards.
type Constants struct {
	Gravity      float64 `json:"gravity" mapstructure:"gravity"`           // m/s^2
	Mass         float64 `json:"mass" mapstructure:"mass"`                 // kg
	LaunchThrust float64 `json:"launchThrust" mapstructure:"launchThrust"` // N

	RocketCd    float64 `json:"rocketCd" mapstructure:"rocketCd"`
	ReentryCd   float64 `json:"reentryCd" mapstructure:"reentryCd"`
	ParachuteCd float64 `json:"parachuteCd" mapstructure:"parachuteCd"`
	// ReentryCl is conceptual: lift is reported but never fed back into the
	// vertical force balance.
	ReentryCl float64 `json:"reentryCl" mapstructure:"reentryCl"`

	RocketArea              float64 `json:"rocketArea" mapstructure:"rocketArea"`   // m^2
	CapsuleArea             float64 `json:"capsuleArea" mapstructure:"capsuleArea"` // m^2
	ParachuteAreaMultiplier float64 `json:"parachuteAreaMultiplier" mapstructure:"parachuteAreaMultiplier"`

	LaunchDuration          float64 `json:"launchDuration" mapstructure:"launchDuration"` // simulated s
	ZeroGDuration           float64 `json:"zeroGDuration" mapstructure:"zeroGDuration"`   // simulated s
	ParachuteDeployAltitude float64 `json:"parachuteDeployAltitude" mapstructure:"parachuteDeployAltitude"`
	Ceiling                 float64 `json:"ceiling" mapstructure:"ceiling"` // Kármán line, m

	// LaunchSafetyWindow is how long (simulated s) a falling vehicle may stay
	// in Launch before the engine is cut anyway.
	LaunchSafetyWindow float64 `json:"launchSafetyWindow" mapstructure:"launchSafetyWindow"`

	// TimeFactor converts wall-clock seconds into simulated seconds.
	TimeFactor float64 `json:"timeFactor" mapstructure:"timeFactor"`

	// GForceScale is the top of the display gauge. It never limits the
	// stored g-force.
	GForceScale float64 `json:"gForceScale" mapstructure:"gForceScale"`
}

// DefaultConstants compresses a roughly twelve minute New Shepard style
// flight into about a minute of wall time.
func DefaultConstants() Constants {
	return Constants{
		Gravity:      9.81,
		Mass:         10_000,
		LaunchThrust: 500_000,

		RocketCd:    0.28,
		ReentryCd:   1.5,
		ParachuteCd: 2.2,
		ReentryCl:   0.1,

		RocketArea:              10,
		CapsuleArea:             15,
		ParachuteAreaMultiplier: 20,

		LaunchDuration:          70,
		ZeroGDuration:           120,
		ParachuteDeployAltitude: 5_000,
		Ceiling:                 100_000,

		LaunchSafetyWindow: 5,
		TimeFactor:         13,
		GForceScale:        6,
	}
}

// Weight is the gravitational force on the vehicle in newtons.
func (c Constants) Weight() float64 { return c.Mass * c.Gravity }

// ParachuteArea is the effective drag area with the canopy inflated.
func (c Constants) ParachuteArea() float64 { return c.CapsuleArea * c.ParachuteAreaMultiplier }

// Validate reports every value that would make the force model meaningless.
func (c Constants) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, v))
		}
	}

	positive("gravity", c.Gravity)
	positive("mass", c.Mass)
	positive("rocketArea", c.RocketArea)
	positive("capsuleArea", c.CapsuleArea)
	positive("parachuteAreaMultiplier", c.ParachuteAreaMultiplier)
	positive("ceiling", c.Ceiling)
	positive("timeFactor", c.TimeFactor)
	positive("gForceScale", c.GForceScale)

	nonNegative("launchThrust", c.LaunchThrust)
	nonNegative("rocketCd", c.RocketCd)
	nonNegative("reentryCd", c.ReentryCd)
	nonNegative("parachuteCd", c.ParachuteCd)
	nonNegative("reentryCl", c.ReentryCl)
	nonNegative("launchDuration", c.LaunchDuration)
	nonNegative("zeroGDuration", c.ZeroGDuration)
	nonNegative("launchSafetyWindow", c.LaunchSafetyWindow)
	nonNegative("parachuteDeployAltitude", c.ParachuteDeployAltitude)

	if c.ParachuteDeployAltitude >= c.Ceiling {
		errs = append(errs, fmt.Errorf("parachuteDeployAltitude %g must be below ceiling %g",
			c.ParachuteDeployAltitude, c.Ceiling))
	}
	return errors.Join(errs...)
}
