package sim

import "math"

// aero is the aerodynamic configuration for one phase.
type aero struct {
	Cd   float64
	Area float64
	Cl   float64
}

// aeroFor selects the drag model for a phase. Only the capsule carries lift.
func aeroFor(p Phase, c Constants) aero {
	switch p {
	case Launch, CoastUp:
		return aero{Cd: c.RocketCd, Area: c.RocketArea}
	case ZeroG, Reentry:
		return aero{Cd: c.ReentryCd, Area: c.CapsuleArea, Cl: c.ReentryCl}
	case Parachute:
		return aero{Cd: c.ParachuteCd, Area: c.ParachuteArea()}
	case Ready, Landed:
		return aero{Cd: c.RocketCd, Area: c.RocketArea}
	}
	return aero{Cd: c.RocketCd, Area: c.RocketArea}
}

// dynamicForce is 0.5 * rho * v^2 * coeff * area.
func dynamicForce(rho, v, coeff, area float64) float64 {
	return 0.5 * rho * v * v * coeff * area
}

// dragForce returns the signed drag: it always opposes v and is exactly zero
// when v is zero.
func (a aero) dragForce(rho, v float64) float64 {
	return -sign(v) * dynamicForce(rho, v, a.Cd, a.Area)
}

func (a aero) liftMagnitude(rho, v float64) float64 {
	return dynamicForce(rho, v, a.Cl, a.Area)
}

// sign returns -1, 0 or +1. Unlike math.Copysign it maps 0 to 0.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// terminalVelocity is the descent speed at which drag would balance weight
// at density rho. A vanishing denominator yields 0 instead of Inf.
func terminalVelocity(rho, cd, area, mass, g float64) float64 {
	denom := rho * cd * area
	if !(denom > 1e-6) {
		return 0
	}
	return math.Sqrt(2 * mass * g / denom)
}
