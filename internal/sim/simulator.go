package sim

import (
	"math"

	"suborbital-sim/internal/env"
)

// Simulator owns one VehicleState and advances it one step at a time.
// It performs no I/O and is not safe for concurrent use: Engine is the
// single goroutine that drives it.
type Simulator struct {
	c      Constants
	medium env.Medium
	st     VehicleState

	// readout of the last step, display only
	density float64
	drag    float64
	lift    float64

	onTransition func(Transition)
}

// NewSimulator returns a simulator in the Ready state. A nil medium selects
// the default atmosphere.
func NewSimulator(c Constants, m env.Medium) *Simulator {
	if m == nil {
		m = env.DefaultAtmosphere()
	}
	s := &Simulator{c: c, medium: m}
	s.reset()
	return s
}

// OnTransition registers fn to be called after every phase change,
// including those caused by Start and Reset.
func (s *Simulator) OnTransition(fn func(Transition)) {
	s.onTransition = fn
}

// Constants returns the configuration the simulator was built with.
func (s *Simulator) Constants() Constants { return s.c }

// State returns a copy of the vehicle state.
func (s *Simulator) State() VehicleState { return s.st }

// Snapshot returns the vehicle state with the aerodynamic readout. RunID and
// TS are left for the driver to fill in.
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		VehicleState:  s.st,
		AirDensity:    s.density,
		DragForce:     s.drag,
		LiftMagnitude: s.lift,
	}
}

// Reset returns the vehicle to the pad in the Ready phase.
func (s *Simulator) Reset() {
	from := s.st.Phase
	s.reset()
	if from != Ready {
		s.emit(from, ReasonReset)
	}
}

func (s *Simulator) reset() {
	s.st = VehicleState{
		Phase:        Ready,
		GForce:       1,
		EngineThrust: s.c.LaunchThrust,
		Indicators:   neutralIndicators(),
	}
	s.density = s.medium.Density(0)
	s.drag = 0
	s.lift = 0
}

// Start launches from Ready. It reports false, and does nothing, in any
// other phase.
func (s *Simulator) Start() bool {
	if s.st.Phase != Ready {
		return false
	}
	s.reset()
	s.st.Phase = Launch
	s.st.TimeInPhase = 0
	s.st.TotalTime = 0
	s.st.PeakAltitude = s.st.Altitude
	s.emit(Ready, ReasonStart)
	return true
}

// Trigger is the single start/re-arm control: it launches from Ready and
// returns to Ready from Landed. Mid-flight it is ignored.
func (s *Simulator) Trigger() bool {
	switch s.st.Phase {
	case Ready:
		return s.Start()
	case Landed:
		s.Reset()
		return true
	}
	return false
}

// Step advances the flight by realDt wall-clock seconds. Negative and NaN
// deltas count as zero.
func (s *Simulator) Step(realDt float64) {
	if !(realDt > 0) {
		realDt = 0
	}
	if !s.st.Phase.Active() {
		s.idle()
		return
	}

	st := &s.st
	c := s.c
	dt := realDt * c.TimeFactor
	st.TotalTime += dt
	st.TimeInPhase += dt

	rho := s.medium.Density(st.Altitude)
	a := aeroFor(st.Phase, c)
	drag := a.dragForce(rho, st.VerticalVelocity)

	var net float64
	switch st.Phase {
	case Launch:
		net = st.EngineThrust + drag - c.Weight()
	case CoastUp, ZeroG, Reentry, Parachute:
		net = drag - c.Weight()
	case Ready, Landed:
	}
	st.VerticalAcceleration = net / c.Mass

	// semi-implicit Euler: altitude integrates the updated velocity
	st.VerticalVelocity += st.VerticalAcceleration * dt
	st.Altitude += st.VerticalVelocity * dt

	s.clampCeiling()
	if st.Altitude < 0 && st.Phase != Landed {
		s.land(ReasonTouchdown)
	}
	s.updatePeak()
	s.checkTransitions(rho)

	st.GForce = (st.VerticalAcceleration + c.Gravity) / c.Gravity

	s.density = rho
	a = aeroFor(st.Phase, c)
	s.drag = a.dragForce(rho, st.VerticalVelocity)
	s.lift = a.liftMagnitude(rho, st.VerticalVelocity)
}

// idle keeps a parked vehicle on the ground.
func (s *Simulator) idle() {
	if s.st.Altitude < 0 {
		s.st.Altitude = 0
	}
	s.st.GForce = (s.st.VerticalAcceleration + s.c.Gravity) / s.c.Gravity
	s.density = s.medium.Density(s.st.Altitude)
}

// clampCeiling pins the vehicle to the Kármán line once it stops climbing
// there, and handles the ordinary apogee below it.
func (s *Simulator) clampCeiling() {
	st := &s.st
	if st.Altitude >= s.c.Ceiling && st.Phase != Launch {
		// Still climbing past the line is allowed until velocity turns.
		if st.VerticalVelocity <= 0 {
			st.Altitude = s.c.Ceiling
			st.VerticalVelocity = 0
			if st.Phase == CoastUp {
				s.enter(ZeroG, ReasonCeiling)
			}
		}
		return
	}
	if st.Altitude < s.c.Ceiling && st.Phase == CoastUp && st.VerticalVelocity <= 0 && st.Altitude > 0 {
		st.VerticalVelocity = 0
		s.enter(ZeroG, ReasonApogee)
	}
}

// updatePeak tracks the highest altitude. A peak recorded above the ceiling
// before the clamp engaged is pulled back once descent is confirmed.
func (s *Simulator) updatePeak() {
	st := &s.st
	st.PeakAltitude = math.Max(st.PeakAltitude, st.Altitude)
	descending := st.VerticalVelocity < 0 ||
		st.Phase == Reentry || st.Phase == Parachute || st.Phase == Landed
	if st.PeakAltitude > s.c.Ceiling && descending {
		st.PeakAltitude = s.c.Ceiling
	}
}

func (s *Simulator) checkTransitions(rho float64) {
	st := &s.st
	c := s.c
	switch st.Phase {
	case Launch:
		if st.TimeInPhase >= c.LaunchDuration {
			st.EngineThrust = 0
			s.enter(CoastUp, ReasonLaunchComplete)
		} else if st.VerticalVelocity < 0 && st.TimeInPhase > c.LaunchSafetyWindow {
			st.EngineThrust = 0
			s.enter(CoastUp, ReasonLaunchSafety)
		}

	case CoastUp:
		// handled by clampCeiling

	case ZeroG:
		if st.TimeInPhase >= c.ZeroGDuration {
			s.enter(Reentry, ReasonZeroGComplete)
		}

	case Reentry:
		st.Indicators = reentryIndicators(st.Altitude, st.VerticalVelocity)
		if st.Altitude <= c.ParachuteDeployAltitude && st.VerticalVelocity < 0 {
			st.Indicators.AngleOfAttack = IndicatorNone
			st.Indicators.SurfaceTemperature = TemperatureNormal
			s.enter(Parachute, ReasonParachuteDeploy)
		}
		if st.Altitude <= 0 && st.VerticalVelocity < 0 {
			s.land(ReasonEmergencyLanding)
		}

	case Parachute:
		st.Indicators.TerminalVelocity = terminalVelocity(rho, c.ParachuteCd, c.ParachuteArea(), c.Mass, c.Gravity)
		if st.Altitude <= 0 {
			s.land(ReasonTouchdown)
		}

	case Ready, Landed:
	}
}

func (s *Simulator) land(r Reason) {
	st := &s.st
	st.Altitude = 0
	st.VerticalVelocity = 0
	st.VerticalAcceleration = 0
	st.GForce = 1
	s.enter(Landed, r)
}

func (s *Simulator) enter(p Phase, r Reason) {
	from := s.st.Phase
	s.st.Phase = p
	s.st.TimeInPhase = 0
	s.emit(from, r)
}

func (s *Simulator) emit(from Phase, r Reason) {
	if s.onTransition == nil {
		return
	}
	s.onTransition(Transition{From: from, To: s.st.Phase, Reason: r, State: s.st})
}
