package sim

import (
	"time"
)

// VehicleState is the single mutable entity of a flight.
type VehicleState struct {
	Altitude             float64 `json:"altitude"`             // m
	VerticalVelocity     float64 `json:"verticalVelocity"`     // m/s, positive up
	VerticalAcceleration float64 `json:"verticalAcceleration"` // m/s^2

	Phase       Phase   `json:"phase"`
	TimeInPhase float64 `json:"timeInPhase"` // simulated s
	TotalTime   float64 `json:"totalTime"`   // simulated s

	PeakAltitude float64 `json:"peakAltitude"`
	GForce       float64 `json:"gForce"`
	EngineThrust float64 `json:"engineThrust"` // N

	Indicators Indicators `json:"indicators"`
}

// Indicators are advisory descent quantities for the display. Nothing in
// the force model reads them.
type Indicators struct {
	AngleOfAttack      string  `json:"angleOfAttack"`
	SurfaceTemperature string  `json:"surfaceTemperature"`
	TerminalVelocity   float64 `json:"terminalVelocity"` // m/s, Parachute only
}

// Snapshot is a read-only copy of the vehicle plus the aerodynamic readout
// of the last step.
type Snapshot struct {
	VehicleState

	RunID string    `json:"runId,omitempty"`
	TS    time.Time `json:"ts"`

	AirDensity    float64 `json:"airDensity"`    // kg/m^3
	DragForce     float64 `json:"dragForce"`     // N, signed against velocity
	LiftMagnitude float64 `json:"liftMagnitude"` // N, conceptual
}

// Reason explains why a phase changed.
type Reason string

const (
	ReasonStart            Reason = "start"
	ReasonReset            Reason = "reset"
	ReasonLaunchComplete   Reason = "launch-complete"
	ReasonLaunchSafety     Reason = "launch-safety"
	ReasonApogee           Reason = "apogee"
	ReasonCeiling          Reason = "ceiling"
	ReasonZeroGComplete    Reason = "zero-g-complete"
	ReasonParachuteDeploy  Reason = "parachute-deploy"
	ReasonTouchdown        Reason = "touchdown"
	ReasonEmergencyLanding Reason = "emergency-landing"
)

// Transition records one phase change, with the state right after it.
type Transition struct {
	From   Phase        `json:"from"`
	To     Phase        `json:"to"`
	Reason Reason       `json:"reason"`
	State  VehicleState `json:"state"`
}
