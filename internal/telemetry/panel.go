// Package telemetry renders flight snapshots for people: the text data panel
// and the g-force gauge.
package telemetry

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"suborbital-sim/internal/sim"
)

// Gauge bands follow the colour ramp of the g-force bar.
const (
	BandNominal  = "nominal"
	BandElevated = "elevated"
	BandHigh     = "high"
)

// GaugeLevel is the filled portion of a gauge that tops out at scale.
func GaugeLevel(g, scale float64) float64 {
	if !(scale > 0) || math.IsNaN(g) {
		return 0
	}
	return math.Min(math.Max(g, 0), scale)
}

func GaugeBand(g float64) string {
	switch {
	case g < 1.5:
		return BandNominal
	case g < 3:
		return BandElevated
	default:
		return BandHigh
	}
}

// Panel returns the data panel lines for s. The first seven lines are common
// to every phase; the rest depend on the phase.
func Panel(s sim.Snapshot, c sim.Constants) []string {
	lines := []string{
		"Phase: " + s.Phase.String(),
		"Mission time: " + fixed(s.TotalTime, 1) + " s",
		"Altitude: " + fixed(s.Altitude/1000, 2) + " km",
		"Velocity: " + fixed(s.VerticalVelocity, 1) + " m/s",
		"Acceleration: " + fixed(s.VerticalAcceleration, 2) + " m/s²",
		fmt.Sprintf("G-force: %s g [%s]", humanize.FtoaWithDigits(s.GForce, 2), GaugeBand(s.GForce)),
		"Peak altitude: " + fixed(s.PeakAltitude/1000, 2) + " km",
	}

	switch s.Phase {
	case sim.Ready:
		lines = append(lines, "Press start to launch")
	case sim.Launch:
		lines = append(lines,
			"Thrust: "+fixed(s.EngineThrust/1000, 0)+" kN",
			"Drag: "+fixed(s.DragForce, 0)+" N",
			"Air density: "+density(s.AirDensity),
			"Burn remaining: "+fixed(math.Max(c.LaunchDuration-s.TimeInPhase, 0), 1)+" s",
		)
	case sim.CoastUp:
		lines = append(lines,
			"Drag: "+fixed(s.DragForce, 0)+" N",
			"Air density: "+density(s.AirDensity),
		)
	case sim.ZeroG:
		lines = append(lines,
			"Weightless remaining: "+fixed(math.Max(c.ZeroGDuration-s.TimeInPhase, 0), 1)+" s",
		)
	case sim.Reentry:
		lines = append(lines,
			"Drag: "+fixed(s.DragForce, 0)+" N",
			"Lift: "+fixed(s.LiftMagnitude, 0)+" N",
			"Angle of attack: "+s.Indicators.AngleOfAttack,
			"Surface temperature: "+s.Indicators.SurfaceTemperature,
		)
	case sim.Parachute:
		lines = append(lines,
			"Drag: "+fixed(s.DragForce, 0)+" N",
			"Terminal velocity: "+fixed(s.Indicators.TerminalVelocity, 1)+" m/s",
			"Air density: "+density(s.AirDensity),
		)
	case sim.Landed:
		lines = append(lines,
			"Touchdown after "+fixed(s.TotalTime, 1)+" s",
			"Press reset to fly again",
		)
	}
	if s.RunID != "" {
		lines = append(lines, "Run: "+s.RunID)
	}
	return lines
}

// fixed rounds v to digits decimals and adds thousands separators.
func fixed(v float64, digits int) string {
	p := math.Pow10(digits)
	r := math.Round(v*p) / p
	if r == 0 {
		r = 0 // drop negative zero
	}
	return humanize.Commaf(r)
}

func density(rho float64) string {
	return fmt.Sprintf("%.3e kg/m³", rho)
}
