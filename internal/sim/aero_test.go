package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, sign(3))
	assert.Equal(t, -1.0, sign(-0.1))
	assert.Equal(t, 0.0, sign(0))
	assert.Equal(t, 0.0, sign(math.Copysign(0, -1)))
}

func TestAeroFor(t *testing.T) {
	c := DefaultConstants()

	tests := []struct {
		phase Phase
		want  aero
	}{
		{Launch, aero{Cd: c.RocketCd, Area: c.RocketArea}},
		{CoastUp, aero{Cd: c.RocketCd, Area: c.RocketArea}},
		{ZeroG, aero{Cd: c.ReentryCd, Area: c.CapsuleArea, Cl: c.ReentryCl}},
		{Reentry, aero{Cd: c.ReentryCd, Area: c.CapsuleArea, Cl: c.ReentryCl}},
		{Parachute, aero{Cd: c.ParachuteCd, Area: c.CapsuleArea * c.ParachuteAreaMultiplier}},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, aeroFor(tt.phase, c))
		})
	}
}

func TestDragForce(t *testing.T) {
	a := aero{Cd: 2, Area: 3}
	assert.InDelta(t, -360, a.dragForce(1.2, 10), 1e-9)
	assert.InDelta(t, 360, a.dragForce(1.2, -10), 1e-9)
	assert.Zero(t, a.dragForce(1.2, 0))
}

func TestLiftMagnitude(t *testing.T) {
	a := aero{Cd: 1, Area: 4, Cl: 0.5}
	assert.Equal(t, 0.5*1.0*400*0.5*4, a.liftMagnitude(1, -20))
	assert.Zero(t, aero{Cd: 1, Area: 4}.liftMagnitude(1, -20))
}

func TestTerminalVelocity(t *testing.T) {
	got := terminalVelocity(1.225, 2.2, 300, 10_000, 9.81)
	assert.InDelta(t, math.Sqrt(2*10_000*9.81/(1.225*2.2*300)), got, 1e-12)
	assert.Zero(t, terminalVelocity(1e-15, 2.2, 300, 10_000, 9.81))
	assert.Zero(t, terminalVelocity(1, 0, 300, 10_000, 9.81))
}

func TestSurfaceTemperature(t *testing.T) {
	tests := []struct {
		name string
		alt  float64
		v    float64
		want string
	}{
		{"above band", 85_000, -2000, TemperatureLow},
		{"slow", 20_000, -90, TemperatureLow},
		{"exactly slow threshold", 20_000, -100, TemperatureLow},
		{"low and fast", 20_000, -800, TemperatureIntensive},
		{"low and moderate speed", 20_000, -300, TemperatureModerate},
		{"high band fast", 50_000, -1500, TemperatureModerate},
		{"at band edge", 80_000, -1500, TemperatureLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SurfaceTemperature(tt.alt, tt.v))
		})
	}
}

func TestConstants_Validate(t *testing.T) {
	assert.NoError(t, DefaultConstants().Validate())

	c := DefaultConstants()
	c.Mass = 0
	c.TimeFactor = -1
	c.ParachuteDeployAltitude = c.Ceiling
	err := c.Validate()
	assert.ErrorContains(t, err, "mass must be positive")
	assert.ErrorContains(t, err, "timeFactor must be positive")
	assert.ErrorContains(t, err, "parachuteDeployAltitude")

	c = DefaultConstants()
	c.ReentryCd = math.NaN()
	assert.ErrorContains(t, c.Validate(), "reentryCd")
}

func TestConstants_Derived(t *testing.T) {
	c := DefaultConstants()
	assert.Equal(t, 98_100.0, c.Weight())
	assert.Equal(t, 300.0, c.ParachuteArea())
}
