package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suborbital-sim/internal/env"
	"suborbital-sim/internal/sim"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60.0, cfg.Engine.TickHz)
	assert.Equal(t, 0.1, cfg.Engine.MaxDelta)
	assert.False(t, cfg.Console.Enabled)
	assert.Equal(t, time.Second, cfg.Console.Interval)
	assert.Equal(t, sim.DefaultConstants(), cfg.Flight)
	assert.Equal(t, env.DefaultAtmosphere(), cfg.Atmosphere)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := writeConfig(t, "rocketsim.json", `{
		"logLevel": "debug",
		"server": { "port": 9090 },
		"console": { "enabled": true, "interval": "250ms" },
		"flight": { "timeFactor": 1, "launchThrust": 450000 },
		"atmosphere": { "scaleHeight": 8500 }
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Console.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Console.Interval)
	assert.Equal(t, 1.0, cfg.Flight.TimeFactor)
	assert.Equal(t, 450_000.0, cfg.Flight.LaunchThrust)
	assert.Equal(t, 8500.0, cfg.Atmosphere.ScaleHeight)

	// untouched keys keep their defaults
	assert.Equal(t, sim.DefaultConstants().Mass, cfg.Flight.Mass)
	assert.Equal(t, env.DefaultAtmosphere().SeaLevelDensity, cfg.Atmosphere.SeaLevelDensity)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "rocketsim.yaml", "flight:\n  ceiling: 120000\nserver:\n  enabled: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120_000.0, cfg.Flight.Ceiling)
	assert.False(t, cfg.Server.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ROCKETSIM_FLIGHT_TIMEFACTOR", "2.5")
	t.Setenv("ROCKETSIM_LOGLEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Flight.TimeFactor)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/rocketsim.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidFlight(t *testing.T) {
	path := writeConfig(t, "rocketsim.json", `{"flight": {"mass": 0}}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flight: ")
	assert.Contains(t, err.Error(), "mass must be positive")
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Server.Port = 0
	cfg.Console.Enabled = true
	cfg.Console.Interval = 0
	cfg.Atmosphere.SeaLevelDensity = -1
	err = cfg.Validate()
	assert.ErrorContains(t, err, "port 0 out of range")
	assert.ErrorContains(t, err, "console: interval")
	assert.ErrorContains(t, err, "seaLevelDensity")

	cfg.Server.Enabled = false
	cfg.Console.Enabled = false
	cfg.Atmosphere.SeaLevelDensity = 1.225
	assert.NoError(t, cfg.Validate())
}
