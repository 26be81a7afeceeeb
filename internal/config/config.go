// Package config loads rocketsim settings from defaults, an optional config
// file and ROCKETSIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"suborbital-sim/internal/env"
	"suborbital-sim/internal/sim"
)

// EnvPrefix is prepended to every environment override, e.g.
// ROCKETSIM_FLIGHT_TIMEFACTOR or ROCKETSIM_SERVER_PORT.
const EnvPrefix = "ROCKETSIM"

type ServerConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	Port    int  `json:"port" mapstructure:"port"`
}

type EngineConfig struct {
	TickHz   float64 `json:"tickHz" mapstructure:"tickHz"`
	MaxDelta float64 `json:"maxDelta" mapstructure:"maxDelta"`
}

// ConsoleConfig controls the periodic telemetry panel printed to stdout.
type ConsoleConfig struct {
	Enabled  bool          `json:"enabled" mapstructure:"enabled"`
	Interval time.Duration `json:"interval" mapstructure:"interval"`
}

type Config struct {
	LogLevel string `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string `json:"logFile" mapstructure:"logFile"`

	Server     ServerConfig   `json:"server" mapstructure:"server"`
	Engine     EngineConfig   `json:"engine" mapstructure:"engine"`
	Console    ConsoleConfig  `json:"console" mapstructure:"console"`
	Flight     sim.Constants  `json:"flight" mapstructure:"flight"`
	Atmosphere env.Atmosphere `json:"atmosphere" mapstructure:"atmosphere"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetDefault("server.enabled", true)
	v.SetDefault("server.port", 8080)

	v.SetDefault("engine.tickHz", 60)
	v.SetDefault("engine.maxDelta", 0.1)

	v.SetDefault("console.enabled", false)
	v.SetDefault("console.interval", "1s")

	c := sim.DefaultConstants()
	v.SetDefault("flight.gravity", c.Gravity)
	v.SetDefault("flight.mass", c.Mass)
	v.SetDefault("flight.launchThrust", c.LaunchThrust)
	v.SetDefault("flight.rocketCd", c.RocketCd)
	v.SetDefault("flight.reentryCd", c.ReentryCd)
	v.SetDefault("flight.parachuteCd", c.ParachuteCd)
	v.SetDefault("flight.reentryCl", c.ReentryCl)
	v.SetDefault("flight.rocketArea", c.RocketArea)
	v.SetDefault("flight.capsuleArea", c.CapsuleArea)
	v.SetDefault("flight.parachuteAreaMultiplier", c.ParachuteAreaMultiplier)
	v.SetDefault("flight.launchDuration", c.LaunchDuration)
	v.SetDefault("flight.zeroGDuration", c.ZeroGDuration)
	v.SetDefault("flight.parachuteDeployAltitude", c.ParachuteDeployAltitude)
	v.SetDefault("flight.ceiling", c.Ceiling)
	v.SetDefault("flight.launchSafetyWindow", c.LaunchSafetyWindow)
	v.SetDefault("flight.timeFactor", c.TimeFactor)
	v.SetDefault("flight.gForceScale", c.GForceScale)

	a := env.DefaultAtmosphere()
	v.SetDefault("atmosphere.seaLevelDensity", a.SeaLevelDensity)
	v.SetDefault("atmosphere.scaleHeight", a.ScaleHeight)
	v.SetDefault("atmosphere.floorAltitude", a.FloorAltitude)
	v.SetDefault("atmosphere.floorMultiplier", a.FloorMultiplier)
}

// Load builds the configuration. An empty path uses defaults and environment
// only; a named file that cannot be read is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the flight constants and the process settings.
func (c Config) Validate() error {
	var errs []error
	if err := c.Flight.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("flight: %w", err))
	}
	if c.Atmosphere.SeaLevelDensity <= 0 {
		errs = append(errs, fmt.Errorf("atmosphere: seaLevelDensity must be positive, got %g", c.Atmosphere.SeaLevelDensity))
	}
	if c.Server.Enabled && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Errorf("server: port %d out of range", c.Server.Port))
	}
	if c.Engine.TickHz < 0 {
		errs = append(errs, fmt.Errorf("engine: tickHz must not be negative, got %g", c.Engine.TickHz))
	}
	if c.Console.Enabled && c.Console.Interval <= 0 {
		errs = append(errs, fmt.Errorf("console: interval must be positive, got %s", c.Console.Interval))
	}
	return errors.Join(errs...)
}
