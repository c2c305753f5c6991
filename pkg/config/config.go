// Package config loads engine configuration from YAML with validated
// defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-graphview/pkg/physics"
)

// Config is the root configuration for the view engine server.
type Config struct {
	Server     Server     `yaml:"server"`
	Canvas     Canvas     `yaml:"canvas"`
	Simulation Simulation `yaml:"simulation"`
}

// Server configures the HTTP API.
type Server struct {
	Port int `yaml:"port" validate:"gte=1,lte=65535"`
}

// Canvas is the world-space canvas the layout and simulation target.
type Canvas struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// Simulation configures the scheduler and force coefficients.
type Simulation struct {
	TickInterval time.Duration  `yaml:"tick_interval" validate:"gt=0"`
	Params       physics.Params `yaml:"params"`
	ClusterCount int            `yaml:"cluster_count" validate:"gte=1"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Server: Server{Port: 8090},
		Canvas: Canvas{Width: 1200, Height: 800},
		Simulation: Simulation{
			TickInterval: 16 * time.Millisecond, // ~60 ticks/second
			Params:       physics.DefaultParams(),
			ClusterCount: 4,
		},
	}
}

// Load reads a YAML config file over the defaults and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks structural constraints plus the coefficient ranges
// the simulator depends on.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	p := c.Simulation.Params
	if p.Damping <= 0 || p.Damping >= 1 {
		return fmt.Errorf("simulation damping must be in (0,1), got %v", p.Damping)
	}
	if p.Repulsion < 0 || p.Attraction < 0 || p.CenterGravity < 0 || p.LinkStrength < 0 {
		return fmt.Errorf("simulation coefficients must be non-negative")
	}
	return nil
}
