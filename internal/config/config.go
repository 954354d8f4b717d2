package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/battedball/internal/flight"
	"github.com/san-kum/battedball/internal/groundball"
)

const (
	DefaultDt         = 0.01
	DefaultMaxTime    = 10.0
	DefaultAirDensity = 1.225 // kg/m^3, sea level 15C
)

// DefaultCrossArea is the cross-sectional area of an MLB ball (74 mm
// diameter), m^2.
var DefaultCrossArea = math.Pi * 0.037 * 0.037

type Config struct {
	Dt          float64      `yaml:"dt"`
	MaxTime     float64      `yaml:"max_time"`
	GroundLevel float64      `yaml:"ground_level"`
	AirDensity  float64      `yaml:"air_density"`
	CrossArea   float64      `yaml:"cross_area"`
	Surface     string       `yaml:"surface"`
	Workers     int          `yaml:"workers"`
	Launch      LaunchConfig `yaml:"launch"`
	Wind        WindConfig   `yaml:"wind"`
}

// LaunchConfig is the initial kinematic state plus spin, meters and m/s.
type LaunchConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	Z  float64 `yaml:"z"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
	VZ float64 `yaml:"vz"`

	SpinAxisX float64 `yaml:"spin_axis_x"`
	SpinAxisY float64 `yaml:"spin_axis_y"`
	SpinAxisZ float64 `yaml:"spin_axis_z"`
	SpinRPM   float64 `yaml:"spin_rpm"`
}

// WindConfig is the reference wind vector measured at 10 m, m/s.
type WindConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:         DefaultDt,
		MaxTime:    DefaultMaxTime,
		AirDensity: DefaultAirDensity,
		CrossArea:  DefaultCrossArea,
		Surface:    "grass",
		Launch: LaunchConfig{
			Z:         1.0,
			VY:        40.0,
			VZ:        20.0,
			SpinAxisX: 1.0,
			SpinRPM:   1800,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LaunchState returns the configured launch as an integrator state.
func (c *Config) LaunchState() flight.State {
	return flight.State{c.Launch.X, c.Launch.Y, c.Launch.Z, c.Launch.VX, c.Launch.VY, c.Launch.VZ}
}

// SurfaceType maps the surface name to a ground-ball surface.
func (c *Config) SurfaceType() (groundball.Surface, error) {
	switch c.Surface {
	case "", "grass":
		return groundball.Grass, nil
	case "dirt":
		return groundball.Dirt, nil
	default:
		return groundball.Grass, fmt.Errorf("unknown surface: %s", c.Surface)
	}
}
