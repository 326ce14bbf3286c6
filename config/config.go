// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/carlike/control"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Vehicle   VehicleConfig   `yaml:"vehicle"`
	Steering  SteeringConfig  `yaml:"steering"`
	Throttle  ThrottleConfig  `yaml:"throttle"`
	Grid      GridConfig      `yaml:"grid"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds integration step settings.
type PhysicsConfig struct {
	MaxDT      float64 `yaml:"max_dt"`      // Frame time cap; the remainder of a long frame is dropped
	HeadlessDT float64 `yaml:"headless_dt"` // Fixed step for headless runs
}

// VehicleConfig holds the fixed vehicle geometry.
type VehicleConfig struct {
	Wheelbase     float64 `yaml:"wheelbase"`
	Track         float64 `yaml:"track"`
	WheelWidth    float64 `yaml:"wheel_width"`
	WheelDiameter float64 `yaml:"wheel_diameter"`
	// PivotOffset is the rotation center along the vehicle length, relative
	// to the center (positive is towards the front).
	PivotOffset  float64 `yaml:"pivot_offset"`
	MiddleWheels bool    `yaml:"middle_wheels"` // Extra pair on the center axle, outside the track
}

// SteeringConfig holds steering tuning. Angles are in radians.
type SteeringConfig struct {
	Rate     float64 `yaml:"rate"`
	MaxAngle float64 `yaml:"max_angle"`
	Ratio    float64 `yaml:"ratio"`
	Damping  float64 `yaml:"damping"` // Fraction kept after one second without input
}

// ThrottleConfig holds speed tuning.
type ThrottleConfig struct {
	Acceleration        float64 `yaml:"acceleration"`
	ReverseAcceleration float64 `yaml:"reverse_acceleration"`
	Braking             float64 `yaml:"braking"`
	MaxSpeed            float64 `yaml:"max_speed"`
	MaxReverseSpeed     float64 `yaml:"max_reverse_speed"`
	CoastFactor         float64 `yaml:"coast_factor"` // Speed damping = (max_speed - acceleration*coast_factor)/max_speed
}

// GridConfig holds the ground grid. The world wraps at its edges.
type GridConfig struct {
	Spacing    float64 `yaml:"spacing"`
	Resolution int     `yaml:"resolution"`
}

// CameraConfig holds camera placement.
type CameraConfig struct {
	Offset Vec3    `yaml:"offset"` // Chase offset in the vehicle frame (3D)
	Fovy   float64 `yaml:"fovy"`
	Zoom2D float64 `yaml:"zoom_2d"` // Pixels per world unit in the planar view
}

// Vec3 is a YAML-friendly 3D vector.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds of simulated time per stats window
	PerfWindow  int     `yaml:"perf_window"`  // Frames averaged by the perf collector
	TrailLength int     `yaml:"trail_length"` // Recent positions kept for the trail overlay
}

// HeadlessConfig holds the scripted input used without a window.
type HeadlessConfig struct {
	Loop   bool              `yaml:"loop"`
	Script []control.Segment `yaml:"script"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SpeedDamping float64 // Fraction of speed kept after one second of coasting
	GridSize     float64 // Spacing * Resolution
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Tuning returns the steering and throttle constants.
func (c *Config) Tuning() control.Tuning {
	return control.Tuning{
		SteeringRate:        c.Steering.Rate,
		MaxSteeringAngle:    c.Steering.MaxAngle,
		SteeringRatio:       c.Steering.Ratio,
		SteerDamping:        c.Steering.Damping,
		Acceleration:        c.Throttle.Acceleration,
		ReverseAcceleration: c.Throttle.ReverseAcceleration,
		Braking:             c.Throttle.Braking,
		MaxSpeed:            c.Throttle.MaxSpeed,
		MaxReverseSpeed:     c.Throttle.MaxReverseSpeed,
		CoastFactor:         c.Throttle.CoastFactor,
		Wheelbase:           c.Vehicle.Wheelbase,
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if err := c.Tuning().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch {
	case !(c.Physics.MaxDT > 0):
		return fmt.Errorf("%w: physics.max_dt must be positive, got %v", ErrInvalid, c.Physics.MaxDT)
	case !(c.Physics.HeadlessDT > 0):
		return fmt.Errorf("%w: physics.headless_dt must be positive, got %v", ErrInvalid, c.Physics.HeadlessDT)
	case !(c.Vehicle.Track >= 0):
		return fmt.Errorf("%w: vehicle.track must not be negative, got %v", ErrInvalid, c.Vehicle.Track)
	case !(c.Vehicle.WheelWidth > 0) || !(c.Vehicle.WheelDiameter > 0):
		return fmt.Errorf("%w: vehicle wheel width and diameter must be positive", ErrInvalid)
	case math.IsNaN(c.Vehicle.PivotOffset) || math.IsInf(c.Vehicle.PivotOffset, 0):
		return fmt.Errorf("%w: vehicle.pivot_offset must be finite", ErrInvalid)
	case !(c.Grid.Spacing > 0) || c.Grid.Resolution <= 0:
		return fmt.Errorf("%w: grid spacing and resolution must be positive", ErrInvalid)
	case c.Telemetry.StatsWindow < 0 || c.Telemetry.TrailLength < 0:
		return fmt.Errorf("%w: telemetry windows must not be negative", ErrInvalid)
	}
	if _, err := control.NewScript(c.Headless.Script, c.Headless.Loop); err != nil {
		return fmt.Errorf("%w: headless: %w", ErrInvalid, err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.SpeedDamping = c.Tuning().SpeedDamping()
	c.Derived.GridSize = c.Grid.Spacing * float64(c.Grid.Resolution)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
