// Package control turns driver input into the speed and curvature that
// drive the vehicle kinematics.
package control

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTuning is wrapped by every Tuning validation error.
var ErrInvalidTuning = errors.New("control: invalid tuning")

// precision is the number of steps per unit kept after damping (4 decimals).
const precision = 10000

// Tuning holds the fixed constants of the steering and throttle mapping.
type Tuning struct {
	SteeringRate     float64 // rad/s of driver wheel while a steer key is held
	MaxSteeringAngle float64 // rad, driver wheel limit
	SteeringRatio    float64 // driver wheel angle per road wheel angle
	SteerDamping     float64 // fraction of steering angle left after one second

	Acceleration        float64 // forward, while accelerating
	ReverseAcceleration float64 // backward, while reversing
	Braking             float64 // toward zero, when input opposes motion
	MaxSpeed            float64
	MaxReverseSpeed     float64 // <= 0
	// CoastFactor scales how much of one second of acceleration coasting
	// loses per second at top speed.
	CoastFactor float64

	Wheelbase float64
}

// DefaultTuning returns the stock tuning.
func DefaultTuning() Tuning {
	return Tuning{
		SteeringRate:        1.5 * 2 * math.Pi,
		MaxSteeringAngle:    1.5 * 2 * math.Pi,
		SteeringRatio:       8,
		SteerDamping:        0.3,
		Acceleration:        6,
		ReverseAcceleration: 4,
		Braking:             10,
		MaxSpeed:            50,
		MaxReverseSpeed:     -10,
		CoastFactor:         0.9,
		Wheelbase:           10,
	}
}

// SpeedDamping returns the fraction of speed left after one second of
// coasting.
func (t Tuning) SpeedDamping() float64 {
	return (t.MaxSpeed - t.Acceleration*t.CoastFactor) / t.MaxSpeed
}

// Validate reports the first constant that would break the mapping.
func (t Tuning) Validate() error {
	checks := []struct {
		ok   bool
		what string
		val  float64
	}{
		{t.Wheelbase > 0, "wheelbase must be positive", t.Wheelbase},
		{t.SteeringRatio > 0, "steering ratio must be positive", t.SteeringRatio},
		{t.SteeringRate >= 0, "steering rate must not be negative", t.SteeringRate},
		{t.MaxSteeringAngle >= 0, "max steering angle must not be negative", t.MaxSteeringAngle},
		{t.SteerDamping > 0 && t.SteerDamping <= 1, "steer damping must be in (0, 1]", t.SteerDamping},
		{t.Acceleration >= 0, "acceleration must not be negative", t.Acceleration},
		{t.ReverseAcceleration >= 0, "reverse acceleration must not be negative", t.ReverseAcceleration},
		{t.Braking >= 0, "braking must not be negative", t.Braking},
		{t.MaxSpeed > 0, "max speed must be positive", t.MaxSpeed},
		{t.MaxReverseSpeed <= 0, "max reverse speed must not be positive", t.MaxReverseSpeed},
	}
	for _, c := range checks {
		if !c.ok || math.IsInf(c.val, 0) {
			return fmt.Errorf("%w: %s, got %v", ErrInvalidTuning, c.what, c.val)
		}
	}
	if d := t.SpeedDamping(); !(d > 0 && d <= 1) {
		return fmt.Errorf("%w: speed damping (max_speed - acceleration*coast_factor)/max_speed must be in (0, 1], got %v", ErrInvalidTuning, d)
	}
	return nil
}

// Input is the state of the driving controls for one frame.
type Input struct {
	Left       bool `yaml:"left"`
	Right      bool `yaml:"right"`
	Accelerate bool `yaml:"accelerate"`
	Decelerate bool `yaml:"decelerate"`
}

// Driver holds the two persisted control scalars.
type Driver struct {
	SteeringAngle float64
	Speed         float64

	tuning       Tuning
	speedDamping float64
}

// NewDriver validates t and returns a driver at rest with centered steering.
func NewDriver(t Tuning) (*Driver, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Driver{tuning: t, speedDamping: t.SpeedDamping()}, nil
}

// Tuning returns the constants the driver was built with.
func (d *Driver) Tuning() Tuning {
	return d.tuning
}

// Step applies one frame of input: damp, truncate, apply input, clamp.
// Callers read Curvature afterwards.
func (d *Driver) Step(in Input, dt float64) {
	t := &d.tuning

	d.SteeringAngle = truncate(d.SteeringAngle * math.Pow(t.SteerDamping, dt))
	d.Speed = truncate(d.Speed * math.Pow(d.speedDamping, dt))

	if in.Right {
		d.SteeringAngle -= t.SteeringRate * dt
	}
	if in.Left {
		d.SteeringAngle += t.SteeringRate * dt
	}
	if in.Accelerate {
		if d.Speed < 0 {
			d.Speed = math.Min(d.Speed+t.Braking*dt, 0)
		} else {
			d.Speed += t.Acceleration * dt
		}
	}
	if in.Decelerate {
		if d.Speed > 0 {
			d.Speed = math.Max(d.Speed-t.Braking*dt, 0)
		} else {
			d.Speed -= t.ReverseAcceleration * dt
		}
	}

	d.SteeringAngle = clamp(d.SteeringAngle, -t.MaxSteeringAngle, t.MaxSteeringAngle)
	d.Speed = clamp(d.Speed, t.MaxReverseSpeed, t.MaxSpeed)
}

// Curvature returns the turn curvature the current steering angle commands.
func (d *Driver) Curvature() float64 {
	return Curvature(d.SteeringAngle, d.tuning.SteeringRatio, d.tuning.Wheelbase)
}

// Reset centers the steering and stops the vehicle.
func (d *Driver) Reset() {
	d.SteeringAngle = 0
	d.Speed = 0
}

// Curvature maps a driver wheel angle to turn curvature. sin keeps the
// result bounded by 1/wheelbase for any angle.
func Curvature(steeringAngle, ratio, wheelbase float64) float64 {
	return math.Sin(steeringAngle/ratio) / wheelbase
}

// truncate drops everything past four decimals, toward zero, so a decaying
// value reaches exactly zero from either side. Zero is always +0.
func truncate(v float64) float64 {
	t := math.Trunc(v*precision) / precision
	if t == 0 {
		return 0
	}
	return t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
