// Package components defines ECS components for the simulation.
package components

import (
	"github.com/pthm-cable/carlike/control"
)

// Controls holds the driving input sampled for the current frame.
type Controls struct {
	control.Input
}

// Driver holds the persisted steering angle and speed.
type Driver struct {
	*control.Driver
}

// SteerAngles holds the per-wheel steering angles, one per vehicle wheel,
// recomputed every frame after the kinematics update.
type SteerAngles struct {
	Angles []float64
}

// Mode selects which kinematic body the vehicle entity carries.
type Mode uint8

const (
	Mode3D Mode = iota // Body
	Mode2D             // PlanarBody
)

// String returns the CLI spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Mode3D:
		return "3d"
	case Mode2D:
		return "2d"
	}
	return "unknown"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "3d":
		return Mode3D, true
	case "2d":
		return Mode2D, true
	}
	return 0, false
}
