// Package vehicle integrates the kinematics of a car-like vehicle whose
// rotation pivot is offset from its geometric center.
//
// The local frame has X pointing forward, Y up and Z to the right, so a
// positive yaw about Y turns the nose to the left and positive curvature
// means a left turn.
package vehicle

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidParams is wrapped by every construction error in this package.
var ErrInvalidParams = errors.New("vehicle: invalid params")

// Up is the world up axis. Headings are yaw rotations about it.
var Up = r3.Vec{Y: 1}

// Forward is the local forward axis.
var Forward = r3.Vec{X: 1}

// Vehicle is the mutable kinematic state of a vehicle moving on the ground
// plane of a 3D world.
type Vehicle struct {
	// Position of the vehicle center.
	Position r3.Vec
	// Direction is the unit forward heading. It never has a Y component.
	Direction r3.Vec
	// Speed along Direction, negative when reversing.
	Speed float64
	// Curvature is 1/turning radius; 0 drives straight.
	Curvature float64
	// PivotOffset goes from the center to the rotation center, in the
	// un-rotated local frame.
	PivotOffset r3.Vec
	Wheels      []Wheel
}

// Params configures a new Vehicle. A zero Direction means +X.
type Params struct {
	Position    r3.Vec
	Direction   r3.Vec
	Speed       float64
	Curvature   float64
	PivotOffset r3.Vec
	Wheels      []Wheel
}

// New validates p and returns the vehicle it describes.
func New(p Params) (*Vehicle, error) {
	if !finite3(p.Position) {
		return nil, fmt.Errorf("%w: position must be finite, got %v", ErrInvalidParams, p.Position)
	}
	if !finite3(p.PivotOffset) {
		return nil, fmt.Errorf("%w: pivot offset must be finite, got %v", ErrInvalidParams, p.PivotOffset)
	}
	if !finite(p.Speed) || !finite(p.Curvature) {
		return nil, fmt.Errorf("%w: speed and curvature must be finite, got %v and %v", ErrInvalidParams, p.Speed, p.Curvature)
	}
	dir := p.Direction
	if dir == (r3.Vec{}) {
		dir = Forward
	}
	dir.Y = 0
	if !finite3(dir) || r3.Norm(dir) == 0 {
		return nil, fmt.Errorf("%w: direction must have a finite ground-plane component, got %v", ErrInvalidParams, p.Direction)
	}
	wheels := make([]Wheel, len(p.Wheels))
	for i, w := range p.Wheels {
		if err := w.validate(); err != nil {
			return nil, fmt.Errorf("wheel %d: %w", i, err)
		}
		wheels[i] = w
	}
	return &Vehicle{
		Position:    p.Position,
		Direction:   r3.Unit(dir),
		Speed:       p.Speed,
		Curvature:   p.Curvature,
		PivotOffset: p.PivotOffset,
		Wheels:      wheels,
	}, nil
}

// Update advances the vehicle by dt seconds. The caller caps dt.
//
// The body turns about the pivot rather than its center, so on top of the
// straight-line advance the center is displaced by p - R(Δ)p, with p the
// pivot offset in world orientation.
func (v *Vehicle) Update(dt float64) {
	step := r3.Scale(v.Speed*dt, v.Direction)
	delta := v.Speed * v.Curvature * dt
	if delta == 0 {
		v.Position = r3.Add(v.Position, step)
		return
	}

	fwd, left := pivotDelta(v.PivotOffset.X, -v.PivotOffset.Z, delta)
	shift := r3.NewRotation(v.Heading(), Up).Rotate(r3.Vec{X: -fwd, Z: left})

	v.Position = r3.Add(v.Position, r3.Add(step, shift))
	v.Direction = r3.Unit(r3.NewRotation(delta, Up).Rotate(v.Direction))
}

// Heading returns the yaw of Direction about Up, in [0, 2π).
func (v *Vehicle) Heading() float64 {
	return wrapAngle(math.Atan2(-v.Direction.Z, v.Direction.X))
}

// TurnRadius returns 1/Curvature, or +Inf when driving straight.
func (v *Vehicle) TurnRadius() float64 {
	return RadiusOf(v.Curvature)
}

// ToWorld maps a point from the vehicle's local frame to world space.
func (v *Vehicle) ToWorld(local r3.Vec) r3.Vec {
	return r3.Add(v.Position, r3.NewRotation(v.Heading(), Up).Rotate(local))
}

// TurnCenter returns the world position of the instantaneous center of
// rotation. It reports false when driving straight.
func (v *Vehicle) TurnCenter() (r3.Vec, bool) {
	if v.Curvature == 0 {
		return r3.Vec{}, false
	}
	pivot := v.PivotOffset
	pivot.Z -= v.TurnRadius()
	return v.ToWorld(pivot), true
}

// WheelAngles writes the Ackermann steer angle of every wheel into dst,
// growing it if needed, and returns it.
func (v *Vehicle) WheelAngles(dst []float64) []float64 {
	dst = resize(dst, len(v.Wheels))
	r := v.TurnRadius()
	for i, w := range v.Wheels {
		dst[i] = ackermann(
			w.Offset.X-v.PivotOffset.X,
			-w.Offset.Z+v.PivotOffset.Z,
			r,
		)
	}
	return dst
}

// pivotDelta returns how far the pivot at (fwd, left) moves when the body
// turns by angle about its center, in (forward, left) coordinates.
func pivotDelta(fwd, left, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return fwd*(cos-1) - left*sin, left*(cos-1) + fwd*sin
}

// ackermann returns the steer angle of a wheel at (along, across) from the
// pivot, so that its axle points at a turn center r to the left of the
// pivot. Wheels are symmetric under a half turn, so the result is folded
// into [-π/2, π/2].
func ackermann(along, across, r float64) float64 {
	a := math.Atan2(along, r-across)
	switch {
	case a > math.Pi/2:
		a -= math.Pi
	case a < -math.Pi/2:
		a += math.Pi
	}
	return a
}

// RadiusOf returns 1/curvature, or +Inf for zero curvature.
func RadiusOf(curvature float64) float64 {
	if curvature == 0 {
		return math.Inf(1)
	}
	return 1 / curvature
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

func resize(dst []float64, n int) []float64 {
	if cap(dst) < n {
		return make([]float64, n)
	}
	return dst[:n]
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finite3(v r3.Vec) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}
