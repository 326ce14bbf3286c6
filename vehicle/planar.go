package vehicle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Planar is the 2D specialization of Vehicle. The plane has x forward and
// y to the left, so headings are counter-clockwise.
type Planar struct {
	Position    r2.Vec
	Direction   r2.Vec
	Speed       float64
	Curvature   float64
	PivotOffset r2.Vec
	// Wheels keep their 3D offsets; planarOf projects them.
	Wheels []Wheel
}

// PlanarParams configures a new Planar. A zero Direction means +x.
type PlanarParams struct {
	Position    r2.Vec
	Direction   r2.Vec
	Speed       float64
	Curvature   float64
	PivotOffset r2.Vec
	Wheels      []Wheel
}

// NewPlanar validates p and returns the vehicle it describes.
func NewPlanar(p PlanarParams) (*Planar, error) {
	if !finite2(p.Position) || !finite2(p.PivotOffset) {
		return nil, fmt.Errorf("%w: position and pivot offset must be finite", ErrInvalidParams)
	}
	if !finite(p.Speed) || !finite(p.Curvature) {
		return nil, fmt.Errorf("%w: speed and curvature must be finite, got %v and %v", ErrInvalidParams, p.Speed, p.Curvature)
	}
	dir := p.Direction
	if dir == (r2.Vec{}) {
		dir = r2.Vec{X: 1}
	}
	if !finite2(dir) {
		return nil, fmt.Errorf("%w: direction must be finite, got %v", ErrInvalidParams, dir)
	}
	wheels := make([]Wheel, len(p.Wheels))
	for i, w := range p.Wheels {
		if err := w.validate(); err != nil {
			return nil, fmt.Errorf("wheel %d: %w", i, err)
		}
		wheels[i] = w
	}
	return &Planar{
		Position:    p.Position,
		Direction:   r2.Unit(dir),
		Speed:       p.Speed,
		Curvature:   p.Curvature,
		PivotOffset: p.PivotOffset,
		Wheels:      wheels,
	}, nil
}

// Update advances the vehicle by dt seconds.
func (v *Planar) Update(dt float64) {
	step := r2.Scale(v.Speed*dt, v.Direction)
	delta := v.Speed * v.Curvature * dt
	if delta == 0 {
		v.Position = r2.Add(v.Position, step)
		return
	}

	dx, dy := pivotDelta(v.PivotOffset.X, v.PivotOffset.Y, delta)
	shift := r2.Rotate(r2.Vec{X: -dx, Y: -dy}, v.Heading(), r2.Vec{})

	v.Position = r2.Add(v.Position, r2.Add(step, shift))
	v.Direction = r2.Unit(r2.Rotate(v.Direction, delta, r2.Vec{}))
}

// Heading returns the angle of Direction, in [0, 2π).
func (v *Planar) Heading() float64 {
	return wrapAngle(math.Atan2(v.Direction.Y, v.Direction.X))
}

// TurnRadius returns 1/Curvature, or +Inf when driving straight.
func (v *Planar) TurnRadius() float64 {
	return RadiusOf(v.Curvature)
}

// ToWorld maps a point from the vehicle's local frame to the plane.
func (v *Planar) ToWorld(local r2.Vec) r2.Vec {
	return r2.Add(v.Position, r2.Rotate(local, v.Heading(), r2.Vec{}))
}

// TurnCenter returns the instantaneous center of rotation, or false when
// driving straight.
func (v *Planar) TurnCenter() (r2.Vec, bool) {
	if v.Curvature == 0 {
		return r2.Vec{}, false
	}
	pivot := v.PivotOffset
	pivot.Y += v.TurnRadius()
	return v.ToWorld(pivot), true
}

// WheelAngles writes the Ackermann steer angle of every wheel into dst.
func (v *Planar) WheelAngles(dst []float64) []float64 {
	dst = resize(dst, len(v.Wheels))
	r := v.TurnRadius()
	for i, w := range v.Wheels {
		o := planarOf(w.Offset)
		dst[i] = ackermann(o.X-v.PivotOffset.X, o.Y-v.PivotOffset.Y, r)
	}
	return dst
}

// planarOf projects a local 3D offset onto the (forward, left) plane.
func planarOf(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: -v.Z}
}

func finite2(v r2.Vec) bool {
	return finite(v.X) && finite(v.Y)
}
