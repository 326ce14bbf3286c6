package vehicle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// CylinderSegments is the angular resolution of the wheel side wall.
const CylinderSegments = 20

// Wheel describes the static shape of a wheel and where it sits on the
// vehicle, relative to the vehicle center in the un-rotated local frame.
type Wheel struct {
	Width    float64
	Diameter float64
	Offset   r3.Vec
}

// validate reports whether the wheel has a usable shape.
func (w Wheel) validate() error {
	if !(w.Width > 0) || math.IsInf(w.Width, 0) {
		return fmt.Errorf("%w: wheel width must be positive and finite, got %v", ErrInvalidParams, w.Width)
	}
	if !(w.Diameter > 0) || math.IsInf(w.Diameter, 0) {
		return fmt.Errorf("%w: wheel diameter must be positive and finite, got %v", ErrInvalidParams, w.Diameter)
	}
	if !finite3(w.Offset) {
		return fmt.Errorf("%w: wheel offset must be finite, got %v", ErrInvalidParams, w.Offset)
	}
	return nil
}

// TriangleStrip returns the side wall of the wheel cylinder as a triangle
// strip centered on the origin, with the axle along Z. The strip goes round
// once with outward winding and once more reversed so both faces render.
func (w Wheel) TriangleStrip() []r3.Vec {
	radius := w.Diameter / 2
	halfWidth := w.Width / 2
	verts := make([]r3.Vec, 0, 4*(CylinderSegments+1))
	for i := 0; i <= CylinderSegments; i++ {
		x, y := ringPoint(i, radius)
		verts = append(verts, r3.Vec{X: x, Y: y, Z: halfWidth}, r3.Vec{X: x, Y: y, Z: -halfWidth})
	}
	for i := 0; i <= CylinderSegments; i++ {
		x, y := ringPoint(i, radius)
		verts = append(verts, r3.Vec{X: x, Y: y, Z: -halfWidth}, r3.Vec{X: x, Y: y, Z: halfWidth})
	}
	return verts
}

// PlacedStrip returns the triangle strip steered by steer radians about the
// up axis and moved to the wheel offset, still in the vehicle's local frame.
func (w Wheel) PlacedStrip(steer float64) []r3.Vec {
	rot := r3.NewRotation(steer, Up)
	verts := w.TriangleStrip()
	for i, v := range verts {
		verts[i] = r3.Add(rot.Rotate(v), w.Offset)
	}
	return verts
}

func ringPoint(i int, radius float64) (x, y float64) {
	a := 2 * math.Pi * float64(i) / CylinderSegments
	return radius * math.Cos(a), radius * math.Sin(a)
}

// Segment is a line between two points.
type Segment struct {
	Start, End r2.Vec
}

// Outline returns the wheel footprint in the plane as four segments: a
// diameter by width rectangle, rotated by steer and moved to the wheel
// offset. The planar frame maps local X to x and the local left axis
// (-Z) to y.
func (w Wheel) Outline(steer float64) [4]Segment {
	hl := w.Diameter / 2
	hw := w.Width / 2
	corners := [4]r2.Vec{
		{X: hl, Y: hw},
		{X: -hl, Y: hw},
		{X: -hl, Y: -hw},
		{X: hl, Y: -hw},
	}
	center := planarOf(w.Offset)
	for i, c := range corners {
		corners[i] = r2.Add(r2.Rotate(c, steer, r2.Vec{}), center)
	}
	var segs [4]Segment
	for i := range corners {
		segs[i] = Segment{Start: corners[i], End: corners[(i+1)%4]}
	}
	return segs
}
