package camera

import "gonum.org/v1/gonum/spatial/r3"

var up = r3.Vec{Y: 1}

// Chase is a 3D camera that trails a vehicle at a fixed offset in the
// vehicle frame.
type Chase struct {
	Offset r3.Vec
	Eye    r3.Vec
	Target r3.Vec
}

// Follow places the eye at the offset rotated by heading about the up axis
// and looks at pos.
func (c *Chase) Follow(pos r3.Vec, heading float64) {
	c.Eye = r3.Add(pos, r3.NewRotation(heading, up).Rotate(c.Offset))
	c.Target = pos
}
