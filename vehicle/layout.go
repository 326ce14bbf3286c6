package vehicle

import "gonum.org/v1/gonum/spatial/r3"

// Layout describes a symmetric wheel arrangement around the vehicle center.
type Layout struct {
	Wheelbase     float64
	Track         float64
	WheelWidth    float64
	WheelDiameter float64
	// Middle adds a pair on the center axle, pushed outside the track by
	// half a wheel width.
	Middle bool
}

// Wheels returns left/right pairs from rear to front. Left is -Z.
func (l Layout) Wheels() []Wheel {
	halfBase, halfTrack := l.Wheelbase/2, l.Track/2
	axles := []struct{ along, across float64 }{
		{-halfBase, halfTrack},
	}
	if l.Middle {
		axles = append(axles, struct{ along, across float64 }{0, halfTrack + l.WheelWidth/2})
	}
	axles = append(axles, struct{ along, across float64 }{halfBase, halfTrack})

	wheels := make([]Wheel, 0, 2*len(axles))
	for _, a := range axles {
		for _, side := range []float64{-1, 1} {
			wheels = append(wheels, Wheel{
				Width:    l.WheelWidth,
				Diameter: l.WheelDiameter,
				Offset:   r3.Vec{X: a.along, Z: side * a.across},
			})
		}
	}
	return wheels
}
