package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/carlike/components"
)

// WheelSystem recomputes per-wheel steering angles from the current curvature.
type WheelSystem struct {
	body   ecs.Filter2[components.Body, components.SteerAngles]
	planar ecs.Filter2[components.PlanarBody, components.SteerAngles]
}

// NewWheelSystem creates a new wheel system.
func NewWheelSystem(w *ecs.World) *WheelSystem {
	return &WheelSystem{
		body:   *ecs.NewFilter2[components.Body, components.SteerAngles](w),
		planar: *ecs.NewFilter2[components.PlanarBody, components.SteerAngles](w),
	}
}

// Update runs the wheel system.
func (s *WheelSystem) Update() {
	query := s.body.Query()
	for query.Next() {
		body, steer := query.Get()
		steer.Angles = body.WheelAngles(steer.Angles)
	}

	pquery := s.planar.Query()
	for pquery.Next() {
		body, steer := pquery.Get()
		steer.Angles = body.WheelAngles(steer.Angles)
	}
}
