package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/carlike/components"
)

// TrailSystem records the ground-plane path of every vehicle.
type TrailSystem struct {
	body   ecs.Filter2[components.Body, components.Trail]
	planar ecs.Filter2[components.PlanarBody, components.Trail]
}

// NewTrailSystem creates a new trail system.
func NewTrailSystem(w *ecs.World) *TrailSystem {
	return &TrailSystem{
		body:   *ecs.NewFilter2[components.Body, components.Trail](w),
		planar: *ecs.NewFilter2[components.PlanarBody, components.Trail](w),
	}
}

// Update runs the trail system.
func (s *TrailSystem) Update() {
	query := s.body.Query()
	for query.Next() {
		body, trail := query.Get()
		// Ground plane is (forward, left) = (X, -Z).
		trail.Push(r2.Vec{X: body.Position.X, Y: -body.Position.Z})
	}

	pquery := s.planar.Query()
	for pquery.Next() {
		body, trail := pquery.Get()
		trail.Push(body.Position)
	}
}
