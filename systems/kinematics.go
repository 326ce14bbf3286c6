package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/carlike/components"
)

// KinematicsSystem integrates vehicle motion and wraps positions onto the
// ground grid.
type KinematicsSystem struct {
	body   ecs.Filter1[components.Body]
	planar ecs.Filter1[components.PlanarBody]
	size   float64
}

// NewKinematicsSystem creates a kinematics system for a square world of the
// given side length, centered on the origin. A size of 0 disables wrapping.
func NewKinematicsSystem(w *ecs.World, size float64) *KinematicsSystem {
	return &KinematicsSystem{
		body:   *ecs.NewFilter1[components.Body](w),
		planar: *ecs.NewFilter1[components.PlanarBody](w),
		size:   size,
	}
}

// Update runs the kinematics system.
func (s *KinematicsSystem) Update(dt float64) {
	query := s.body.Query()
	for query.Next() {
		body := query.Get()
		body.Update(dt)
		body.Position.X = wrapCentered(body.Position.X, s.size)
		body.Position.Z = wrapCentered(body.Position.Z, s.size)
	}

	pquery := s.planar.Query()
	for pquery.Next() {
		body := pquery.Get()
		body.Update(dt)
		body.Position.X = wrapCentered(body.Position.X, s.size)
		body.Position.Y = wrapCentered(body.Position.Y, s.size)
	}
}
