// Package systems contains ECS systems for the simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/carlike/components"
)

// DriveSystem steps each driver with the sampled input and hands the
// resulting speed and curvature to the kinematic body.
type DriveSystem struct {
	body   ecs.Filter3[components.Controls, components.Driver, components.Body]
	planar ecs.Filter3[components.Controls, components.Driver, components.PlanarBody]
}

// NewDriveSystem creates a new drive system.
func NewDriveSystem(w *ecs.World) *DriveSystem {
	return &DriveSystem{
		body:   *ecs.NewFilter3[components.Controls, components.Driver, components.Body](w),
		planar: *ecs.NewFilter3[components.Controls, components.Driver, components.PlanarBody](w),
	}
}

// Update runs the drive system.
func (s *DriveSystem) Update(dt float64) {
	query := s.body.Query()
	for query.Next() {
		in, drv, body := query.Get()
		drv.Step(in.Input, dt)
		body.Speed = drv.Speed
		body.Curvature = drv.Curvature()
	}

	pquery := s.planar.Query()
	for pquery.Next() {
		in, drv, body := pquery.Get()
		drv.Step(in.Input, dt)
		body.Speed = drv.Speed
		body.Curvature = drv.Curvature()
	}
}
