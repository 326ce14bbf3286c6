package components

import "github.com/pthm-cable/carlike/vehicle"

// Body is the kinematic state of a vehicle driving on the 3D ground plane.
type Body struct {
	*vehicle.Vehicle
}

// PlanarBody is the kinematic state of a vehicle in the 2D top-down view.
type PlanarBody struct {
	*vehicle.Planar
}
