package game

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carlike/components"
	"github.com/pthm-cable/carlike/control"
	"github.com/pthm-cable/carlike/telemetry"
	"github.com/pthm-cable/carlike/vehicle"
)

// pose is a placement on the ground plane, shared by both modes.
type pose struct {
	ground  r2.Vec // (forward, left)
	height  float64
	heading float64
}

// layout returns the configured wheel arrangement.
func (g *Game) layout() vehicle.Layout {
	v := g.cfg.Vehicle
	return vehicle.Layout{
		Wheelbase:     v.Wheelbase,
		Track:         v.Track,
		WheelWidth:    v.WheelWidth,
		WheelDiameter: v.WheelDiameter,
		Middle:        v.MiddleWheels,
	}
}

// spawnVehicle creates the vehicle entity for mode at p. A nil drv starts a
// fresh driver at rest.
func (g *Game) spawnVehicle(mode components.Mode, p pose, drv *control.Driver, trail components.Trail) error {
	if drv == nil {
		var err error
		if drv, err = control.NewDriver(g.cfg.Tuning()); err != nil {
			return err
		}
	}
	wheels := g.layout().Wheels()
	pivot := g.cfg.Vehicle.PivotOffset
	sin, cos := math.Sincos(p.heading)

	controls := components.Controls{}
	driver := components.Driver{Driver: drv}
	steer := components.SteerAngles{Angles: make([]float64, len(wheels))}

	switch mode {
	case components.Mode3D:
		v, err := vehicle.New(vehicle.Params{
			Position:    r3.Vec{X: p.ground.X, Y: p.height, Z: -p.ground.Y},
			Direction:   r3.Vec{X: cos, Z: -sin},
			Speed:       drv.Speed,
			Curvature:   drv.Curvature(),
			PivotOffset: r3.Vec{X: pivot},
			Wheels:      wheels,
		})
		if err != nil {
			return fmt.Errorf("spawning vehicle: %w", err)
		}
		body := components.Body{Vehicle: v}
		steer.Angles = v.WheelAngles(steer.Angles)
		g.entity = g.spawn3D.NewEntity(&controls, &driver, &body, &steer, &trail)
	case components.Mode2D:
		v, err := vehicle.NewPlanar(vehicle.PlanarParams{
			Position:    p.ground,
			Direction:   r2.Vec{X: cos, Y: sin},
			Speed:       drv.Speed,
			Curvature:   drv.Curvature(),
			PivotOffset: r2.Vec{X: pivot},
			Wheels:      wheels,
		})
		if err != nil {
			return fmt.Errorf("spawning planar vehicle: %w", err)
		}
		body := components.PlanarBody{Planar: v}
		steer.Angles = v.WheelAngles(steer.Angles)
		g.entity = g.spawn2D.NewEntity(&controls, &driver, &body, &steer, &trail)
	default:
		return fmt.Errorf("unknown mode %d", mode)
	}
	g.mode = mode
	return nil
}

// pose returns the current placement of the vehicle.
func (g *Game) pose() pose {
	if g.mode == components.Mode2D {
		v := g.planarMap.Get(g.entity)
		return pose{ground: v.Position, heading: v.Heading()}
	}
	v := g.bodyMap.Get(g.entity)
	return pose{ground: r2.Vec{X: v.Position.X, Y: -v.Position.Z}, height: v.Position.Y, heading: v.Heading()}
}

// restore turns a snapshot back into a mode, pose and driver.
func (g *Game) restore(s *telemetry.Snapshot) (components.Mode, pose, *control.Driver, error) {
	mode, ok := components.ParseMode(s.Mode)
	if !ok {
		return 0, pose{}, nil, fmt.Errorf("snapshot: unknown mode %q", s.Mode)
	}
	drv, err := control.NewDriver(g.cfg.Tuning())
	if err != nil {
		return 0, pose{}, nil, err
	}
	st := s.Vehicle
	drv.Speed, drv.SteeringAngle = st.Speed, st.SteeringAngle
	p := pose{ground: r2.Vec{X: st.X, Y: st.Y}, height: st.Height, heading: st.Heading}
	return mode, p, drv, nil
}

// snapshot captures the state needed to resume the run.
func (g *Game) snapshot(bm *telemetry.Bookmark) *telemetry.Snapshot {
	p := g.pose()
	drv := g.driverMap.Get(g.entity)
	return &telemetry.Snapshot{
		Version:    telemetry.SnapshotVersion,
		Mode:       g.mode.String(),
		Tick:       g.tick,
		SimTimeSec: g.collector.SimTime(),
		Vehicle: telemetry.VehicleState{
			X:             p.ground.X,
			Y:             p.ground.Y,
			Height:        p.height,
			Heading:       p.heading,
			Speed:         drv.Speed,
			SteeringAngle: drv.SteeringAngle,
		},
		Bookmark: bm,
	}
}
