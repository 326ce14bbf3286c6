package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carlike/components"
	"github.com/pthm-cable/carlike/config"
	"github.com/pthm-cable/carlike/control"
	"github.com/pthm-cable/carlike/vehicle"
)

// Result is one row of the turning circle report.
type Result struct {
	Mode           string  `csv:"mode"`
	SteeringAngle  float64 `csv:"steering_angle"`
	Curvature      float64 `csv:"curvature"`
	ExpectedRadius float64 `csv:"expected_radius"`
	FittedRadius   float64 `csv:"fitted_radius"`
	RelativeError  float64 `csv:"relative_error"`
	CenterX        float64 `csv:"center_x"`
	CenterY        float64 `csv:"center_y"`
	Residual       float64 `csv:"residual"`
	Samples        int     `csv:"samples"`
}

// Run holds the settings shared by every measured steering angle.
type Run struct {
	Mode     components.Mode
	Speed    float64
	DT       float64
	MaxSteps int
}

// pivotTracer advances a vehicle and reports where its pivot is.
type pivotTracer interface {
	Update(dt float64)
	pivot() r2.Vec
}

type tracer3D struct{ *vehicle.Vehicle }

func (t tracer3D) pivot() r2.Vec {
	p := t.ToWorld(t.PivotOffset)
	return r2.Vec{X: p.X, Y: -p.Z}
}

type tracerPlanar struct{ *vehicle.Planar }

func (t tracerPlanar) pivot() r2.Vec {
	return t.ToWorld(t.PivotOffset)
}

func newTracer(cfg *config.Config, mode components.Mode, speed, curvature float64) (pivotTracer, error) {
	pivot := cfg.Vehicle.PivotOffset
	switch mode {
	case components.Mode3D:
		v, err := vehicle.New(vehicle.Params{Speed: speed, Curvature: curvature, PivotOffset: r3.Vec{X: pivot}})
		if err != nil {
			return nil, err
		}
		return tracer3D{v}, nil
	case components.Mode2D:
		v, err := vehicle.NewPlanar(vehicle.PlanarParams{Speed: speed, Curvature: curvature, PivotOffset: r2.Vec{X: pivot}})
		if err != nil {
			return nil, err
		}
		return tracerPlanar{v}, nil
	}
	return nil, fmt.Errorf("unknown mode %d", mode)
}

// Measure drives one full circle at a fixed steering angle and fits a
// circle to the path of the pivot.
func (r Run) Measure(cfg *config.Config, angle float64) (Result, error) {
	curvature := control.Curvature(angle, cfg.Steering.Ratio, cfg.Vehicle.Wheelbase)
	if curvature == 0 {
		return Result{}, fmt.Errorf("steering angle %v drives straight", angle)
	}
	t, err := newTracer(cfg, r.Mode, r.Speed, curvature)
	if err != nil {
		return Result{}, err
	}

	expected := 1 / math.Abs(curvature)
	steps := int(math.Ceil(2 * math.Pi * expected / (math.Abs(r.Speed) * r.DT)))
	if r.MaxSteps > 0 {
		steps = min(steps, r.MaxSteps)
	}

	points := make([]r2.Vec, 0, steps+1)
	points = append(points, t.pivot())
	for i := 0; i < steps; i++ {
		t.Update(r.DT)
		points = append(points, t.pivot())
	}

	circle, err := FitCircle(points)
	if err != nil {
		return Result{}, fmt.Errorf("angle %v: %w", angle, err)
	}
	return Result{
		Mode:           r.Mode.String(),
		SteeringAngle:  angle,
		Curvature:      curvature,
		ExpectedRadius: expected,
		FittedRadius:   circle.Radius,
		RelativeError:  (circle.Radius - expected) / expected,
		CenterX:        circle.Center.X,
		CenterY:        circle.Center.Y,
		Residual:       circle.Residual,
		Samples:        len(points),
	}, nil
}

// sweepAngles returns n angles evenly spaced in (0, maxAngle], mirrored to the
// right when both is set.
func sweepAngles(maxAngle float64, n int, both bool) []float64 {
	angles := make([]float64, 0, 2*n)
	for i := 1; i <= n; i++ {
		a := maxAngle * float64(i) / float64(n)
		angles = append(angles, a)
		if both {
			angles = append(angles, -a)
		}
	}
	return angles
}
