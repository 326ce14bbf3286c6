package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/carlike/components"
	"github.com/pthm-cable/carlike/config"
)

func circlePoints(c r2.Vec, r float64, n int, arc float64) []r2.Vec {
	pts := make([]r2.Vec, n)
	for i := range pts {
		a := arc * float64(i) / float64(n)
		pts[i] = r2.Vec{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

func TestFitCircleExact(t *testing.T) {
	want := r2.Vec{X: 2, Y: -3}
	got, err := FitCircle(circlePoints(want, 7, 50, 2*math.Pi))
	if err != nil {
		t.Fatalf("FitCircle: %v", err)
	}
	if math.Abs(got.Radius-7) > 1e-6 {
		t.Errorf("radius = %v, want 7", got.Radius)
	}
	if r2.Norm(r2.Sub(got.Center, want)) > 1e-6 {
		t.Errorf("center = %v, want %v", got.Center, want)
	}
	if got.Residual > 1e-6 {
		t.Errorf("residual = %v, want ~0", got.Residual)
	}
}

func TestFitCirclePartialArc(t *testing.T) {
	got, err := FitCircle(circlePoints(r2.Vec{X: -10}, 100, 40, math.Pi/3))
	if err != nil {
		t.Fatalf("FitCircle: %v", err)
	}
	if math.Abs(got.Radius-100) > 1e-4 {
		t.Errorf("radius = %v, want 100", got.Radius)
	}
}

func TestFitCircleRejectsDegenerate(t *testing.T) {
	if _, err := FitCircle([]r2.Vec{{X: 0}, {X: 1}}); err == nil {
		t.Error("expected error for two points")
	}
	line := []r2.Vec{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	if _, err := FitCircle(line); err == nil {
		t.Error("expected error for collinear points")
	}
}

func TestSweepAngles(t *testing.T) {
	got := sweepAngles(4, 2, true)
	want := []float64{2, -2, 4, -4}
	if len(got) != len(want) {
		t.Fatalf("angles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("angles = %v, want %v", got, want)
			break
		}
	}
	if got := sweepAngles(4, 2, false); len(got) != 2 || got[1] != 4 {
		t.Errorf("one-sided angles = %v", got)
	}
}

func TestMeasureMatchesCurvature(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	for _, mode := range []components.Mode{components.Mode3D, components.Mode2D} {
		for _, angle := range []float64{cfg.Steering.MaxAngle, -cfg.Steering.MaxAngle / 2} {
			run := Run{Mode: mode, Speed: 10, DT: cfg.Physics.HeadlessDT}
			res, err := run.Measure(cfg, angle)
			if err != nil {
				t.Fatalf("%v %v: %v", mode, angle, err)
			}
			if math.Abs(res.RelativeError) > 1e-4 {
				t.Errorf("%v angle %v: fitted %v, expected %v", mode, angle, res.FittedRadius, res.ExpectedRadius)
			}
			// Left turns circle to the left of the start, right turns to the right.
			if math.Signbit(res.CenterY) != math.Signbit(angle) {
				t.Errorf("%v angle %v: center %v on the wrong side", mode, angle, res.CenterY)
			}
		}
	}
}

func TestMeasureRejectsStraight(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := (Run{Mode: components.Mode2D, Speed: 10, DT: 0.1}).Measure(cfg, 0); err == nil {
		t.Error("expected error for zero steering")
	}
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turncircle.csv")
	if err := writeResults(path, []Result{{Mode: "2d", SteeringAngle: 1, Samples: 3}}); err != nil {
		t.Fatalf("writeResults: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "mode,steering_angle,curvature,") {
		t.Errorf("unexpected csv:\n%s", data)
	}
}
