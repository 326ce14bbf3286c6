package vehicle

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func newTestPlanar(t *testing.T, speed, curvature float64) *Planar {
	t.Helper()
	v, err := NewPlanar(PlanarParams{
		Direction:   r2.Vec{X: 1},
		Speed:       speed,
		Curvature:   curvature,
		PivotOffset: r2.Vec{X: -5},
		Wheels:      sixWheels(),
	})
	if err != nil {
		t.Fatalf("NewPlanar: %v", err)
	}
	return v
}

func TestNewPlanarRejectsBadParams(t *testing.T) {
	tests := []PlanarParams{
		{Position: r2.Vec{X: math.NaN()}},
		{Speed: math.Inf(-1)},
		{Direction: r2.Vec{Y: math.Inf(1)}},
		{Wheels: []Wheel{{Width: 1}}},
	}
	for i, p := range tests {
		if _, err := NewPlanar(p); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("case %d: expected ErrInvalidParams, got %v", i, err)
		}
	}
}

func TestPlanarStraightLine(t *testing.T) {
	v := newTestPlanar(t, 3, 0)
	v.Direction = r2.Vec{X: 0.6, Y: 0.8}
	v.Update(0.5)

	if !scalar.EqualWithinAbs(v.Position.X, 0.9, tol) || !scalar.EqualWithinAbs(v.Position.Y, 1.2, tol) {
		t.Errorf("position = %v, want (0.9, 1.2)", v.Position)
	}
	if v.Direction != (r2.Vec{X: 0.6, Y: 0.8}) {
		t.Errorf("direction changed to %v", v.Direction)
	}
}

func TestPlanarUnitDirectionAndZeroSpeed(t *testing.T) {
	v := newTestPlanar(t, 0, 0.3)
	pos := v.Position
	v.Update(1.0 / 32)
	if v.Position != pos {
		t.Errorf("stationary vehicle moved to %v", v.Position)
	}

	for i := 0; i < 10000; i++ {
		v.Speed = -10 + float64(i%60)
		v.Curvature = 0.2 * math.Sin(float64(i)*0.01)
		v.Update(1.0 / 32)
		if n := r2.Norm(v.Direction); !scalar.EqualWithinAbs(n, 1, 1e-12) {
			t.Fatalf("step %d: |direction| = %v", i, n)
		}
	}
}

// The plane maps (x, y) to (X, -Z), so both variants must trace the same path.
func TestPlanarMatchesVehicle(t *testing.T) {
	flat := newTestPlanar(t, 0, 0)
	solid := newTestVehicle(t, 0, 0)
	solid.Position = r3.Vec{}

	for i := 0; i < 2000; i++ {
		speed := 30 * math.Cos(float64(i)*0.004)
		curvature := 0.08 * math.Sin(float64(i)*0.011)
		flat.Speed, solid.Speed = speed, speed
		flat.Curvature, solid.Curvature = curvature, curvature
		flat.Update(1.0 / 32)
		solid.Update(1.0 / 32)

		if !scalar.EqualWithinAbs(flat.Position.X, solid.Position.X, 1e-9) ||
			!scalar.EqualWithinAbs(flat.Position.Y, -solid.Position.Z, 1e-9) {
			t.Fatalf("step %d: planar %v, 3D %v", i, flat.Position, solid.Position)
		}
		if d := signedTurn(flat.Heading(), solid.Heading()); math.Abs(d) > 1e-9 {
			t.Fatalf("step %d: headings differ by %v", i, d)
		}
	}

	flat.Curvature, solid.Curvature = 0.07, 0.07
	fa := flat.WheelAngles(nil)
	sa := solid.WheelAngles(nil)
	for i := range fa {
		if !scalar.EqualWithinAbs(fa[i], sa[i], 1e-12) {
			t.Errorf("wheel %d: planar angle %v, 3D angle %v", i, fa[i], sa[i])
		}
	}
}

func TestPlanarTurnCenter(t *testing.T) {
	v := newTestPlanar(t, 4, 0.1)
	if _, ok := newTestPlanar(t, 4, 0).TurnCenter(); ok {
		t.Error("straight vehicle should have no turn center")
	}
	center, ok := v.TurnCenter()
	if !ok {
		t.Fatal("expected a turn center")
	}
	// Pivot at (-5, 0), radius 10 to the left.
	if !scalar.EqualWithinAbs(center.X, -5, tol) || !scalar.EqualWithinAbs(center.Y, 10, tol) {
		t.Errorf("center = %v, want (-5, 10)", center)
	}
	for i, a := range newTestPlanar(t, 4, 0).WheelAngles(nil) {
		if a != 0 {
			t.Errorf("wheel %d: straight angle %v", i, a)
		}
	}
}
