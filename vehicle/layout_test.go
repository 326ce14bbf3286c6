package vehicle

import "testing"

func TestLayoutWheels(t *testing.T) {
	l := Layout{Wheelbase: 10, Track: 6, WheelWidth: 0.8, WheelDiameter: 2, Middle: true}
	ws := l.Wheels()
	if len(ws) != 6 {
		t.Fatalf("expected 6 wheels, got %d", len(ws))
	}

	want := []struct{ x, z float64 }{
		{-5, -3}, {-5, 3},
		{0, -3.4}, {0, 3.4},
		{5, -3}, {5, 3},
	}
	for i, w := range want {
		got := ws[i].Offset
		if got.X != w.x || got.Y != 0 || got.Z != w.z {
			t.Errorf("wheel %d offset = %v, want (%v, 0, %v)", i, got, w.x, w.z)
		}
		if ws[i].Width != 0.8 || ws[i].Diameter != 2 {
			t.Errorf("wheel %d size = %v x %v", i, ws[i].Width, ws[i].Diameter)
		}
	}

	l.Middle = false
	if n := len(l.Wheels()); n != 4 {
		t.Errorf("without middle wheels expected 4, got %d", n)
	}
}
