package components

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTrail_KeepsNewestPoints(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Push(r2.Vec{X: float64(i)})
	}
	if tr.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", tr.Len())
	}
	for i, want := range []float64{3, 4, 5} {
		if got := tr.At(i).X; got != want {
			t.Errorf("point %d = %v, want %v", i, got, want)
		}
	}

	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("reset trail has %d points", tr.Len())
	}
	tr.Push(r2.Vec{Y: 7})
	if tr.At(0).Y != 7 {
		t.Errorf("first point after reset = %v", tr.At(0))
	}
}

func TestTrail_ZeroCapacity(t *testing.T) {
	var tr Trail
	tr.Push(r2.Vec{X: 1})
	if tr.Len() != 0 {
		t.Errorf("zero-capacity trail recorded %d points", tr.Len())
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Mode3D, Mode2D} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("4d"); ok {
		t.Error("ParseMode accepted 4d")
	}
}
