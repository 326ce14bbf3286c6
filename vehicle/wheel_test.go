package vehicle

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTriangleStrip(t *testing.T) {
	w := Wheel{Width: 0.8, Diameter: 2}
	verts := w.TriangleStrip()

	if len(verts) != 4*(CylinderSegments+1) {
		t.Fatalf("expected %d vertices, got %d", 4*(CylinderSegments+1), len(verts))
	}
	for i, v := range verts {
		if r := math.Hypot(v.X, v.Y); !scalar.EqualWithinAbs(r, 1, 1e-12) {
			t.Errorf("vertex %d off the rim: radius %v", i, r)
		}
		if math.Abs(v.Z) != 0.4 {
			t.Errorf("vertex %d: z = %v, want ±0.4", i, v.Z)
		}
	}
	// Outward pass starts on +Z, the reversed pass on -Z.
	half := 2 * (CylinderSegments + 1)
	if verts[0].Z != 0.4 || verts[1].Z != -0.4 || verts[half].Z != -0.4 || verts[half+1].Z != 0.4 {
		t.Errorf("unexpected strip ordering: %v %v %v %v", verts[0], verts[1], verts[half], verts[half+1])
	}
	// The ring closes.
	last := verts[half-1]
	if !scalar.EqualWithinAbs(last.X, verts[1].X, 1e-12) || !scalar.EqualWithinAbs(last.Y, verts[1].Y, 1e-12) {
		t.Errorf("ring not closed: first %v last %v", verts[1], last)
	}
}

func TestPlacedStrip(t *testing.T) {
	w := Wheel{Width: 1, Diameter: 2, Offset: r3.Vec{X: 5, Z: -3}}
	base := w.TriangleStrip()

	for i, v := range w.PlacedStrip(0) {
		want := r3.Add(base[i], w.Offset)
		if r3.Norm(r3.Sub(v, want)) > 1e-12 {
			t.Fatalf("vertex %d: %v, want %v", i, v, want)
		}
	}

	// A quarter turn swings the axle from Z onto X.
	steered := w.PlacedStrip(math.Pi / 2)
	for i, v := range steered {
		local := r3.Sub(v, w.Offset)
		if !scalar.EqualWithinAbs(math.Abs(local.X), 0.5, 1e-12) {
			t.Fatalf("vertex %d: axle not along X after steering: %v", i, local)
		}
	}
}

func TestOutline(t *testing.T) {
	w := Wheel{Width: 0.8, Diameter: 2, Offset: r3.Vec{X: 5, Z: 3}}
	segs := w.Outline(0.3)

	var center r2.Vec
	for i, s := range segs {
		if segs[(i+1)%4].Start != s.End {
			t.Errorf("segment %d does not connect to the next", i)
		}
		center = r2.Add(center, r2.Scale(0.25, s.Start))
	}
	// Planar frame puts +Z on the right, i.e. negative y.
	if !scalar.EqualWithinAbs(center.X, 5, 1e-12) || !scalar.EqualWithinAbs(center.Y, -3, 1e-12) {
		t.Errorf("outline centered at %v, want (5, -3)", center)
	}

	long := r2.Sub(segs[0].End, segs[0].Start)
	short := r2.Sub(segs[1].End, segs[1].Start)
	if !scalar.EqualWithinAbs(r2.Norm(long), 2, 1e-12) || !scalar.EqualWithinAbs(r2.Norm(short), 0.8, 1e-12) {
		t.Errorf("side lengths %v and %v, want 2 and 0.8", r2.Norm(long), r2.Norm(short))
	}
	// The long side runs along the steered heading.
	if a := math.Atan2(-long.Y, -long.X); !scalar.EqualWithinAbs(a, 0.3, 1e-12) {
		t.Errorf("outline rotated by %v, want 0.3", a)
	}
}
