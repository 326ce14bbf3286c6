package renderer

import (
	"math"
	"testing"
)

func TestGridLines(t *testing.T) {
	tests := []struct {
		name          string
		lo, hi, space float64
		want          []float64
	}{
		{"centered", -3, 3, 2, []float64{-2, 0, 2}},
		{"inclusive bounds", -4, 4, 2, []float64{-4, -2, 0, 2, 4}},
		{"between lines", 0.5, 1.5, 2, nil},
		{"empty range", 1, -1, 2, nil},
		{"bad spacing", -1, 1, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridLines(tt.lo, tt.hi, tt.space)
			if len(got) != len(tt.want) {
				t.Fatalf("GridLines = %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("GridLines = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestVisibleSpacing(t *testing.T) {
	if got := VisibleSpacing(2, 8); got != 2 {
		t.Errorf("zoomed in: spacing = %v, want 2", got)
	}
	// 2 units at 0.5 px/unit is 1 px; 20 is 10 px.
	if got := VisibleSpacing(2, 0.5); got != 20 {
		t.Errorf("zoomed out: spacing = %v, want 20", got)
	}
	if got := VisibleSpacing(2, 0); got != 2 {
		t.Errorf("zero zoom: spacing = %v, want unchanged 2", got)
	}
}
