package ui

import (
	"math"
	"slices"
	"testing"
)

// ---------- HUD text ----------

func TestSpeedText(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0, "Speed: 0"},
		{12.3456, "Speed: 12.3456"},
		{-4.5, "Speed: -4.5"},
	}
	for _, tt := range tests {
		if got := SpeedText(tt.speed); got != tt.want {
			t.Errorf("SpeedText(%v) = %q, want %q", tt.speed, got, tt.want)
		}
	}
}

func TestSteeringText(t *testing.T) {
	tests := []struct {
		angle float64
		want  string
	}{
		{0, "Steering Angle: 0"},
		{math.Pi / 4, "Steering Angle: 45"},
		{math.Pi, "Steering Angle: 180"},
		{0.1, "Steering Angle: 5.72"},   // 5.7295...
		{-0.1, "Steering Angle: -5.73"}, // floored, not truncated
	}
	for _, tt := range tests {
		if got := SteeringText(tt.angle); got != tt.want {
			t.Errorf("SteeringText(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestRadiusText(t *testing.T) {
	if got := radiusText(math.Inf(1)); got != "straight" {
		t.Errorf("radiusText(+Inf) = %q", got)
	}
	if got := radiusText(101.93); got != "101.9" {
		t.Errorf("radiusText(101.93) = %q", got)
	}
}

// ---------- overlays ----------

func TestOverlayDefaults(t *testing.T) {
	reg := NewOverlayRegistry()
	if !reg.IsEnabled(OverlayAxes) {
		t.Error("axes should be on by default")
	}
	if reg.IsEnabled(OverlayTurnCenter) || reg.IsEnabled(OverlayTrail) {
		t.Error("debug overlays should start disabled")
	}
	if got := reg.EnabledOverlays(); !slices.Equal(got, []OverlayID{OverlayAxes}) {
		t.Errorf("enabled = %v", got)
	}
	if got := reg.Categories(); !slices.Equal(got, []string{"scene", "debug"}) {
		t.Errorf("categories = %v", got)
	}
}

func TestOverlayToggleExclusive(t *testing.T) {
	reg := NewOverlayRegistry()
	if !reg.Toggle(OverlayPerf) {
		t.Fatal("perf should turn on")
	}
	if !reg.Toggle(OverlayWheelAngles) {
		t.Fatal("wheel angles should turn on")
	}
	if reg.IsEnabled(OverlayPerf) {
		t.Error("wheel angles should disable perf")
	}
	if reg.Toggle(OverlayWheelAngles) {
		t.Error("second toggle should turn off")
	}
	if reg.Toggle("missing") {
		t.Error("unknown overlay should report off")
	}
}

func TestOverlayHandleKeyPress(t *testing.T) {
	reg := NewOverlayRegistry()
	desc := reg.ByCategory("debug")[0]

	id, on, ok := reg.HandleKeyPress(desc.Key)
	if !ok || id != desc.ID || !on {
		t.Errorf("HandleKeyPress(%d) = %v, %v, %v", desc.Key, id, on, ok)
	}
	if _, _, ok := reg.HandleKeyPress(-1); ok {
		t.Error("unbound key should not toggle")
	}
	if len(reg.Keys()) != len(reg.All()) {
		t.Errorf("keys = %d, overlays = %d", len(reg.Keys()), len(reg.All()))
	}
}

func TestToggleLabel(t *testing.T) {
	desc := OverlayDescriptor{Name: "Trail", KeyLabel: "T"}
	if got := toggleLabel(desc, true); got != "[x] Trail (T)" {
		t.Errorf("toggleLabel = %q", got)
	}
	desc.KeyLabel = ""
	if got := toggleLabel(desc, false); got != "[ ] Trail" {
		t.Errorf("toggleLabel = %q", got)
	}
}
