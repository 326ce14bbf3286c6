package systems

import "testing"

func TestRegistry_FrameOrder(t *testing.T) {
	reg := NewSystemRegistry()
	ids := reg.IDs()
	want := []string{IDInput, IDDrive, IDKinematics, IDWheels, IDTrail, IDTelemetry}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
	if reg.GetName(IDKinematics) != "Kinematics" {
		t.Errorf("name = %q", reg.GetName(IDKinematics))
	}
	if reg.GetName("missing") != "missing" {
		t.Error("unknown IDs should fall back to themselves")
	}
	if got := len(reg.ByCategory("physics")); got != 2 {
		t.Errorf("physics systems = %d, want 2", got)
	}
}
