package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseDrive)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseKinematics)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.MinTickDuration > stats.AvgTickDuration || stats.AvgTickDuration > stats.MaxTickDuration {
		t.Errorf("expected min <= avg <= max, got %v %v %v",
			stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
	if _, ok := stats.PhaseAvg[PhaseDrive]; !ok {
		t.Error("expected drive phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseKinematics]; !ok {
		t.Error("expected kinematics phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseWheels]; ok {
		t.Error("untimed wheels phase should be absent")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseInput)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseWheels)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseTelemetry)
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	fast, slow := stats.PhasePct[PhaseWheels], stats.PhasePct[PhaseTelemetry]
	if slow <= fast {
		t.Errorf("expected telemetry (%v%%) > wheels (%v%%)", slow, fast)
	}
	if slow > 100.0001 {
		t.Errorf("phase share above 100%%: %v", slow)
	}
}

func TestPerfCollector_UnknownPhaseCountsTowardTick(t *testing.T) {
	pc := NewPerfCollector(4)

	pc.StartTick()
	pc.StartPhase("draw")
	time.Sleep(time.Millisecond)
	pc.EndTick()

	stats := pc.Stats()
	if len(stats.PhaseAvg) != 0 {
		t.Errorf("unknown phase leaked into breakdown: %v", stats.PhaseAvg)
	}
	if stats.AvgTickDuration < time.Millisecond {
		t.Errorf("tick = %v, want >= 1ms", stats.AvgTickDuration)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()
	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with 16ms frames, got %v", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct:        map[string]float64{PhaseKinematics: 40, PhaseDrive: 10},
	}
	rec := s.ToCSV(120)
	if rec.WindowEnd != 120 || rec.AvgTickUS != 1500 {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.KinematicsPct != 40 || rec.DrivePct != 10 || rec.WheelsPct != 0 {
		t.Errorf("phase columns wrong: %+v", rec)
	}
}
