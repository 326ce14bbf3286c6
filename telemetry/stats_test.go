package telemetry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSpeedStats(t *testing.T) {
	tests := []struct {
		name                          string
		values                        []float64
		mean, std, p10, p50, p90, max float64
	}{
		{"empty", nil, 0, 0, 0, 0, 0, 0},
		{"single", []float64{5}, 5, 0, 5, 5, 5, 5},
		{"ramp", []float64{1, 2, 3, 4, 5}, 3, math.Sqrt(2), 1, 3, 5, 5},
		{"reverse dominates max", []float64{-8, 2, 3}, -1, math.Sqrt(74.0 / 3), -8, 2, 3, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, p10, p50, p90, maxAbs := SpeedStats(tt.values)
			got := []float64{mean, std, p10, p50, p90, maxAbs}
			want := []float64{tt.mean, tt.std, tt.p10, tt.p50, tt.p90, tt.max}
			if !floats.EqualApprox(got, want, 1e-9) {
				t.Errorf("SpeedStats(%v) = %v, want %v", tt.values, got, want)
			}
		})
	}
}

func TestCollector_StraightLine(t *testing.T) {
	const dt = 0.5
	c := NewCollector(2, 0)

	// 4 samples at speed 2 cover 2 * 0.5 * 3 = 3 units between them.
	for i := 0; i < 4; i++ {
		c.Record(Sample{Ground: r2.Vec{X: float64(i)}, Speed: 2, DirectionNorm: 1}, dt)
	}
	if !c.ShouldFlush() {
		t.Fatal("window of 2s should be full after 4 half-second frames")
	}

	s := c.Flush(4)
	if s.Samples != 4 || s.WindowStartTick != 0 || s.WindowEndTick != 4 {
		t.Errorf("window bookkeeping wrong: %+v", s)
	}
	if math.Abs(s.Distance-3) > 1e-12 {
		t.Errorf("distance = %v, want 3", s.Distance)
	}
	if s.SpeedMean != 2 || s.SpeedStd != 0 || s.SpeedMax != 2 {
		t.Errorf("speed stats = %v/%v/%v", s.SpeedMean, s.SpeedStd, s.SpeedMax)
	}
	if s.HeadingChange != 0 || s.MaxAbsCurvature != 0 || s.MaxDirectionError != 0 {
		t.Errorf("straight line should not turn: %+v", s)
	}
	if s.EndX != 3 || s.SimTimeSec != 2 {
		t.Errorf("end x = %v, sim time = %v", s.EndX, s.SimTimeSec)
	}

	if c.ShouldFlush() {
		t.Error("flush should start a new window")
	}
	// Distance continues from the last sample of the previous window.
	c.Record(Sample{Ground: r2.Vec{X: 4}, DirectionNorm: 1}, dt)
	if s := c.Flush(5); math.Abs(s.Distance-1) > 1e-12 || s.WindowStartTick != 4 {
		t.Errorf("second window: distance %v start %d", s.Distance, s.WindowStartTick)
	}
}

func TestCollector_WrapAndHeading(t *testing.T) {
	c := NewCollector(10, 100)

	// Crossing the world seam from 49.5 to -49.5 is one unit, not 99.
	c.Record(Sample{Ground: r2.Vec{X: 49.5}, Heading: 2*math.Pi - 0.1, DirectionNorm: 1}, 0.1)
	c.Record(Sample{Ground: r2.Vec{X: -49.5}, Heading: 0.1, Curvature: -0.2, SteeringAngle: 3, DirectionNorm: 1 + 1e-15}, 0.1)

	s := c.Flush(2)
	if math.Abs(s.Distance-1) > 1e-9 {
		t.Errorf("distance across seam = %v, want 1", s.Distance)
	}
	if math.Abs(s.HeadingChange-0.2) > 1e-12 {
		t.Errorf("heading change across 2pi = %v, want 0.2", s.HeadingChange)
	}
	if s.MaxAbsCurvature != 0.2 || s.MaxSteering != 3 {
		t.Errorf("max |curvature| %v, max |steering| %v", s.MaxAbsCurvature, s.MaxSteering)
	}
	if s.MaxDirectionError <= 0 || s.MaxDirectionError > 1e-14 {
		t.Errorf("direction error = %v", s.MaxDirectionError)
	}
}

func TestCollector_ZeroWindowNeverFlushes(t *testing.T) {
	c := NewCollector(0, 0)
	c.Record(Sample{DirectionNorm: 1}, 100)
	if c.ShouldFlush() {
		t.Error("a zero-length window disables flushing")
	}
	if c.SimTime() != 100 {
		t.Errorf("sim time = %v", c.SimTime())
	}
}
