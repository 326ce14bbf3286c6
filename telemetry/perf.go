package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Phase names for one frame, in execution order.
const (
	PhaseInput      = "input"
	PhaseDrive      = "drive"
	PhaseKinematics = "kinematics"
	PhaseWheels     = "wheels"
	PhaseTrail      = "trail"
	PhaseTelemetry  = "telemetry"
)

// Phases lists every frame phase in execution order.
var Phases = []string{PhaseInput, PhaseDrive, PhaseKinematics, PhaseWheels, PhaseTrail, PhaseTelemetry}

func phaseIndex(name string) int {
	for i, p := range Phases {
		if p == name {
			return i
		}
	}
	return -1
}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       []time.Duration // Indexed like Phases
}

// PerfCollector tracks performance metrics over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	current    []time.Duration
	tickStart  time.Time
	phaseStart time.Time
	lastPhase  int

	// Frame timing (for graphics mode)
	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of ticks to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	samples := make([]PerfSample, windowSize)
	for i := range samples {
		samples[i].Phases = make([]time.Duration, len(Phases))
	}
	return &PerfCollector{
		windowSize: windowSize,
		samples:    samples,
		current:    make([]time.Duration, len(Phases)),
		lastPhase:  -1,
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	clear(p.current)
	p.lastPhase = -1
}

// StartPhase ends the running phase, if any, and starts timing phase.
// Unknown phase names are timed as part of the tick only.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.endPhase(now)
	p.phaseStart = now
	p.lastPhase = phaseIndex(phase)
}

func (p *PerfCollector) endPhase(now time.Time) {
	if p.lastPhase >= 0 {
		p.current[p.lastPhase] += now.Sub(p.phaseStart)
	}
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.endPhase(now)
	p.lastPhase = -1

	s := &p.samples[p.writeIndex]
	s.TickDuration = now.Sub(p.tickStart)
	copy(s.Phases, p.current)

	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	// Tick timing
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of total tick time
	PhasePct map[string]float64

	// Throughput
	TicksPerSecond float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg:      make(map[string]time.Duration, len(Phases)),
		PhasePct:      make(map[string]float64, len(Phases)),
		FrameDuration: p.frameDuration,
	}
	if p.frameDuration > 0 {
		stats.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.sampleCount == 0 {
		return stats
	}

	ticks := make([]float64, p.sampleCount)
	phaseSum := make([]float64, len(Phases))
	for i, s := range p.samples[:p.sampleCount] {
		ticks[i] = float64(s.TickDuration)
		for j, d := range s.Phases {
			phaseSum[j] += float64(d)
		}
	}

	n := float64(p.sampleCount)
	avgTick := floats.Sum(ticks) / n
	stats.AvgTickDuration = time.Duration(avgTick)
	stats.MinTickDuration = time.Duration(floats.Min(ticks))
	stats.MaxTickDuration = time.Duration(floats.Max(ticks))

	floats.Scale(1/n, phaseSum)
	for j, name := range Phases {
		if phaseSum[j] == 0 {
			continue
		}
		stats.PhaseAvg[name] = time.Duration(phaseSum[j])
		if avgTick > 0 {
			stats.PhasePct[name] = phaseSum[j] / avgTick * 100
		}
	}

	if avgTick > 0 {
		stats.TicksPerSecond = float64(time.Second) / avgTick
	}
	return stats
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd     int32   `csv:"window_end"`
	AvgTickUS     int64   `csv:"avg_tick_us"`
	MinTickUS     int64   `csv:"min_tick_us"`
	MaxTickUS     int64   `csv:"max_tick_us"`
	TicksPerSec   float64 `csv:"ticks_per_sec"`
	FPS           float64 `csv:"fps"`
	InputPct      float64 `csv:"input_pct"`
	DrivePct      float64 `csv:"drive_pct"`
	KinematicsPct float64 `csv:"kinematics_pct"`
	WheelsPct     float64 `csv:"wheels_pct"`
	TrailPct      float64 `csv:"trail_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:     windowEnd,
		AvgTickUS:     s.AvgTickDuration.Microseconds(),
		MinTickUS:     s.MinTickDuration.Microseconds(),
		MaxTickUS:     s.MaxTickDuration.Microseconds(),
		TicksPerSec:   s.TicksPerSecond,
		FPS:           s.FPS,
		InputPct:      s.PhasePct[PhaseInput],
		DrivePct:      s.PhasePct[PhaseDrive],
		KinematicsPct: s.PhasePct[PhaseKinematics],
		WheelsPct:     s.PhasePct[PhaseWheels],
		TrailPct:      s.PhasePct[PhaseTrail],
		TelemetryPct:  s.PhasePct[PhaseTelemetry],
	}
}
