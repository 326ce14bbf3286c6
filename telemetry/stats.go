package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated motion statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Samples         int     `csv:"samples"`

	// Path
	Distance      float64 `csv:"distance"`       // Ground distance covered by the vehicle center
	HeadingChange float64 `csv:"heading_change"` // Signed, unwrapped; positive is left

	// Speed distribution
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"` // Largest |speed|

	MaxAbsCurvature float64 `csv:"max_abs_curvature"`
	MaxSteering     float64 `csv:"max_abs_steering"`

	// MaxDirectionError is the largest | |direction| - 1 | seen. The
	// integrator renormalizes every step so this stays near machine epsilon.
	MaxDirectionError float64 `csv:"max_direction_error"`

	// State at window end
	EndX       float64 `csv:"end_x"`
	EndY       float64 `csv:"end_y"`
	EndHeading float64 `csv:"end_heading"`
}

// SpeedStats calculates mean, standard deviation, percentiles and the
// largest magnitude of the speed samples.
func SpeedStats(values []float64) (mean, std, p10, p50, p90, maxAbs float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.PopStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	maxAbs = math.Max(math.Abs(floats.Min(values)), math.Abs(floats.Max(values)))
	return mean, std, p10, p50, p90, maxAbs
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("samples", s.Samples),
		slog.Float64("distance", s.Distance),
		slog.Float64("heading_change", s.HeadingChange),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("max_abs_curvature", s.MaxAbsCurvature),
		slog.Float64("max_abs_steering", s.MaxSteering),
		slog.Float64("max_direction_error", s.MaxDirectionError),
		slog.Float64("end_x", s.EndX),
		slog.Float64("end_y", s.EndY),
		slog.Float64("end_heading", s.EndHeading),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
