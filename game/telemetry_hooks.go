package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carlike/components"
	"github.com/pthm-cable/carlike/telemetry"
)

// sample reads the vehicle state for the stats collector.
func (g *Game) sample() telemetry.Sample {
	drv := g.driverMap.Get(g.entity)
	s := telemetry.Sample{SteeringAngle: drv.SteeringAngle}
	if g.mode == components.Mode2D {
		v := g.planarMap.Get(g.entity)
		s.Ground = v.Position
		s.Heading = v.Heading()
		s.Speed = v.Speed
		s.Curvature = v.Curvature
		s.DirectionNorm = r2.Norm(v.Direction)
		return s
	}
	v := g.bodyMap.Get(g.entity)
	s.Ground = r2.Vec{X: v.Position.X, Y: -v.Position.Z}
	s.Heading = v.Heading()
	s.Speed = v.Speed
	s.Curvature = v.Curvature
	s.DirectionNorm = r3.Norm(v.Direction)
	return s
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush() {
		return
	}
	g.writeStats(g.collector.Flush(g.tick))
}

// writeStats logs and stores a finished window, then acts on its bookmarks.
func (g *Game) writeStats(stats telemetry.WindowStats) {
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		g.saveSnapshot(&bm)
	}
}

// saveSnapshot writes the current state into the output directory, if any.
func (g *Game) saveSnapshot(bm *telemetry.Bookmark) {
	path, err := g.outputManager.WriteSnapshot(g.snapshot(bm))
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	if path != "" {
		slog.Info("snapshot saved", "path", path, "tick", g.tick)
	}
}

// SaveSnapshot writes the current state into dir and returns the file path.
func (g *Game) SaveSnapshot(dir string) (string, error) {
	return telemetry.SaveSnapshot(g.snapshot(nil), dir)
}
