package telemetry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sample is the vehicle state observed at the end of one frame.
type Sample struct {
	Ground        r2.Vec // Center on the ground plane, (forward, left)
	Heading       float64
	Speed         float64
	SteeringAngle float64
	Curvature     float64
	DirectionNorm float64
}

// Collector accumulates frame samples within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec float64
	worldSize         float64 // Wrap period of Ground; 0 for an unbounded plane

	// Current window tracking
	windowStartTick int32
	windowElapsed   float64
	simTime         float64

	speeds          []float64
	distance        float64
	headingChange   float64
	maxAbsCurvature float64
	maxSteering     float64
	maxDirErr       float64

	last    Sample
	hasLast bool
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// worldSize: side of the wrapped world, so distance ignores wrap jumps
func NewCollector(windowDurationSec, worldSize float64) *Collector {
	return &Collector{
		windowDurationSec: windowDurationSec,
		worldSize:         worldSize,
	}
}

// Record adds the sample for a frame that advanced simulated time by dt.
func (c *Collector) Record(s Sample, dt float64) {
	c.windowElapsed += dt
	c.simTime += dt

	c.speeds = append(c.speeds, s.Speed)
	c.maxAbsCurvature = math.Max(c.maxAbsCurvature, math.Abs(s.Curvature))
	c.maxSteering = math.Max(c.maxSteering, math.Abs(s.SteeringAngle))
	c.maxDirErr = math.Max(c.maxDirErr, math.Abs(s.DirectionNorm-1))

	if c.hasLast {
		d := r2.Vec{
			X: wrappedDelta(s.Ground.X, c.last.Ground.X, c.worldSize),
			Y: wrappedDelta(s.Ground.Y, c.last.Ground.Y, c.worldSize),
		}
		c.distance += r2.Norm(d)
		c.headingChange += wrappedDelta(s.Heading, c.last.Heading, 2*math.Pi)
	}
	c.last = s
	c.hasLast = true
}

// ShouldFlush returns true once the current window spans its duration.
func (c *Collector) ShouldFlush() bool {
	return c.windowDurationSec > 0 && c.windowElapsed >= c.windowDurationSec
}

// Flush produces a WindowStats and resets counters for the next window.
// The last sample carries over so distance stays continuous.
func (c *Collector) Flush(currentTick int32) WindowStats {
	mean, std, p10, p50, p90, maxAbs := SpeedStats(c.speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      c.simTime,
		Samples:         len(c.speeds),

		Distance:      c.distance,
		HeadingChange: c.headingChange,

		SpeedMean: mean,
		SpeedStd:  std,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,
		SpeedMax:  maxAbs,

		MaxAbsCurvature:   c.maxAbsCurvature,
		MaxSteering:       c.maxSteering,
		MaxDirectionError: c.maxDirErr,

		EndX:       c.last.Ground.X,
		EndY:       c.last.Ground.Y,
		EndHeading: c.last.Heading,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.windowElapsed = 0
	c.speeds = c.speeds[:0]
	c.distance = 0
	c.headingChange = 0
	c.maxAbsCurvature = 0
	c.maxSteering = 0
	c.maxDirErr = 0

	return stats
}

// SimTime returns the total simulated time recorded.
func (c *Collector) SimTime() float64 {
	return c.simTime
}

// wrappedDelta returns to-from folded into [-period/2, period/2].
// A non-positive period disables folding.
func wrappedDelta(to, from, period float64) float64 {
	d := to - from
	if period <= 0 {
		return d
	}
	if d > period/2 {
		d -= period
	} else if d < -period/2 {
		d += period
	}
	return d
}
