package telemetry

import (
	"fmt"
	"log/slog"
	"math"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFullTurn       BookmarkType = "full_turn"
	BookmarkTopSpeed       BookmarkType = "top_speed"
	BookmarkStopped        BookmarkType = "stopped"
	BookmarkDirectionDrift BookmarkType = "direction_drift"
)

// directionDriftLimit is the largest | |direction| - 1 | that is still
// rounding noise.
const directionDriftLimit = 1e-9

// Bookmark marks a notable moment of a run.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	SimTimeSec  float64      `csv:"sim_time"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"sim_time", b.SimTimeSec,
		"description", b.Description,
	)
}

// BookmarkDetector watches window stats for notable driving events.
type BookmarkDetector struct {
	maxSpeed float64

	// State tracking
	turned      float64 // Heading change since the last full-turn bookmark
	atTopSpeed  bool
	wasMoving   bool
	driftMarked bool
}

// NewBookmarkDetector creates a detector for a vehicle with the given
// forward speed cap.
func NewBookmarkDetector(maxSpeed float64) *BookmarkDetector {
	return &BookmarkDetector{maxSpeed: maxSpeed}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark
	for _, check := range []func(WindowStats) *Bookmark{
		bd.checkFullTurn,
		bd.checkTopSpeed,
		bd.checkStopped,
		bd.checkDirectionDrift,
	} {
		if b := check(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}
	return bookmarks
}

func (bd *BookmarkDetector) mark(t BookmarkType, stats WindowStats, format string, args ...any) *Bookmark {
	return &Bookmark{
		Type:        t,
		Tick:        stats.WindowEndTick,
		SimTimeSec:  stats.SimTimeSec,
		Description: fmt.Sprintf(format, args...),
	}
}

// checkFullTurn fires each time the accumulated heading change completes
// a revolution in either direction.
func (bd *BookmarkDetector) checkFullTurn(stats WindowStats) *Bookmark {
	bd.turned += stats.HeadingChange
	if math.Abs(bd.turned) < 2*math.Pi {
		return nil
	}
	side := "left"
	if bd.turned < 0 {
		side = "right"
	}
	bd.turned -= math.Copysign(2*math.Pi, bd.turned)
	return bd.mark(BookmarkFullTurn, stats, "Completed a full turn to the %s", side)
}

// checkTopSpeed fires when the speed cap is reached, and re-arms once the
// vehicle drops back below it.
func (bd *BookmarkDetector) checkTopSpeed(stats WindowStats) *Bookmark {
	reached := bd.maxSpeed > 0 && stats.SpeedP90 >= bd.maxSpeed
	defer func() { bd.atTopSpeed = reached }()
	if !reached || bd.atTopSpeed {
		return nil
	}
	return bd.mark(BookmarkTopSpeed, stats, "Reached top speed %.1f", bd.maxSpeed)
}

// checkStopped fires on the first window spent at rest after moving.
func (bd *BookmarkDetector) checkStopped(stats WindowStats) *Bookmark {
	moving := stats.SpeedMax > 0
	defer func() { bd.wasMoving = moving }()
	if moving || !bd.wasMoving {
		return nil
	}
	return bd.mark(BookmarkStopped, stats, "Came to rest at (%.1f, %.1f)", stats.EndX, stats.EndY)
}

// checkDirectionDrift fires once if the heading vector ever stops being unit length.
func (bd *BookmarkDetector) checkDirectionDrift(stats WindowStats) *Bookmark {
	if bd.driftMarked || stats.MaxDirectionError <= directionDriftLimit {
		return nil
	}
	bd.driftMarked = true
	return bd.mark(BookmarkDirectionDrift, stats, "Direction norm off by %.3g", stats.MaxDirectionError)
}
