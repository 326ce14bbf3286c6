package telemetry

import (
	"math"
	"testing"
)

func TestBookmarkDetector_FullTurn(t *testing.T) {
	bd := NewBookmarkDetector(50)

	if got := bd.Check(WindowStats{HeadingChange: 4, SpeedMax: 1}); len(got) != 0 {
		t.Fatalf("unexpected bookmarks %v", got)
	}
	got := bd.Check(WindowStats{WindowEndTick: 20, HeadingChange: 3, SpeedMax: 1})
	if len(got) != 1 || got[0].Type != BookmarkFullTurn || got[0].Tick != 20 {
		t.Fatalf("expected one full turn at tick 20, got %v", got)
	}
	if got[0].Description != "Completed a full turn to the left" {
		t.Errorf("description = %q", got[0].Description)
	}

	// The remainder carries over, so turning back right must undo it first.
	if got := bd.Check(WindowStats{HeadingChange: -2 * math.Pi, SpeedMax: 1}); len(got) != 0 {
		t.Errorf("turning back should not complete a right turn yet: %v", got)
	}
}

func TestBookmarkDetector_TopSpeedRearms(t *testing.T) {
	bd := NewBookmarkDetector(50)

	fast := WindowStats{SpeedP90: 50, SpeedMax: 50}
	if got := bd.Check(fast); len(got) != 1 || got[0].Type != BookmarkTopSpeed {
		t.Fatalf("expected top speed, got %v", got)
	}
	if got := bd.Check(fast); len(got) != 0 {
		t.Errorf("holding top speed should not re-fire: %v", got)
	}
	bd.Check(WindowStats{SpeedP90: 30, SpeedMax: 30})
	if got := bd.Check(fast); len(got) != 1 {
		t.Errorf("expected re-fire after slowing down, got %v", got)
	}
}

func TestBookmarkDetector_Stopped(t *testing.T) {
	bd := NewBookmarkDetector(50)

	if got := bd.Check(WindowStats{}); len(got) != 0 {
		t.Errorf("resting from the start is not a stop: %v", got)
	}
	bd.Check(WindowStats{SpeedMax: 3})
	got := bd.Check(WindowStats{EndX: 1, EndY: 2})
	if len(got) != 1 || got[0].Type != BookmarkStopped {
		t.Fatalf("expected stopped, got %v", got)
	}
	if got := bd.Check(WindowStats{}); len(got) != 0 {
		t.Errorf("staying at rest should not re-fire: %v", got)
	}
}

func TestBookmarkDetector_DirectionDriftOnce(t *testing.T) {
	bd := NewBookmarkDetector(50)
	bad := WindowStats{MaxDirectionError: 1e-6, SpeedMax: 1}
	if got := bd.Check(bad); len(got) != 1 || got[0].Type != BookmarkDirectionDrift {
		t.Fatalf("expected drift bookmark, got %v", got)
	}
	if got := bd.Check(bad); len(got) != 0 {
		t.Errorf("drift should be reported once: %v", got)
	}
}
