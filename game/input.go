package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/carlike/components"
	"github.com/pthm-cable/carlike/control"
	"github.com/pthm-cable/carlike/ui"
)

// pollDriving samples the arrow keys. Keys count while held.
func pollDriving() control.Input {
	return control.Input{
		Left:       rl.IsKeyDown(rl.KeyLeft),
		Right:      rl.IsKeyDown(rl.KeyRight),
		Accelerate: rl.IsKeyDown(rl.KeyUp),
		Decelerate: rl.IsKeyDown(rl.KeyDown),
	}
}

// handleInput processes keyboard shortcuts outside of driving.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controlsPanel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyM) {
		g.actions.ToggleMode = true
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.actions.Reset = true
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		if path, err := g.SaveSnapshot("snapshots"); err != nil {
			slog.Error("failed to save snapshot", "error", err)
		} else {
			slog.Info("snapshot saved", "path", path, "tick", g.tick)
		}
	}

	for _, key := range g.overlays.Keys() {
		if rl.IsKeyPressed(key) {
			g.overlays.HandleKeyPress(key)
		}
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth, g.screenHeight = w, h
	g.camera.Resize(w, h)
	g.grid.Resize(int32(w), int32(h))
	g.motionPanel.SetPosition(int32(w)-250, 10)
	g.perfPanel.SetPosition(int32(w)-250, 10)
}

// handleCameraInput processes planar zoom. The camera always follows the
// vehicle, so there is no panning.
func (g *Game) handleCameraInput() {
	if g.mode != components.Mode2D {
		return
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + float64(wheel)*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// applyActions carries out what the controls panel or shortcuts asked for
// since the last frame.
func (g *Game) applyActions() {
	act := g.actions
	g.actions = ui.ControlsActions{}

	if act.Reset {
		if err := g.Reset(); err != nil {
			slog.Error("failed to reset vehicle", "error", err)
		}
	}
	if act.ToggleMode {
		next := components.Mode2D
		if g.mode == components.Mode2D {
			next = components.Mode3D
		}
		if err := g.SetMode(next); err != nil {
			slog.Error("failed to change mode", "error", err)
		}
	}
	if act.Zoom > 0 && act.Zoom != g.camera.Zoom {
		g.camera.SetZoom(act.Zoom)
	}
}
