package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carlike/components"
	"github.com/pthm-cable/carlike/ui"
	"github.com/pthm-cable/carlike/vehicle"
)

var (
	wheelColor  = rl.DarkGray
	trailColor  = rl.Color{R: 230, G: 120, B: 40, A: 200}
	centerColor = rl.Color{R: 130, G: 60, B: 200, A: 255}
)

// Draw renders the game state.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)

	if g.mode == components.Mode2D {
		g.draw2D()
	} else {
		g.draw3D()
	}
	g.drawUI()

	rl.EndDrawing()
}

// draw3D renders the chase view of the ground grid and the wheels.
func (g *Game) draw3D() {
	body := g.bodyMap.Get(g.entity)
	steer := g.steerMap.Get(g.entity)

	g.chase.Follow(body.Position, body.Heading())
	cam := rl.Camera3D{
		Position:   vec3(g.chase.Eye),
		Target:     vec3(g.chase.Target),
		Up:         vec3(vehicle.Up),
		Fovy:       float32(g.cfg.Camera.Fovy),
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(cam)
	rl.DrawGrid(int32(g.cfg.Grid.Resolution), float32(g.cfg.Grid.Spacing))

	for i, w := range body.Wheels {
		lift := r3.Vec{Y: w.Diameter / 2}
		strip := w.PlacedStrip(steer.Angles[i])
		points := make([]rl.Vector3, len(strip))
		for j, p := range strip {
			points[j] = vec3(body.ToWorld(r3.Add(p, lift)))
		}
		rl.DrawTriangleStrip3D(points, wheelColor)
	}

	if g.overlays.IsEnabled(ui.OverlayTurnCenter) {
		if c, ok := body.TurnCenter(); ok {
			rl.DrawSphere(vec3(c), 0.3, centerColor)
			rl.DrawCircle3D(vec3(c), float32(math.Abs(body.TurnRadius())), rl.Vector3{X: 1}, 90, centerColor)
		}
	}
	if g.overlays.IsEnabled(ui.OverlayTrail) {
		g.forTrailSegments(func(a, b r2.Vec) {
			rl.DrawLine3D(
				rl.Vector3{X: float32(a.X), Y: 0.05, Z: float32(-a.Y)},
				rl.Vector3{X: float32(b.X), Y: 0.05, Z: float32(-b.Y)},
				trailColor,
			)
		})
	}
	if g.overlays.IsEnabled(ui.OverlayAxes) {
		origin := rl.Vector3{}
		rl.DrawLine3D(origin, vec3(vehicle.Up), rl.Red)
		rl.DrawLine3D(origin, vec3(vehicle.Forward), rl.Green)
		rl.DrawLine3D(origin, rl.Vector3{Z: 1}, rl.Blue)
	}

	rl.EndMode3D()
}

// draw2D renders the top-down view with wheel outlines.
func (g *Game) draw2D() {
	body := g.planarMap.Get(g.entity)
	steer := g.steerMap.Get(g.entity)
	g.camera.Follow(body.Position)

	g.grid.Draw(g.camera)

	if g.overlays.IsEnabled(ui.OverlayTrail) {
		g.forTrailSegments(func(a, b r2.Vec) {
			rl.DrawLineV(g.toScreen(a), g.toScreen(b), trailColor)
		})
	}

	half := g.cfg.Vehicle.Wheelbase / 2
	rl.DrawLineV(
		g.toScreen(body.ToWorld(r2.Vec{X: -half})),
		g.toScreen(body.ToWorld(r2.Vec{X: half})),
		rl.Black,
	)
	for i, w := range body.Wheels {
		for _, seg := range w.Outline(steer.Angles[i]) {
			rl.DrawLineV(g.toScreen(body.ToWorld(seg.Start)), g.toScreen(body.ToWorld(seg.End)), wheelColor)
		}
	}

	if g.overlays.IsEnabled(ui.OverlayTurnCenter) {
		if c, ok := body.TurnCenter(); ok {
			sc := g.toScreen(c)
			rl.DrawCircleV(sc, 3, centerColor)
			rl.DrawCircleLines(int32(sc.X), int32(sc.Y), float32(math.Abs(body.TurnRadius())*g.camera.Zoom), centerColor)
		}
	}
	if g.overlays.IsEnabled(ui.OverlayAxes) {
		o := g.toScreen(r2.Vec{})
		rl.DrawLineV(o, g.toScreen(r2.Vec{X: 1}), rl.Green)
		rl.DrawLineV(o, g.toScreen(r2.Vec{Y: -1}), rl.Blue)
	}
}

// forTrailSegments calls fn for each consecutive pair of trail points,
// skipping the jumps where the vehicle wrapped around the world.
func (g *Game) forTrailSegments(fn func(a, b r2.Vec)) {
	trail := g.trailMap.Get(g.entity)
	limit := g.cfg.Derived.GridSize / 2
	for i := 1; i < trail.Len(); i++ {
		a, b := trail.At(i-1), trail.At(i)
		if r2.Norm(r2.Sub(b, a)) > limit {
			continue
		}
		fn(a, b)
	}
}

// drawUI draws the HUD and panels on top of the scene.
func (g *Game) drawUI() {
	drv := g.driverMap.Get(g.entity)
	steer := g.steerMap.Get(g.entity)

	g.hud.Draw(ui.HUDData{
		Speed:         drv.Speed,
		SteeringAngle: drv.SteeringAngle,
		ScreenHeight:  int32(g.screenHeight),
	})

	if g.overlays.IsEnabled(ui.OverlayWheelAngles) {
		tu := drv.Tuning()
		p := g.pose()
		g.motionPanel.Draw(ui.MotionPanelData{
			Curvature:     drv.Curvature(),
			MaxCurvature:  1 / tu.Wheelbase,
			TurnRadius:    vehicle.RadiusOf(drv.Curvature()),
			Heading:       p.heading,
			WheelAngles:   steer.Angles,
			SteeringAngle: drv.SteeringAngle,
			MaxSteering:   tu.MaxSteeringAngle,
		})
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		stats := g.perfCollector.Stats()
		g.perfPanel.Draw(ui.PerfPanelData{
			PhaseTimes: stats.PhaseAvg,
			Total:      stats.AvgTickDuration,
			FPS:        stats.FPS,
			Registry:   g.systemRegistry,
		})
	}

	act := g.controlsPanel.Draw(g.overlays, g.mode.String())
	g.actions.Reset = g.actions.Reset || act.Reset
	g.actions.ToggleMode = g.actions.ToggleMode || act.ToggleMode
	g.actions.Zoom = act.Zoom
	if !g.controlsPanel.IsVisible() {
		rl.DrawText("[Tab] controls", int32(g.screenWidth)-140, int32(g.screenHeight)-24, 16, rl.Gray)
	}
}

func (g *Game) toScreen(p r2.Vec) rl.Vector2 {
	return vec2(g.camera.WorldToScreen(p))
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func vec2(v r2.Vec) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}
