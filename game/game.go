// Package game owns the simulation: the ECS world, the frame loop, input,
// drawing and telemetry.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/carlike/camera"
	"github.com/pthm-cable/carlike/components"
	"github.com/pthm-cable/carlike/config"
	"github.com/pthm-cable/carlike/control"
	"github.com/pthm-cable/carlike/renderer"
	"github.com/pthm-cable/carlike/systems"
	"github.com/pthm-cable/carlike/telemetry"
	"github.com/pthm-cable/carlike/ui"
)

// Options configures a new Game.
type Options struct {
	Mode      components.Mode
	Headless  bool
	LogStats  bool
	OutputDir string             // Empty disables CSV output
	Resume    *telemetry.Snapshot // Start from a saved vehicle state
}

// Game holds the complete simulation state.
type Game struct {
	cfg   *config.Config
	world *ecs.World

	// The single vehicle entity and the mode of its body
	entity ecs.Entity
	mode   components.Mode

	spawn3D *ecs.Map5[components.Controls, components.Driver, components.Body, components.SteerAngles, components.Trail]
	spawn2D *ecs.Map5[components.Controls, components.Driver, components.PlanarBody, components.SteerAngles, components.Trail]

	controlsMap *ecs.Map[components.Controls]
	driverMap   *ecs.Map[components.Driver]
	bodyMap     *ecs.Map[components.Body]
	planarMap   *ecs.Map[components.PlanarBody]
	steerMap    *ecs.Map[components.SteerAngles]
	trailMap    *ecs.Map[components.Trail]

	// Systems, in frame order
	driveSystem      *systems.DriveSystem
	kinematicsSystem *systems.KinematicsSystem
	wheelSystem      *systems.WheelSystem
	trailSystem      *systems.TrailSystem
	systemRegistry   *systems.SystemRegistry

	// Headless input
	script *control.Script

	// Cameras
	camera *camera.Camera
	chase  camera.Chase
	grid   *renderer.GridRenderer

	// UI
	hud           *ui.HUD
	motionPanel   *ui.MotionPanel
	perfPanel     *ui.PerfPanel
	controlsPanel *ui.ControlsPanel
	overlays      *ui.OverlayRegistry
	actions       ui.ControlsActions

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool

	// State
	tick     int32
	headless bool

	screenWidth, screenHeight float64
}

// NewGame creates a graphical game with default options.
func NewGame() (*Game, error) {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates a game. A headless game makes no raylib calls.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	script, err := control.NewScript(cfg.Headless.Script, cfg.Headless.Loop)
	if err != nil {
		return nil, fmt.Errorf("headless script: %w", err)
	}

	g := &Game{
		cfg:          cfg,
		world:        ecs.NewWorld(),
		headless:     opts.Headless,
		logStats:     opts.LogStats,
		script:       script,
		screenWidth:  float64(cfg.Screen.Width),
		screenHeight: float64(cfg.Screen.Height),
	}
	w := g.world

	g.spawn3D = ecs.NewMap5[components.Controls, components.Driver, components.Body, components.SteerAngles, components.Trail](w)
	g.spawn2D = ecs.NewMap5[components.Controls, components.Driver, components.PlanarBody, components.SteerAngles, components.Trail](w)
	g.controlsMap = ecs.NewMap[components.Controls](w)
	g.driverMap = ecs.NewMap[components.Driver](w)
	g.bodyMap = ecs.NewMap[components.Body](w)
	g.planarMap = ecs.NewMap[components.PlanarBody](w)
	g.steerMap = ecs.NewMap[components.SteerAngles](w)
	g.trailMap = ecs.NewMap[components.Trail](w)

	g.driveSystem = systems.NewDriveSystem(w)
	g.kinematicsSystem = systems.NewKinematicsSystem(w, cfg.Derived.GridSize)
	g.wheelSystem = systems.NewWheelSystem(w)
	g.trailSystem = systems.NewTrailSystem(w)
	g.systemRegistry = systems.NewSystemRegistry()

	g.camera = camera.New(g.screenWidth, g.screenHeight, cfg.Derived.GridSize, cfg.Camera.Zoom2D)
	g.chase.Offset = r3.Vec{X: cfg.Camera.Offset.X, Y: cfg.Camera.Offset.Y, Z: cfg.Camera.Offset.Z}
	g.grid = renderer.NewGridRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Grid.Spacing, rl.LightGray)

	g.hud = ui.NewHUD()
	g.motionPanel = ui.NewMotionPanel(int32(g.screenWidth)-250, 10, 240)
	g.perfPanel = ui.NewPerfPanel(int32(g.screenWidth)-250, 10)
	g.controlsPanel = ui.NewControlsPanel(10, 70, 220)
	g.controlsPanel.SetZoom(g.camera.Zoom, g.camera.MinZoom, g.camera.MaxZoom)
	g.overlays = ui.NewOverlayRegistry()

	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.GridSize)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	g.bookmarkDetector = telemetry.NewBookmarkDetector(cfg.Throttle.MaxSpeed)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	mode, p, drv := opts.Mode, pose{}, (*control.Driver)(nil)
	if opts.Resume != nil {
		if mode, p, drv, err = g.restore(opts.Resume); err != nil {
			om.Close()
			return nil, err
		}
		g.tick = opts.Resume.Tick
	}
	if err := g.spawnVehicle(mode, p, drv, components.NewTrail(cfg.Telemetry.TrailLength)); err != nil {
		om.Close()
		return nil, err
	}

	return g, nil
}

// Update runs one graphical frame: UI actions, keyboard input and a
// simulation step of the capped frame time.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	g.applyActions()
	g.handleInput()
	g.controlsPanel.SetZoom(g.camera.Zoom, g.camera.MinZoom, g.camera.MaxZoom)

	dt := min(g.cfg.Physics.MaxDT, float64(rl.GetFrameTime()))
	g.step(pollDriving(), dt)
}

// UpdateHeadless runs one fixed step with scripted input.
func (g *Game) UpdateHeadless() {
	dt := g.cfg.Physics.HeadlessDT
	g.step(g.script.Next(dt), dt)
}

// step advances the simulation by dt with the given input. Systems run in
// the order drive, kinematics, wheels, trail, so the per-wheel angles and
// trail always reflect the state after the kinematics update.
func (g *Game) step(in control.Input, dt float64) {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.controlsMap.Get(g.entity).Input = in

	g.perfCollector.StartPhase(telemetry.PhaseDrive)
	g.driveSystem.Update(dt)

	g.perfCollector.StartPhase(telemetry.PhaseKinematics)
	g.kinematicsSystem.Update(dt)

	g.perfCollector.StartPhase(telemetry.PhaseWheels)
	g.wheelSystem.Update()

	g.perfCollector.StartPhase(telemetry.PhaseTrail)
	g.trailSystem.Update()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.Record(g.sample(), dt)

	g.perfCollector.EndTick()
	g.tick++

	g.flushTelemetry()
}

// Reset puts the vehicle back at the origin, at rest, keeping the mode.
func (g *Game) Reset() error {
	trail := *g.trailMap.Get(g.entity)
	trail.Reset()
	old := g.entity
	if err := g.spawnVehicle(g.mode, pose{}, nil, trail); err != nil {
		return err
	}
	g.world.RemoveEntity(old)
	return nil
}

// SetMode switches between the 3D and planar bodies, keeping the pose,
// the driver state and the trail.
func (g *Game) SetMode(mode components.Mode) error {
	if mode == g.mode {
		return nil
	}
	p := g.pose()
	drv := g.driverMap.Get(g.entity).Driver
	trail := *g.trailMap.Get(g.entity)
	old := g.entity
	if err := g.spawnVehicle(mode, p, drv, trail); err != nil {
		return err
	}
	g.world.RemoveEntity(old)
	slog.Info("mode changed", "mode", mode.String(), "tick", g.tick)
	return nil
}

// Mode returns the current view mode.
func (g *Game) Mode() components.Mode {
	return g.mode
}

// ScriptDone reports whether a one-shot headless script has run out.
func (g *Game) ScriptDone() bool {
	return g.script.Done()
}

// Tick returns the number of simulation steps taken.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload flushes the last partial telemetry window and closes output files.
func (g *Game) Unload() {
	if stats := g.collector.Flush(g.tick); stats.Samples > 0 {
		g.writeStats(stats)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
