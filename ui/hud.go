package ui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/carlike/systems"
)

// HUDData holds the values shown in the top-left readout.
type HUDData struct {
	Speed         float64
	SteeringAngle float64 // Radians
	ScreenHeight  int32
}

// SpeedText is the speed line, with the value printed as is.
func SpeedText(speed float64) string {
	return fmt.Sprintf("Speed: %v", speed)
}

// SteeringText is the steering line, in degrees floored to two decimals.
func SteeringText(angle float64) string {
	deg := math.Floor(angle*180/math.Pi*100) / 100
	return fmt.Sprintf("Steering Angle: %v", deg)
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	th := h.renderer.Theme
	rl.DrawText(SpeedText(data.Speed), 12, 12, th.HUDFontSize, th.TextColor)
	rl.DrawText(SteeringText(data.SteeringAngle), 12, 32, th.HUDFontSize, th.TextColor)
	rl.DrawText("Move with arrows!", 12, data.ScreenHeight-24, th.HUDFontSize, th.HintColor)
}

// MotionPanelData holds derived motion values for the detail panel.
type MotionPanelData struct {
	Curvature     float64
	MaxCurvature  float64 // 1/wheelbase
	TurnRadius    float64 // +Inf when driving straight
	Heading       float64 // Radians
	WheelAngles   []float64
	SteeringAngle float64
	MaxSteering   float64
}

// MotionPanel renders curvature, heading and per-wheel angles.
type MotionPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewMotionPanel creates a new motion panel.
func NewMotionPanel(x, y, width int32) *MotionPanel {
	return &MotionPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (m *MotionPanel) SetPosition(x, y int32) {
	m.x, m.y = x, y
}

// Draw renders the motion panel.
func (m *MotionPanel) Draw(data MotionPanelData) {
	r := m.renderer
	pad := r.Theme.Padding
	inner := m.width - 2*pad
	height := r.Theme.LineHeight*int32(6+len(data.WheelAngles)) + 2*pad
	r.DrawPanel(m.x, m.y, m.width, height)

	x, y := m.x+pad, m.y+pad
	y = r.DrawSectionHeader(x, y, "Motion")
	y = r.DrawCenteredBar(x, y, "Steering", data.SteeringAngle, data.MaxSteering, inner)
	y = r.DrawCenteredBar(x, y, "Curvature", data.Curvature, data.MaxCurvature, inner)
	y = r.DrawLabelValue(x, y, "Radius", radiusText(data.TurnRadius))
	y = r.DrawLabelValue(x, y, "Heading", fmt.Sprintf("%.1f deg", data.Heading*180/math.Pi))

	y = r.DrawSectionHeader(x, y, "Wheels")
	for i, a := range data.WheelAngles {
		y = r.DrawLabelValue(x, y, fmt.Sprintf("#%d", i), fmt.Sprintf("%+.2f deg", a*180/math.Pi))
	}
}

func radiusText(r float64) string {
	if math.IsInf(r, 0) {
		return "straight"
	}
	return fmt.Sprintf("%.1f", r)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseTimes map[string]time.Duration
	Total      time.Duration
	FPS        float64
	Registry   *systems.SystemRegistry
}

// PerfPanel renders the per-system frame timing.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x, p.y = x, y
}

// Draw renders the performance panel, one line per registered system.
func (p *PerfPanel) Draw(data PerfPanelData) {
	th := p.renderer.Theme
	x, y := p.x, p.y

	rl.DrawText(fmt.Sprintf("Frame: %s  FPS: %.0f", data.Total.Round(time.Microsecond), data.FPS), x, y, th.FontSize, th.TextColor)
	y += th.LineHeight

	if data.Registry == nil {
		return
	}
	for _, info := range data.Registry.All() {
		avg := data.PhaseTimes[info.ID]
		pct := 0.0
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}
		color := th.LabelColor
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-12s %8s %5.1f%%", info.Name, avg.Round(time.Microsecond), pct), x, y, 12, color)
		y += 14
	}
}
