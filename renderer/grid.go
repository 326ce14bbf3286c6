// Package renderer draws the ground grid of the top-down view.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/carlike/camera"
)

// minLineGap is the smallest on-screen distance between grid lines, in pixels.
const minLineGap = 6

// GridRenderer draws the ground grid under the 2D camera. The world size is
// a multiple of the spacing, so lines meet up across the wrap seam.
type GridRenderer struct {
	spacing          float64
	color            rl.Color
	screenW, screenH float64
}

// NewGridRenderer creates a grid renderer for the given viewport.
func NewGridRenderer(screenW, screenH int32, spacing float64, color rl.Color) *GridRenderer {
	return &GridRenderer{
		spacing: spacing,
		color:   color,
		screenW: float64(screenW),
		screenH: float64(screenH),
	}
}

// Resize updates the viewport dimensions.
func (r *GridRenderer) Resize(screenW, screenH int32) {
	r.screenW, r.screenH = float64(screenW), float64(screenH)
}

// Draw renders the grid lines visible through cam.
func (r *GridRenderer) Draw(cam *camera.Camera) {
	spacing := VisibleSpacing(r.spacing, cam.Zoom)
	halfW, halfH := r.screenW/(2*cam.Zoom), r.screenH/(2*cam.Zoom)

	for _, x := range GridLines(cam.Center.X-halfW, cam.Center.X+halfW, spacing) {
		sx := float32(r.screenW/2 + (x-cam.Center.X)*cam.Zoom)
		rl.DrawLineV(rl.Vector2{X: sx}, rl.Vector2{X: sx, Y: float32(r.screenH)}, r.color)
	}
	for _, y := range GridLines(cam.Center.Y-halfH, cam.Center.Y+halfH, spacing) {
		sy := float32(r.screenH/2 - (y-cam.Center.Y)*cam.Zoom)
		rl.DrawLineV(rl.Vector2{Y: sy}, rl.Vector2{X: float32(r.screenW), Y: sy}, r.color)
	}
}

// VisibleSpacing coarsens spacing by powers of ten until lines are at least
// minLineGap pixels apart at zoom.
func VisibleSpacing(spacing, zoom float64) float64 {
	if !(spacing > 0) || !(zoom > 0) {
		return spacing
	}
	for spacing*zoom < minLineGap {
		spacing *= 10
	}
	return spacing
}

// GridLines returns the multiples of spacing in [lo, hi].
func GridLines(lo, hi, spacing float64) []float64 {
	if !(spacing > 0) || hi < lo {
		return nil
	}
	first := math.Ceil(lo/spacing) * spacing
	n := int(math.Floor((hi-first)/spacing)) + 1
	if n <= 0 {
		return nil
	}
	lines := make([]float64, n)
	for i := range lines {
		lines[i] = first + float64(i)*spacing
	}
	return lines
}
