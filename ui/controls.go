package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsActions reports what the user clicked this frame.
type ControlsActions struct {
	Reset      bool
	ToggleMode bool
	Zoom       float64 // Slider value, valid whenever the panel is visible
}

// ControlsPanel renders the left-side panel with view buttons and overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	zoom, minZoom, maxZoom float32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		zoom:     8,
		minZoom:  1,
		maxZoom:  64,
	}
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// SetZoom syncs the slider with the planar camera.
func (c *ControlsPanel) SetZoom(zoom, lo, hi float64) {
	c.zoom, c.minZoom, c.maxZoom = float32(zoom), float32(lo), float32(hi)
}

// Draw renders the panel and returns the actions taken. mode is the label of
// the current view, shown on the mode button.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry, mode string) ControlsActions {
	act := ControlsActions{Zoom: float64(c.zoom)}
	if !c.visible {
		return act
	}

	r := c.renderer
	pad := r.Theme.Padding
	lh := r.Theme.LineHeight
	inner := float32(c.width - 2*pad)

	rows := int32(len(overlays.All()) + len(overlays.Categories()))
	height := pad*2 + lh + 3*(lh+8) + rows*(lh+4)
	r.DrawPanel(c.x, c.y, c.width, height)

	x, y := float32(c.x+pad), float32(c.y+pad)
	rl.DrawText("Controls", int32(x), int32(y), r.Theme.HeaderFontSize, r.Theme.TextColor)
	y += float32(lh + 4)

	half := (inner - 4) / 2
	act.Reset = gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: float32(lh)}, "Reset")
	act.ToggleMode = gui.Button(rl.Rectangle{X: x + half + 4, Y: y, Width: half, Height: float32(lh)}, "View: "+mode)
	y += float32(lh + 8)

	c.zoom = gui.SliderBar(rl.Rectangle{X: x + 40, Y: y, Width: inner - 80, Height: float32(lh)},
		"Zoom", fmt.Sprintf("%.1f", c.zoom), c.zoom, c.minZoom, c.maxZoom)
	act.Zoom = float64(c.zoom)
	y += float32(lh + 8)

	for _, cat := range overlays.Categories() {
		rl.DrawText(categoryLabel(cat), int32(x), int32(y), r.Theme.FontSize, r.Theme.SectionHeader)
		y += float32(lh + 4)
		for _, desc := range overlays.ByCategory(cat) {
			if gui.Button(rl.Rectangle{X: x, Y: y, Width: inner, Height: float32(lh)}, toggleLabel(desc, overlays.IsEnabled(desc.ID))) {
				overlays.Toggle(desc.ID)
			}
			y += float32(lh + 4)
		}
	}
	return act
}

// toggleLabel is the button text for an overlay, e.g. "[x] Trail (T)".
func toggleLabel(desc OverlayDescriptor, enabled bool) string {
	mark := "[ ]"
	if enabled {
		mark = "[x]"
	}
	if desc.KeyLabel == "" {
		return mark + " " + desc.Name
	}
	return fmt.Sprintf("%s %s (%s)", mark, desc.Name, desc.KeyLabel)
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "scene":
		return "Scene"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
