// Package camera provides the top-down 2D camera and the 3D chase camera.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Camera controls the viewport into the planar world.
// The world is a square of side WorldSize centered on the origin that wraps
// at its edges. World y points up the screen.
type Camera struct {
	// Center is the camera center in world coordinates
	Center r2.Vec

	// Zoom in pixels per world unit
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	WorldSize float64

	// Zoom constraints
	MinZoom, MaxZoom float64

	defaultZoom float64
}

// New creates a camera centered on the origin.
func New(viewportW, viewportH, worldSize, zoom float64) *Camera {
	c := &Camera{
		Zoom:        zoom,
		WorldSize:   worldSize,
		MaxZoom:     64,
		defaultZoom: zoom,
	}
	c.Resize(viewportW, viewportH)
	return c
}

// WorldToScreen converts a world point to screen coordinates, taking the
// shortest way around the wrapped world.
func (c *Camera) WorldToScreen(p r2.Vec) r2.Vec {
	dx := toroidalDelta(p.X, c.Center.X, c.WorldSize)
	dy := toroidalDelta(p.Y, c.Center.Y, c.WorldSize)
	return r2.Vec{
		X: c.ViewportW/2 + dx*c.Zoom,
		Y: c.ViewportH/2 - dy*c.Zoom,
	}
}

// ScreenToWorld converts screen coordinates to a wrapped world point.
func (c *Camera) ScreenToWorld(s r2.Vec) r2.Vec {
	dx := (s.X - c.ViewportW/2) / c.Zoom
	dy := (c.ViewportH/2 - s.Y) / c.Zoom
	return r2.Vec{
		X: wrap(c.Center.X+dx, c.WorldSize),
		Y: wrap(c.Center.Y+dy, c.WorldSize),
	}
}

// IsVisible returns true if a circle at p with the given radius could be
// on screen (conservative check for culling).
func (c *Camera) IsVisible(p r2.Vec, radius float64) bool {
	dx := toroidalDelta(p.X, c.Center.X, c.WorldSize)
	dy := toroidalDelta(p.Y, c.Center.Y, c.WorldSize)

	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return math.Abs(dx) <= halfW && math.Abs(dy) <= halfH
}

// Resize updates viewport dimensions and recalculates zoom constraints.
// At MinZoom the visible area exactly covers the world in the limiting
// dimension.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = math.Max(viewportW/c.WorldSize, viewportH/c.WorldSize)
	c.SetZoom(c.Zoom)
}

// Follow centers the camera on p.
func (c *Camera) Follow(p r2.Vec) {
	c.Center = r2.Vec{X: wrap(p.X, c.WorldSize), Y: wrap(p.Y, c.WorldSize)}
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.Follow(r2.Vec{X: c.Center.X + dx/c.Zoom, Y: c.Center.Y - dy/c.Zoom})
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the origin and its initial zoom.
func (c *Camera) Reset() {
	c.Center = r2.Vec{}
	c.SetZoom(c.defaultZoom)
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a wrapped space of the given size.
func toroidalDelta(to, from, size float64) float64 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// wrap maps x into [-size/2, size/2).
func wrap(x, size float64) float64 {
	r := math.Mod(x+size/2, size)
	if r < 0 {
		r += size
	}
	return r - size/2
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
