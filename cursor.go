package vantage

import "github.com/go-gl/mathgl/mgl32"

// CursorTracker converts pixel cursor positions into normalized device
// coordinates and remembers the last primary button edge.
type CursorTracker struct {
	pixel    mgl32.Vec2
	ndc      mgl32.Vec2
	pressed  bool
	released bool
}

// Pixel returns the last cursor position in viewport pixels.
func (c *CursorTracker) Pixel() mgl32.Vec2 { return c.pixel }

// NDC returns the last cursor position in normalized device coordinates.
func (c *CursorTracker) NDC() mgl32.Vec2 { return c.ndc }

// Pressed reports whether the last primary button edge was a press.
func (c *CursorTracker) Pressed() bool { return c.pressed }

// Released reports whether the last primary button edge was a release.
func (c *CursorTracker) Released() bool { return c.released }

// UpdateFromPixel stores the pixel position and recomputes NDC against the
// viewport. An unrealized viewport leaves the NDC untouched.
//
//	ndc.x = (x / width) * 2 - 1
//	ndc.y = 1 - (y / height) * 2
func (c *CursorTracker) UpdateFromPixel(x, y float32, vp *Viewport) mgl32.Vec2 {
	c.pixel = mgl32.Vec2{x, y}
	c.recompute(vp)
	return c.ndc
}

// Refresh recomputes NDC from the stored pixel position, e.g. after the
// viewport was resized underneath a stationary cursor.
func (c *CursorTracker) Refresh(vp *Viewport) {
	c.recompute(vp)
}

func (c *CursorTracker) recompute(vp *Viewport) {
	size := vp.Size()
	if size.Empty() {
		return
	}
	w, h := float32(size.Width), float32(size.Height)
	c.ndc = mgl32.Vec2{
		(c.pixel[0]/w)*2 - 1,
		1 - (c.pixel[1]/h)*2,
	}
}

// SetButtonEdge records a button edge. Only the primary button is tracked;
// other buttons are ignored. It reports whether the edge was recorded.
func (c *CursorTracker) SetButtonEdge(primary, pressed bool) bool {
	if !primary {
		return false
	}
	c.pressed = pressed
	c.released = !pressed
	return true
}

// ClearEdges resets both edge flags.
func (c *CursorTracker) ClearEdges() {
	c.pressed = false
	c.released = false
}
