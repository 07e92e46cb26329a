package vantage

import "github.com/go-gl/mathgl/mgl32"

// OverlayInput is the raw per-frame input handed to the overlay. Positions
// and sizes are in points (pixels divided by PixelsPerPoint).
type OverlayInput struct {
	Pointer        mgl32.Vec2
	PointerValid   bool
	PrimaryDown    bool
	PrimaryPressed bool // press edge since the previous frame
	Keys           []KeyInput
	Text           []rune
	ScreenSize     mgl32.Vec2
	PixelsPerPoint float32
	DeltaTime      float32
}

// InputCollector accumulates overlay input from dispatched events between
// frames. Take hands out one frame's worth and clears the per-frame parts.
type InputCollector struct {
	pixel        mgl32.Vec2
	pointerValid bool
	down         bool
	pressed      bool
	keys         []KeyInput
	text         []rune
	size         Size
	scale        float32
}

// NewInputCollector returns an empty collector with a scale factor of 1.
func NewInputCollector() *InputCollector {
	return &InputCollector{scale: 1}
}

// Observe folds one event into the pending input.
func (c *InputCollector) Observe(ev Event) {
	switch e := ev.(type) {
	case CursorMoved:
		c.pixel = mgl32.Vec2{e.X, e.Y}
		c.pointerValid = true
	case MouseInput:
		if e.Button != MouseButtonLeft {
			return
		}
		if e.Pressed && !c.down {
			c.pressed = true
		}
		c.down = e.Pressed
	case KeyInput:
		c.keys = append(c.keys, e)
	case TextInput:
		c.text = append(c.text, e.Text...)
	}
}

// SetScreen records the committed viewport so pointer positions can be
// converted to points.
func (c *InputCollector) SetScreen(size Size, scale float32) {
	c.size = size
	if scale > 0 {
		c.scale = scale
	}
}

// Take returns the input gathered since the last call. Key presses, typed
// text and the press edge are handed out once; pointer position and button
// level carry over.
func (c *InputCollector) Take(dt float32) OverlayInput {
	in := OverlayInput{
		Pointer:        c.pixel.Mul(1 / c.scale),
		PointerValid:   c.pointerValid,
		PrimaryDown:    c.down,
		PrimaryPressed: c.pressed,
		Keys:           c.keys,
		Text:           c.text,
		ScreenSize:     mgl32.Vec2{float32(c.size.Width) / c.scale, float32(c.size.Height) / c.scale},
		PixelsPerPoint: c.scale,
		DeltaTime:      dt,
	}
	c.pressed = false
	c.keys = nil
	c.text = nil
	return in
}
