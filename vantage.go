package vantage

import "image/color"

// Size is a pixel extent. A Size with a zero dimension is "unrealized": the
// window exists but has no drawable area.
type Size struct {
	Width, Height uint32
}

// Empty reports whether either dimension is zero.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies a keyboard key the core understands. Only keys used by
// shortcuts and text editing are listed; the host drops everything else.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyN
	KeyO
	KeyQ
	KeyR
	KeyS
)

var keyNames = [...]string{"Unknown", "Backspace", "Enter", "Escape", "Tab", "N", "O", "Q", "R", "S"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}

// Overlay palette. Colors are straight (not premultiplied) RGBA.
var (
	colorWindowBg  = color.RGBA{R: 27, G: 27, B: 31, A: 230}
	colorTitleBg   = color.RGBA{R: 48, G: 52, B: 64, A: 255}
	colorHeaderBg  = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	colorStripe    = color.RGBA{R: 34, G: 34, B: 40, A: 255}
	colorFieldBg   = color.RGBA{R: 16, G: 16, B: 18, A: 255}
	colorFieldEdit = color.RGBA{R: 24, G: 40, B: 64, A: 255}
	colorOutline   = color.RGBA{R: 80, G: 84, B: 96, A: 255}
	colorFocus     = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	colorText      = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colorTextDim   = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	colorCheck     = color.RGBA{R: 90, G: 200, B: 120, A: 255}
	colorButton    = color.RGBA{R: 60, G: 66, B: 80, A: 255}
	colorButtonHot = color.RGBA{R: 76, G: 84, B: 104, A: 255}
)
