package vantage

import (
	"log/slog"
	"math"
)

// Viewport tracks the drawable area of the window.
type Viewport struct {
	size  Size
	scale float32
}

// NewViewport returns an unrealized viewport with a scale factor of 1.
func NewViewport() Viewport {
	return Viewport{scale: 1}
}

// Size returns the current size in physical pixels.
func (v *Viewport) Size() Size { return v.size }

// ScaleFactor returns the current device scale factor (pixels per point).
func (v *Viewport) ScaleFactor() float32 { return v.scale }

// Realized reports whether the viewport has a non-zero drawable area.
func (v *Viewport) Realized() bool { return !v.size.Empty() }

// Aspect returns width/height, or 0 while the viewport is unrealized.
func (v *Viewport) Aspect() float32 {
	if v.size.Empty() {
		return 0
	}
	return float32(v.size.Width) / float32(v.size.Height)
}

// Resize commits a new size and scale factor. A zero-area size or a
// non-positive scale factor is logged and ignored; the return value reports
// whether the change was committed.
func (v *Viewport) Resize(size Size, scale float32) bool {
	if size.Empty() {
		Logger().Warn("viewport: rejected zero-area resize",
			slog.Uint64("width", uint64(size.Width)), slog.Uint64("height", uint64(size.Height)))
		return false
	}
	if !(scale > 0) || math.IsInf(float64(scale), 0) {
		Logger().Warn("viewport: rejected scale factor", slog.Float64("scale", float64(scale)))
		return false
	}
	v.size = size
	v.scale = scale
	return true
}
