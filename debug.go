package vantage

import (
	"log/slog"
	"time"
)

// frameStats holds per-frame timings. Only populated in debug mode.
type frameStats struct {
	overlayTime time.Duration
	renderTime  time.Duration
	primitives  int
	signals     int
	outcome     FrameOutcome
}

// debugLog writes one frame's stats at debug level.
func (f *FrameCoordinator) debugLog(stats frameStats) {
	Logger().Debug("frame: stats",
		slog.Uint64("frame", f.frames),
		slog.Duration("overlay", stats.overlayTime),
		slog.Duration("render", stats.renderTime),
		slog.Duration("total", stats.overlayTime+stats.renderTime),
		slog.Int("primitives", stats.primitives),
		slog.Int("signals", stats.signals),
		slog.String("outcome", stats.outcome.String()),
		slog.String("state", f.state.String()),
	)
}
