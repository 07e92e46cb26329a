package vantage

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled bool    `json:"enabled"`
	Hz      int     `json:"hz"`
	Ticks   uint64  `json:"ticks"` // stop after this many ticks; 0 runs until terminated
	Width   uint32  `json:"width"`
	Height  uint32  `json:"height"`
	Scale   float32 `json:"scale"`
}

// HeadlessBackend is a Backend that draws nothing. It records what it was
// asked to do and replays scripted outcomes, which makes it the backend of
// choice for tests and scripted runs.
type HeadlessBackend struct {
	// Outcomes are returned by successive Render calls. Once exhausted,
	// Render reports Presented.
	Outcomes []FrameOutcome

	Frames   int
	Resizes  []Size
	Last     *Frame
	Captured []string

	pendingShots []string
}

// Render records frame and returns the next scripted outcome.
func (b *HeadlessBackend) Render(frame *Frame) FrameOutcome {
	b.Frames++
	b.Last = frame
	b.Captured = append(b.Captured, b.pendingShots...)
	b.pendingShots = b.pendingShots[:0]
	if len(b.Outcomes) == 0 {
		return Presented()
	}
	o := b.Outcomes[0]
	b.Outcomes = b.Outcomes[1:]
	return o
}

// Resize records size.
func (b *HeadlessBackend) Resize(size Size) {
	b.Resizes = append(b.Resizes, size)
}

// Screenshot marks the next rendered frame with label.
func (b *HeadlessBackend) Screenshot(label string) {
	b.pendingShots = append(b.pendingShots, sanitizeLabel(label))
}

// RunHeadless drives f on a ticker without opening a window. Every tick
// steps runner (when non-nil), requests a redraw and ticks f. It returns
// f.Err() once f terminates, nil when cfg.Ticks is reached or the runner
// finishes, and ctx.Err() on cancellation.
func RunHeadless(ctx context.Context, f *FrameCoordinator, runner *TestRunner, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		f.Push(Resized{Width: cfg.Width, Height: cfg.Height, ScaleFactor: cfg.Scale})
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if runner != nil {
				runner.Step(f)
			}
			f.Push(RedrawRequested{})
			f.Tick()
			tick++
			if f.Terminated() {
				Logger().Info("headless: terminated", slog.Uint64("ticks", tick))
				return f.Err()
			}
			if runner != nil && runner.Done() {
				Logger().Info("headless: script finished", slog.Uint64("ticks", tick))
				return nil
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
