package ebitenhost

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/vantage"
)

// screenshots queues labelled captures of the presented frame. It satisfies
// vantage.Screenshotter so test scripts can request captures.
type screenshots struct {
	opts    vantage.ScreenshotOptions
	pending []string
}

// Screenshot queues a capture at the end of the next Draw.
func (s *screenshots) Screenshot(label string) {
	s.pending = append(s.pending, label)
}

// flush captures screen for every queued label and writes each in the
// configured format.
func (s *screenshots) flush(screen *ebiten.Image) {
	if len(s.pending) == 0 {
		return
	}
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	for _, label := range s.pending {
		path, err := vantage.SaveScreenshot(s.opts, label, w, h, pixels)
		if err != nil {
			vantage.Logger().Error("ebitenhost: screenshot failed", slog.String("label", label), slog.Any("err", err))
			continue
		}
		vantage.Logger().Info("ebitenhost: screenshot saved", slog.String("path", path))
	}
	s.pending = s.pending[:0]
}
