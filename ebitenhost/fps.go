package ebitenhost

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is how often the readout text is refreshed.
const fpsInterval = 500 * time.Millisecond

// fpsLabel shows the current FPS and TPS in the top-right corner.
type fpsLabel struct {
	text    string
	updated time.Time
}

func (l *fpsLabel) update(now time.Time) {
	if !l.due(now) {
		return
	}
	l.updated = now
	l.text = formatFPS(ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (l *fpsLabel) due(now time.Time) bool {
	return l.text == "" || now.Sub(l.updated) >= fpsInterval
}

func (l *fpsLabel) draw(screen *ebiten.Image) {
	// DebugPrint glyphs are 6px wide.
	x := screen.Bounds().Dx() - 6*len(l.text) - 4
	ebitenutil.DebugPrintAt(screen, l.text, x, 4)
}

func formatFPS(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f", fps, tps)
}
