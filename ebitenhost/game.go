package ebitenhost

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/vantage"
	"github.com/phanxgames/vantage/ecs"
	"github.com/phanxgames/vantage/scene"
)

// Game adapts a FrameCoordinator to ebiten.Game. Update polls input and
// ticks the coordinator; Draw renders the frame onto the screen.
type Game struct {
	fc      *vantage.FrameCoordinator
	backend *Backend
	scene   *scene.Scene
	runner  *vantage.TestRunner
	poller  inputPoller
	shots   screenshots
	fps     *fpsLabel

	outW, outH   int
	scale        float64
	wantsPointer bool
	presses      uint64
}

// NewGame builds a game for cfg. runner may be nil.
func NewGame(cfg vantage.RunConfig, runner *vantage.TestRunner) *Game {
	g := &Game{
		scene:  scene.New(),
		runner: runner,
		shots:  screenshots{opts: cfg.Screenshots},
	}
	g.backend = NewBackend(g.scene)
	if cfg.ShowFPS {
		g.fps = &fpsLabel{}
	}

	cam := cfg.Camera.Camera()
	g.fc = vantage.NewFrameCoordinator(vantage.CoordinatorConfig{
		Backend:  g.backend,
		Signals:  ecs.NewSignalSink(g.scene.World()),
		Platform: g,
		Camera:   &cam,
		Debug:    cfg.Debug,
		// The screen image only exists inside Draw.
		ExternalRedraw: true,
		OnStateChange: func(from, to vantage.FrameState) {
			vantage.Logger().Debug("ebitenhost: state",
				slog.String("from", from.String()), slog.String("to", to.String()))
		},
	})
	ecs.SignalEventType.Subscribe(g.scene.World(), g.onSignal)
	if runner != nil {
		runner.Screenshots = &g.shots
	}
	return g
}

// Coordinator returns the coordinator the game drives.
func (g *Game) Coordinator() *vantage.FrameCoordinator { return g.fc }

// Scene returns the scene drawn behind the overlay.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.fc.Push(vantage.CloseRequested{})
	}
	g.poller.poll(g.fc)
	if g.runner != nil {
		g.runner.Step(g.fc)
	}
	g.fc.Tick()

	g.pick()
	ecs.SignalEventType.ProcessEvents(g.scene.World())

	if g.fps != nil {
		g.fps.update(time.Now())
	}

	if g.fc.Terminated() {
		if err := g.fc.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	if g.runner != nil && g.runner.Done() && len(g.shots.pending) == 0 {
		return ebiten.Termination
	}
	return nil
}

// pick drops a scene marker for a new primary press outside the overlay.
func (g *Game) pick() {
	n := g.fc.Presses()
	if n == g.presses {
		return
	}
	g.presses = n
	if g.wantsPointer {
		return
	}
	if ndc, ok := g.fc.PickPoint(); ok {
		g.scene.Pick(g.fc.Camera().ViewProjectionMatrix(), ndc)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.SetTarget(screen)
	g.fc.Dispatch(vantage.RedrawRequested{})
	g.backend.SetTarget(nil)

	g.shots.flush(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The screen is laid out in physical pixels
// so the core sees the same pixel space as the cursor.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	w, h := physicalSize(outsideWidth, outsideHeight, scale)
	if scale != g.scale && g.scale != 0 {
		maximizeIfOversized(ebiten.WindowSize())
	}
	if outsideWidth != g.outW || outsideHeight != g.outH || scale != g.scale {
		g.outW, g.outH, g.scale = outsideWidth, outsideHeight, scale
		g.fc.Push(vantage.Resized{Width: uint32(w), Height: uint32(h), ScaleFactor: float32(scale)})
	}
	return w, h
}

// HandlePlatformOutput implements vantage.PlatformHandler.
func (g *Game) HandlePlatformOutput(out vantage.PlatformOutput) {
	if shape, ok := cursorShapes[out.Cursor]; ok && ebiten.CursorShape() != shape {
		ebiten.SetCursorShape(shape)
	}
	g.wantsPointer = out.WantsPointer
}

func (g *Game) onSignal(_ donburi.World, ev ecs.SignalEvent) {
	log := vantage.Logger().With(slog.String("signal", ev.Signal.String()), slog.Uint64("seq", ev.Seq))
	switch ev.Signal {
	case vantage.SignalQuit:
		log.Info("ebitenhost: quit")
		g.fc.Push(vantage.CloseRequested{})
	case vantage.SignalNewFile:
		g.scene.ClearMarkers()
		g.fc.Overlay().Status = "New file"
		log.Info("ebitenhost: new file")
	default:
		g.fc.Overlay().Status = ev.Signal.String() + ": not supported"
		log.Warn("ebitenhost: signal not supported")
	}
}

// oversized reports whether a window of w×h covers the monitor in either
// dimension. An unknown monitor size never counts.
func oversized(w, h, monitorW, monitorH int) bool {
	if monitorW <= 0 || monitorH <= 0 {
		return false
	}
	return monitorW <= w || monitorH <= h
}

// maximizeIfOversized maximizes the window when it does not fit on the
// current monitor.
func maximizeIfOversized(w, h int) {
	mw, mh := ebiten.Monitor().Size()
	if !oversized(w, h, mw, mh) {
		return
	}
	vantage.Logger().Info("ebitenhost: window larger than monitor, maximizing",
		slog.Int("width", w), slog.Int("height", h), slog.Int("monitor_width", mw), slog.Int("monitor_height", mh))
	ebiten.MaximizeWindow()
}

// physicalSize converts a logical window size to device pixels.
func physicalSize(w, h int, scale float64) (int, int) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return int(math.Ceil(float64(w) * scale)), int(math.Ceil(float64(h) * scale))
}

// Run opens a window and drives a new Game until the window closes, the
// script finishes, or a frame fails fatally.
func Run(cfg vantage.RunConfig, runner *vantage.TestRunner) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	maximizeIfOversized(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	g := NewGame(cfg, runner)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
