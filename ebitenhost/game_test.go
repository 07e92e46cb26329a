package ebitenhost

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/vantage"
	"github.com/phanxgames/vantage/ecs"
)

func TestPhysicalSize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		scale float64
		wantW int
		wantH int
	}{
		{"unit", 1280, 720, 1, 1280, 720},
		{"retina", 640, 360, 2, 1280, 720},
		{"fractional rounds up", 101, 51, 1.5, 152, 77},
		{"zero scale", 800, 600, 0, 800, 600},
		{"negative scale", 800, 600, -2, 800, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := physicalSize(tt.w, tt.h, tt.scale)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("physicalSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCheckSurface(t *testing.T) {
	if err := checkSurface(800, 600, vantage.Size{Width: 800, Height: 600}); err != nil {
		t.Errorf("matching surface: %v", err)
	}
	err := checkSurface(800, 600, vantage.Size{Width: 1024, Height: 768})
	if !errors.Is(err, vantage.ErrSurfaceOutdated) {
		t.Fatalf("mismatched surface: err = %v, want ErrSurfaceOutdated", err)
	}
	if got := vantage.OutcomeFromError(err).Kind; got != vantage.OutcomeNeedsReconfigure {
		t.Errorf("outcome = %v, want needs-reconfigure", got)
	}
}

func TestBackendWithoutTarget(t *testing.T) {
	b := NewBackend(nil)
	out := b.Render(&vantage.Frame{Screen: vantage.ScreenDescriptor{SizePx: vantage.Size{Width: 4, Height: 4}}})
	if out.Kind != vantage.OutcomeTransient {
		t.Errorf("Render without target = %v, want transient", out)
	}
}

func TestBackendOutdatedTarget(t *testing.T) {
	b := NewBackend(nil)
	b.SetTarget(ebiten.NewImage(16, 16))
	out := b.Render(&vantage.Frame{Screen: vantage.ScreenDescriptor{SizePx: vantage.Size{Width: 32, Height: 16}}})
	if out.Kind != vantage.OutcomeNeedsReconfigure {
		t.Errorf("Render on stale target = %v, want needs-reconfigure", out)
	}
}

func TestBackendTextures(t *testing.T) {
	b := NewBackend(nil)
	b.applyTextures(vantage.TexturesDelta{Set: []vantage.TextureID{vantage.FontTexture}})
	if _, ok := b.faces[vantage.FontTexture]; !ok {
		t.Fatal("font face not created")
	}
	b.applyTextures(vantage.TexturesDelta{Free: []vantage.TextureID{vantage.FontTexture}})
	if len(b.faces) != 0 {
		t.Errorf("faces = %d after free, want 0", len(b.faces))
	}
}

func TestFPSLabelDue(t *testing.T) {
	var l fpsLabel
	now := time.Unix(100, 0)
	if !l.due(now) {
		t.Fatal("empty label should be due")
	}
	l.text, l.updated = "x", now
	if l.due(now.Add(fpsInterval / 2)) {
		t.Error("label due before interval")
	}
	if !l.due(now.Add(fpsInterval)) {
		t.Error("label not due after interval")
	}
}

func TestFormatFPS(t *testing.T) {
	if got, want := formatFPS(59.94, 60), "FPS: 59.9  TPS: 60.0"; got != want {
		t.Errorf("formatFPS = %q, want %q", got, want)
	}
}

func TestScreenshotQueue(t *testing.T) {
	var s screenshots
	var _ vantage.Screenshotter = &s
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.pending) != 2 || s.pending[0] != "a" || s.pending[1] != "b" {
		t.Errorf("pending = %v, want [a b]", s.pending)
	}
}

func TestNewGameWiresRunner(t *testing.T) {
	runner, err := vantage.LoadTestScript([]byte(`{"steps":[{"action":"screenshot","label":"x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(vantage.DefaultRunConfig(), runner)
	if runner.Screenshots != &g.shots {
		t.Error("runner screenshots not routed to the game")
	}
	if g.Scene().Len() == 0 {
		t.Error("game scene is empty")
	}
}

func TestGameSignals(t *testing.T) {
	g := NewGame(vantage.DefaultRunConfig(), nil)
	w := g.Scene().World()

	g.fc.Push(vantage.Resized{Width: 200, Height: 100, ScaleFactor: 1})
	g.fc.Tick()
	g.Scene().Pick(g.fc.Camera().ViewProjectionMatrix(), [2]float32{0, -0.5})
	if len(g.Scene().Markers()) != 1 {
		t.Fatalf("markers = %d, want 1", len(g.Scene().Markers()))
	}

	g.fc.Signals().Send(vantage.SignalNewFile)
	ecs.SignalEventType.ProcessEvents(w)
	if n := len(g.Scene().Markers()); n != 0 {
		t.Errorf("markers after new file = %d, want 0", n)
	}
	if got := g.fc.Overlay().Status; got != "New file" {
		t.Errorf("status = %q, want %q", got, "New file")
	}

	g.onSignal(w, ecs.SignalEvent{Signal: vantage.SignalSaveFile, Seq: 2})
	if got, want := g.fc.Overlay().Status, "save-file: not supported"; got != want {
		t.Errorf("status = %q, want %q", got, want)
	}

	g.fc.Signals().Send(vantage.SignalQuit)
	ecs.SignalEventType.ProcessEvents(w)
	g.fc.Tick()
	if !g.fc.Terminated() {
		t.Error("quit signal did not terminate the coordinator")
	}
	if g.fc.Err() != nil {
		t.Errorf("Err = %v, want nil", g.fc.Err())
	}
}

func TestOversized(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		monW, monH int
		want       bool
	}{
		{"fits", 1280, 720, 1920, 1080, false},
		{"same size", 1920, 1080, 1920, 1080, true},
		{"too wide", 2000, 720, 1920, 1080, true},
		{"too tall", 1280, 1200, 1920, 1080, true},
		{"unknown monitor", 1280, 720, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := oversized(tt.w, tt.h, tt.monW, tt.monH); got != tt.want {
				t.Errorf("oversized(%d, %d, %d, %d) = %v, want %v", tt.w, tt.h, tt.monW, tt.monH, got, tt.want)
			}
		})
	}
}

func TestGamePicksOncePerPress(t *testing.T) {
	g := NewGame(vantage.DefaultRunConfig(), nil)
	g.fc.Push(vantage.Resized{Width: 200, Height: 100, ScaleFactor: 1})
	g.fc.Push(vantage.CursorMoved{X: 100, Y: 75})
	g.fc.Push(vantage.MouseInput{Button: vantage.MouseButtonLeft, Pressed: true})
	g.fc.Tick()

	g.pick()
	g.fc.Tick()
	g.pick()
	if n := len(g.Scene().Markers()); n != 1 {
		t.Fatalf("markers = %d after one press, want 1", n)
	}

	g.fc.Push(vantage.MouseInput{Button: vantage.MouseButtonLeft, Pressed: false})
	g.fc.Push(vantage.MouseInput{Button: vantage.MouseButtonLeft, Pressed: true})
	g.fc.Tick()
	g.wantsPointer = true
	g.pick()
	if n := len(g.Scene().Markers()); n != 1 {
		t.Errorf("markers = %d, want press over the overlay ignored", n)
	}
}

func TestGameDropsQueuedRedraws(t *testing.T) {
	g := NewGame(vantage.DefaultRunConfig(), nil)
	g.fc.Push(vantage.Resized{Width: 64, Height: 64, ScaleFactor: 1})
	g.fc.InjectRedraw()
	if g.fc.Tick() {
		t.Error("Tick rendered outside Draw")
	}
	if g.fc.Frames() != 0 {
		t.Errorf("frames = %d, want 0", g.fc.Frames())
	}
}
