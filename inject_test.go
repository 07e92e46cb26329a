package vantage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInjectClick(t *testing.T) {
	f, b := realizedCoordinator(t, 1280, 720)

	f.InjectClick(640, 360)
	if f.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued frames, got %d", f.PendingInjections())
	}

	// Frame 1: press
	f.Push(RedrawRequested{})
	f.Tick()
	if f.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining frame after frame 1, got %d", f.PendingInjections())
	}
	if !f.Cursor().Pressed() {
		t.Error("press edge missing on frame 1")
	}
	if !b.Last.HasPick || b.Last.PickPoint != (mgl32.Vec2{0, 0}) {
		t.Errorf("pick = %v %v, want (0, 0)", b.Last.PickPoint, b.Last.HasPick)
	}

	// Frame 2: release
	f.Tick()
	if f.PendingInjections() != 0 {
		t.Fatalf("expected 0 remaining frames after frame 2, got %d", f.PendingInjections())
	}
	if !f.Cursor().Released() {
		t.Error("release edge missing on frame 2")
	}
}

func TestInjectDrag(t *testing.T) {
	f, _ := realizedCoordinator(t, 400, 400)

	// frame 0: press at (0,0), frames 1-3: moves, frame 4: release at (400,400)
	f.InjectDrag(0, 0, 400, 400, 5)
	if f.PendingInjections() != 5 {
		t.Fatalf("expected 5 queued frames, got %d", f.PendingInjections())
	}

	var xs []float32
	for i := 0; i < 5; i++ {
		f.Tick()
		xs = append(xs, f.Cursor().Pixel()[0])
	}
	want := []float32{0, 100, 200, 300, 400}
	for i := range want {
		if !approxEqual(xs[i], want[i], epsilon) {
			t.Errorf("frame %d x = %v, want %v", i, xs[i], want[i])
		}
	}
	if !f.Cursor().Released() {
		t.Error("drag should end with a release")
	}
	pick, _ := f.PickPoint()
	if pick != (mgl32.Vec2{-1, 1}) {
		t.Errorf("pick = %v, want press position (-1, 1)", pick)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	f, _ := realizedCoordinator(t, 100, 100)
	f.InjectDrag(0, 0, 10, 10, 0)
	if f.PendingInjections() != 2 {
		t.Errorf("expected 2 queued frames, got %d", f.PendingInjections())
	}
}

func TestInjectBeforeHostEvents(t *testing.T) {
	f, _ := realizedCoordinator(t, 100, 100)
	f.InjectMove(10, 10)
	f.Push(CursorMoved{X: 90, Y: 90})
	f.Tick()
	if f.Cursor().Pixel() != (mgl32.Vec2{90, 90}) {
		t.Errorf("pixel = %v, want host event applied last", f.Cursor().Pixel())
	}
}

func TestInjectResizeKeyAndClose(t *testing.T) {
	f := newTestCoordinator(&HeadlessBackend{})
	f.InjectResize(800, 600, 1)
	f.InjectKey(ModCtrl, KeyN)
	f.InjectRedraw()
	f.InjectClose()

	f.Tick()
	if f.Viewport().Size() != (Size{800, 600}) {
		t.Errorf("size = %v, want 800x600", f.Viewport().Size())
	}
	f.Tick()
	f.Tick()
	if got := f.Signals().(*SignalQueue).Drain(); len(got) != 1 || got[0] != SignalNewFile {
		t.Errorf("signals = %v, want [new-file]", got)
	}
	f.Tick()
	if !f.Terminated() {
		t.Error("expected termination after injected close")
	}
	f.InjectMove(1, 1)
	if f.PendingInjections() != 0 {
		t.Error("injection accepted after termination")
	}
}
