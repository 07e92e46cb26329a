package vantage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCollectorPointsFromPixels(t *testing.T) {
	c := NewInputCollector()
	c.SetScreen(Size{Width: 2560, Height: 1440}, 2)
	c.Observe(CursorMoved{X: 200, Y: 100})
	in := c.Take(0.016)
	if in.Pointer != (mgl32.Vec2{100, 50}) {
		t.Errorf("Pointer = %v, want (100, 50)", in.Pointer)
	}
	if in.ScreenSize != (mgl32.Vec2{1280, 720}) {
		t.Errorf("ScreenSize = %v, want (1280, 720)", in.ScreenSize)
	}
	if !in.PointerValid || in.PixelsPerPoint != 2 || in.DeltaTime != 0.016 {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestCollectorTakeResetsEdges(t *testing.T) {
	c := NewInputCollector()
	c.Observe(MouseInput{Button: MouseButtonLeft, Pressed: true})
	c.Observe(KeyInput{Key: KeyEnter})
	c.Observe(TextInput{Text: []rune("1.5")})

	first := c.Take(0)
	if !first.PrimaryPressed || !first.PrimaryDown {
		t.Errorf("first take: pressed=%v down=%v", first.PrimaryPressed, first.PrimaryDown)
	}
	if len(first.Keys) != 1 || string(first.Text) != "1.5" {
		t.Errorf("first take: keys=%v text=%q", first.Keys, string(first.Text))
	}

	second := c.Take(0)
	if second.PrimaryPressed {
		t.Error("press edge should be handed out once")
	}
	if !second.PrimaryDown {
		t.Error("button level should carry over")
	}
	if len(second.Keys) != 0 || len(second.Text) != 0 {
		t.Error("keys and text should be handed out once")
	}
}

func TestCollectorIgnoresSecondaryButton(t *testing.T) {
	c := NewInputCollector()
	c.Observe(MouseInput{Button: MouseButtonRight, Pressed: true})
	if in := c.Take(0); in.PrimaryPressed || in.PrimaryDown {
		t.Error("secondary button reached the overlay as primary")
	}
}
