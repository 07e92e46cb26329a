package ecs

import (
	"testing"

	"github.com/phanxgames/vantage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewSignalSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewSignalSink(world) == nil {
		t.Fatal("NewSignalSink returned nil")
	}
}

func TestSignalSink_Send(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewSignalSink(world)

	var received []SignalEvent
	SignalEventType.Subscribe(world, func(w donburi.World, e SignalEvent) {
		received = append(received, e)
	})

	sink.Send(vantage.SignalSaveFile)
	sink.Send(vantage.SignalQuit)

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %v", received)
	}
	SignalEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Signal != vantage.SignalSaveFile || received[0].Seq != 1 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Signal != vantage.SignalQuit || received[1].Seq != 2 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestSignalSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewSignalSink(world)

	var count1, count2 int
	SignalEventType.Subscribe(world, func(w donburi.World, e SignalEvent) { count1++ })
	SignalEventType.Subscribe(world, func(w donburi.World, e SignalEvent) { count2++ })

	sink.Send(vantage.SignalNewFile)
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestSignalSink_FromCoordinator(t *testing.T) {
	world := donburi.NewWorld()
	f := vantage.NewFrameCoordinator(vantage.CoordinatorConfig{
		Backend: &vantage.HeadlessBackend{},
		Signals: NewSignalSink(world),
	})

	var got []vantage.Signal
	SignalEventType.Subscribe(world, func(w donburi.World, e SignalEvent) {
		got = append(got, e.Signal)
	})

	f.Push(vantage.Resized{Width: 640, Height: 480, ScaleFactor: 1})
	f.Push(vantage.KeyInput{Key: vantage.KeyO, Modifiers: vantage.ModCtrl})
	f.Push(vantage.RedrawRequested{})
	f.Tick()
	SignalEventType.ProcessEvents(world)

	if len(got) != 1 || got[0] != vantage.SignalOpenFile {
		t.Errorf("signals = %v, want [open-file]", got)
	}
}
