package ecs

import (
	"github.com/phanxgames/vantage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SignalEvent is the payload published for each overlay signal. Seq counts
// signals sent through one sink, starting at 1.
type SignalEvent struct {
	Signal vantage.Signal
	Seq    uint64
}

// SignalEventType is the Donburi event type for overlay signals.
var SignalEventType = events.NewEventType[SignalEvent]()

type donburiSink struct {
	world donburi.World
	seq   uint64
}

// NewSignalSink creates a SignalSink backed by a Donburi world. Signals are
// queued on SignalEventType until ProcessEvents or events.ProcessAllEvents
// runs.
func NewSignalSink(world donburi.World) vantage.SignalSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Send(sig vantage.Signal) {
	s.seq++
	SignalEventType.Publish(s.world, SignalEvent{Signal: sig, Seq: s.seq})
}
