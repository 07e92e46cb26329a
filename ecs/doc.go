// Package ecs bridges vantage overlay signals into a [Donburi] world.
//
// [NewSignalSink] returns a [vantage.SignalSink] that publishes every signal
// as a typed event. Subscribe to [SignalEventType] in your systems and drain
// it with ProcessEvents once per tick.
//
// Usage:
//
//	world := donburi.NewWorld()
//	f := vantage.NewFrameCoordinator(vantage.CoordinatorConfig{
//		Backend: backend,
//		Signals: ecs.NewSignalSink(world),
//	})
//	ecs.SignalEventType.Subscribe(world, func(w donburi.World, e ecs.SignalEvent) { ... })
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
