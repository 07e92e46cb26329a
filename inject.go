package vantage

// Injected input is queued in per-frame groups. Tick pops one group per call
// and applies it ahead of events pushed by the host, so a scripted press and
// its release land in different frames exactly as real input would.
// Coordinates are physical pixels, the same space CursorMoved uses.

func (f *FrameCoordinator) inject(group ...Event) {
	if f.Terminated() {
		return
	}
	f.injectQueue = append(f.injectQueue, group)
}

// InjectMove queues a cursor move to (x, y).
func (f *FrameCoordinator) InjectMove(x, y float32) {
	f.inject(CursorMoved{X: x, Y: y})
}

// InjectPress queues a cursor move to (x, y) followed by a primary press.
func (f *FrameCoordinator) InjectPress(x, y float32) {
	f.inject(CursorMoved{X: x, Y: y}, MouseInput{Button: MouseButtonLeft, Pressed: true})
}

// InjectRelease queues a cursor move to (x, y) followed by a primary release.
func (f *FrameCoordinator) InjectRelease(x, y float32) {
	f.inject(CursorMoved{X: x, Y: y}, MouseInput{Button: MouseButtonLeft, Pressed: false})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (f *FrameCoordinator) InjectClick(x, y float32) {
	f.InjectPress(x, y)
	f.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly interpolated
// moves, and a release at (toX, toY). The sequence consumes frames frames;
// the minimum is 2.
func (f *FrameCoordinator) InjectDrag(fromX, fromY, toX, toY float32, frames int) {
	if frames < 2 {
		frames = 2
	}
	f.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		f.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	f.InjectRelease(toX, toY)
}

// InjectResize queues a window resize.
func (f *FrameCoordinator) InjectResize(width, height uint32, scale float32) {
	f.inject(Resized{Width: width, Height: height, ScaleFactor: scale})
}

// InjectKey queues a key press.
func (f *FrameCoordinator) InjectKey(mods KeyModifiers, key Key) {
	f.inject(KeyInput{Key: key, Modifiers: mods})
}

// InjectText queues typed text.
func (f *FrameCoordinator) InjectText(s string) {
	f.inject(TextInput{Text: []rune(s)})
}

// InjectRedraw queues a redraw request.
func (f *FrameCoordinator) InjectRedraw() {
	f.inject(RedrawRequested{})
}

// InjectClose queues a close request.
func (f *FrameCoordinator) InjectClose() {
	f.inject(CloseRequested{})
}

// PendingInjections returns the number of injected frames not yet applied.
func (f *FrameCoordinator) PendingInjections() int { return len(f.injectQueue) }

// popInjected removes and returns the oldest injected group.
func (f *FrameCoordinator) popInjected() []Event {
	if len(f.injectQueue) == 0 {
		return nil
	}
	group := f.injectQueue[0]
	copy(f.injectQueue, f.injectQueue[1:])
	f.injectQueue = f.injectQueue[:len(f.injectQueue)-1]
	return group
}
