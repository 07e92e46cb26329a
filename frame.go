package vantage

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameState is a state of the frame coordinator's render state machine.
type FrameState uint8

const (
	StateIdle           FrameState = iota // viewport not realized yet
	StateAwaitingRedraw                   // ready for the next redraw request
	StateRendering                        // a render call is in flight
	StatePresented                        // last frame reached the screen
	StateReconfiguring                    // surface is being reconfigured
	StateDegraded                         // last frame was skipped
	StateTerminating                      // absorbing: the host must exit
)

var stateNames = [...]string{
	"idle", "awaiting-redraw", "rendering", "presented", "reconfiguring", "degraded", "terminating",
}

func (s FrameState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("FrameState(%d)", uint8(s))
}

// maxFrameDelta caps the time step handed to animations after a stall.
const maxFrameDelta = 0.25

// ScreenDescriptor describes the surface a frame is rendered to.
type ScreenDescriptor struct {
	SizePx         Size
	PixelsPerPoint float32
}

// Frame is the combined draw input for one render call.
type Frame struct {
	Primitives     []Primitive
	Textures       TexturesDelta
	Screen         ScreenDescriptor
	ViewProjection mgl32.Mat4
	// PickPoint is the NDC position of the last primary press, valid when
	// HasPick is set.
	PickPoint mgl32.Vec2
	HasPick   bool
}

// Backend renders frames. Render blocks until the frame is submitted and
// reports how it went; Resize reconfigures the surface to a new pixel size.
type Backend interface {
	Render(frame *Frame) FrameOutcome
	Resize(size Size)
}

// PlatformHandler applies overlay platform output (cursor shape and the
// like) to the host window. Optional.
type PlatformHandler interface {
	HandlePlatformOutput(PlatformOutput)
}

// CoordinatorConfig configures a FrameCoordinator. Backend is required.
type CoordinatorConfig struct {
	Backend  Backend
	Overlay  *OverlayBridge  // defaults to a bridge with DefaultStyle and DefaultShortcuts
	Signals  SignalSink      // defaults to a SignalQueue
	Platform PlatformHandler // optional
	Camera   *Camera         // initial camera; defaults to DefaultCamera
	Debug    bool            // log per-frame timings at debug level

	// ExternalRedraw makes Tick drop queued redraw requests. The host
	// renders only through Dispatch(RedrawRequested{}), e.g. when the
	// render target exists only inside its draw callback.
	ExternalRedraw bool

	// OnStateChange, when set, is called on every state transition.
	OnStateChange func(from, to FrameState)
}

// FrameCoordinator owns the cursor, viewport, camera and overlay state and
// runs the render state machine. It is not safe for concurrent use; a single
// event loop drives it.
type FrameCoordinator struct {
	backend  Backend
	overlay  *OverlayBridge
	signals  SignalSink
	platform PlatformHandler

	cursor   CursorTracker
	viewport Viewport
	camera   Camera
	input    *InputCollector

	state       FrameState
	resolution  FrameState
	pick        mgl32.Vec2
	hasPick     bool
	presses     uint64
	edgeDrawn   bool // the current button edge reached a rendered frame
	queue       []Event
	err         error
	injectQueue [][]Event
	frames      uint64

	now       func() time.Time
	lastFrame time.Time
	debug     bool
	external  bool
	onState   func(from, to FrameState)
}

// NewFrameCoordinator creates a coordinator in the Idle state. It leaves Idle
// once a resize realizes the viewport.
func NewFrameCoordinator(cfg CoordinatorConfig) *FrameCoordinator {
	if cfg.Backend == nil {
		panic("vantage: CoordinatorConfig.Backend is nil")
	}
	f := &FrameCoordinator{
		backend:  cfg.Backend,
		overlay:  cfg.Overlay,
		signals:  cfg.Signals,
		platform: cfg.Platform,
		viewport: NewViewport(),
		camera:   DefaultCamera(),
		input:    NewInputCollector(),
		now:      time.Now,
		debug:    cfg.Debug,
		external: cfg.ExternalRedraw,
		onState:  cfg.OnStateChange,
	}
	if f.overlay == nil {
		f.overlay = NewOverlayBridge(NewOverlayContext(DefaultStyle()), DefaultShortcuts())
	}
	if f.signals == nil {
		f.signals = &SignalQueue{}
	}
	if cfg.Camera != nil {
		f.camera = *cfg.Camera
	}
	return f
}

// Cursor returns the cursor tracker.
func (f *FrameCoordinator) Cursor() *CursorTracker { return &f.cursor }

// Viewport returns the viewport.
func (f *FrameCoordinator) Viewport() *Viewport { return &f.viewport }

// Camera returns the camera. Writes through the pointer are seen by the
// next frame.
func (f *FrameCoordinator) Camera() *Camera { return &f.camera }

// Overlay returns the overlay bridge.
func (f *FrameCoordinator) Overlay() *OverlayBridge { return f.overlay }

// Signals returns the sink overlay signals are delivered to.
func (f *FrameCoordinator) Signals() SignalSink { return f.signals }

// State returns the current state.
func (f *FrameCoordinator) State() FrameState { return f.state }

// LastResolution returns how the most recent render resolved: StatePresented,
// StateReconfiguring, StateDegraded or StateTerminating. It is StateIdle
// before the first render.
func (f *FrameCoordinator) LastResolution() FrameState { return f.resolution }

// PickPoint returns the NDC position committed by the last primary press.
func (f *FrameCoordinator) PickPoint() (mgl32.Vec2, bool) { return f.pick, f.hasPick }

// Presses returns the number of primary presses applied so far. Compare
// successive values to detect a new press; Cursor().Pressed() stays set
// until a rendered frame has seen it.
func (f *FrameCoordinator) Presses() uint64 { return f.presses }

// Frames returns the number of render calls made so far.
func (f *FrameCoordinator) Frames() uint64 { return f.frames }

// Terminated reports whether the coordinator reached StateTerminating.
func (f *FrameCoordinator) Terminated() bool { return f.state == StateTerminating }

// Err returns the cause of termination: nil for a close request, an error
// wrapping ErrFatalFrame after a fatal outcome.
func (f *FrameCoordinator) Err() error { return f.err }

// Push queues an event for the next Tick.
func (f *FrameCoordinator) Push(ev Event) {
	if f.Terminated() {
		return
	}
	f.queue = append(f.queue, ev)
}

// Pending returns the number of queued events.
func (f *FrameCoordinator) Pending() int { return len(f.queue) }

// Tick drains the queue, preceded by one frame of injected input if any is
// pending. Input events are applied in order first; if no button event
// arrived this tick and a frame has already rendered the current edge, the
// cursor edges are cleared; then, if any redraw was requested, exactly one
// frame is rendered. It reports whether a frame was rendered.
func (f *FrameCoordinator) Tick() bool {
	queue := append(slices.Clip(f.popInjected()), f.queue...)
	f.queue = nil

	sawButton, redraw := false, false
	for _, ev := range queue {
		if f.Terminated() {
			return false
		}
		if _, ok := ev.(RedrawRequested); ok {
			redraw = true
			continue
		}
		if f.apply(ev) {
			sawButton = true
		}
	}
	if !sawButton && f.edgeDrawn {
		f.cursor.ClearEdges()
	}
	if !redraw || f.external {
		return false
	}
	return f.redraw()
}

// Dispatch applies a single event immediately. A RedrawRequested renders a
// frame before Dispatch returns.
func (f *FrameCoordinator) Dispatch(ev Event) {
	if f.Terminated() {
		return
	}
	if _, ok := ev.(RedrawRequested); ok {
		f.redraw()
		return
	}
	f.apply(ev)
}

// apply handles one non-redraw event and reports whether it was a primary
// button edge.
func (f *FrameCoordinator) apply(ev Event) bool {
	switch e := ev.(type) {
	case CursorMoved:
		f.cursor.UpdateFromPixel(e.X, e.Y, &f.viewport)
		f.input.Observe(e)
	case MouseInput:
		f.input.Observe(e)
		if !f.cursor.SetButtonEdge(e.Button == MouseButtonLeft, e.Pressed) {
			return false
		}
		f.edgeDrawn = false
		if e.Pressed {
			f.pick = f.cursor.NDC()
			f.hasPick = true
			f.presses++
		}
		return true
	case Resized:
		f.resize(Size{Width: e.Width, Height: e.Height}, e.ScaleFactor)
	case ScaleFactorChanged:
		f.resize(Size{Width: e.Width, Height: e.Height}, e.ScaleFactor)
	case CloseRequested:
		Logger().Info("frame: close requested")
		f.terminate(nil)
	case KeyInput, TextInput:
		f.input.Observe(e)
	default:
		Logger().Debug("frame: ignored event", slog.String("type", fmt.Sprintf("%T", ev)))
	}
	return false
}

func (f *FrameCoordinator) resize(size Size, scale float32) {
	if !f.viewport.Resize(size, scale) {
		return
	}
	f.camera.Aspect = f.viewport.Aspect()
	f.cursor.Refresh(&f.viewport)
	f.input.SetScreen(size, scale)
	f.backend.Resize(size)
	if f.state == StateIdle {
		Logger().Info("frame: viewport realized",
			slog.Uint64("width", uint64(size.Width)), slog.Uint64("height", uint64(size.Height)))
		f.setState(StateAwaitingRedraw)
	}
}

func (f *FrameCoordinator) redraw() bool {
	switch f.state {
	case StateIdle:
		Logger().Debug("frame: redraw before viewport realized")
		return false
	case StateRendering:
		Logger().Debug("frame: re-entrant redraw ignored")
		return false
	case StateTerminating:
		return false
	}

	f.setState(StateRendering)
	dt := f.frameDelta()
	f.camera.Update(dt)

	var stats frameStats
	t0 := time.Now()

	out := f.overlay.BuildFrame(f.input.Take(dt), &f.camera, &f.cursor)
	for _, sig := range out.Signals {
		f.signals.Send(sig)
	}
	if f.platform != nil {
		f.platform.HandlePlatformOutput(out.Platform)
	}
	stats.overlayTime = time.Since(t0)

	frame := &Frame{
		Primitives: out.Primitives,
		Textures:   out.Textures,
		Screen: ScreenDescriptor{
			SizePx:         f.viewport.Size(),
			PixelsPerPoint: f.viewport.ScaleFactor(),
		},
		ViewProjection: f.camera.ViewProjectionMatrix(),
		PickPoint:      f.pick,
		HasPick:        f.hasPick,
	}

	t0 = time.Now()
	outcome := f.backend.Render(frame)
	stats.renderTime = time.Since(t0)
	f.frames++
	f.edgeDrawn = true

	f.resolve(outcome)

	if f.debug {
		stats.primitives = len(frame.Primitives)
		stats.signals = len(out.Signals)
		stats.outcome = outcome
		f.debugLog(stats)
	}
	return true
}

// resolve routes a render outcome through the state machine.
func (f *FrameCoordinator) resolve(o FrameOutcome) {
	switch o.Kind {
	case OutcomePresented:
		f.settle(StatePresented)
	case OutcomeNeedsReconfigure:
		f.setState(StateReconfiguring)
		f.resolution = StateReconfiguring
		f.backend.Resize(f.viewport.Size())
		f.setState(StateAwaitingRedraw)
	case OutcomeTransient:
		Logger().Warn("frame: skipped", slog.String("reason", o.Reason))
		f.settle(StateDegraded)
	default:
		Logger().Error("frame: fatal outcome", slog.String("reason", o.Reason))
		f.terminate(fmt.Errorf("%w: %s", ErrFatalFrame, o.Reason))
	}
}

// settle records a resolution state and returns to AwaitingRedraw.
func (f *FrameCoordinator) settle(s FrameState) {
	f.setState(s)
	f.resolution = s
	f.setState(StateAwaitingRedraw)
}

func (f *FrameCoordinator) terminate(err error) {
	f.err = err
	f.queue = nil
	f.injectQueue = nil
	f.resolution = StateTerminating
	f.setState(StateTerminating)
}

func (f *FrameCoordinator) setState(s FrameState) {
	if s == f.state {
		return
	}
	from := f.state
	f.state = s
	if f.onState != nil {
		f.onState(from, s)
	}
}

func (f *FrameCoordinator) frameDelta() float32 {
	now := f.now()
	defer func() { f.lastFrame = now }()
	if f.lastFrame.IsZero() {
		return 0
	}
	dt := now.Sub(f.lastFrame).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return float32(dt)
}
