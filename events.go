package vantage

// Event is a raw platform input event. The set of implementations is closed:
// the coordinator switches over the types below and treats anything else as
// a no-op.
type Event interface {
	isEvent()
}

// CursorMoved reports the cursor position in physical pixels relative to the
// top-left of the drawable area.
type CursorMoved struct {
	X, Y float32
}

// MouseInput reports a mouse button changing state.
type MouseInput struct {
	Button  MouseButton
	Pressed bool
}

// Resized reports a new drawable size in physical pixels.
type Resized struct {
	Width, Height uint32
	ScaleFactor   float32
}

// ScaleFactorChanged reports a new device scale factor together with the
// inner size the platform picked for it.
type ScaleFactorChanged struct {
	ScaleFactor   float32
	Width, Height uint32
}

// RedrawRequested asks for a frame to be rendered.
type RedrawRequested struct{}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// KeyInput reports a key press together with the modifiers held at the time.
// It only feeds the overlay.
type KeyInput struct {
	Key       Key
	Modifiers KeyModifiers
}

// TextInput carries characters typed since the last event. It only feeds the
// overlay.
type TextInput struct {
	Text []rune
}

func (CursorMoved) isEvent()        {}
func (MouseInput) isEvent()         {}
func (Resized) isEvent()            {}
func (ScaleFactorChanged) isEvent() {}
func (RedrawRequested) isEvent()    {}
func (CloseRequested) isEvent()     {}
func (KeyInput) isEvent()           {}
func (TextInput) isEvent()          {}
