package vantage

import (
	"image/color"
	"strconv"
)

// TextureID names a texture the overlay expects the backend to hold.
type TextureID uint32

// FontTexture is the overlay's glyph source.
const FontTexture TextureID = 1

// TexturesDelta lists overlay textures to (re)create or free this frame.
type TexturesDelta struct {
	Set  []TextureID
	Free []TextureID
}

// Empty reports whether the delta carries no changes.
func (d TexturesDelta) Empty() bool { return len(d.Set) == 0 && len(d.Free) == 0 }

// PrimitiveKind selects how a Primitive is drawn.
type PrimitiveKind uint8

const (
	PrimitiveFill    PrimitiveKind = iota // filled rectangle
	PrimitiveOutline                      // 1pt rectangle outline
	PrimitiveText                         // single line of text, top-left at Rect.X/Y
)

// Primitive is one entry of the overlay draw list. Coordinates are in points.
type Primitive struct {
	Kind    PrimitiveKind
	Rect    Rect
	Color   color.RGBA
	Text    string
	Texture TextureID
}

// CursorShape is the mouse cursor the overlay wants shown.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota
	CursorText
	CursorPointer
)

// PlatformOutput is what the host should reconcile with the platform after
// the overlay ran.
type PlatformOutput struct {
	Cursor        CursorShape
	WantsPointer  bool // pointer is over the overlay
	WantsKeyboard bool // a text field has focus
}

// OverlayOutput is everything one overlay build produces.
type OverlayOutput struct {
	Primitives []Primitive
	Textures   TexturesDelta
	Platform   PlatformOutput
	Signals    []Signal
}

// Style holds overlay metrics and is owned by an OverlayContext. Metrics
// are in points and assume a fixed-advance font.
type Style struct {
	CharWidth   float32
	LineHeight  float32
	RowHeight   float32
	Padding     float32
	LabelWidth  float32
	FieldWidth  float32
	WindowX     float32
	WindowY     float32
	WindowWidth float32
}

// DefaultStyle matches a 7×13 bitmap font.
func DefaultStyle() Style {
	return Style{
		CharWidth:   7,
		LineHeight:  13,
		RowHeight:   18,
		Padding:     6,
		LabelWidth:  64,
		FieldWidth:  62,
		WindowX:     8,
		WindowY:     8,
		WindowWidth: 300,
	}
}

// OverlayContext is the overlay's long-lived state: style, which sections
// are open, which text field has focus, and widget rectangles from the last
// frame. Create one at startup and pass it to NewOverlayBridge.
type OverlayContext struct {
	style        Style
	fontUploaded bool
	open         map[string]bool
	rects        map[string]Rect

	focus      string
	nextFocus  string
	editBuf    []rune
	pendingBuf []rune

	// per-frame
	in        OverlayInput
	keys      []KeyInput
	focusSeen bool
	prims     []Primitive
	y         float32
	stripe    bool
	cursor    CursorShape
}

// NewOverlayContext creates a context using style.
func NewOverlayContext(style Style) *OverlayContext {
	return &OverlayContext{
		style: style,
		open:  make(map[string]bool),
		rects: make(map[string]Rect),
	}
}

// Style returns the active style.
func (c *OverlayContext) Style() Style { return c.style }

// SetStyle replaces the style. The font texture is re-sent on the next frame.
func (c *OverlayContext) SetStyle(s Style) {
	c.style = s
	c.fontUploaded = false
}

// WidgetRect returns the rectangle a widget occupied in the last frame.
func (c *OverlayContext) WidgetRect(id string) (Rect, bool) {
	r, ok := c.rects[id]
	return r, ok
}

// Focused returns the id of the text field being edited, or "".
func (c *OverlayContext) Focused() string { return c.focus }

func (c *OverlayContext) begin(in OverlayInput) {
	c.in = in
	c.keys = append(c.keys[:0], in.Keys...)
	c.prims = nil
	clear(c.rects)
	c.cursor = CursorDefault
	c.nextFocus = c.focus
	c.focusSeen = false
	c.stripe = false
}

func (c *OverlayContext) end() {
	// A focused field that was not drawn this frame (its section was
	// collapsed) loses focus without committing.
	if !c.focusSeen && c.nextFocus == c.focus {
		c.nextFocus = ""
	}
	if c.nextFocus != c.focus {
		c.focus = c.nextFocus
		c.editBuf = c.pendingBuf
	}
	c.pendingBuf = nil
}

func (c *OverlayContext) hovered(r Rect) bool {
	return c.in.PointerValid && r.Contains(c.in.Pointer[0], c.in.Pointer[1])
}

func (c *OverlayContext) clicked(r Rect) bool {
	return c.in.PrimaryPressed && c.hovered(r)
}

func (c *OverlayContext) fill(r Rect, col color.RGBA) {
	c.prims = append(c.prims, Primitive{Kind: PrimitiveFill, Rect: r, Color: col})
}

func (c *OverlayContext) outline(r Rect, col color.RGBA) {
	c.prims = append(c.prims, Primitive{Kind: PrimitiveOutline, Rect: r, Color: col})
}

func (c *OverlayContext) text(x, y float32, s string, col color.RGBA) {
	w := float32(len(s)) * c.style.CharWidth
	c.prims = append(c.prims, Primitive{
		Kind:    PrimitiveText,
		Rect:    Rect{X: x, Y: y, Width: w, Height: c.style.LineHeight},
		Color:   col,
		Text:    s,
		Texture: FontTexture,
	})
}

// OverlayBridge builds the debug overlay each frame from the coordinator's
// state.
type OverlayBridge struct {
	ctx       *OverlayContext
	shortcuts Shortcuts

	// Status is shown on the overlay's last line.
	Status string
	// ResetDuration is how long the Reset button's camera animation runs.
	ResetDuration float32
}

// NewOverlayBridge returns a bridge drawing into ctx and matching shortcuts
// in table order.
func NewOverlayBridge(ctx *OverlayContext, shortcuts Shortcuts) *OverlayBridge {
	return &OverlayBridge{
		ctx:           ctx,
		shortcuts:     shortcuts,
		Status:        "Init Done!",
		ResetDuration: 0.5,
	}
}

// Context returns the overlay context.
func (b *OverlayBridge) Context() *OverlayContext { return b.ctx }

// BuildFrame runs the overlay for one frame. The camera is borrowed for the
// duration of the call; field edits are written into it before returning.
// Each shortcut fires at most one signal per call.
func (b *OverlayBridge) BuildFrame(in OverlayInput, cam *Camera, cursor *CursorTracker) OverlayOutput {
	c := b.ctx
	c.begin(in)

	var out OverlayOutput
	for _, binding := range b.shortcuts {
		var ok bool
		if c.keys, ok = consumeShortcut(c.keys, binding.Shortcut); ok {
			out.Signals = append(out.Signals, binding.Signal)
		}
	}

	if !c.fontUploaded {
		out.Textures.Set = append(out.Textures.Set, FontTexture)
		c.fontUploaded = true
	}

	win := b.window(cam, cursor)
	c.end()

	out.Primitives = c.prims
	out.Platform = PlatformOutput{
		Cursor:        c.cursor,
		WantsPointer:  c.hovered(win),
		WantsKeyboard: c.focus != "",
	}
	return out
}

// window lays out the debugger window and returns its final bounds.
func (b *OverlayBridge) window(cam *Camera, cursor *CursorTracker) Rect {
	c := b.ctx
	st := c.style
	x, y := st.WindowX, st.WindowY

	// Background height is only known once the contents are laid out.
	bg := len(c.prims)
	c.fill(Rect{}, colorWindowBg)

	title := Rect{X: x, Y: y, Width: st.WindowWidth, Height: st.RowHeight}
	c.rects["window.title"] = title
	if c.clicked(title) {
		c.open["window"] = !c.isOpen("window", true)
	}
	if c.hovered(title) {
		c.cursor = CursorPointer
	}
	c.fill(title, colorTitleBg)
	c.text(x+st.Padding, y+(st.RowHeight-st.LineHeight)/2, "Debugger", colorText)
	c.y = y + st.RowHeight

	if c.isOpen("window", true) {
		c.y += st.Padding / 2
		if c.header("camera", "Camera") {
			b.cameraSection(cam)
		}
		if c.header("mouse", "Mouse") {
			b.mouseSection(cursor)
		}
		c.y += st.Padding / 2
		c.text(x+st.Padding, c.y, b.Status, colorTextDim)
		c.y += st.LineHeight + st.Padding
	}

	r := Rect{X: x, Y: y, Width: st.WindowWidth, Height: c.y - y}
	c.prims[bg].Rect = r
	c.outline(r, colorOutline)
	return r
}

func (b *OverlayBridge) cameraSection(cam *Camera) {
	c := b.ctx
	edited := false
	edited = c.xyzRow("camera.eye", "Eye:", Vec3Ref{&cam.Eye}, true) || edited
	edited = c.xyzRow("camera.target", "Target:", Vec3Ref{&cam.Target}, true) || edited
	edited = c.xyzRow("camera.up", "Up:", Vec3Ref{&cam.Up}, true) || edited
	if edited {
		cam.CancelAnimation()
	}
	c.scalarRow("camera.aspect", "Aspect:", &cam.Aspect, true)
	c.scalarRow("camera.fovy", "Fovy:", &cam.FovyDegrees, true)
	c.scalarRow("camera.znear", "Z Near:", &cam.ZNear, true)
	c.scalarRow("camera.zfar", "Z Far:", &cam.ZFar, true)
	if c.buttonRow("camera.reset", "Reset camera") {
		cam.ResetToHome(b.ResetDuration)
	}
}

func (b *OverlayBridge) mouseSection(cursor *CursorTracker) {
	c := b.ctx
	pixel, ndc := cursor.Pixel(), cursor.NDC()
	c.xyRow("mouse.viewport", "Viewport:", Vec2Ref{&pixel}, false)
	c.xyRow("mouse.ndc", "NDC:", Vec2Ref{&ndc}, false)
	c.checkboxRow("mouse.pressed", "Pressed:", cursor.Pressed())
	c.checkboxRow("mouse.released", "Released:", cursor.Released())
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
