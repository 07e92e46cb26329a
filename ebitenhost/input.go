package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/vantage"
)

// keyMap lists the keys the core understands.
var keyMap = map[ebiten.Key]vantage.Key{
	ebiten.KeyBackspace:   vantage.KeyBackspace,
	ebiten.KeyEnter:       vantage.KeyEnter,
	ebiten.KeyNumpadEnter: vantage.KeyEnter,
	ebiten.KeyEscape:      vantage.KeyEscape,
	ebiten.KeyTab:         vantage.KeyTab,
	ebiten.KeyN:           vantage.KeyN,
	ebiten.KeyO:           vantage.KeyO,
	ebiten.KeyQ:           vantage.KeyQ,
	ebiten.KeyR:           vantage.KeyR,
	ebiten.KeyS:           vantage.KeyS,
}

var buttonMap = []struct {
	ebiten  ebiten.MouseButton
	vantage vantage.MouseButton
}{
	{ebiten.MouseButtonLeft, vantage.MouseButtonLeft},
	{ebiten.MouseButtonRight, vantage.MouseButtonRight},
	{ebiten.MouseButtonMiddle, vantage.MouseButtonMiddle},
}

// Backspace auto-repeat, in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// readModifiers reads the modifier state through isPressed.
func readModifiers(isPressed func(ebiten.Key) bool) vantage.KeyModifiers {
	var mods vantage.KeyModifiers
	if isPressed(ebiten.KeyShift) || isPressed(ebiten.KeyShiftLeft) || isPressed(ebiten.KeyShiftRight) {
		mods |= vantage.ModShift
	}
	if isPressed(ebiten.KeyControl) || isPressed(ebiten.KeyControlLeft) || isPressed(ebiten.KeyControlRight) {
		mods |= vantage.ModCtrl
	}
	if isPressed(ebiten.KeyAlt) || isPressed(ebiten.KeyAltLeft) || isPressed(ebiten.KeyAltRight) {
		mods |= vantage.ModAlt
	}
	if isPressed(ebiten.KeyMeta) || isPressed(ebiten.KeyMetaLeft) || isPressed(ebiten.KeyMetaRight) {
		mods |= vantage.ModMeta
	}
	return mods
}

// translateKeys converts key presses to core events, dropping unmapped keys.
func translateKeys(dst []vantage.Event, pressed []ebiten.Key, mods vantage.KeyModifiers) []vantage.Event {
	for _, k := range pressed {
		if key, ok := keyMap[k]; ok {
			dst = append(dst, vantage.KeyInput{Key: key, Modifiers: mods})
		}
	}
	return dst
}

// translateText converts typed characters to a text event. Characters typed
// while Ctrl or Meta is held belong to shortcuts and are dropped.
func translateText(dst []vantage.Event, chars []rune, mods vantage.KeyModifiers) []vantage.Event {
	if len(chars) == 0 || mods&(vantage.ModCtrl|vantage.ModMeta) != 0 {
		return dst
	}
	return append(dst, vantage.TextInput{Text: chars})
}

// repeating reports whether a key held for d ticks fires a repeat.
func repeating(d int) bool {
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// inputPoller turns Ebitengine's polled input state into core events.
type inputPoller struct {
	x, y      int
	hasCursor bool
	keys      []ebiten.Key
	chars     []rune
	events    []vantage.Event
}

// poll reads this tick's input and pushes the resulting events.
func (p *inputPoller) poll(f *vantage.FrameCoordinator) {
	p.events = p.events[:0]

	if x, y := ebiten.CursorPosition(); !p.hasCursor || x != p.x || y != p.y {
		p.x, p.y, p.hasCursor = x, y, true
		p.events = append(p.events, vantage.CursorMoved{X: float32(x), Y: float32(y)})
	}
	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			p.events = append(p.events, vantage.MouseInput{Button: b.vantage, Pressed: true})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			p.events = append(p.events, vantage.MouseInput{Button: b.vantage, Pressed: false})
		}
	}

	mods := readModifiers(ebiten.IsKeyPressed)
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	if repeating(inpututil.KeyPressDuration(ebiten.KeyBackspace)) {
		p.keys = append(p.keys, ebiten.KeyBackspace)
	}
	p.events = translateKeys(p.events, p.keys, mods)

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	p.events = translateText(p.events, append([]rune(nil), p.chars...), mods)

	for _, ev := range p.events {
		f.Push(ev)
	}
}

// cursorShapes maps overlay cursor requests to Ebitengine shapes.
var cursorShapes = map[vantage.CursorShape]ebiten.CursorShapeType{
	vantage.CursorDefault: ebiten.CursorShapeDefault,
	vantage.CursorText:    ebiten.CursorShapeText,
	vantage.CursorPointer: ebiten.CursorShapePointer,
}
