package vantage

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// XY is implemented by values displayed as two labelled component fields.
type XY interface {
	XY() (x, y *float32)
}

// XYZ is implemented by values displayed as three labelled component fields.
type XYZ interface {
	XYZ() (x, y, z *float32)
}

// Vec2Ref exposes an mgl32.Vec2 to the overlay.
type Vec2Ref struct{ V *mgl32.Vec2 }

func (r Vec2Ref) XY() (x, y *float32) { return &r.V[0], &r.V[1] }

// Vec3Ref exposes an mgl32.Vec3 to the overlay.
type Vec3Ref struct{ V *mgl32.Vec3 }

func (r Vec3Ref) XY() (x, y *float32)     { return &r.V[0], &r.V[1] }
func (r Vec3Ref) XYZ() (x, y, z *float32) { return &r.V[0], &r.V[1], &r.V[2] }

const numberRunes = "0123456789.-+eE"

func (c *OverlayContext) isOpen(id string, def bool) bool {
	open, ok := c.open[id]
	if !ok {
		c.open[id] = def
		return def
	}
	return open
}

// header draws a collapsible section header and reports whether it is open.
func (c *OverlayContext) header(id, label string) bool {
	st := c.style
	r := Rect{X: st.WindowX + st.Padding, Y: c.y, Width: st.WindowWidth - 2*st.Padding, Height: st.RowHeight}
	c.rects["header."+id] = r
	open := c.isOpen(id, true)
	if c.clicked(r) {
		open = !open
		c.open[id] = open
	}
	if c.hovered(r) {
		c.cursor = CursorPointer
	}
	marker := "+ "
	if open {
		marker = "- "
	}
	c.fill(r, colorHeaderBg)
	c.text(r.X+st.Padding, r.Y+(st.RowHeight-st.LineHeight)/2, marker+label, colorText)
	c.y += st.RowHeight + 2
	c.stripe = false
	return open
}

// row starts a grid row with a label and returns where the value column
// begins and how wide it is.
func (c *OverlayContext) row(label string) (x, w float32) {
	st := c.style
	left := st.WindowX + st.Padding
	width := st.WindowWidth - 2*st.Padding
	if c.stripe {
		c.fill(Rect{X: left, Y: c.y, Width: width, Height: st.RowHeight}, colorStripe)
	}
	c.stripe = !c.stripe
	c.text(left+st.Padding, c.y+(st.RowHeight-st.LineHeight)/2, label, colorTextDim)
	return left + st.LabelWidth, width - st.LabelWidth
}

func (c *OverlayContext) endRow() {
	c.y += c.style.RowHeight
}

func (c *OverlayContext) scalarRow(id, label string, v *float32, editable bool) bool {
	x, _ := c.row(label)
	changed := c.numberField(id, x, c.style.FieldWidth, v, editable)
	c.endRow()
	return changed
}

func (c *OverlayContext) xyRow(id, label string, v XY, editable bool) bool {
	x, w := c.row(label)
	px, py := v.XY()
	changed := c.components(id, x, w, []string{"x", "y"}, []*float32{px, py}, editable)
	c.endRow()
	return changed
}

func (c *OverlayContext) xyzRow(id, label string, v XYZ, editable bool) bool {
	x, w := c.row(label)
	px, py, pz := v.XYZ()
	changed := c.components(id, x, w, []string{"x", "y", "z"}, []*float32{px, py, pz}, editable)
	c.endRow()
	return changed
}

// components lays out one labelled number field per component across w.
func (c *OverlayContext) components(id string, x, w float32, names []string, vals []*float32, editable bool) bool {
	st := c.style
	labelW := st.CharWidth + 4
	slot := w / float32(len(vals))
	changed := false
	for i, name := range names {
		sx := x + float32(i)*slot
		c.text(sx, c.y+(st.RowHeight-st.LineHeight)/2, name, colorTextDim)
		if c.numberField(id+"."+name, sx+labelW, slot-labelW-4, vals[i], editable) {
			changed = true
		}
	}
	return changed
}

// numberField draws a single-line numeric text field. A click focuses it;
// Enter or a click elsewhere commits, Escape abandons the edit. A committed
// value that does not parse leaves v untouched. It reports whether v was
// written.
func (c *OverlayContext) numberField(id string, x, w float32, v *float32, editable bool) bool {
	st := c.style
	r := Rect{X: x, Y: c.y + 1, Width: w, Height: st.RowHeight - 2}
	c.rects[id] = r
	hot := c.hovered(r)
	focused := editable && c.focus == id
	changed := false

	if hot && editable {
		c.cursor = CursorText
	}

	if focused {
		c.focusSeen = true
		commit, cancel := false, false
		rest := c.keys[:0]
		for _, k := range c.keys {
			switch {
			case k.Key == KeyEnter && k.Modifiers == 0:
				commit = true
			case k.Key == KeyEscape && k.Modifiers == 0:
				cancel = true
			case k.Key == KeyBackspace:
				if n := len(c.editBuf); n > 0 {
					c.editBuf = c.editBuf[:n-1]
				}
			default:
				rest = append(rest, k)
			}
		}
		c.keys = rest
		for _, ch := range c.in.Text {
			if strings.ContainsRune(numberRunes, ch) {
				c.editBuf = append(c.editBuf, ch)
			}
		}
		if c.in.PrimaryPressed && !hot {
			commit = true
		}
		switch {
		case cancel:
			c.release(id)
		case commit:
			if f, err := strconv.ParseFloat(string(c.editBuf), 32); err == nil {
				*v = float32(f)
				changed = true
			}
			c.release(id)
		}
	} else if editable && c.clicked(r) {
		c.nextFocus = id
		c.pendingBuf = []rune(formatFloat(*v))
	}

	bg, border := colorFieldBg, colorOutline
	label := formatFloat(*v)
	if focused && c.nextFocus == id {
		bg, border = colorFieldEdit, colorFocus
		label = string(c.editBuf) + "_"
	}
	c.fill(r, bg)
	c.outline(r, border)
	if fit := int((w - 4) / st.CharWidth); fit > 0 && len(label) > fit {
		label = label[len(label)-fit:]
	}
	c.text(r.X+2, r.Y+(r.Height-st.LineHeight)/2, label, colorText)
	return changed
}

// release drops focus from id unless another field already claimed it.
func (c *OverlayContext) release(id string) {
	if c.nextFocus == id {
		c.nextFocus = ""
	}
}

func (c *OverlayContext) checkboxRow(id, label string, checked bool) {
	st := c.style
	x, _ := c.row(label)
	box := st.RowHeight - 6
	r := Rect{X: x, Y: c.y + 3, Width: box, Height: box}
	c.rects[id] = r
	c.fill(r, colorFieldBg)
	c.outline(r, colorOutline)
	if checked {
		c.fill(Rect{X: r.X + 3, Y: r.Y + 3, Width: box - 6, Height: box - 6}, colorCheck)
	}
	c.endRow()
}

// buttonRow draws a full-width button and reports whether it was clicked.
func (c *OverlayContext) buttonRow(id, label string) bool {
	st := c.style
	r := Rect{
		X:      st.WindowX + st.Padding,
		Y:      c.y + 2,
		Width:  st.WindowWidth - 2*st.Padding,
		Height: st.RowHeight,
	}
	c.rects[id] = r
	hot := c.hovered(r)
	bg := colorButton
	if hot {
		bg = colorButtonHot
		c.cursor = CursorPointer
	}
	c.fill(r, bg)
	tw := float32(len(label)) * st.CharWidth
	c.text(r.X+(r.Width-tw)/2, r.Y+(r.Height-st.LineHeight)/2, label, colorText)
	c.y += st.RowHeight + 4
	c.stripe = false
	return c.clicked(r)
}
