package ebitenhost

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/vantage"
	"github.com/phanxgames/vantage/scene"
)

// ClearColor fills the screen before the scene is drawn.
var ClearColor = color.RGBA{R: 25, G: 26, B: 30, A: 255}

// Backend draws frames onto the Ebitengine screen image. The screen is only
// valid during Game.Draw, which sets it before dispatching the redraw.
type Backend struct {
	target *ebiten.Image
	scene  *scene.Scene
	faces  map[vantage.TextureID]text.Face
	size   vantage.Size
}

// NewBackend returns a backend drawing sc behind the overlay. sc may be nil.
func NewBackend(sc *scene.Scene) *Backend {
	return &Backend{
		scene: sc,
		faces: make(map[vantage.TextureID]text.Face),
	}
}

// SetTarget sets the image the next Render draws onto.
func (b *Backend) SetTarget(img *ebiten.Image) { b.target = img }

// Render draws the frame. A target whose bounds no longer match the frame's
// surface size reports the surface as outdated.
func (b *Backend) Render(fr *vantage.Frame) vantage.FrameOutcome {
	if b.target == nil {
		return vantage.Transient("no render target")
	}
	if err := checkSurface(b.target.Bounds().Dx(), b.target.Bounds().Dy(), fr.Screen.SizePx); err != nil {
		return vantage.OutcomeFromError(err)
	}
	b.applyTextures(fr.Textures)

	b.target.Fill(ClearColor)
	if b.scene != nil {
		for _, seg := range b.scene.Project(fr.ViewProjection, fr.Screen.SizePx) {
			vector.StrokeLine(b.target, seg.From[0], seg.From[1], seg.To[0], seg.To[1], 1, seg.Color, true)
		}
	}
	b.drawPrimitives(fr.Primitives, fr.Screen.PixelsPerPoint)
	return vantage.Presented()
}

// Resize records the surface size. Ebitengine resizes the screen image
// itself; the size is used to validate later frames.
func (b *Backend) Resize(size vantage.Size) {
	b.size = size
	vantage.Logger().Debug("ebitenhost: surface resized",
		slog.Uint64("width", uint64(size.Width)), slog.Uint64("height", uint64(size.Height)))
}

// checkSurface reports ErrSurfaceOutdated when the target is not the size the
// frame was laid out for.
func checkSurface(w, h int, want vantage.Size) error {
	if uint32(w) != want.Width || uint32(h) != want.Height {
		return vantage.ErrSurfaceOutdated
	}
	return nil
}

func (b *Backend) applyTextures(d vantage.TexturesDelta) {
	for _, id := range d.Set {
		b.faces[id] = newFace(id)
	}
	for _, id := range d.Free {
		delete(b.faces, id)
	}
}

// newFace returns the face backing a texture id. The overlay only uses the
// font texture.
func newFace(vantage.TextureID) text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

func (b *Backend) drawPrimitives(prims []vantage.Primitive, ppp float32) {
	if ppp <= 0 {
		ppp = 1
	}
	for _, p := range prims {
		x, y, w, h := p.Rect.X*ppp, p.Rect.Y*ppp, p.Rect.Width*ppp, p.Rect.Height*ppp
		switch p.Kind {
		case vantage.PrimitiveFill:
			vector.DrawFilledRect(b.target, x, y, w, h, p.Color, false)
		case vantage.PrimitiveOutline:
			vector.StrokeRect(b.target, x, y, w, h, ppp, p.Color, false)
		case vantage.PrimitiveText:
			face, ok := b.faces[p.Texture]
			if !ok {
				continue
			}
			op := &text.DrawOptions{}
			op.GeoM.Scale(float64(ppp), float64(ppp))
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.ScaleWithColor(p.Color)
			text.Draw(b.target, p.Text, face, op)
		}
	}
}
