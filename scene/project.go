package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/vantage"
	"github.com/yohamta/donburi"
)

// nearW is the smallest clip-space w kept when clipping edges against the
// camera plane.
const nearW = 1e-4

// Segment is a line in screen pixels, origin top-left.
type Segment struct {
	From, To mgl32.Vec2
	Color    color.RGBA
}

// Project transforms every mesh edge by viewProj and maps it onto a screen of
// the given pixel size. Edges behind the camera are dropped; edges crossing
// the camera plane are clipped to it. An empty size yields no segments.
func (s *Scene) Project(viewProj mgl32.Mat4, size vantage.Size) []Segment {
	if size.Empty() {
		return nil
	}
	w, h := float32(size.Width), float32(size.Height)
	var out []Segment
	var clip []mgl32.Vec4
	s.drawables.Each(s.world, func(e *donburi.Entry) {
		tr := Transform.Get(e)
		wf := Wireframe.Get(e)
		model := mgl32.Translate3D(tr.Position[0], tr.Position[1], tr.Position[2]).
			Mul4(mgl32.Scale3D(tr.Scale, tr.Scale, tr.Scale))
		mvp := viewProj.Mul4(model)

		clip = clip[:0]
		for _, v := range wf.Mesh.Vertices {
			clip = append(clip, mvp.Mul4x1(v.Vec4(1)))
		}
		for _, edge := range wf.Mesh.Edges {
			a, b, ok := clipEdge(clip[edge[0]], clip[edge[1]])
			if !ok {
				continue
			}
			out = append(out, Segment{
				From:  toScreen(a, w, h),
				To:    toScreen(b, w, h),
				Color: wf.Color,
			})
		}
	})
	return out
}

// clipEdge clips a clip-space edge against w = nearW.
func clipEdge(a, b mgl32.Vec4) (mgl32.Vec4, mgl32.Vec4, bool) {
	aIn, bIn := a[3] >= nearW, b[3] >= nearW
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	}
	t := (nearW - a[3]) / (b[3] - a[3])
	p := a.Add(b.Sub(a).Mul(t))
	if aIn {
		return a, p, true
	}
	return p, b, true
}

// toScreen is the inverse of the cursor NDC mapping.
func toScreen(c mgl32.Vec4, w, h float32) mgl32.Vec2 {
	x, y := c[0]/c[3], c[1]/c[3]
	return mgl32.Vec2{(x + 1) / 2 * w, (1 - y) / 2 * h}
}

// PickGround casts a ray through an NDC point and intersects it with the
// y=0 plane. It reports false if viewProj is singular or the ray is parallel
// to or points away from the plane.
func PickGround(viewProj mgl32.Mat4, ndc mgl32.Vec2) (mgl32.Vec3, bool) {
	if viewProj.Det() == 0 {
		return mgl32.Vec3{}, false
	}
	inv := viewProj.Inv()
	near := inv.Mul4x1(mgl32.Vec4{ndc[0], ndc[1], -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndc[0], ndc[1], 1, 1})
	if near[3] == 0 || far[3] == 0 {
		return mgl32.Vec3{}, false
	}
	origin := near.Vec3().Mul(1 / near[3])
	dir := far.Vec3().Mul(1 / far[3]).Sub(origin)
	if dir[1] > -1e-6 && dir[1] < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := -origin[1] / dir[1]
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	p := origin.Add(dir.Mul(t))
	p[1] = 0
	return p, true
}
