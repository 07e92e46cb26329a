package scene

import (
	"cmp"
	"image/color"
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/vantage"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// TransformData places a mesh in the world.
type TransformData struct {
	Position mgl32.Vec3
	Scale    float32
}

// WireframeData is a mesh drawn as lines in a single color.
type WireframeData struct {
	Mesh  Mesh
	Color color.RGBA
}

// MarkerData tags a pick marker. Seq orders markers by placement.
type MarkerData struct {
	Seq int
}

var (
	Transform = donburi.NewComponentType[TransformData](TransformData{Scale: 1})
	Wireframe = donburi.NewComponentType[WireframeData]()
	Marker    = donburi.NewComponentType[MarkerData]()
)

// MaxMarkers bounds how many pick markers are kept. The oldest is removed
// when a new one would exceed it.
const MaxMarkers = 16

var (
	colorGrid   = color.RGBA{R: 70, G: 74, B: 84, A: 255}
	colorCube   = color.RGBA{R: 120, G: 190, B: 255, A: 255}
	colorMarker = color.RGBA{R: 255, G: 170, B: 60, A: 255}
)

// Scene is a donburi world of wireframe meshes.
type Scene struct {
	world     donburi.World
	drawables *donburi.Query
	markers   *donburi.Query
	seq       int
}

// NewEmpty returns a scene with no entities.
func NewEmpty() *Scene {
	return &Scene{
		world:     donburi.NewWorld(),
		drawables: donburi.NewQuery(filter.Contains(Transform, Wireframe)),
		markers:   donburi.NewQuery(filter.Contains(Marker)),
	}
}

// New returns a scene holding a ground grid and a unit cube resting on it.
func New() *Scene {
	s := NewEmpty()
	s.Add(Grid(10, 0.5), mgl32.Vec3{}, 1, colorGrid)
	s.Add(Cube(1), mgl32.Vec3{0, 0.5, 0}, 1, colorCube)
	return s
}

// World returns the underlying donburi world.
func (s *Scene) World() donburi.World { return s.world }

// Add creates a wireframe entity.
func (s *Scene) Add(m Mesh, pos mgl32.Vec3, scale float32, c color.RGBA) donburi.Entity {
	e := s.world.Create(Transform, Wireframe)
	entry := s.world.Entry(e)
	Transform.SetValue(entry, TransformData{Position: pos, Scale: scale})
	Wireframe.SetValue(entry, WireframeData{Mesh: m, Color: c})
	return e
}

// Len returns the number of drawable entities.
func (s *Scene) Len() int { return s.drawables.Count(s.world) }

// Pick resolves an NDC point against the ground plane and drops a marker
// there. It reports false when the ray through the point misses the plane.
func (s *Scene) Pick(viewProj mgl32.Mat4, ndc mgl32.Vec2) (mgl32.Vec3, bool) {
	p, ok := PickGround(viewProj, ndc)
	if !ok {
		return mgl32.Vec3{}, false
	}
	s.placeMarker(p)
	vantage.Logger().Debug("scene: marker placed",
		slog.Float64("x", float64(p[0])), slog.Float64("z", float64(p[2])))
	return p, true
}

func (s *Scene) placeMarker(p mgl32.Vec3) {
	if s.markers.Count(s.world) >= MaxMarkers {
		var oldest *donburi.Entry
		s.markers.Each(s.world, func(e *donburi.Entry) {
			if oldest == nil || Marker.Get(e).Seq < Marker.Get(oldest).Seq {
				oldest = e
			}
		})
		s.world.Remove(oldest.Entity())
	}
	s.seq++
	e := s.world.Create(Transform, Wireframe, Marker)
	entry := s.world.Entry(e)
	Transform.SetValue(entry, TransformData{Position: p, Scale: 1})
	Wireframe.SetValue(entry, WireframeData{Mesh: Cross(0.3), Color: colorMarker})
	Marker.SetValue(entry, MarkerData{Seq: s.seq})
}

// Markers returns marker positions in placement order.
func (s *Scene) Markers() []mgl32.Vec3 {
	type placed struct {
		seq int
		pos mgl32.Vec3
	}
	var all []placed
	s.markers.Each(s.world, func(e *donburi.Entry) {
		all = append(all, placed{Marker.Get(e).Seq, Transform.Get(e).Position})
	})
	slices.SortFunc(all, func(a, b placed) int { return cmp.Compare(a.seq, b.seq) })
	out := make([]mgl32.Vec3, len(all))
	for i, p := range all {
		out[i] = p.pos
	}
	return out
}

// ClearMarkers removes every pick marker.
func (s *Scene) ClearMarkers() {
	var doomed []donburi.Entity
	s.markers.Each(s.world, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, e := range doomed {
		s.world.Remove(e)
	}
}
