package scene

import "github.com/go-gl/mathgl/mgl32"

// Mesh is an indexed line mesh in model space.
type Mesh struct {
	Vertices []mgl32.Vec3
	Edges    [][2]int
}

// Cube returns a cube of the given edge length centred on the origin.
func Cube(size float32) Mesh {
	h := size / 2
	m := Mesh{Vertices: make([]mgl32.Vec3, 0, 8)}
	for i := 0; i < 8; i++ {
		x, y, z := -h, -h, -h
		if i&1 != 0 {
			x = h
		}
		if i&2 != 0 {
			y = h
		}
		if i&4 != 0 {
			z = h
		}
		m.Vertices = append(m.Vertices, mgl32.Vec3{x, y, z})
	}
	// Vertices differing in exactly one bit share an edge.
	for a := 0; a < 8; a++ {
		for _, bit := range []int{1, 2, 4} {
			if b := a | bit; b != a {
				m.Edges = append(m.Edges, [2]int{a, b})
			}
		}
	}
	return m
}

// Grid returns a square grid on the y=0 plane with cells×cells cells of the
// given spacing, centred on the origin.
func Grid(cells int, spacing float32) Mesh {
	if cells < 1 {
		cells = 1
	}
	half := float32(cells) * spacing / 2
	var m Mesh
	for i := 0; i <= cells; i++ {
		o := -half + float32(i)*spacing
		n := len(m.Vertices)
		m.Vertices = append(m.Vertices,
			mgl32.Vec3{o, 0, -half}, mgl32.Vec3{o, 0, half},
			mgl32.Vec3{-half, 0, o}, mgl32.Vec3{half, 0, o},
		)
		m.Edges = append(m.Edges, [2]int{n, n + 1}, [2]int{n + 2, n + 3})
	}
	return m
}

// Cross returns three axis-aligned line segments of the given length meeting
// at the origin.
func Cross(size float32) Mesh {
	h := size / 2
	return Mesh{
		Vertices: []mgl32.Vec3{
			{-h, 0, 0}, {h, 0, 0},
			{0, -h, 0}, {0, h, 0},
			{0, 0, -h}, {0, 0, h},
		},
		Edges: [][2]int{{0, 1}, {2, 3}, {4, 5}},
	}
}
