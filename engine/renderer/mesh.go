package renderer

import "github.com/go-gl/mathgl/mgl64"

// Primitive selects how a Mesh's positions are assembled.
type Primitive int

const (
	// PrimitiveTriangles draws every three positions as one triangle.
	PrimitiveTriangles Primitive = iota
	// PrimitiveLines draws every two positions as one segment.
	PrimitiveLines
)

// Mesh is an immediate-mode draw item: positions (and, for lit meshes, per-vertex normals), one
// colour and a model matrix.
type Mesh struct {
	Name      string
	Primitive Primitive
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	Color     mgl64.Vec4
	Model     mgl64.Mat4

	// Lit meshes take part in lighting; unlit meshes are drawn with their flat colour.
	Lit bool

	// Specular is the specular reflectance and Shininess its exponent, for lit meshes.
	Specular  mgl64.Vec4
	Shininess float64
}

// NewCube returns an axis-aligned lit cube of edge length size centered on the origin, as 12
// outward-facing counter-clockwise triangles.
//
// Parameters:
//   - size: edge length
//   - color: RGBA surface colour
//
// Returns:
//   - *Mesh: the cube
func NewCube(size float64, color mgl64.Vec4) *Mesh {
	h := size / 2
	faces := []struct {
		normal  mgl64.Vec3
		corners [4]mgl64.Vec3
	}{
		{mgl64.Vec3{0, 0, 1}, [4]mgl64.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},     // +Z
		{mgl64.Vec3{0, 0, -1}, [4]mgl64.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}}, // -Z
		{mgl64.Vec3{1, 0, 0}, [4]mgl64.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},     // +X
		{mgl64.Vec3{-1, 0, 0}, [4]mgl64.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}}, // -X
		{mgl64.Vec3{0, 1, 0}, [4]mgl64.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},     // +Y
		{mgl64.Vec3{0, -1, 0}, [4]mgl64.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}}, // -Y
	}

	m := &Mesh{
		Name:      "cube",
		Primitive: PrimitiveTriangles,
		Color:     color,
		Model:     mgl64.Ident4(),
		Lit:       true,
		Specular:  mgl64.Vec4{0.99, 0.94, 0.8, 1},
		Shininess: 27.9,
	}
	for _, f := range faces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			m.Positions = append(m.Positions, f.corners[i])
			m.Normals = append(m.Normals, f.normal)
		}
	}
	return m
}

// NewGrid returns an unlit square line grid in the XZ plane at height y.
//
// Parameters:
//   - halfExtent: the grid spans [-halfExtent, halfExtent] on X and Z
//   - spacing: distance between lines; must be positive
//   - y: plane height
//   - color: RGBA line colour
//
// Returns:
//   - *Mesh: the grid
func NewGrid(halfExtent, spacing, y float64, color mgl64.Vec4) *Mesh {
	m := &Mesh{
		Name:      "grid",
		Primitive: PrimitiveLines,
		Color:     color,
		Model:     mgl64.Ident4(),
	}
	if spacing <= 0 || halfExtent <= 0 {
		return m
	}
	n := int(halfExtent / spacing)
	for i := -n; i <= n; i++ {
		c := float64(i) * spacing
		m.Positions = append(m.Positions,
			mgl64.Vec3{c, y, -halfExtent}, mgl64.Vec3{c, y, halfExtent},
			mgl64.Vec3{-halfExtent, y, c}, mgl64.Vec3{halfExtent, y, c},
		)
	}
	return m
}

// NewMarker returns a small unlit three-axis cross, used to show where the light is.
func NewMarker(size float64, color mgl64.Vec4) *Mesh {
	h := size / 2
	return &Mesh{
		Name:      "marker",
		Primitive: PrimitiveLines,
		Color:     color,
		Model:     mgl64.Ident4(),
		Positions: []mgl64.Vec3{
			{-h, 0, 0}, {h, 0, 0},
			{0, -h, 0}, {0, h, 0},
			{0, 0, -h}, {0, 0, h},
		},
	}
}
