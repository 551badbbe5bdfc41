package loader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// gltfLoaderBackendImpl flattens the default scene of a glTF/GLB file into world-space triangles.
type gltfLoaderBackendImpl struct{}

var _ loaderBackend = &gltfLoaderBackendImpl{}

func newGLTFLoaderBackend() loaderBackend {
	return &gltfLoaderBackendImpl{}
}

func (b *gltfLoaderBackendImpl) Decode(data []byte, baseDir string) (triangleSoup, error) {
	parser := newGLTFParser()
	if err := parser.Parse(data, baseDir); err != nil {
		return triangleSoup{}, err
	}
	doc := parser.Document()

	var soup triangleSoup
	visit := func(meshIndex int, world mgl64.Mat4) error {
		if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
			return fmt.Errorf("mesh index %d out of range", meshIndex)
		}
		for i, prim := range doc.Meshes[meshIndex].Primitives {
			if err := appendPrimitive(parser, prim, world, &soup); err != nil {
				return fmt.Errorf("mesh %d primitive %d: %w", meshIndex, i, err)
			}
		}
		return nil
	}

	roots := sceneRoots(doc)
	if roots == nil {
		// No scene graph: take every mesh untransformed.
		for i := range doc.Meshes {
			if err := visit(i, mgl64.Ident4()); err != nil {
				return triangleSoup{}, err
			}
		}
		return soup, nil
	}

	var walk func(node int, parent mgl64.Mat4, depth int) error
	walk = func(node int, parent mgl64.Mat4, depth int) error {
		if node < 0 || node >= len(doc.Nodes) {
			return fmt.Errorf("node index %d out of range", node)
		}
		if depth > len(doc.Nodes) {
			return fmt.Errorf("node %d: hierarchy contains a cycle", node)
		}
		n := &doc.Nodes[node]
		world := parent.Mul4(nodeTransform(n))
		if n.Mesh != nil {
			if err := visit(*n.Mesh, world); err != nil {
				return err
			}
		}
		for _, child := range n.Children {
			if err := walk(child, world, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	for _, root := range roots {
		if err := walk(root, mgl64.Ident4(), 0); err != nil {
			return triangleSoup{}, err
		}
	}
	return soup, nil
}

// sceneRoots returns the root nodes of the default scene (or the first scene), or nil when the
// document has no scenes.
func sceneRoots(doc *gltfDocument) []int {
	if len(doc.Scenes) == 0 {
		return nil
	}
	scene := 0
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		scene = *doc.Scene
	}
	return doc.Scenes[scene].Nodes
}

// nodeTransform returns the node's local matrix: Matrix if given, else T * R * S.
func nodeTransform(n *gltfNode) mgl64.Mat4 {
	if n.Matrix != nil {
		return mgl64.Mat4(*n.Matrix)
	}
	m := mgl64.Ident4()
	if n.Translation != nil {
		t := n.Translation
		m = m.Mul4(mgl64.Translate3D(t[0], t[1], t[2]))
	}
	if n.Rotation != nil {
		r := n.Rotation
		q := mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}}
		m = m.Mul4(q.Normalize().Mat4())
	}
	if n.Scale != nil {
		s := n.Scale
		m = m.Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
	}
	return m
}

// appendPrimitive de-indexes one triangle primitive into soup, transformed by world.
func appendPrimitive(parser gltfParser, prim gltfPrimitive, world mgl64.Mat4, soup *triangleSoup) error {
	mode := gltfPrimitiveModeTriangles
	if prim.Mode != nil {
		mode = *prim.Mode
	}

	posIndex, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := parser.ReadVec3Accessor(posIndex)
	if err != nil {
		return fmt.Errorf("POSITION: %w", err)
	}

	var normals []mgl64.Vec3
	if normIndex, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = parser.ReadVec3Accessor(normIndex); err != nil {
			return fmt.Errorf("NORMAL: %w", err)
		}
		if len(normals) != len(positions) {
			return fmt.Errorf("NORMAL count %d does not match POSITION count %d", len(normals), len(positions))
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if indices, err = parser.ReadIndicesAccessor(*prim.Indices); err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	tris, err := triangulate(indices, mode)
	if err != nil {
		return err
	}

	// Normals transform by the inverse transpose of the upper 3x3.
	normalMatrix := world.Mat3().Inv().Transpose()

	// Soups must stay parallel: once a primitive without normals is seen, drop them all.
	keepNormals := normals != nil && (len(soup.normals) == len(soup.positions))
	if !keepNormals {
		soup.normals = nil
	}

	for _, idx := range tris {
		if int(idx) >= len(positions) {
			return fmt.Errorf("index %d out of range of %d vertices", idx, len(positions))
		}
		soup.positions = append(soup.positions, world.Mul4x1(positions[idx].Vec4(1)).Vec3())
		if keepNormals {
			soup.normals = append(soup.normals, normalMatrix.Mul3x1(normals[idx]).Normalize())
		}
	}
	return nil
}

// triangulate turns an index list of the given topology into a plain triangle list.
func triangulate(indices []uint32, mode int) ([]uint32, error) {
	switch mode {
	case gltfPrimitiveModeTriangles:
		return indices[:len(indices)-len(indices)%3], nil
	case gltfPrimitiveModeTriangleStrip:
		var out []uint32
		for i := 2; i < len(indices); i++ {
			if i%2 == 0 {
				out = append(out, indices[i-2], indices[i-1], indices[i])
			} else {
				out = append(out, indices[i-1], indices[i-2], indices[i])
			}
		}
		return out, nil
	case gltfPrimitiveModeTriangleFan:
		var out []uint32
		for i := 2; i < len(indices); i++ {
			out = append(out, indices[0], indices[i-1], indices[i])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported primitive mode %d", mode)
	}
}
