// Package loader imports model files as renderer meshes. glTF 2.0 (.gltf, .glb) and Wavefront OBJ
// geometry are supported.
package loader

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-turntable/engine/renderer"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnsupportedFormat is returned for files whose extension names no known format.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// ErrEmptyModel is returned when a file decodes to no triangles.
var ErrEmptyModel = errors.New("model has no triangles")

// Format identifies a model file format.
type Format int

const (
	FormatGLTF Format = iota // .gltf and .glb
	FormatOBJ
)

func (f Format) String() string {
	switch f {
	case FormatGLTF:
		return "gltf"
	case FormatOBJ:
		return "obj"
	default:
		return "unknown"
	}
}

// FormatForPath picks the format from a file extension.
//
// Parameters:
//   - path: the model file path
//
// Returns:
//   - Format: the detected format
//   - error: ErrUnsupportedFormat for unknown extensions
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return FormatGLTF, nil
	case ".obj":
		return FormatOBJ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// loader is the implementation of the Loader interface.
type loader struct {
	backends map[Format]loaderBackend
	cache    map[string]*renderer.Mesh

	fitSize   float64
	color     mgl64.Vec4
	specular  mgl64.Vec4
	shininess float64
}

// Loader imports model files as lit triangle meshes and caches them by path.
type Loader interface {
	// Load imports a model file, or returns the cached mesh for a path loaded before.
	//
	// Parameters:
	//   - path: the model file path; the extension selects the format
	//
	// Returns:
	//   - *renderer.Mesh: the mesh, with per-vertex normals
	//   - error: error if the file cannot be read or decoded
	Load(path string) (*renderer.Mesh, error)

	// LoadBytes imports a model from memory and caches it under name. External glTF buffers are
	// resolved against the working directory.
	//
	// Parameters:
	//   - name: cache key and mesh name
	//   - data: the file contents
	//   - format: the format of data
	//
	// Returns:
	//   - *renderer.Mesh: the mesh
	//   - error: error if decoding fails
	LoadBytes(name string, data []byte, format Format) (*renderer.Mesh, error)

	// Get returns a cached mesh, or nil.
	Get(name string) *renderer.Mesh
}

var _ Loader = &loader{}

// NewLoader creates a Loader. Meshes are fitted into a unit cube and coloured brass unless
// options say otherwise.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions
//
// Returns:
//   - Loader: the loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		backends: map[Format]loaderBackend{
			FormatGLTF: newGLTFLoaderBackend(),
			FormatOBJ:  newOBJLoaderBackend(),
		},
		cache:     make(map[string]*renderer.Mesh),
		fitSize:   1,
		color:     mgl64.Vec4{0.78, 0.57, 0.11, 1},
		specular:  mgl64.Vec4{0.99, 0.94, 0.8, 1},
		shininess: 27.9,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *loader) Load(path string) (*renderer.Mesh, error) {
	if m, ok := l.cache[path]; ok {
		return m, nil
	}
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := l.decode(filepath.Base(path), data, filepath.Dir(path), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.cache[path] = m
	log.Printf("[Loader] %s: %d triangles", path, len(m.Positions)/3)
	return m, nil
}

func (l *loader) LoadBytes(name string, data []byte, format Format) (*renderer.Mesh, error) {
	m, err := l.decode(name, data, ".", format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	l.cache[name] = m
	return m, nil
}

func (l *loader) Get(name string) *renderer.Mesh {
	return l.cache[name]
}

func (l *loader) decode(name string, data []byte, baseDir string, format Format) (*renderer.Mesh, error) {
	backend, ok := l.backends[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	soup, err := backend.Decode(data, baseDir)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if len(soup.positions) < 3 {
		return nil, ErrEmptyModel
	}

	if len(soup.normals) != len(soup.positions) {
		soup.normals = flatNormals(soup.positions)
	}
	if l.fitSize > 0 {
		fit(soup.positions, l.fitSize)
	}

	return &renderer.Mesh{
		Name:      name,
		Primitive: renderer.PrimitiveTriangles,
		Positions: soup.positions,
		Normals:   soup.normals,
		Color:     l.color,
		Model:     mgl64.Ident4(),
		Lit:       true,
		Specular:  l.specular,
		Shininess: l.shininess,
	}, nil
}

// flatNormals gives every triangle corner its face normal. Degenerate triangles get +Y.
func flatNormals(positions []mgl64.Vec3) []mgl64.Vec3 {
	normals := make([]mgl64.Vec3, len(positions))
	for i := 0; i+2 < len(positions); i += 3 {
		a, b, c := positions[i], positions[i+1], positions[i+2]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Len() < 1e-12 {
			n = mgl64.Vec3{0, 1, 0}
		} else {
			n = n.Normalize()
		}
		normals[i], normals[i+1], normals[i+2] = n, n, n
	}
	return normals
}

// fit centers the bounding box on the origin and scales uniformly so its largest side is size.
func fit(positions []mgl64.Vec3, size float64) {
	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range positions {
		for i := range 3 {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}

	extent := hi.Sub(lo)
	largest := math.Max(extent[0], math.Max(extent[1], extent[2]))
	if largest <= 0 {
		return
	}
	center := lo.Add(hi).Mul(0.5)
	scale := size / largest
	for i, p := range positions {
		positions[i] = p.Sub(center).Mul(scale)
	}
}
