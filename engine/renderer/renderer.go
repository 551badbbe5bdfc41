package renderer

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-turntable/engine/light"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrClosed is returned by Render after Close.
var ErrClosed = errors.New("renderer is closed")

// Frame describes everything that changes between two renders.
type Frame struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Eye        mgl64.Vec3

	LightPosition mgl64.Vec3
	LightAmbient  mgl64.Vec4
	LightDiffuse  mgl64.Vec4
	LightSpecular mgl64.Vec4
	Lighting      light.Lighting

	// Center is the point the camera orbits. With LightVector set a line is drawn from it to the light.
	Center      mgl64.Vec3
	LightVector bool

	ClearColor mgl64.Vec4
}

// Renderer draws the turntable scene: the subject mesh, an optional ground grid and a marker at the
// light position.
type Renderer interface {
	// Resize updates the viewport. Non-positive sizes (a minimised window) are ignored.
	//
	// Parameters:
	//   - width: new framebuffer width in pixels
	//   - height: new framebuffer height in pixels
	Resize(width, height int)

	// Render draws one frame.
	//
	// Parameters:
	//   - frame: camera, light and clear state for this frame
	//
	// Returns:
	//   - error: ErrClosed if the renderer has been closed
	Render(frame Frame) error

	// AddMesh appends a mesh to the scene. Meshes are drawn in insertion order after the grid.
	AddMesh(m *Mesh)

	// Meshes returns the scene meshes, grid and marker excluded.
	Meshes() []*Mesh

	// Backend returns the backend the renderer issues calls to.
	Backend() RendererBackend

	// Frames returns the number of frames rendered so far.
	Frames() uint64

	// Close releases the backend. Further Render calls fail with ErrClosed.
	Close()
}

type rendererImpl struct {
	backend RendererBackend

	width  int
	height int

	grid       *Mesh
	marker     *Mesh
	vector     *Mesh
	meshes     []*Mesh
	showMarker bool

	frames uint64
	closed bool
}

var _ Renderer = &rendererImpl{}

// NewRenderer initialises the backend and returns a renderer drawing through it. Without
// WithMesh the scene holds a single unit cube.
//
// Parameters:
//   - backend: the graphics API implementation
//   - options: variadic list of RendererBuilderOption functions
//
// Returns:
//   - Renderer: the renderer
//   - error: error if the backend fails to initialise
func NewRenderer(backend RendererBackend, options ...RendererBuilderOption) (Renderer, error) {
	r := &rendererImpl{
		backend:    backend,
		width:      1,
		height:     1,
		grid:       NewGrid(DefaultGridExtent, DefaultGridSpacing, DefaultGridHeight, mgl64.Vec4{0.35, 0.35, 0.38, 1}),
		marker:     NewMarker(DefaultMarkerSize, mgl64.Vec4{1, 1, 0, 1}),
		vector:     &Mesh{Name: "light_vector", Primitive: PrimitiveLines, Color: mgl64.Vec4{1, 1, 0, 1}, Model: mgl64.Ident4()},
		showMarker: true,
	}

	for _, opt := range options {
		opt(r)
	}

	if len(r.meshes) == 0 {
		r.meshes = append(r.meshes, NewCube(1, mgl64.Vec4{0.78, 0.57, 0.11, 1}))
	}

	if err := backend.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise %s backend: %w", backend.Type(), err)
	}
	backend.Viewport(r.width, r.height)
	log.Printf("[Renderer] %s backend ready, %d mesh(es)", backend.Type(), len(r.meshes))
	return r, nil
}

func (r *rendererImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.backend.Viewport(width, height)
}

func (r *rendererImpl) Render(frame Frame) error {
	if r.closed {
		return ErrClosed
	}

	r.backend.BeginFrame(frame.ClearColor)
	r.backend.SetCamera(frame.View, frame.Projection)
	r.backend.SetLight(LightParams{
		Position: frame.LightPosition,
		Ambient:  frame.LightAmbient,
		Diffuse:  frame.LightDiffuse,
		Specular: frame.LightSpecular,
		Lighting: frame.Lighting,
	})

	if r.grid != nil {
		r.backend.DrawMesh(r.grid)
	}
	for _, m := range r.meshes {
		r.backend.DrawMesh(m)
	}
	if r.showMarker {
		r.marker.Model = mgl64.Translate3D(frame.LightPosition.X(), frame.LightPosition.Y(), frame.LightPosition.Z())
		r.backend.DrawMesh(r.marker)
	}
	if frame.LightVector {
		r.vector.Positions = append(r.vector.Positions[:0], frame.Center, frame.LightPosition)
		r.backend.DrawMesh(r.vector)
	}

	r.backend.EndFrame()
	r.frames++
	return nil
}

func (r *rendererImpl) AddMesh(m *Mesh) {
	if m == nil {
		return
	}
	r.meshes = append(r.meshes, m)
}

func (r *rendererImpl) Meshes() []*Mesh {
	return r.meshes
}

func (r *rendererImpl) Backend() RendererBackend {
	return r.backend
}

func (r *rendererImpl) Frames() uint64 {
	return r.frames
}

func (r *rendererImpl) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.backend.Release()
	log.Printf("[Renderer] closed after %d frames", r.frames)
}
