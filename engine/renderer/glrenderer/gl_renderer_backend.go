// Package glrenderer implements renderer.RendererBackend on OpenGL 2.1 fixed function. The GL
// context must be current on the calling thread, which glwindow.NewWindow arranges.
package glrenderer

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-turntable/engine/renderer"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl64"
)

type glBackendImpl struct {
	lineWidth float32
}

var _ renderer.RendererBackend = &glBackendImpl{}

// GLBackendOption is a functional option for configuring the OpenGL backend.
type GLBackendOption func(*glBackendImpl)

// WithLineWidth sets the rasterised width of line meshes in pixels.
func WithLineWidth(width float32) GLBackendOption {
	return func(b *glBackendImpl) {
		if width > 0 {
			b.lineWidth = width
		}
	}
}

// NewBackend returns an OpenGL 2.1 backend. GL entry points are loaded by Init.
func NewBackend(options ...GLBackendOption) renderer.RendererBackend {
	b := &glBackendImpl{lineWidth: 1}
	for _, opt := range options {
		opt(b)
	}
	return b
}

// NewRenderer is shorthand for renderer.NewRenderer(NewBackend(), options...).
func NewRenderer(options ...renderer.RendererBuilderOption) (renderer.Renderer, error) {
	return renderer.NewRenderer(NewBackend(), options...)
}

func (b *glBackendImpl) Type() renderer.RendererBackendType {
	return renderer.BackendTypeOpenGL
}

func (b *glBackendImpl) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load OpenGL: %w", err)
	}
	log.Printf("[Renderer] OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ShadeModel(gl.SMOOTH)
	gl.Enable(gl.NORMALIZE)
	gl.Enable(gl.MULTISAMPLE)

	// Specular highlights use the real eye position rather than an infinite viewer.
	gl.LightModeli(gl.LIGHT_MODEL_LOCAL_VIEWER, gl.TRUE)
	black := [4]float32{0, 0, 0, 1}
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &black[0])
	gl.Enable(gl.LIGHT0)

	gl.Enable(gl.COLOR_MATERIAL)
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)

	return glError("init")
}

func (b *glBackendImpl) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *glBackendImpl) BeginFrame(clear mgl64.Vec4) {
	gl.ClearColor(float32(clear.X()), float32(clear.Y()), float32(clear.Z()), float32(clear.W()))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *glBackendImpl) SetCamera(view, projection mgl64.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixd(&projection[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&view[0])
}

func (b *glBackendImpl) SetLight(params renderer.LightParams) {
	l := params.Lighting
	if !l.Enabled {
		gl.Disable(gl.LIGHTING)
		return
	}
	gl.Enable(gl.LIGHTING)

	// GL transforms the position by the current modelview, which SetCamera left at the view matrix.
	pos := [4]float32{float32(params.Position.X()), float32(params.Position.Y()), float32(params.Position.Z()), 1}
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &pos[0])

	ambient := term(params.Ambient, l.Ambient)
	diffuse := term(params.Diffuse, l.Diffuse)
	specular := term(params.Specular, l.Specular)
	gl.Lightfv(gl.LIGHT0, gl.AMBIENT, &ambient[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &diffuse[0])
	gl.Lightfv(gl.LIGHT0, gl.SPECULAR, &specular[0])
}

func (b *glBackendImpl) DrawMesh(m *renderer.Mesh) {
	if len(m.Positions) == 0 {
		return
	}

	lighting := gl.IsEnabled(gl.LIGHTING)
	lit := m.Lit && lighting
	switch {
	case lit:
		specular := term(m.Specular, true)
		gl.Materialfv(gl.FRONT_AND_BACK, gl.SPECULAR, &specular[0])
		gl.Materialf(gl.FRONT_AND_BACK, gl.SHININESS, float32(m.Shininess))
	case lighting:
		gl.Disable(gl.LIGHTING)
		defer gl.Enable(gl.LIGHTING)
	}

	gl.PushMatrix()
	gl.MultMatrixd(&m.Model[0])

	mode := uint32(gl.TRIANGLES)
	if m.Primitive == renderer.PrimitiveLines {
		mode = gl.LINES
		gl.LineWidth(b.lineWidth)
	}

	gl.Color4d(m.Color.X(), m.Color.Y(), m.Color.Z(), m.Color.W())
	gl.Begin(mode)
	for i, p := range m.Positions {
		if lit && i < len(m.Normals) {
			n := m.Normals[i]
			gl.Normal3d(n.X(), n.Y(), n.Z())
		}
		gl.Vertex3d(p.X(), p.Y(), p.Z())
	}
	gl.End()

	gl.PopMatrix()
}

func (b *glBackendImpl) EndFrame() {
	gl.Flush()
	if err := glError("frame"); err != nil {
		log.Printf("[Renderer] %v", err)
	}
}

func (b *glBackendImpl) Release() {}

func term(c mgl64.Vec4, on bool) [4]float32 {
	if !on {
		return [4]float32{0, 0, 0, 1}
	}
	return [4]float32{float32(c.X()), float32(c.Y()), float32(c.Z()), float32(c.W())}
}

func glError(stage string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x during %s", code, stage)
	}
	return nil
}
