package renderer

import (
	"github.com/Carmen-Shannon/oxy-turntable/engine/light"
	"github.com/go-gl/mathgl/mgl64"
)

// RendererBackendType identifies the graphics API implementation behind a Renderer.
type RendererBackendType int

const (
	// BackendTypeOpenGL selects the OpenGL 2.1 fixed-function backend.
	BackendTypeOpenGL RendererBackendType = iota
)

func (t RendererBackendType) String() string {
	if t == BackendTypeOpenGL {
		return "opengl"
	}
	return "unknown"
}

// LightParams is what a backend needs to light one frame.
type LightParams struct {
	// Position is the world-space light position.
	Position mgl64.Vec3

	Ambient  mgl64.Vec4
	Diffuse  mgl64.Vec4
	Specular mgl64.Vec4

	// Lighting selects which terms are active. Disabled terms are uploaded as black.
	Lighting light.Lighting
}

// RendererBackend is the graphics API seam of the Renderer. The Renderer decides what to draw and
// in which order; the backend only issues API calls. All methods run on the thread owning the context.
type RendererBackend interface {
	// Type reports which API this backend drives.
	Type() RendererBackendType

	// Init loads API entry points and sets global state. Called once by NewRenderer.
	//
	// Returns:
	//   - error: error if the API could not be initialised
	Init() error

	// Viewport sets the drawable area in pixels.
	Viewport(width, height int)

	// BeginFrame clears colour and depth.
	//
	// Parameters:
	//   - clear: RGBA clear colour
	BeginFrame(clear mgl64.Vec4)

	// SetCamera uploads the projection and view matrices.
	SetCamera(view, projection mgl64.Mat4)

	// SetLight uploads the light for the current view. Must follow SetCamera.
	SetLight(params LightParams)

	// DrawMesh draws one mesh with its model matrix.
	DrawMesh(m *Mesh)

	// EndFrame flushes pending work. Presenting is the window's job.
	EndFrame()

	// Release frees API resources.
	Release()
}
