// Package renderertest provides a RendererBackend that records calls instead of drawing.
package renderertest

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-turntable/engine/renderer"
	"github.com/go-gl/mathgl/mgl64"
)

// Backend records every call as a short string, and keeps the last camera and light it was given.
type Backend struct {
	InitErr error

	Calls    []string
	View     mgl64.Mat4
	Proj     mgl64.Mat4
	Light    renderer.LightParams
	Drawn    []*renderer.Mesh
	Width    int
	Height   int
	Released bool
}

var _ renderer.RendererBackend = &Backend{}

func (b *Backend) Type() renderer.RendererBackendType {
	return renderer.BackendTypeOpenGL
}

func (b *Backend) Init() error {
	b.Calls = append(b.Calls, "init")
	return b.InitErr
}

func (b *Backend) Viewport(width, height int) {
	b.Width, b.Height = width, height
	b.Calls = append(b.Calls, fmt.Sprintf("viewport %dx%d", width, height))
}

func (b *Backend) BeginFrame(clear mgl64.Vec4) {
	b.Drawn = b.Drawn[:0]
	b.Calls = append(b.Calls, "begin")
}

func (b *Backend) SetCamera(view, projection mgl64.Mat4) {
	b.View, b.Proj = view, projection
	b.Calls = append(b.Calls, "camera")
}

func (b *Backend) SetLight(params renderer.LightParams) {
	b.Light = params
	b.Calls = append(b.Calls, "light")
}

func (b *Backend) DrawMesh(m *renderer.Mesh) {
	b.Drawn = append(b.Drawn, m)
	b.Calls = append(b.Calls, "draw "+m.Name)
}

func (b *Backend) EndFrame() {
	b.Calls = append(b.Calls, "end")
}

func (b *Backend) Release() {
	b.Released = true
	b.Calls = append(b.Calls, "release")
}

// Reset forgets the recorded calls.
func (b *Backend) Reset() {
	b.Calls = nil
}
