package renderer

import "github.com/go-gl/mathgl/mgl64"

const (
	DefaultGridExtent  = 5.0
	DefaultGridSpacing = 0.5
	DefaultGridHeight  = -0.5
	DefaultMarkerSize  = 0.15
)

// RendererBuilderOption is a functional option for configuring a Renderer.
type RendererBuilderOption func(*rendererImpl)

// WithSize sets the initial viewport size. Non-positive values are ignored.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithSize(width, height int) RendererBuilderOption {
	return func(r *rendererImpl) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

// WithMesh adds a mesh to the scene, replacing the default cube.
func WithMesh(m *Mesh) RendererBuilderOption {
	return func(r *rendererImpl) {
		if m != nil {
			r.meshes = append(r.meshes, m)
		}
	}
}

// WithGrid replaces the ground grid.
//
// Parameters:
//   - halfExtent: the grid spans [-halfExtent, halfExtent] on X and Z
//   - spacing: distance between lines
//   - y: plane height
//   - color: RGBA line colour
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithGrid(halfExtent, spacing, y float64, color mgl64.Vec4) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.grid = NewGrid(halfExtent, spacing, y, color)
	}
}

// WithoutGrid removes the ground grid.
func WithoutGrid() RendererBuilderOption {
	return func(r *rendererImpl) {
		r.grid = nil
	}
}

// WithLightMarker toggles drawing the marker at the light position.
func WithLightMarker(show bool) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.showMarker = show
	}
}
