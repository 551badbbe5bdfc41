package loader

import "github.com/go-gl/mathgl/mgl64"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithFitSize scales every loaded model so its largest bounding box side equals size, centered on
// the origin. 0 keeps the file's own coordinates.
//
// Parameters:
//   - size: target extent in world units
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithFitSize(size float64) LoaderBuilderOption {
	return func(l *loader) {
		if size >= 0 {
			l.fitSize = size
		}
	}
}

// WithColor sets the surface colour of loaded meshes.
func WithColor(color mgl64.Vec4) LoaderBuilderOption {
	return func(l *loader) {
		l.color = color
	}
}

// WithSpecular sets the specular reflectance and exponent of loaded meshes.
//
// Parameters:
//   - specular: RGBA specular reflectance
//   - shininess: specular exponent
//
// Returns:
//   - LoaderBuilderOption: a function that applies the option to a loader
func WithSpecular(specular mgl64.Vec4, shininess float64) LoaderBuilderOption {
	return func(l *loader) {
		l.specular = specular
		l.shininess = shininess
	}
}
