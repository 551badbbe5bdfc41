package loader

import "github.com/go-gl/mathgl/mgl64"

// triangleSoup is the decoded, de-indexed geometry of a model file: every three positions form a
// counter-clockwise triangle. normals is either empty or parallel to positions.
type triangleSoup struct {
	positions []mgl64.Vec3
	normals   []mgl64.Vec3
}

// loaderBackend decodes one model file format into a triangle soup.
// Concrete implementations (gltfLoaderBackend, objLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Decode parses a whole model file.
	//
	// Parameters:
	//   - data: the file contents
	//   - baseDir: directory for resolving files the model references
	//
	// Returns:
	//   - triangleSoup: the model's triangles
	//   - error: error if the data is malformed
	Decode(data []byte, baseDir string) (triangleSoup, error)
}
