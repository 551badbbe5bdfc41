package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MinFov and MaxFov bound the vertical field of view accepted by SetFov.
	MinFov = 10.0 * math.Pi / 180.0
	MaxFov = 120.0 * math.Pi / 180.0
)

type cameraImpl struct {
	fov    float64
	aspect float64
	near   float64
	far    float64

	eye                  mgl64.Vec3
	viewMatrix           mgl64.Mat4
	projectionMatrix     mgl64.Mat4
	viewProjectionMatrix mgl64.Mat4

	controller TurntableController
}

// Camera holds perspective settings and computes view/projection matrices from an attached
// TurntableController each frame via Update().
type Camera interface {
	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float64: field of view in radians
	Fov() float64

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// Near returns the near clipping plane distance.
	Near() float64

	// Far returns the far clipping plane distance.
	Far() float64

	// EyePosition returns the eye position captured by the last Update.
	//
	// Returns:
	//   - mgl64.Vec3: world-space eye position
	EyePosition() mgl64.Vec3

	// ViewMatrix returns the view matrix captured by the last Update (column-major).
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the current perspective projection matrix (column-major, OpenGL clip space).
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl64.Mat4: the combined matrix
	ViewProjectionMatrix() mgl64.Mat4

	// Controller returns the attached controller, or nil.
	Controller() TurntableController

	// Update reads the eye and view matrix from the controller and recomputes the combined matrix.
	// Should be called once per frame, after input for that frame has been dispatched.
	// If no controller is attached, this method does nothing.
	Update()

	// SetFov sets the vertical field of view in radians, clamped to [MinFov, MaxFov].
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float64)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	// Non-positive values are ignored (minimised windows report a zero height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float64)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	SetNear(near float64)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	SetFar(far float64)

	// SetController attaches a controller to the camera and recomputes matrices.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl TurntableController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		fov:                  45.0 * (math.Pi / 180.0),
		aspect:               1.0,
		near:                 0.1,
		far:                  100.0,
		viewMatrix:           mgl64.Ident4(),
		projectionMatrix:     mgl64.Ident4(),
		viewProjectionMatrix: mgl64.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float64 {
	return c.fov
}

func (c *cameraImpl) Aspect() float64 {
	return c.aspect
}

func (c *cameraImpl) Near() float64 {
	return c.near
}

func (c *cameraImpl) Far() float64 {
	return c.far
}

func (c *cameraImpl) EyePosition() mgl64.Vec3 {
	return c.eye
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl64.Mat4 {
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Controller() TurntableController {
	return c.controller
}

func (c *cameraImpl) Update() {
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float64) {
	c.fov = mgl64.Clamp(fov, MinFov, MaxFov)
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsInf(aspect, 0) || math.IsNaN(aspect) {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float64) {
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float64) {
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl TurntableController) {
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates the projection and, when a controller is attached, the eye, view and
// view-projection matrices.
func (c *cameraImpl) updateMatrices() {
	c.projectionMatrix = mgl64.Perspective(c.fov, c.aspect, c.near, c.far)
	if c.controller != nil {
		c.eye = c.controller.EyePosition()
		c.viewMatrix = c.controller.ViewMatrix()
	}
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
