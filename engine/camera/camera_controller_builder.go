package camera

import "github.com/go-gl/mathgl/mgl64"

// TurntableOption is a functional option for configuring a TurntableController.
type TurntableOption func(*turntableControllerImpl)

// WithCenter sets the initial orbit pivot.
//
// Parameters:
//   - x, y, z: world-space pivot coordinates
//
// Returns:
//   - TurntableOption: functional option to set the center
func WithCenter(x, y, z float64) TurntableOption {
	return func(tc *turntableControllerImpl) {
		tc.center = mgl64.Vec3{x, y, z}
	}
}

// WithStep sets the distance change applied per dolly key event.
//
// Parameters:
//   - step: scene units per kbd_UP / kbd_DOWN event
//
// Returns:
//   - TurntableOption: functional option to set the step
func WithStep(step float64) TurntableOption {
	return func(tc *turntableControllerImpl) {
		tc.step = step
	}
}

// WithAzimuthScale sets radians of azimuth per pixel of horizontal drag.
func WithAzimuthScale(scale float64) TurntableOption {
	return func(tc *turntableControllerImpl) {
		tc.azimuthScale = scale
	}
}

// WithElevationScale sets radians of elevation per pixel of vertical drag.
func WithElevationScale(scale float64) TurntableOption {
	return func(tc *turntableControllerImpl) {
		tc.elevationScale = scale
	}
}

// WithDragMode selects anchored (default) or incremental drag measurement.
//
// Parameters:
//   - mode: the drag mode
//
// Returns:
//   - TurntableOption: functional option to set the drag mode
func WithDragMode(mode DragMode) TurntableOption {
	return func(tc *turntableControllerImpl) {
		tc.dragMode = mode
	}
}
