package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/Carmen-Shannon/oxy-turntable/engine/event"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultStep is the dolly distance per key event.
	DefaultStep = 0.01
	// DefaultDragScale is radians per pixel of drag, for both axes.
	DefaultDragScale = 0.0001
	// ElevationMargin keeps the drag path this far (radians) away from the poles.
	ElevationMargin = 0.2
	// MinEyeDistance is the smallest distance used when deriving the eye, so that the look-at never
	// degenerates.
	MinEyeDistance = 1e-4
)

var worldUp = mgl64.Vec3{0, 1, 0}

// turntableControllerImpl is the single implementation of TurntableController.
type turntableControllerImpl struct {
	center mgl64.Vec3

	// Spherical coordinates relative to center
	distance  float64
	azimuth   float64 // around Y, unbounded
	elevation float64 // from the XZ plane

	minElevation float64
	maxElevation float64

	step           float64
	azimuthScale   float64
	elevationScale float64
	dragMode       DragMode

	// lastPointer is only read while dragging
	dragging    bool
	lastPointer mgl64.Vec2
}

// Compile-time interface compliance check
var _ TurntableController = &turntableControllerImpl{}

// NewTurntableController creates an orbit controller at the given spherical coordinates around the
// origin. Options may move the pivot or retune the input scales.
//
// Parameters:
//   - distance: distance from the pivot in scene units
//   - azimuth: horizontal angle in radians (0 = +X axis)
//   - elevation: vertical angle in radians (0 = horizontal); not clamped here
//   - options: functional options to configure the controller
//
// Returns:
//   - TurntableController: the newly created controller
func NewTurntableController(distance, azimuth, elevation float64, options ...TurntableOption) TurntableController {
	tc := &turntableControllerImpl{
		distance:       distance,
		azimuth:        azimuth,
		elevation:      elevation,
		minElevation:   -math.Pi/2 + ElevationMargin,
		maxElevation:   math.Pi/2 - ElevationMargin,
		step:           DefaultStep,
		azimuthScale:   DefaultDragScale,
		elevationScale: DefaultDragScale,
		dragMode:       DragAnchored,
	}

	for _, option := range options {
		option(tc)
	}

	return tc
}

func (tc *turntableControllerImpl) OnEvent(e event.Event) {
	if e.Mods() != 0 {
		return
	}

	switch e.Source() {
	case event.SourceKeyboard:
		if e.Action() == common.ActionUp {
			return
		}
		switch e.Key() {
		case common.KeyUp:
			tc.distance -= tc.step
		case common.KeyDown:
			tc.distance += tc.step
		}

	case event.SourceMouseButton:
		if e.Button() != common.MouseButtonLeft {
			return
		}
		switch e.Action() {
		case common.ActionDown:
			tc.dragging = true
			tc.lastPointer = e.Get2D()
		case common.ActionUp:
			tc.dragging = false
			tc.lastPointer = mgl64.Vec2{}
		}

	case event.SourcePointer:
		if !tc.dragging {
			return
		}
		pos := e.Get2D()
		delta := pos.Sub(tc.lastPointer)
		if delta[0] == 0 && delta[1] == 0 {
			return
		}
		tc.azimuth += delta[0] * tc.azimuthScale
		tc.elevation = mgl64.Clamp(tc.elevation+delta[1]*tc.elevationScale, tc.minElevation, tc.maxElevation)
		if tc.dragMode == DragIncremental {
			tc.lastPointer = pos
		}
	}
}

func (tc *turntableControllerImpl) Bump(deltaAzimuth, deltaElevation float64) {
	tc.azimuth += deltaAzimuth
	tc.elevation += deltaElevation
}

func (tc *turntableControllerImpl) SetCenterPosition(center mgl64.Vec3) {
	tc.center = center
}

func (tc *turntableControllerImpl) EyePosition() mgl64.Vec3 {
	d := math.Max(tc.distance, MinEyeDistance)
	cosElev := math.Cos(tc.elevation)
	return tc.center.Add(mgl64.Vec3{
		math.Cos(tc.azimuth) * cosElev,
		math.Sin(tc.elevation),
		math.Sin(tc.azimuth) * cosElev,
	}.Mul(d))
}

func (tc *turntableControllerImpl) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(tc.EyePosition(), tc.center, worldUp)
}

func (tc *turntableControllerImpl) Center() mgl64.Vec3 {
	return tc.center
}

func (tc *turntableControllerImpl) Distance() float64 {
	return tc.distance
}

func (tc *turntableControllerImpl) Azimuth() float64 {
	return tc.azimuth
}

func (tc *turntableControllerImpl) Elevation() float64 {
	return tc.elevation
}

func (tc *turntableControllerImpl) MinElevation() float64 {
	return tc.minElevation
}

func (tc *turntableControllerImpl) MaxElevation() float64 {
	return tc.maxElevation
}

func (tc *turntableControllerImpl) Step() float64 {
	return tc.step
}

func (tc *turntableControllerImpl) Dragging() bool {
	return tc.dragging
}

func (tc *turntableControllerImpl) DragMode() DragMode {
	return tc.dragMode
}
