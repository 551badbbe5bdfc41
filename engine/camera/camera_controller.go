package camera

import (
	"github.com/Carmen-Shannon/oxy-turntable/engine/event"
	"github.com/go-gl/mathgl/mgl64"
)

// DragMode selects how pointer displacement is measured while the left button is held.
type DragMode int

const (
	// DragAnchored measures every pointer sample against the position recorded at button-down.
	// The anchor is never refreshed during a drag, so the angular offset applied per sample grows
	// with the total cursor travel. This is the default.
	DragAnchored DragMode = iota
	// DragIncremental measures each pointer sample against the previous sample.
	DragIncremental
)

func (m DragMode) String() string {
	if m == DragIncremental {
		return "incremental"
	}
	return "anchored"
}

// DragModeByName looks up a drag mode by its String form.
func DragModeByName(name string) (DragMode, bool) {
	switch name {
	case "anchored":
		return DragAnchored, true
	case "incremental":
		return DragIncremental, true
	}
	return DragAnchored, false
}

// TurntableController is an orbit camera around a pivot point, driven by input events.
// Its state is the spherical triple (distance, azimuth, elevation) plus the pivot ("center").
//
// All methods must be called from the thread that dispatches input events; the controller does
// no locking.
type TurntableController interface {
	event.Handler

	// OnEvent applies one input event to the camera state:
	//   - kbd_UP_down / kbd_UP_repeat: distance -= Step
	//   - kbd_DOWN_down / kbd_DOWN_repeat: distance += Step
	//   - mouse_btn_left_down: start dragging from the event's Vector2D position
	//   - mouse_btn_left_up: stop dragging
	//   - mouse_pointer while dragging: orbit by the pointer displacement, elevation clamped
	// Events carrying modifiers, and every other event, leave the state untouched.
	//
	// Parameters:
	//   - e: the event
	OnEvent(e event.Event)

	// Bump adds the given deltas to azimuth and elevation. Unlike the drag path, no clamping is applied.
	//
	// Parameters:
	//   - deltaAzimuth: radians added to azimuth
	//   - deltaElevation: radians added to elevation
	Bump(deltaAzimuth, deltaElevation float64)

	// SetCenterPosition moves the orbit pivot. Angles and distance are kept, so the eye jumps with
	// the pivot; intended for setup, not for use mid-session.
	//
	// Parameters:
	//   - center: the new pivot in world space
	SetCenterPosition(center mgl64.Vec3)

	// EyePosition returns the world-space eye position:
	//
	//	center + d * (cos(az)cos(el), sin(el), sin(az)cos(el)),  d = max(distance, MinEyeDistance)
	//
	// Returns:
	//   - mgl64.Vec3: the eye position
	EyePosition() mgl64.Vec3

	// ViewMatrix returns the look-at matrix from EyePosition toward the center with world up (0, 1, 0).
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix (column-major)
	ViewMatrix() mgl64.Mat4

	// Center returns the orbit pivot.
	Center() mgl64.Vec3

	// Distance returns the stored distance. It may be zero or negative after enough dolly-in events;
	// EyePosition clamps it, the stored value is never changed by that clamp.
	Distance() float64

	// Azimuth returns the horizontal angle around the Y axis in radians.
	Azimuth() float64

	// Elevation returns the angle above the horizontal plane in radians.
	Elevation() float64

	// MinElevation returns the lower bound enforced by the drag path.
	MinElevation() float64

	// MaxElevation returns the upper bound enforced by the drag path.
	MaxElevation() float64

	// Step returns the distance change applied per dolly key event.
	Step() float64

	// Dragging reports whether the left button is currently held.
	Dragging() bool

	// DragMode returns how pointer displacement is measured.
	DragMode() DragMode
}
