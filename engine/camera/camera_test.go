package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-turntable/engine/event"
	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraWithoutController(t *testing.T) {
	c := NewCamera()
	if c.Controller() != nil {
		t.Fatal("expected no controller")
	}
	c.Update()
	if c.ViewMatrix() != mgl64.Ident4() {
		t.Errorf("expected identity view without controller, got %v", c.ViewMatrix())
	}
	want := mgl64.Perspective(45*math.Pi/180, 1, 0.1, 100)
	if !mat4Near(c.ProjectionMatrix(), want, 1e-12) {
		t.Errorf("unexpected default projection %v", c.ProjectionMatrix())
	}
}

func TestCameraUpdateFollowsController(t *testing.T) {
	ctrl := NewTurntableController(5, 0, 0)
	c := NewCamera(
		WithFov(math.Pi/3),
		WithAspect(16.0/9.0),
		WithNear(0.01),
		WithFar(500),
		WithController(ctrl),
	)

	if !vec3Near(c.EyePosition(), mgl64.Vec3{5, 0, 0}, tolerance) {
		t.Fatalf("expected initial eye (5,0,0), got %v", c.EyePosition())
	}

	for range 100 {
		ctrl.OnEvent(event.New("kbd_UP_down"))
	}
	if !vec3Near(c.EyePosition(), mgl64.Vec3{5, 0, 0}, tolerance) {
		t.Error("camera must keep the previous frame until Update")
	}

	c.Update()
	if !vec3Near(c.EyePosition(), mgl64.Vec3{4, 0, 0}, tolerance) {
		t.Errorf("expected eye (4,0,0) after update, got %v", c.EyePosition())
	}
	if !mat4Near(c.ViewMatrix(), ctrl.ViewMatrix(), 1e-12) {
		t.Error("view matrix should match the controller")
	}
	vp := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	if !mat4Near(c.ViewProjectionMatrix(), vp, 1e-12) {
		t.Error("view-projection should be projection * view")
	}
}

func TestCameraSetters(t *testing.T) {
	c := NewCamera()

	c.SetFov(math.Pi)
	if c.Fov() != MaxFov {
		t.Errorf("expected fov clamped to %v, got %v", MaxFov, c.Fov())
	}
	c.SetFov(0)
	if c.Fov() != MinFov {
		t.Errorf("expected fov clamped to %v, got %v", MinFov, c.Fov())
	}

	c.SetAspect(2)
	c.SetAspect(0)
	c.SetAspect(math.Inf(1))
	if c.Aspect() != 2 {
		t.Errorf("invalid aspect ratios must be ignored, got %v", c.Aspect())
	}

	c.SetNear(1)
	c.SetFar(10)
	want := mgl64.Perspective(MinFov, 2, 1, 10)
	if !mat4Near(c.ProjectionMatrix(), want, 1e-12) {
		t.Errorf("projection not recomputed: %v", c.ProjectionMatrix())
	}

	ctrl := NewTurntableController(3, math.Pi/2, 0)
	c.SetController(ctrl)
	if !vec3Near(c.EyePosition(), mgl64.Vec3{0, 0, 3}, tolerance) {
		t.Errorf("expected eye (0,0,3) after attaching, got %v", c.EyePosition())
	}
}
