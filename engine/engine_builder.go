package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/Carmen-Shannon/oxy-turntable/engine/camera"
	"github.com/Carmen-Shannon/oxy-turntable/engine/light"
	"github.com/Carmen-Shannon/oxy-turntable/engine/profiler"
	"github.com/Carmen-Shannon/oxy-turntable/engine/renderer"
	"github.com/Carmen-Shannon/oxy-turntable/engine/window"
	"github.com/go-gl/mathgl/mgl64"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithWindow sets the window the engine reads input from and presents to. Required.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer frames are drawn with. Required.
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the camera. Its controller is subscribed to input ahead of the key bindings.
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithLight sets the orbiting light.
func WithLight(l light.OrbitLight) EngineBuilderOption {
	return func(e *engine) {
		e.light = l
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfilerInterval sets how often profiling stats are logged.
func WithProfilerInterval(d time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.profilerOptions = append(e.profilerOptions, profiler.WithInterval(d))
	}
}

// WithAutoRotate spins the camera around the center at a constant azimuth rate.
//
// Parameters:
//   - rate: radians per second; 0 disables auto-rotation
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAutoRotate(rate float64) EngineBuilderOption {
	return func(e *engine) {
		e.autoRotate = rate
	}
}

// WithKeyBinding binds action to an unmodified press of key, replacing any default for that key.
// A nil action removes the binding.
//
// Parameters:
//   - key: the key to bind
//   - action: the function to run
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithKeyBinding(key common.Key, action KeyBinding) EngineBuilderOption {
	return func(e *engine) {
		if action == nil {
			delete(e.bindings, key)
			return
		}
		e.bindings[key] = action
	}
}

// WithClearColor sets the background colour.
func WithClearColor(color mgl64.Vec4) EngineBuilderOption {
	return func(e *engine) {
		e.clearColor = color
	}
}

// WithLighting sets the initial lighting term selection.
func WithLighting(l light.Lighting) EngineBuilderOption {
	return func(e *engine) {
		e.lighting = l
	}
}

// WithLightVector shows the center-to-light line from the first frame.
func WithLightVector(show bool) EngineBuilderOption {
	return func(e *engine) {
		e.lightVector = show
	}
}

// WithFovStep sets the field of view change per scroll notch, in radians.
func WithFovStep(step float64) EngineBuilderOption {
	return func(e *engine) {
		e.fovStep = step
	}
}

// WithProfilerOptions passes options through to the profiler, after the engine's own sampler.
func WithProfilerOptions(options ...profiler.ProfilerOption) EngineBuilderOption {
	return func(e *engine) {
		e.profilerOptions = append(e.profilerOptions, options...)
	}
}
