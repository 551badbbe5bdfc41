package engine

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/Carmen-Shannon/oxy-turntable/engine/camera"
	"github.com/Carmen-Shannon/oxy-turntable/engine/event"
	"github.com/Carmen-Shannon/oxy-turntable/engine/input"
	"github.com/Carmen-Shannon/oxy-turntable/engine/light"
	"github.com/Carmen-Shannon/oxy-turntable/engine/profiler"
	"github.com/Carmen-Shannon/oxy-turntable/engine/renderer"
	"github.com/Carmen-Shannon/oxy-turntable/engine/window"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrNoWindow is returned by NewEngine when no window was supplied.
	ErrNoWindow = errors.New("engine requires a window")
	// ErrNoRenderer is returned by NewEngine when no renderer was supplied.
	ErrNoRenderer = errors.New("engine requires a renderer")
)

// DefaultFovStep is the field of view change per scroll notch, in radians.
const DefaultFovStep = 2 * math.Pi / 180

// KeyBinding is an action run when its key goes down without modifiers.
type KeyBinding func(e Engine)

// engine implements the Engine interface.
// Everything runs on the thread that called Run; input callbacks arrive inside PollEvents.
type engine struct {
	window     window.Window
	renderer   renderer.Renderer
	camera     camera.Camera
	light      light.OrbitLight
	dispatcher *event.Dispatcher
	translator *input.Translator

	profiler         *profiler.Profiler
	profilerOptions  []profiler.ProfilerOption
	profilingEnabled bool

	bindings    map[common.Key]KeyBinding
	lighting    light.Lighting
	lightVector bool
	clearColor  mgl64.Vec4
	autoRotate  float64
	fovStep     float64

	quit bool
}

// Engine drives the turntable demo: it feeds window input through one dispatcher to the camera
// controller and the key bindings, and renders one frame per Step.
type Engine interface {
	// Window returns the underlying window.
	Window() window.Window

	// Renderer returns the renderer frames are drawn with.
	Renderer() renderer.Renderer

	// Camera returns the camera. Its controller receives every input event first.
	Camera() camera.Camera

	// Light returns the orbiting light.
	Light() light.OrbitLight

	// SetLight replaces the orbiting light.
	SetLight(l light.OrbitLight)

	// Dispatcher returns the dispatcher input is delivered through, for extra subscribers.
	Dispatcher() *event.Dispatcher

	// Lighting returns the current lighting term selection.
	Lighting() light.Lighting

	// SetLighting replaces the lighting term selection.
	SetLighting(l light.Lighting)

	// LightVector reports whether the center-to-light line is drawn.
	LightVector() bool

	// SetLightVector shows or hides the center-to-light line.
	SetLightVector(show bool)

	// SetClearColor sets the background colour.
	SetClearColor(color mgl64.Vec4)

	// SetAutoRotate sets a constant azimuth rate in radians per second (0 stops it).
	SetAutoRotate(rate float64)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Bind runs action whenever key goes down with no modifiers held. A nil action removes the binding.
	//
	// Parameters:
	//   - key: the key to bind
	//   - action: the function to run, receiving the engine
	Bind(key common.Key, action KeyBinding)

	// Step advances the scene by dt seconds and renders one frame. It does not poll input or swap
	// buffers; Run does both around it.
	//
	// Parameters:
	//   - dt: elapsed time in seconds since the previous frame
	//
	// Returns:
	//   - error: the renderer's error, if any
	Step(dt float64) error

	// Run polls, steps and presents until the window closes or Quit is called, then closes the
	// renderer and the window.
	//
	// Returns:
	//   - error: the first render or shutdown error
	Run() error

	// Quit makes Run return after the current frame. Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates an Engine with the provided options and wires input: the window feeds a
// translator, the translator feeds the dispatcher, and the dispatcher delivers to the camera
// controller and then to the engine's own handler (key bindings and scroll zoom).
//
// Without WithCamera a camera with a default turntable controller is used; without WithLight a
// default orbit light. Lighting toggles are bound to A, D, S and O and the light vector to L unless
// overridden by WithKeyBinding.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrNoWindow or ErrNoRenderer if a required part is missing
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		dispatcher: event.NewDispatcher(),
		bindings:   DefaultKeyBindings(),
		lighting:   light.NewLighting(),
		clearColor: mgl64.Vec4{0.2, 0.2, 0.2, 1},
		fovStep:    DefaultFovStep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		return nil, ErrNoWindow
	}
	if e.renderer == nil {
		return nil, ErrNoRenderer
	}
	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithController(camera.NewTurntableController(3, 0, 0)))
	}
	if e.light == nil {
		e.light = light.NewOrbitLight()
	}

	e.profiler = profiler.NewProfiler(append([]profiler.ProfilerOption{profiler.WithSampler(e.sample)}, e.profilerOptions...)...)

	// Order matters: the camera sees each event before the bindings do.
	e.dispatcher.Subscribe(event.HandlerFunc(e.forwardToController))
	e.dispatcher.Subscribe(event.HandlerFunc(e.onEvent))

	e.translator = input.NewTranslator(e.dispatcher)
	e.translator.Attach(e.window)
	e.window.SetResizeCallback(e.resize)
	e.resize(e.window.Width(), e.window.Height())

	log.Printf("[Engine] ready: %dx%d, lighting %s", e.window.Width(), e.window.Height(), e.lighting)
	return e, nil
}

// DefaultKeyBindings returns the lighting bindings every engine starts with.
func DefaultKeyBindings() map[common.Key]KeyBinding {
	toggle := func(name string, flip func(*light.Lighting)) KeyBinding {
		return func(e Engine) {
			l := e.Lighting()
			flip(&l)
			e.SetLighting(l)
			log.Printf("[Engine] %s toggled, lighting %s", name, l)
		}
	}
	return map[common.Key]KeyBinding{
		common.KeyA: toggle("ambient", (*light.Lighting).ToggleAmbient),
		common.KeyD: toggle("diffuse", (*light.Lighting).ToggleDiffuse),
		common.KeyS: toggle("specular", (*light.Lighting).ToggleSpecular),
		common.KeyO: toggle("lighting", (*light.Lighting).ToggleEnabled),
		common.KeyL: func(e Engine) {
			e.SetLightVector(!e.LightVector())
		},
	}
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Light() light.OrbitLight {
	return e.light
}

func (e *engine) SetLight(l light.OrbitLight) {
	if l != nil {
		e.light = l
	}
}

func (e *engine) Dispatcher() *event.Dispatcher {
	return e.dispatcher
}

func (e *engine) Lighting() light.Lighting {
	return e.lighting
}

func (e *engine) SetLighting(l light.Lighting) {
	e.lighting = l
}

func (e *engine) LightVector() bool {
	return e.lightVector
}

func (e *engine) SetLightVector(show bool) {
	e.lightVector = show
}

func (e *engine) SetClearColor(color mgl64.Vec4) {
	e.clearColor = color
}

func (e *engine) SetAutoRotate(rate float64) {
	e.autoRotate = rate
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Bind(key common.Key, action KeyBinding) {
	if action == nil {
		delete(e.bindings, key)
		return
	}
	e.bindings[key] = action
}

func (e *engine) Step(dt float64) error {
	ctrl := e.camera.Controller()
	if ctrl != nil && e.autoRotate != 0 {
		ctrl.Bump(e.autoRotate*dt, 0)
	}
	e.light.Advance(dt)
	e.camera.Update()

	frame := renderer.Frame{
		View:          e.camera.ViewMatrix(),
		Projection:    e.camera.ProjectionMatrix(),
		Eye:           e.camera.EyePosition(),
		LightPosition: e.light.Position(),
		LightAmbient:  e.light.Ambient(),
		LightDiffuse:  e.light.Diffuse(),
		LightSpecular: e.light.Specular(),
		Lighting:      e.lighting,
		LightVector:   e.lightVector,
		ClearColor:    e.clearColor,
	}
	if ctrl != nil {
		frame.Center = ctrl.Center()
	}
	if err := e.renderer.Render(frame); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
	return nil
}

func (e *engine) Run() error {
	log.Printf("[Engine] running")
	last := e.window.Time()

	var runErr error
	for !e.quit && e.window.IsRunning() {
		e.window.PollEvents()

		now := e.window.Time()
		dt := now - last
		last = now

		if err := e.Step(dt); err != nil {
			runErr = err
			break
		}
		e.window.SwapBuffers()
	}

	e.renderer.Close()
	if err := e.window.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close window: %w", err)
	}
	log.Printf("[Engine] stopped")
	return runErr
}

func (e *engine) Quit() {
	e.quit = true
}

func (e *engine) forwardToController(ev event.Event) {
	if ctrl := e.camera.Controller(); ctrl != nil {
		ctrl.OnEvent(ev)
	}
}

// onEvent runs key bindings and scroll zoom. Modified events are left alone, so kbd_S_down_ctrl
// does not toggle specular.
func (e *engine) onEvent(ev event.Event) {
	if ev.Mods() != 0 {
		return
	}
	switch ev.Source() {
	case event.SourceKeyboard:
		if ev.Action() != common.ActionDown {
			return
		}
		if action, ok := e.bindings[ev.Key()]; ok {
			action(e)
		}
	case event.SourceScroll:
		offset := ev.Get2D()
		e.camera.SetFov(e.camera.Fov() - offset.Y()*e.fovStep)
	}
}

func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.renderer.Resize(width, height)
	e.camera.SetAspect(float64(width) / float64(height))
}

// sample summarises the camera and light for profiler reports.
func (e *engine) sample() string {
	ctrl := e.camera.Controller()
	if ctrl == nil {
		return fmt.Sprintf("fov=%.1f° lighting=%s", mgl64.RadToDeg(e.camera.Fov()), e.lighting)
	}
	return fmt.Sprintf("d=%.2f az=%.2f el=%.2f fov=%.1f° lighting=%s",
		ctrl.Distance(), ctrl.Azimuth(), ctrl.Elevation(), mgl64.RadToDeg(e.camera.Fov()), e.lighting)
}
