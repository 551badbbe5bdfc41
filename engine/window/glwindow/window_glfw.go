// Package glwindow implements window.Window on top of GLFW with an OpenGL context.
package glwindow

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/Carmen-Shannon/oxy-turntable/engine/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW window and the registered callbacks.
type glfwWindow struct {
	config  window.Config
	window  *glfw.Window
	running bool

	width  int
	height int

	onKey         window.KeyCallback
	onMouseButton window.MouseButtonCallback
	onCursorPos   window.CursorPosCallback
	onScroll      window.ScrollCallback
	onResize      window.ResizeCallback
}

var _ window.Window = &glfwWindow{}

// NewWindow initialises GLFW, creates a window with a current OpenGL context and registers input
// callbacks. Must be called from the main goroutine; the OS thread is locked for the lifetime of the
// process since GLFW and OpenGL calls are thread-affine.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - window.Window: the created window
//   - error: error if GLFW or the window could not be initialised
func NewWindow(options ...window.WindowBuilderOption) (window.Window, error) {
	runtime.LockOSThread()

	cfg := window.NewConfig(options...)

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.GLMajor > 3 || (cfg.GLMajor == 3 && cfg.GLMinor >= 2) {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()
	win.SetSizeLimits(cfg.MinWidth, cfg.MinHeight, glfw.DontCare, glfw.DontCare)
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &glfwWindow{
		config:  cfg,
		window:  win,
		running: true,
	}

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if cfg.CloseOnEsc && key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		if gw.onKey != nil {
			gw.onKey(common.Key(key), common.Action(action), common.ModifierKey(mods))
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if gw.onMouseButton != nil {
			gw.onMouseButton(common.MouseButton(button), common.Action(action), common.ModifierKey(mods))
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if gw.onCursorPos != nil {
			gw.onCursorPos(xpos, ypos)
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if gw.onScroll != nil {
			gw.onScroll(xoff, yoff)
		}
	})

	// Framebuffer size, not window size: they differ on high-DPI displays and the viewport needs pixels.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gw.width = width
		gw.height = height
		if gw.onResize != nil {
			gw.onResize(width, height)
		}
	})

	gw.width, gw.height = win.GetFramebufferSize()

	return gw, nil
}

func (w *glfwWindow) SetKeyCallback(callback window.KeyCallback) {
	w.onKey = callback
}

func (w *glfwWindow) SetMouseButtonCallback(callback window.MouseButtonCallback) {
	w.onMouseButton = callback
}

func (w *glfwWindow) SetCursorPosCallback(callback window.CursorPosCallback) {
	w.onCursorPos = callback
}

func (w *glfwWindow) SetScrollCallback(callback window.ScrollCallback) {
	w.onScroll = callback
}

func (w *glfwWindow) SetResizeCallback(callback window.ResizeCallback) {
	w.onResize = callback
}

// PollEvents polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) Time() float64 {
	return glfw.GetTime()
}

// IsRunning returns false once the running flag is cleared or GLFW reports ShouldClose.
func (w *glfwWindow) IsRunning() bool {
	if w.window == nil {
		return false
	}
	return w.running && !w.window.ShouldClose()
}

// Close destroys the GLFW window and terminates the GLFW library.
func (w *glfwWindow) Close() error {
	if w.window == nil {
		return fmt.Errorf("window is not initialized")
	}
	w.running = false
	w.window.SetShouldClose(true)
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	return nil
}

func (w *glfwWindow) Width() int {
	return w.width
}

func (w *glfwWindow) Height() int {
	return w.height
}
