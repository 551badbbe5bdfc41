package window

import "github.com/Carmen-Shannon/oxy-turntable/common"

// KeyCallback receives raw key transitions.
type KeyCallback func(key common.Key, action common.Action, mods common.ModifierKey)

// MouseButtonCallback receives raw mouse button transitions. The platform does not report a
// position here; consumers track the cursor themselves.
type MouseButtonCallback func(button common.MouseButton, action common.Action, mods common.ModifierKey)

// CursorPosCallback receives the absolute cursor position in window-local pixels.
type CursorPosCallback func(x, y float64)

// ScrollCallback receives the scroll wheel offset.
type ScrollCallback func(xoff, yoff float64)

// ResizeCallback receives the new framebuffer size in pixels.
type ResizeCallback func(width, height int)

// Window provides platform windowing, an OpenGL context and raw input callbacks.
// All callbacks run synchronously inside PollEvents, on the thread that created the window.
type Window interface {
	// SetKeyCallback sets the callback for key press, repeat and release.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetKeyCallback(callback KeyCallback)

	// SetMouseButtonCallback sets the callback for mouse button press and release.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetMouseButtonCallback(callback MouseButtonCallback)

	// SetCursorPosCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the window-local cursor position
	SetCursorPosCallback(callback CursorPosCallback)

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the scroll offset (positive y = away from the user)
	SetScrollCallback(callback ScrollCallback)

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback ResizeCallback)

	// PollEvents processes pending platform events without blocking, firing callbacks.
	PollEvents()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Time returns seconds since the window system was initialised.
	//
	// Returns:
	//   - float64: monotonic time in seconds
	Time() float64

	// IsRunning returns true until the window is asked to close.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close destroys the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never initialised
	Close() error

	// Width returns the current framebuffer width in pixels.
	Width() int

	// Height returns the current framebuffer height in pixels.
	Height() int
}

// Config holds the settings a platform window is created with.
type Config struct {
	Title      string
	Width      int
	Height     int
	MinWidth   int
	MinHeight  int
	VSync      bool
	GLMajor    int
	GLMinor    int
	Samples    int
	CloseOnEsc bool
}

// NewConfig returns the default window configuration with options applied in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Config: the resulting configuration
func NewConfig(options ...WindowBuilderOption) Config {
	c := Config{
		Title:      "Turntable",
		Width:      1280,
		Height:     720,
		MinWidth:   320,
		MinHeight:  200,
		VSync:      true,
		GLMajor:    2,
		GLMinor:    1,
		Samples:    4,
		CloseOnEsc: true,
	}
	for _, opt := range options {
		opt(&c)
	}
	return c
}
