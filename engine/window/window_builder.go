package window

// WindowBuilderOption is a functional option for configuring a window.
// Use the With* functions to create options.
type WindowBuilderOption func(c *Config)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(c *Config) {
		c.Title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(c *Config) {
		c.Width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(c *Config) {
		c.Height = height
	}
}

// WithMinSize sets the smallest size the user can resize the window to.
//
// Parameters:
//   - width, height: minimum size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(width, height int) WindowBuilderOption {
	return func(c *Config) {
		c.MinWidth = width
		c.MinHeight = height
	}
}

// WithVSync enables or disables waiting for vertical blank on SwapBuffers.
func WithVSync(enabled bool) WindowBuilderOption {
	return func(c *Config) {
		c.VSync = enabled
	}
}

// WithGLVersion requests an OpenGL context version. Versions below 3.2 get a compatibility context,
// which the fixed-function renderer needs.
//
// Parameters:
//   - major, minor: requested context version
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithGLVersion(major, minor int) WindowBuilderOption {
	return func(c *Config) {
		c.GLMajor = major
		c.GLMinor = minor
	}
}

// WithSamples sets the multisample count of the default framebuffer (0 disables MSAA).
func WithSamples(samples int) WindowBuilderOption {
	return func(c *Config) {
		c.Samples = samples
	}
}

// WithCloseOnEscape controls whether the Escape key closes the window.
func WithCloseOnEscape(enabled bool) WindowBuilderOption {
	return func(c *Config) {
		c.CloseOnEsc = enabled
	}
}
