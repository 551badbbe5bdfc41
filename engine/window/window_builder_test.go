package window

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.Width != 1280 || c.Height != 720 {
		t.Errorf("unexpected default size %dx%d", c.Width, c.Height)
	}
	if c.GLMajor != 2 || c.GLMinor != 1 {
		t.Errorf("expected a 2.1 context by default, got %d.%d", c.GLMajor, c.GLMinor)
	}
	if !c.VSync || !c.CloseOnEsc {
		t.Error("vsync and close-on-escape should default to on")
	}
}

func TestNewConfigOptions(t *testing.T) {
	c := NewConfig(
		WithTitle("demo"),
		WithWidth(800),
		WithHeight(600),
		WithMinSize(100, 50),
		WithVSync(false),
		WithGLVersion(3, 3),
		WithSamples(0),
		WithCloseOnEscape(false),
	)
	want := Config{
		Title:      "demo",
		Width:      800,
		Height:     600,
		MinWidth:   100,
		MinHeight:  50,
		VSync:      false,
		GLMajor:    3,
		GLMinor:    3,
		Samples:    0,
		CloseOnEsc: false,
	}
	if c != want {
		t.Errorf("expected %+v, got %+v", want, c)
	}
}
