// Package windowtest provides an in-memory window.Window for tests.
package windowtest

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/Carmen-Shannon/oxy-turntable/engine/window"
)

// Fake is a window.Window that never touches the platform. Input is injected with the Press,
// Release, Button, Move and Scroll helpers, which fire the registered callbacks synchronously the way
// PollEvents would.
type Fake struct {
	W, H int

	// Frames counts SwapBuffers calls. Polls counts PollEvents calls.
	Frames int
	Polls  int

	// Clock is returned by Time. Tests advance it by hand.
	Clock float64

	// CloseAfterFrames makes IsRunning report false once Frames reaches it (0 = never).
	CloseAfterFrames int

	// OnPoll runs inside PollEvents, letting tests inject input per frame.
	OnPoll func(f *Fake)

	closed bool

	onKey         window.KeyCallback
	onMouseButton window.MouseButtonCallback
	onCursorPos   window.CursorPosCallback
	onScroll      window.ScrollCallback
	onResize      window.ResizeCallback
}

var _ window.Window = &Fake{}

// New returns a fake window of the given framebuffer size.
func New(width, height int) *Fake {
	return &Fake{W: width, H: height}
}

func (f *Fake) SetKeyCallback(callback window.KeyCallback) {
	f.onKey = callback
}

func (f *Fake) SetMouseButtonCallback(callback window.MouseButtonCallback) {
	f.onMouseButton = callback
}

func (f *Fake) SetCursorPosCallback(callback window.CursorPosCallback) {
	f.onCursorPos = callback
}

func (f *Fake) SetScrollCallback(callback window.ScrollCallback) {
	f.onScroll = callback
}

func (f *Fake) SetResizeCallback(callback window.ResizeCallback) {
	f.onResize = callback
}

func (f *Fake) PollEvents() {
	f.Polls++
	if f.OnPoll != nil {
		f.OnPoll(f)
	}
}

func (f *Fake) SwapBuffers() {
	f.Frames++
}

func (f *Fake) Time() float64 {
	return f.Clock
}

func (f *Fake) IsRunning() bool {
	if f.closed {
		return false
	}
	return f.CloseAfterFrames == 0 || f.Frames < f.CloseAfterFrames
}

func (f *Fake) Close() error {
	if f.closed {
		return errors.New("window already closed")
	}
	f.closed = true
	return nil
}

// Closed reports whether Close was called.
func (f *Fake) Closed() bool {
	return f.closed
}

func (f *Fake) Width() int {
	return f.W
}

func (f *Fake) Height() int {
	return f.H
}

// Key fires the key callback.
func (f *Fake) Key(key common.Key, action common.Action, mods common.ModifierKey) {
	if f.onKey != nil {
		f.onKey(key, action, mods)
	}
}

// Press fires an unmodified key press.
func (f *Fake) Press(key common.Key) {
	f.Key(key, common.ActionDown, 0)
}

// Release fires an unmodified key release.
func (f *Fake) Release(key common.Key) {
	f.Key(key, common.ActionUp, 0)
}

// Button fires the mouse button callback.
func (f *Fake) Button(button common.MouseButton, action common.Action, mods common.ModifierKey) {
	if f.onMouseButton != nil {
		f.onMouseButton(button, action, mods)
	}
}

// Move fires the cursor callback.
func (f *Fake) Move(x, y float64) {
	if f.onCursorPos != nil {
		f.onCursorPos(x, y)
	}
}

// Scroll fires the scroll callback.
func (f *Fake) Scroll(xoff, yoff float64) {
	if f.onScroll != nil {
		f.onScroll(xoff, yoff)
	}
}

// Resize changes the framebuffer size and fires the resize callback.
func (f *Fake) Resize(width, height int) {
	f.W, f.H = width, height
	if f.onResize != nil {
		f.onResize(width, height)
	}
}
