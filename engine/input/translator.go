// Package input turns raw window callbacks into named events.
//
// The translator owns the input state that the platform does not pass along with every callback:
// the last cursor position (mouse button callbacks carry none) and the set of held modifier keys.
// Both are plain fields of the Translator, so several windows can each have their own. Only key and
// button events are named with modifiers; pointer and scroll events never are, so an orbit drag or
// zoom keeps working while Shift, Ctrl or Alt is held.
package input

import (
	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/Carmen-Shannon/oxy-turntable/engine/event"
	"github.com/Carmen-Shannon/oxy-turntable/engine/window"
	"github.com/go-gl/mathgl/mgl64"
)

// Translator converts raw key, button, cursor and scroll callbacks into events and forwards them to
// a sink, usually an *event.Dispatcher.
type Translator struct {
	sink   event.Handler
	cursor mgl64.Vec2
	mods   common.ModifierKey
}

// NewTranslator creates a translator that forwards every produced event to sink.
//
// Parameters:
//   - sink: receives the translated events
//
// Returns:
//   - *Translator: the translator
func NewTranslator(sink event.Handler) *Translator {
	return &Translator{sink: sink}
}

// Attach registers the translator's callbacks on w, replacing any previously set input callbacks.
//
// Parameters:
//   - w: the window to listen to
func (t *Translator) Attach(w window.Window) {
	w.SetKeyCallback(t.KeyCallback)
	w.SetMouseButtonCallback(t.MouseButtonCallback)
	w.SetCursorPosCallback(t.CursorPosCallback)
	w.SetScrollCallback(t.ScrollCallback)
}

// KeyCallback emits kbd_<KEY>_<action>. Modifier keys also update the held modifier set; their own
// event is named with the modifiers held before the transition, so pressing Shift alone yields
// kbd_LEFT_SHIFT_down rather than kbd_LEFT_SHIFT_down_shift.
//
// Parameters:
//   - key: the key code
//   - action: press, repeat or release
//   - mods: modifiers as reported by the platform for this transition
func (t *Translator) KeyCallback(key common.Key, action common.Action, mods common.ModifierKey) {
	bit := key.Modifier()
	reported := mods &^ bit
	t.sink.OnEvent(event.NewKey(key, action, reported))

	if bit == 0 {
		t.mods = mods
		return
	}
	switch action {
	case common.ActionDown, common.ActionRepeat:
		t.mods = reported | bit
	case common.ActionUp:
		t.mods = reported
	}
}

// MouseButtonCallback emits mouse_btn_<button>_<action> carrying the last known cursor position.
//
// Parameters:
//   - button: the mouse button
//   - action: press or release; repeats are dropped
//   - mods: modifiers held at the time of the transition
func (t *Translator) MouseButtonCallback(button common.MouseButton, action common.Action, mods common.ModifierKey) {
	if action == common.ActionRepeat {
		return
	}
	t.mods = mods
	t.sink.OnEvent(event.NewButton(button, action, mods, t.cursor))
}

// CursorPosCallback records the cursor and emits a bare mouse_pointer with the absolute position.
//
// Parameters:
//   - x, y: window-local cursor position in pixels
func (t *Translator) CursorPosCallback(x, y float64) {
	t.cursor = mgl64.Vec2{x, y}
	t.sink.OnEvent(event.NewPointer(t.cursor, 0))
}

// ScrollCallback emits a bare mouse_scroll carrying the wheel offset.
//
// Parameters:
//   - xoff, yoff: scroll offsets
func (t *Translator) ScrollCallback(xoff, yoff float64) {
	t.sink.OnEvent(event.NewScroll(mgl64.Vec2{xoff, yoff}, 0))
}

// Cursor returns the last cursor position seen.
func (t *Translator) Cursor() mgl64.Vec2 {
	return t.cursor
}

// Mods returns the modifier set currently believed to be held.
func (t *Translator) Mods() common.ModifierKey {
	return t.mods
}
