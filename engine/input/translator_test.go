package input

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/Carmen-Shannon/oxy-turntable/engine/camera"
	"github.com/Carmen-Shannon/oxy-turntable/engine/event"
	"github.com/Carmen-Shannon/oxy-turntable/engine/window/windowtest"
	"github.com/go-gl/mathgl/mgl64"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) names() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name()
	}
	return out
}

func equalNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestButtonCarriesLastCursor(t *testing.T) {
	rec := &recorder{}
	tr := NewTranslator(rec)

	tr.CursorPosCallback(100, 100)
	tr.MouseButtonCallback(common.MouseButtonLeft, common.ActionDown, 0)
	tr.CursorPosCallback(110, 100)
	tr.MouseButtonCallback(common.MouseButtonLeft, common.ActionUp, 0)

	equalNames(t, rec.names(), []string{"mouse_pointer", "mouse_btn_left_down", "mouse_pointer", "mouse_btn_left_up"})

	if got := rec.events[1].Get2D(); got != (mgl64.Vec2{100, 100}) {
		t.Errorf("button down should carry (100,100), got %v", got)
	}
	if got := rec.events[2].Get2D(); got != (mgl64.Vec2{110, 100}) {
		t.Errorf("pointer should carry (110,100), got %v", got)
	}
	if got := rec.events[3].Get2D(); got != (mgl64.Vec2{110, 100}) {
		t.Errorf("button up should carry (110,100), got %v", got)
	}
	if tr.Cursor() != (mgl64.Vec2{110, 100}) {
		t.Errorf("unexpected cursor %v", tr.Cursor())
	}
}

func TestButtonBeforeAnyCursorUsesOrigin(t *testing.T) {
	rec := &recorder{}
	tr := NewTranslator(rec)
	tr.MouseButtonCallback(common.MouseButtonRight, common.ActionDown, 0)
	if got := rec.events[0].Get2D(); got != (mgl64.Vec2{}) {
		t.Errorf("expected origin, got %v", got)
	}
}

func TestTranslatorsDoNotShareCursor(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	ta, tb := NewTranslator(a), NewTranslator(b)

	ta.CursorPosCallback(5, 5)
	tb.MouseButtonCallback(common.MouseButtonLeft, common.ActionDown, 0)

	if got := b.events[0].Get2D(); got != (mgl64.Vec2{}) {
		t.Errorf("translator b must not see translator a's cursor, got %v", got)
	}
}

func TestKeyEvents(t *testing.T) {
	rec := &recorder{}
	tr := NewTranslator(rec)

	tr.KeyCallback(common.KeyUp, common.ActionDown, 0)
	tr.KeyCallback(common.KeyUp, common.ActionRepeat, 0)
	tr.KeyCallback(common.KeyUp, common.ActionUp, 0)

	equalNames(t, rec.names(), []string{"kbd_UP_down", "kbd_UP_repeat", "kbd_UP_up"})
	for _, e := range rec.events {
		if e.Kind() != event.KindStandard {
			t.Errorf("arrow keys carry no payload, got %s", e.Kind())
		}
	}

	rec.events = nil
	tr.KeyCallback(common.KeyW, common.ActionDown, common.ModShift)
	if got := rec.events[0]; got.Kind() != event.KindMessage || got.GetMessage() != "W" {
		t.Errorf("expected typed character W, got %v", got)
	}
}

func TestModifierTracking(t *testing.T) {
	rec := &recorder{}
	tr := NewTranslator(rec)

	tr.KeyCallback(common.KeyLeftShift, common.ActionDown, common.ModShift)
	if tr.Mods() != common.ModShift {
		t.Fatalf("expected shift held, got %v", tr.Mods())
	}
	tr.CursorPosCallback(1, 2)
	tr.MouseButtonCallback(common.MouseButtonLeft, common.ActionDown, common.ModShift)
	tr.ScrollCallback(0, 1)
	tr.KeyCallback(common.KeyLeftShift, common.ActionUp, common.ModShift)
	if tr.Mods() != 0 {
		t.Fatalf("expected no modifiers after release, got %v", tr.Mods())
	}
	tr.CursorPosCallback(3, 4)

	equalNames(t, rec.names(), []string{
		"kbd_LEFT_SHIFT_down",
		"mouse_pointer",
		"mouse_btn_left_down_shift",
		"mouse_scroll",
		"kbd_LEFT_SHIFT_up",
		"mouse_pointer",
	})
}

func TestDragContinuesWhileModifierHeld(t *testing.T) {
	tests := []struct {
		name string
		key  common.Key
		mod  common.ModifierKey
	}{
		{"shift", common.KeyLeftShift, common.ModShift},
		{"control", common.KeyRightControl, common.ModControl},
		{"alt", common.KeyLeftAlt, common.ModAlt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := camera.NewTurntableController(5, 0, 0)
			tr := NewTranslator(ctrl)

			tr.CursorPosCallback(100, 100)
			tr.MouseButtonCallback(common.MouseButtonLeft, common.ActionDown, 0)
			tr.KeyCallback(tt.key, common.ActionDown, tt.mod)
			tr.CursorPosCallback(200, 100)

			if !ctrl.Dragging() {
				t.Fatal("drag should still be active")
			}
			if got := ctrl.Azimuth(); math.Abs(got-0.01) > 1e-12 {
				t.Errorf("expected azimuth 0.01 after a 100px drag, got %v", got)
			}
		})
	}
}

func TestRepeatButtonDropped(t *testing.T) {
	rec := &recorder{}
	tr := NewTranslator(rec)
	tr.MouseButtonCallback(common.MouseButtonLeft, common.ActionRepeat, 0)
	if len(rec.events) != 0 {
		t.Errorf("expected no events, got %v", rec.names())
	}
}

func TestAttach(t *testing.T) {
	rec := &recorder{}
	tr := NewTranslator(rec)
	w := windowtest.New(640, 480)
	tr.Attach(w)

	w.Move(10, 20)
	w.Press(common.KeyDown)
	w.Button(common.MouseButtonMiddle, common.ActionDown, 0)
	w.Scroll(0, -1)

	equalNames(t, rec.names(), []string{"mouse_pointer", "kbd_DOWN_down", "mouse_btn_middle_down", "mouse_scroll"})
	if got := rec.events[3].Get2D(); got != (mgl64.Vec2{0, -1}) {
		t.Errorf("expected scroll offset (0,-1), got %v", got)
	}
}
