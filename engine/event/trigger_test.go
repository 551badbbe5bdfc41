package event

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-turntable/common"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		want Trigger
	}{
		{"kbd_UP_down", Trigger{Source: SourceKeyboard, Key: common.KeyUp, Action: common.ActionDown}},
		{"kbd_DOWN_repeat", Trigger{Source: SourceKeyboard, Key: common.KeyDown, Action: common.ActionRepeat}},
		{"kbd_R_up", Trigger{Source: SourceKeyboard, Key: common.KeyR, Action: common.ActionUp}},
		{"kbd_LEFT_SHIFT_down", Trigger{Source: SourceKeyboard, Key: common.KeyLeftShift, Action: common.ActionDown}},
		{"kbd_UP_down_shift", Trigger{Source: SourceKeyboard, Key: common.KeyUp, Action: common.ActionDown, Mods: common.ModShift}},
		{"kbd_A_down_ctrl_alt", Trigger{Source: SourceKeyboard, Key: common.KeyA, Action: common.ActionDown, Mods: common.ModControl | common.ModAlt}},
		{"mouse_btn_left_down", Trigger{Source: SourceMouseButton, Button: common.MouseButtonLeft, Action: common.ActionDown}},
		{"mouse_btn_right_up", Trigger{Source: SourceMouseButton, Button: common.MouseButtonRight, Action: common.ActionUp}},
		{"mouse_btn_middle_down_super", Trigger{Source: SourceMouseButton, Button: common.MouseButtonMiddle, Action: common.ActionDown, Mods: common.ModSuper}},
		{"mouse_pointer", Trigger{Source: SourcePointer}},
		{"mouse_pointer_shift", Trigger{Source: SourcePointer, Mods: common.ModShift}},
		{"mouse_scroll", Trigger{Source: SourceScroll}},

		// outside the vocabulary
		{"", Trigger{}},
		{"kbd", Trigger{}},
		{"kbd_UP", Trigger{}},
		{"kbd_up_down", Trigger{}},
		{"kbd_UP_pressed", Trigger{}},
		{"kbd_UP_down_hyper", Trigger{}},
		{"kbd_UP_shift_down", Trigger{}},
		{"mouse_btn_left_shift_down", Trigger{}},
		{"mouse_btn_left_repeat", Trigger{}},
		{"mouse_btn_fourth_down", Trigger{}},
		{"mouse_pointer_moved", Trigger{}},
		{"mouse_wheel", Trigger{}},
		{"joystick_axis", Trigger{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseName(tt.name); got != tt.want {
				t.Errorf("ParseName(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTriggerNameMatchesParse(t *testing.T) {
	triggers := []Trigger{
		{Source: SourceKeyboard, Key: common.KeyRightControl, Action: common.ActionRepeat, Mods: common.ModControl},
		{Source: SourceMouseButton, Button: common.MouseButtonRight, Action: common.ActionUp, Mods: common.ModShift | common.ModSuper},
		{Source: SourcePointer, Mods: common.ModAlt},
	}
	for _, tr := range triggers {
		if got := ParseName(tr.Name()); got != tr {
			t.Errorf("%q parsed to %+v, want %+v", tr.Name(), got, tr)
		}
	}
	if (Trigger{}).Name() != "" {
		t.Error("SourceNone should have an empty name")
	}
}
