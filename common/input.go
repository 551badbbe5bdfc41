package common

import "strings"

// Action is the phase of a key or mouse button occurrence.
type Action int

const (
	ActionUp     Action = 0 // release (GLFW Release)
	ActionDown   Action = 1 // press (GLFW Press)
	ActionRepeat Action = 2 // auto-repeat while held (GLFW Repeat)
)

// String returns the lower-case event-name spelling of the action.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionRepeat:
		return "repeat"
	}
	return "unknown"
}

// ActionByName resolves "down", "up" or "repeat".
//
// Parameters:
//   - name: the action spelling
//
// Returns:
//   - Action: the resolved action
//   - bool: false if name is not an action
func ActionByName(name string) (Action, bool) {
	switch name {
	case "up":
		return ActionUp, true
	case "down":
		return ActionDown, true
	case "repeat":
		return ActionRepeat, true
	}
	return 0, false
}

// MouseButton identifies a mouse button. Values match GLFW mouse button codes.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// String returns the event-name spelling of the button ("left", "right", "middle").
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// MouseButtonByName resolves "left", "right" or "middle".
func MouseButtonByName(name string) (MouseButton, bool) {
	switch name {
	case "left":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	}
	return 0, false
}

// ModifierKey is a bit set of held modifier keys. Bit values match GLFW ModifierKey.
type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

// modifierOrder fixes the order in which modifier suffixes appear in event names.
var modifierOrder = []struct {
	mod  ModifierKey
	name string
}{
	{ModShift, "shift"},
	{ModControl, "ctrl"},
	{ModAlt, "alt"},
	{ModSuper, "super"},
}

// Suffixes returns the event-name suffixes for every set modifier, in shift, ctrl, alt, super order.
//
// Returns:
//   - []string: suffixes without the leading underscore; nil when no modifier is set
func (m ModifierKey) Suffixes() []string {
	var out []string
	for _, mo := range modifierOrder {
		if m&mo.mod != 0 {
			out = append(out, mo.name)
		}
	}
	return out
}

// String joins the modifier suffixes with "+", or returns "none".
func (m ModifierKey) String() string {
	s := m.Suffixes()
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "+")
}

// ModifierByName resolves a single modifier suffix ("shift", "ctrl", "alt", "super").
func ModifierByName(name string) (ModifierKey, bool) {
	for _, mo := range modifierOrder {
		if mo.name == name {
			return mo.mod, true
		}
	}
	return 0, false
}
