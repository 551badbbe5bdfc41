package event

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-turntable/common"
)

// Source is the closed set of input devices an event name can describe.
type Source int

const (
	// SourceNone marks names outside the input vocabulary. Handlers treat them as no-ops.
	SourceNone Source = iota
	SourceKeyboard
	SourceMouseButton
	SourcePointer
	SourceScroll
)

func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouseButton:
		return "mouse_button"
	case SourcePointer:
		return "pointer"
	case SourceScroll:
		return "scroll"
	}
	return "none"
}

// Trigger is the structured form of an event name. Fields not relevant to Source are zero.
type Trigger struct {
	Source Source
	Key    common.Key
	Button common.MouseButton
	Action common.Action
	Mods   common.ModifierKey
}

const (
	prefixKeyboard = "kbd"
	prefixMouse    = "mouse"
	tokenButton    = "btn"
	tokenPointer   = "pointer"
	tokenScroll    = "scroll"
)

// Name renders the canonical event name for the trigger:
//
//	kbd_<KEY>_<down|up|repeat>[_<mod>...]
//	mouse_btn_<left|right|middle>_<down|up>[_<mod>...]
//	mouse_pointer[_<mod>...]
//	mouse_scroll[_<mod>...]
//
// Modifier suffixes always follow the action (kbd_UP_down_shift) and never precede it;
// kbd_UP_shift_down does not parse. The translator never adds modifiers to pointer or scroll
// names. SourceNone renders as the empty string.
func (t Trigger) Name() string {
	var parts []string
	switch t.Source {
	case SourceKeyboard:
		parts = []string{prefixKeyboard, t.Key.String(), t.Action.String()}
	case SourceMouseButton:
		parts = []string{prefixMouse, tokenButton, t.Button.String(), t.Action.String()}
	case SourcePointer:
		parts = []string{prefixMouse, tokenPointer}
	case SourceScroll:
		parts = []string{prefixMouse, tokenScroll}
	default:
		return ""
	}
	parts = append(parts, t.Mods.Suffixes()...)
	return strings.Join(parts, "_")
}

// ParseName parses an event name into its Trigger. Any name that does not follow the vocabulary
// exactly (unknown key, unknown action, unknown modifier, extra tokens) yields a Trigger with
// SourceNone, so that misspelled names are inert rather than half-matched.
//
// Parameters:
//   - name: the event name
//
// Returns:
//   - Trigger: the parsed trigger
func ParseName(name string) Trigger {
	tokens := strings.Split(name, "_")
	if len(tokens) < 2 {
		return Trigger{}
	}

	switch tokens[0] {
	case prefixKeyboard:
		return parseKeyboard(tokens[1:])
	case prefixMouse:
		switch tokens[1] {
		case tokenButton:
			return parseButton(tokens[2:])
		case tokenPointer:
			if mods, ok := parseMods(tokens[2:]); ok {
				return Trigger{Source: SourcePointer, Mods: mods}
			}
		case tokenScroll:
			if mods, ok := parseMods(tokens[2:]); ok {
				return Trigger{Source: SourceScroll, Mods: mods}
			}
		}
	}
	return Trigger{}
}

// parseKeyboard handles <KEY...>_<action>[_<mod>...]. Key names may themselves contain
// underscores (LEFT_SHIFT), so the first action token ends the key name.
func parseKeyboard(tokens []string) Trigger {
	for i := 1; i < len(tokens); i++ {
		action, ok := common.ActionByName(tokens[i])
		if !ok {
			continue
		}
		key, ok := common.KeyByName(strings.Join(tokens[:i], "_"))
		if !ok {
			return Trigger{}
		}
		mods, ok := parseMods(tokens[i+1:])
		if !ok {
			return Trigger{}
		}
		return Trigger{Source: SourceKeyboard, Key: key, Action: action, Mods: mods}
	}
	return Trigger{}
}

func parseButton(tokens []string) Trigger {
	if len(tokens) < 2 {
		return Trigger{}
	}
	button, ok := common.MouseButtonByName(tokens[0])
	if !ok {
		return Trigger{}
	}
	action, ok := common.ActionByName(tokens[1])
	if !ok || action == common.ActionRepeat {
		return Trigger{}
	}
	mods, ok := parseMods(tokens[2:])
	if !ok {
		return Trigger{}
	}
	return Trigger{Source: SourceMouseButton, Button: button, Action: action, Mods: mods}
}

func parseMods(tokens []string) (common.ModifierKey, bool) {
	var mods common.ModifierKey
	for _, tok := range tokens {
		m, ok := common.ModifierByName(tok)
		if !ok {
			return 0, false
		}
		mods |= m
	}
	return mods, true
}
