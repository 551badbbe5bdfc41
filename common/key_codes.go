package common

import "strconv"

// Key is a virtual key code for cross-platform input handling.
// Values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

const (
	KeyUnknown Key = -1

	KeySpace Key = 32 // Spacebar (ASCII)

	Key0 Key = 48 // 0 key (ASCII)
	Key1 Key = 49 // 1 key (ASCII)
	Key2 Key = 50 // 2 key (ASCII)
	Key3 Key = 51 // 3 key (ASCII)
	Key4 Key = 52 // 4 key (ASCII)
	Key5 Key = 53 // 5 key (ASCII)
	Key6 Key = 54 // 6 key (ASCII)
	Key7 Key = 55 // 7 key (ASCII)
	Key8 Key = 56 // 8 key (ASCII)
	Key9 Key = 57 // 9 key (ASCII)

	KeyA Key = 65 // A key (ASCII)
	KeyB Key = 66
	KeyC Key = 67
	KeyD Key = 68
	KeyE Key = 69
	KeyF Key = 70
	KeyG Key = 71
	KeyH Key = 72
	KeyI Key = 73
	KeyJ Key = 74
	KeyK Key = 75
	KeyL Key = 76
	KeyM Key = 77
	KeyN Key = 78
	KeyO Key = 79
	KeyP Key = 80
	KeyQ Key = 81
	KeyR Key = 82
	KeyS Key = 83
	KeyT Key = 84
	KeyU Key = 85
	KeyV Key = 86
	KeyW Key = 87
	KeyX Key = 88
	KeyY Key = 89
	KeyZ Key = 90 // Z key (ASCII)
)

// Non-printable keys (GLFW values).
const (
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
)

// keyNames holds the event-name spelling of every named key.
// Printable keys use their upper-case character; the rest use upper-case words.
var keyNames = map[Key]string{
	KeySpace:        "SPACE",
	KeyEscape:       "ESCAPE",
	KeyEnter:        "ENTER",
	KeyTab:          "TAB",
	KeyBackspace:    "BACKSPACE",
	KeyRight:        "RIGHT",
	KeyLeft:         "LEFT",
	KeyDown:         "DOWN",
	KeyUp:           "UP",
	KeyLeftShift:    "LEFT_SHIFT",
	KeyLeftControl:  "LEFT_CONTROL",
	KeyLeftAlt:      "LEFT_ALT",
	KeyLeftSuper:    "LEFT_SUPER",
	KeyRightShift:   "RIGHT_SHIFT",
	KeyRightControl: "RIGHT_CONTROL",
	KeyRightAlt:     "RIGHT_ALT",
	KeyRightSuper:   "RIGHT_SUPER",
}

// keysByName is the inverse of keyNames plus the printable range, built once at init.
var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+36)
	for k, n := range keyNames {
		m[n] = k
	}
	for k := Key0; k <= Key9; k++ {
		m[string(rune(k))] = k
	}
	for k := KeyA; k <= KeyZ; k++ {
		m[string(rune(k))] = k
	}
	return m
}()

// String returns the name used for this key inside event names (e.g. "UP", "R", "LEFT_SHIFT").
// Keys without a name render as "KEY<code>".
//
// Returns:
//   - string: the event-name spelling of the key
func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if (k >= Key0 && k <= Key9) || (k >= KeyA && k <= KeyZ) {
		return string(rune(k))
	}
	return "KEY" + strconv.Itoa(int(k))
}

// KeyByName resolves an event-name key spelling back to its code.
//
// Parameters:
//   - name: the key name, e.g. "UP" or "R"
//
// Returns:
//   - Key: the resolved key, or KeyUnknown
//   - bool: false if the name is not part of the vocabulary
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	if !ok {
		return KeyUnknown, false
	}
	return k, true
}

// Char returns the text a key press types: lower-case letters (upper-case with Shift), digits, space,
// tab and newline. Keys that type nothing return "".
//
// Parameters:
//   - mods: modifiers held with the key
//
// Returns:
//   - string: the typed character, or ""
func (k Key) Char(mods ModifierKey) string {
	switch {
	case k >= KeyA && k <= KeyZ:
		if mods&ModShift != 0 {
			return string(rune(k))
		}
		return string(rune(k - KeyA + 'a'))
	case k >= Key0 && k <= Key9, k == KeySpace:
		return string(rune(k))
	case k == KeyTab:
		return "\t"
	case k == KeyEnter:
		return "\n"
	}
	return ""
}

// Modifier returns the modifier bit a modifier key controls, or 0 for any other key.
//
// Returns:
//   - ModifierKey: the modifier bit for shift/control/alt/super keys
func (k Key) Modifier() ModifierKey {
	switch k {
	case KeyLeftShift, KeyRightShift:
		return ModShift
	case KeyLeftControl, KeyRightControl:
		return ModControl
	case KeyLeftAlt, KeyRightAlt:
		return ModAlt
	case KeyLeftSuper, KeyRightSuper:
		return ModSuper
	}
	return 0
}
