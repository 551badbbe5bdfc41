package event

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind discriminates the payload an Event carries.
type Kind int

const (
	// KindStandard carries no payload.
	KindStandard Kind = iota
	// KindScalar1D carries a float64.
	KindScalar1D
	// KindVector2D carries an mgl64.Vec2.
	KindVector2D
	// KindVector3D carries an mgl64.Vec3.
	KindVector3D
	// KindVector4D carries an mgl64.Vec4.
	KindVector4D
	// KindMatrix4x4 carries an mgl64.Mat4.
	KindMatrix4x4
	// KindMessage carries a string.
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "Standard"
	case KindScalar1D:
		return "Scalar1D"
	case KindVector2D:
		return "Vector2D"
	case KindVector3D:
		return "Vector3D"
	case KindVector4D:
		return "Vector4D"
	case KindMatrix4x4:
		return "Matrix4x4"
	case KindMessage:
		return "Message"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindMismatchError is the panic value raised when a payload getter does not match the event's Kind.
// It always indicates a routing bug in the caller.
type KindMismatchError struct {
	Name string
	Have Kind
	Want Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("event %q: payload is %s, accessed as %s", e.Name, e.Have, e.Want)
}

// Event is one input occurrence: a name, the structured trigger parsed from that name, and at most
// one typed payload selected by Kind. Events are values; only Rename mutates one after construction.
type Event struct {
	name    string
	trigger Trigger
	kind    Kind
	payload any
}

func newEvent(name string, kind Kind, payload any) Event {
	return Event{
		name:    name,
		trigger: ParseName(name),
		kind:    kind,
		payload: payload,
	}
}

// New creates an event without payload (KindStandard).
//
// Parameters:
//   - name: the event name, e.g. "kbd_R_down"
//
// Returns:
//   - Event: the new event
func New(name string) Event {
	return newEvent(name, KindStandard, nil)
}

// New1D creates an event carrying a scalar (KindScalar1D).
func New1D(name string, v float64) Event {
	return newEvent(name, KindScalar1D, v)
}

// New2D creates an event carrying a 2D vector (KindVector2D).
//
// Parameters:
//   - name: the event name, e.g. "mouse_pointer"
//   - v: the payload
//
// Returns:
//   - Event: the new event
func New2D(name string, v mgl64.Vec2) Event {
	return newEvent(name, KindVector2D, v)
}

// New3D creates an event carrying a 3D vector (KindVector3D).
func New3D(name string, v mgl64.Vec3) Event {
	return newEvent(name, KindVector3D, v)
}

// New4D creates an event carrying a 4D vector (KindVector4D).
func New4D(name string, v mgl64.Vec4) Event {
	return newEvent(name, KindVector4D, v)
}

// NewMatrix4x4 creates an event carrying a 4x4 matrix (KindMatrix4x4).
func NewMatrix4x4(name string, m mgl64.Mat4) Event {
	return newEvent(name, KindMatrix4x4, m)
}

// NewMessage creates an event carrying a string (KindMessage).
func NewMessage(name string, msg string) Event {
	return newEvent(name, KindMessage, msg)
}

// NewKey creates a keyboard event named kbd_<KEY>_<action>[_<mod>...]. Keys that type a character
// carry it as a message ("a", "A" with Shift, "7", " ").
//
// Parameters:
//   - key: the key code
//   - action: down, up or repeat
//   - mods: modifiers held when the key changed state
//
// Returns:
//   - Event: a KindMessage event for typing keys, KindStandard otherwise
func NewKey(key common.Key, action common.Action, mods common.ModifierKey) Event {
	name := Trigger{Source: SourceKeyboard, Key: key, Action: action, Mods: mods}.Name()
	if char := key.Char(mods); char != "" {
		return NewMessage(name, char)
	}
	return New(name)
}

// NewButton creates a mouse button event named mouse_btn_<button>_<action>[_<mod>...], carrying the
// cursor position at the time of the click.
//
// Parameters:
//   - button: the mouse button
//   - action: down or up
//   - mods: modifiers held when the button changed state
//   - position: window-local cursor position in pixels
//
// Returns:
//   - Event: a KindVector2D mouse button event
func NewButton(button common.MouseButton, action common.Action, mods common.ModifierKey, position mgl64.Vec2) Event {
	return New2D(Trigger{Source: SourceMouseButton, Button: button, Action: action, Mods: mods}.Name(), position)
}

// NewPointer creates a mouse_pointer event carrying the absolute window-local cursor position.
// Input translators pass no modifiers so a drag keeps turning while a modifier key is held.
func NewPointer(position mgl64.Vec2, mods common.ModifierKey) Event {
	return New2D(Trigger{Source: SourcePointer, Mods: mods}.Name(), position)
}

// NewScroll creates a mouse_scroll event carrying the wheel offset (x, y). Like NewPointer it is
// normally built without modifiers.
func NewScroll(offset mgl64.Vec2, mods common.ModifierKey) Event {
	return New2D(Trigger{Source: SourceScroll, Mods: mods}.Name(), offset)
}

// Name returns the event name.
func (e Event) Name() string {
	return e.name
}

// Rename replaces the event name and re-derives its trigger from the new name.
// The payload and Kind are left untouched.
//
// Parameters:
//   - name: the new event name
func (e *Event) Rename(name string) {
	e.name = name
	e.trigger = ParseName(name)
}

// Kind returns the payload discriminant.
func (e Event) Kind() Kind {
	return e.kind
}

// Trigger returns the structured description parsed from the name.
func (e Event) Trigger() Trigger {
	return e.trigger
}

// Source returns which input device produced the event, or SourceNone for names outside the vocabulary.
func (e Event) Source() Source {
	return e.trigger.Source
}

// Key returns the key of a keyboard event.
func (e Event) Key() common.Key {
	return e.trigger.Key
}

// Button returns the button of a mouse button event.
func (e Event) Button() common.MouseButton {
	return e.trigger.Button
}

// Action returns the action of a keyboard or mouse button event.
func (e Event) Action() common.Action {
	return e.trigger.Action
}

// Mods returns the modifier suffixes of the event name as a bit set.
func (e Event) Mods() common.ModifierKey {
	return e.trigger.Mods
}

func (e Event) mustBe(want Kind) {
	if e.kind != want {
		panic(&KindMismatchError{Name: e.name, Have: e.kind, Want: want})
	}
}

// Get1D returns the scalar payload. Panics with *KindMismatchError unless Kind is KindScalar1D.
func (e Event) Get1D() float64 {
	e.mustBe(KindScalar1D)
	return e.payload.(float64)
}

// Get2D returns the 2D vector payload. Panics with *KindMismatchError unless Kind is KindVector2D.
//
// Returns:
//   - mgl64.Vec2: the payload
func (e Event) Get2D() mgl64.Vec2 {
	e.mustBe(KindVector2D)
	return e.payload.(mgl64.Vec2)
}

// Get3D returns the 3D vector payload. Panics with *KindMismatchError unless Kind is KindVector3D.
func (e Event) Get3D() mgl64.Vec3 {
	e.mustBe(KindVector3D)
	return e.payload.(mgl64.Vec3)
}

// Get4D returns the 4D vector payload. Panics with *KindMismatchError unless Kind is KindVector4D.
func (e Event) Get4D() mgl64.Vec4 {
	e.mustBe(KindVector4D)
	return e.payload.(mgl64.Vec4)
}

// GetMatrix4x4 returns the matrix payload. Panics with *KindMismatchError unless Kind is KindMatrix4x4.
func (e Event) GetMatrix4x4() mgl64.Mat4 {
	e.mustBe(KindMatrix4x4)
	return e.payload.(mgl64.Mat4)
}

// GetMessage returns the string payload. Panics with *KindMismatchError unless Kind is KindMessage.
func (e Event) GetMessage() string {
	e.mustBe(KindMessage)
	return e.payload.(string)
}

// String formats the event for logs, e.g. "mouse_pointer(Vector2D [110 100])".
func (e Event) String() string {
	if e.kind == KindStandard {
		return e.name
	}
	return fmt.Sprintf("%s(%s %v)", e.name, e.kind, e.payload)
}
