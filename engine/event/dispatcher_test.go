package event

import (
	"testing"
)

func TestDispatchOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string

	d.Subscribe(HandlerFunc(func(e Event) { order = append(order, "first:"+e.Name()) }))
	d.Subscribe(HandlerFunc(func(e Event) { order = append(order, "second:"+e.Name()) }))

	d.Dispatch(New("kbd_UP_down"))
	d.Dispatch(New("kbd_UP_up"))

	want := []string{"first:kbd_UP_down", "second:kbd_UP_down", "first:kbd_UP_up", "second:kbd_UP_up"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery %d: expected %q, got %q", i, want[i], order[i])
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var a, b int
	unsubA := d.Subscribe(HandlerFunc(func(Event) { a++ }))
	d.Subscribe(HandlerFunc(func(Event) { b++ }))

	d.Dispatch(New("x"))
	unsubA()
	unsubA()
	d.Dispatch(New("x"))

	if a != 1 || b != 2 {
		t.Errorf("expected a=1 b=2, got a=%d b=%d", a, b)
	}
	if d.Len() != 1 {
		t.Errorf("expected 1 subscriber, got %d", d.Len())
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var late int
	d.Subscribe(HandlerFunc(func(Event) {
		if d.Len() == 1 {
			d.Subscribe(HandlerFunc(func(Event) { late++ }))
		}
	}))

	d.Dispatch(New("x"))
	if late != 0 {
		t.Errorf("handler added mid-dispatch must not see the current event, got %d", late)
	}
	d.Dispatch(New("x"))
	if late != 1 {
		t.Errorf("expected late handler to see the next event once, got %d", late)
	}
}

func TestDispatcherAsSink(t *testing.T) {
	inner := NewDispatcher()
	var got string
	inner.Subscribe(HandlerFunc(func(e Event) { got = e.Name() }))

	var outer Handler = inner
	outer.OnEvent(New("mouse_pointer"))
	if got != "mouse_pointer" {
		t.Errorf("expected forwarded event, got %q", got)
	}
}
