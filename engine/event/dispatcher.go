package event

// Handler consumes events delivered by a Dispatcher.
type Handler interface {
	// OnEvent is called once per dispatched event, on the thread that called Dispatch.
	//
	// Parameters:
	//   - e: the event
	OnEvent(e Event)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(e Event)

// OnEvent calls f(e).
func (f HandlerFunc) OnEvent(e Event) {
	f(e)
}

// Dispatcher fans events out to its subscribers synchronously, in subscription order.
// It is meant for the single render/input thread and does no locking.
type Dispatcher struct {
	subscribers []subscription
	nextID      uint64
}

type subscription struct {
	id      uint64
	handler Handler
}

var _ Handler = &Dispatcher{}

// NewDispatcher creates an empty dispatcher.
//
// Returns:
//   - *Dispatcher: the dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe appends h to the delivery list.
// A handler subscribed while an event is being dispatched only sees later events.
//
// Parameters:
//   - h: the handler to add
//
// Returns:
//   - func(): removes h again; calling it more than once is a no-op
func (d *Dispatcher) Subscribe(h Handler) func() {
	d.nextID++
	id := d.nextID
	d.subscribers = append(d.subscribers, subscription{id: id, handler: h})
	return func() {
		for i, s := range d.subscribers {
			if s.id == id {
				// copy-on-remove so an in-flight Dispatch keeps iterating its own snapshot
				next := make([]subscription, 0, len(d.subscribers)-1)
				next = append(next, d.subscribers[:i]...)
				next = append(next, d.subscribers[i+1:]...)
				d.subscribers = next
				return
			}
		}
	}
}

// Dispatch delivers e to every current subscriber.
//
// Parameters:
//   - e: the event to deliver
func (d *Dispatcher) Dispatch(e Event) {
	subs := d.subscribers
	for _, s := range subs {
		s.handler.OnEvent(e)
	}
}

// OnEvent makes a Dispatcher usable as the sink of another producer.
func (d *Dispatcher) OnEvent(e Event) {
	d.Dispatch(e)
}

// Len returns the number of subscribers.
func (d *Dispatcher) Len() int {
	return len(d.subscribers)
}
