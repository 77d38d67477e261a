// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event carries a typed payload; see types.go for the payload of each type.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Subscription identifies one Subscribe call for Unsubscribe.
type Subscription struct {
	eventType EventType
	id        uint64
}

type entry struct {
	id       uint64
	listener Listener
}

// Dispatcher delivers events synchronously, in subscription order. It is not
// safe for concurrent use; the engine only dispatches while holding its lock.
type Dispatcher struct {
	listeners map[EventType][]entry
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]entry),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], entry{id: d.nextID, listener: listener})
	return Subscription{eventType: eventType, id: d.nextID}
}

// Unsubscribe — отписка от события. Unknown subscriptions are ignored.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	entries := d.listeners[sub.eventType]
	for i, e := range entries {
		if e.id == sub.id {
			next := make([]entry, 0, len(entries)-1)
			next = append(next, entries[:i]...)
			d.listeners[sub.eventType] = append(next, entries[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, e := range d.listeners[event.Type] {
		e.listener.OnEvent(event)
	}
}
