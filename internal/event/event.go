// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие симуляции. Data содержит payload из types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order,
// on the goroutine that calls Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for every given event type.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(e Event) {
	for _, listener := range d.listeners[e.Type] {
		listener.OnEvent(e)
	}
}
