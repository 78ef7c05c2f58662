// internal/event/event.go
package event

import "reflect"

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

// OnEvent calls f(event).
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Dispatcher - синхронный диспетчер событий. Слушатели вызываются на потоке тика.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Unsubscribe removes listener from eventType. Listeners of a non-comparable type, such as
// ListenerFunc, cannot be matched and stay subscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		d.listeners[eventType] = remove(listeners, listener)
	}
}

// UnsubscribeAll removes a listener registered with SubscribeAll.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	d.any = remove(d.any, listener)
}

func remove(listeners []Listener, listener Listener) []Listener {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return listeners
	}
	for i, l := range listeners {
		if reflect.TypeOf(l) == reflect.TypeOf(listener) && l == listener {
			return append(listeners[:i], listeners[i+1:]...)
		}
	}
	return listeners
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.any {
		listener.OnEvent(event)
	}
}
