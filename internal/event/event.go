// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// Subscription — дескриптор подписки, нужен для отписки.
type Subscription struct {
	eventType EventType
	id        uint64
}

type subscriber struct {
	id       uint64
	listener Listener
}

// Dispatcher — диспетчер событий.
//
// Рассылка синхронная, подписчики вызываются в порядке подписки.
// Подписчик не должен во время рассылки менять то поле, о котором его уведомили:
// защиты от повторного входа нет.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return Subscription{eventType: eventType, id: d.nextID}
}

// SubscribeFunc — подписка функции на событие
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) Subscription {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe — отписка от события. Повторная отписка ничего не делает.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	listeners, exists := d.listeners[sub.eventType]
	if !exists {
		return
	}
	for i, s := range listeners {
		if s.id == sub.id {
			// Новый срез, чтобы не портить снимок, по которому может идти рассылка.
			rest := make([]subscriber, 0, len(listeners)-1)
			rest = append(rest, listeners[:i]...)
			rest = append(rest, listeners[i+1:]...)
			if len(rest) == 0 {
				delete(d.listeners, sub.eventType)
			} else {
				d.listeners[sub.eventType] = rest
			}
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	for _, s := range listeners {
		s.listener.OnEvent(event)
	}
}

// ListenerCount возвращает число подписчиков на тип события.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}
