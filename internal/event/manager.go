// internal/event/manager.go
package event

import "github.com/bethropolis/magicpad/internal/logger"

// Handler is an event subscriber. It returns true if it consumed the event,
// which stops delivery to later handlers.
type Handler func(e Event) bool

// Manager delivers events to subscribers synchronously, in subscription
// order, on the caller's goroutine.
type Manager struct {
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for eventType.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Event Manager: Handler subscribed to %v", eventType)
}

// Dispatch sends an event to the handlers registered for its type.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	handlers := m.handlers[eventType]
	if len(handlers) == 0 {
		return
	}

	// Copy so a handler that subscribes during dispatch does not change this round.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	e := Event{Type: eventType, Data: data}
	for _, handler := range handlersCopy {
		if handler(e) {
			break
		}
	}
}
