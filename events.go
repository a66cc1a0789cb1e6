package transitions

// event is a list of handlers invoked in registration order on the caller's
// goroutine.
type event[T any] struct {
	handlers []func(T)
}

// Register adds a handler to the event.
func (e *event[T]) Register(handler func(T)) {
	if handler == nil {
		return
	}
	e.handlers = append(e.handlers, handler)
}

// UnregisterAll removes all handlers from the event.
func (e *event[T]) UnregisterAll() {
	e.handlers = nil
}

// Invoke calls all registered handlers.
func (e *event[T]) Invoke(v T) {
	for _, handler := range e.handlers {
		handler(v)
	}
}
