package events

import (
	"sync"
	"time"
)

// Handler observes events. Handlers are invoked synchronously on the
// coordinator goroutine, so emission order is mutation order; a slow handler
// slows the investigation rather than dropping or reordering events.
type Handler func(Event)

// Emitter fans events out to an explicit observer list. No implicit global
// dispatch — each run constructs its own emitter.
type Emitter struct {
	mu       sync.Mutex
	handlers []Handler
	done     bool
	now      func() time.Time
}

// NewEmitter creates an emitter with no subscribers.
func NewEmitter() *Emitter {
	return &Emitter{now: time.Now}
}

// Subscribe registers a handler. Safe to call before the run starts; events
// emitted earlier are not replayed.
func (e *Emitter) Subscribe(h Handler) {
	if h == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, h)
}

// Emit delivers an event to all handlers in subscription order.
// Events emitted after done are dropped — the stream is finite.
func (e *Emitter) Emit(eventType string, payload any) {
	e.mu.Lock()
	if e.done {
		e.mu.Unlock()
		return
	}
	if eventType == TypeDone {
		e.done = true
	}
	handlers := e.handlers
	ev := Event{Type: eventType, Timestamp: e.now(), Payload: payload}
	e.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Done reports whether the terminal event has been emitted.
func (e *Emitter) Done() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

// Collector accumulates events for tests and batch consumers.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// NewCollector creates an empty collector.
func NewCollector() *Collector { return &Collector{} }

// Handler returns the collector's subscription function.
func (c *Collector) Handler() Handler {
	return func(ev Event) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.events = append(c.events, ev)
	}
}

// Events returns a copy of everything collected so far.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Types returns the event type sequence collected so far.
func (c *Collector) Types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Type
	}
	return out
}
