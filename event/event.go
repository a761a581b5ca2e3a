// Package event provides named, synchronous publish/subscribe notifications.
//
// Handlers run in subscription order on the goroutine calling Notify. A
// handler failing, either by returning an error or by panicking, is recorded
// as the hub's last error and does not keep the remaining handlers from
// running.
package event

import (
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("ledanim.event")
}

// Kind names a notification.
type Kind string

// Event is a single notification delivered to handlers.
type Event struct {
	Kind    Kind
	Source  interface{}
	Payload interface{}
}

// Handler receives events it has subscribed to.
type Handler func(Event) error

// ID identifies a subscription.
type ID uint64

// Observable is the capability of publishing named notifications.
type Observable interface {
	Subscribe(kind Kind, h Handler) ID
	Unsubscribe(kind Kind, id ID) bool
	Notify(e Event)
}

type subscriber struct {
	id      ID
	handler Handler
}

// Hub is an Observable keeping subscribers per Kind.
// Subscribing is safe from any goroutine.
type Hub struct {
	mu          sync.Mutex
	subscribers map[Kind][]subscriber
	nextID      ID
	lastError   error
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	h := new(Hub)
	h.subscribers = make(map[Kind][]subscriber)
	return h
}

// Subscribe registers h for events of the given kind.
func (h *Hub) Subscribe(kind Kind, handler Handler) ID {
	if handler == nil {
		panic(fmt.Sprintf("event: nil handler for %q", kind))
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.subscribers[kind] = append(h.subscribers[kind], subscriber{id: h.nextID, handler: handler})
	return h.nextID
}

// Unsubscribe removes a single subscription. It reports whether one was found.
func (h *Hub) Unsubscribe(kind Kind, id ID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.subscribers[kind]
	for i, s := range subs {
		if s.id == id {
			h.subscribers[kind] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// UnsubscribeAll drops every subscription for kind and returns how many there were.
func (h *Hub) UnsubscribeAll(kind Kind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := len(h.subscribers[kind])
	delete(h.subscribers, kind)
	return n
}

// Subscribers returns the number of subscriptions for kind.
func (h *Hub) Subscribers(kind Kind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[kind])
}

// Notify delivers e to every subscriber of e.Kind.
func (h *Hub) Notify(e Event) {
	h.mu.Lock()
	subs := h.subscribers[e.Kind]
	h.mu.Unlock()
	for _, s := range subs {
		if err := h.call(s.handler, e); err != nil {
			tracer().Errorf("handler %d for %q: %v", s.id, e.Kind, err)
			h.mu.Lock()
			h.lastError = err
			h.mu.Unlock()
		}
	}
}

func (h *Hub) call(handler Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event: handler panicked: %v", r)
		}
	}()
	return handler(e)
}

// LastError returns the most recent handler failure, or nil.
func (h *Hub) LastError() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastError
}

var _ Observable = (*Hub)(nil)
