// Package eventbus provides a small typed publish/subscribe hub. Delivery is
// synchronous: Publish returns after every handler for the event type ran.
package eventbus

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

type handler struct {
	id uint64
	fn func(any)
}

// Bus routes events to handlers by the event's static type.
type Bus struct {
	mu       sync.RWMutex
	handlers map[reflect.Type][]handler
	nextID   uint64
	logger   *zap.Logger

	published atomic.Uint64
	failures  atomic.Uint64
}

// Stats reports delivery counters.
type Stats struct {
	Published uint64 `json:"published"`
	Failures  uint64 `json:"failures"`
}

// New creates a bus. A nil logger discards handler failures.
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{handlers: make(map[reflect.Type][]handler), logger: logger}
}

// Subscription detaches a handler when no longer needed.
type Subscription struct {
	bus *Bus
	typ reflect.Type
	id  uint64
}

// Unsubscribe removes the handler. Calling it twice is harmless.
func (s Subscription) Unsubscribe() {
	if s.bus == nil {
		return
	}
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	list := s.bus.handlers[s.typ]
	for i, h := range list {
		if h.id == s.id {
			s.bus.handlers[s.typ] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Subscribe registers fn for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) Subscription {
	typ := typeOf[T]()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers[typ] = append(b.handlers[typ], handler{
		id: id,
		fn: func(v any) { fn(v.(T)) },
	})
	return Subscription{bus: b, typ: typ, id: id}
}

// Publish delivers event to every handler subscribed to T, in subscription
// order, and returns how many handlers ran. A panicking handler is logged
// and does not stop delivery to the rest.
func Publish[T any](b *Bus, event T) int {
	if b == nil {
		return 0
	}
	typ := typeOf[T]()
	b.mu.RLock()
	list := append([]handler(nil), b.handlers[typ]...)
	b.mu.RUnlock()

	b.published.Add(1)
	for _, h := range list {
		b.deliver(typ, h, event)
	}
	return len(list)
}

// Stats returns a snapshot of delivery counters.
func (b *Bus) Stats() Stats {
	return Stats{Published: b.published.Load(), Failures: b.failures.Load()}
}

func (b *Bus) deliver(typ reflect.Type, h handler, event any) {
	defer func() {
		if r := recover(); r != nil {
			b.failures.Add(1)
			b.logger.Error("event handler panicked",
				zap.String("event", typ.String()),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	h.fn(event)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
