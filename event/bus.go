package event

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"
	"unsafe"

	"github.com/google/uuid"
)

// Handler is a callable registered against an event name.
// It receives the emission's payload and reports failure by returning
// an error or panicking; panics are recovered into *PanicError.
type Handler func(ctx context.Context, args ...any) error

// UnsubscribeFunc removes the registration it was returned for.
// Calling it more than once is a no-op.
type UnsubscribeFunc func()

// DiagnosticSink receives the bus's internal warnings and error reports.
// It is owned externally and injected at construction; the bus never
// constructs its own sink.
type DiagnosticSink interface {
	// Warn reports a non-fatal usage warning.
	Warn(messages ...any)

	// Error reports a handler failure. Level 0 is a plain error.
	Error(level int, messages ...any)
}

// DebugSink is an optional extension of DiagnosticSink. When the bus is
// constructed with WithDebug and the sink implements DebugSink,
// registration and emission activity is reported through Debug.
type DebugSink interface {
	Debug(messages ...any)
}

// listener is a single handler registration.
type listener struct {
	id   string
	fn   Handler
	ptr  uintptr
	once bool
}

// handlerID returns the identity of a handler value: the address of its
// underlying function object. The same func value yields the same
// identity however often it is registered, while distinct closures have
// distinct identities even when created from the same function literal.
// Live registrations keep their function object reachable through fn, so
// identities of registered handlers cannot collide.
func handlerID(h Handler) uintptr {
	return *(*uintptr)(unsafe.Pointer(&h))
}

// Bus is a strongly-keyed publish/subscribe registry of event names to
// handler lists. The type parameter fixes the event-name type, so a bus
// for one schema cannot be emitted on with another schema's names.
type Bus[E ~string] struct {
	mu        sync.RWMutex
	listeners map[E][]*listener
	config    busConfig
	sink      DiagnosticSink
}

// New creates a bus reporting its internal diagnostics to sink.
// The sink is required; a nil sink returns ErrNilSink.
func New[E ~string](sink DiagnosticSink, opts ...Option) (*Bus[E], error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Bus[E]{
		listeners: make(map[E][]*listener),
		config:    config,
		sink:      sink,
	}, nil
}

// On registers handler for event and returns a function that removes
// exactly this registration. Registering the identical handler value
// twice for the same event is a no-op; the returned function then
// unsubscribes the original registration. Distinct closures are distinct
// handlers even when created from the same function literal.
func (b *Bus[E]) On(event E, handler Handler) UnsubscribeFunc {
	return b.register(event, handler, false, false)
}

// Prepend registers handler ahead of all handlers currently registered
// for event. Handlers registered afterwards are appended normally.
func (b *Bus[E]) Prepend(event E, handler Handler) UnsubscribeFunc {
	return b.register(event, handler, true, false)
}

// Once registers handler for a single invocation: the registration is
// removed before the handler runs, so later emissions never invoke it
// again. The returned function removes the registration pre-emptively if
// it has not yet fired.
func (b *Bus[E]) Once(event E, handler Handler) UnsubscribeFunc {
	return b.register(event, handler, false, true)
}

func (b *Bus[E]) register(event E, handler Handler, prepend, once bool) UnsubscribeFunc {
	if handler == nil {
		b.sink.Warn(fmt.Sprintf("ignoring nil handler for event %q", string(event)))
		return func() {}
	}

	ptr := handlerID(handler)

	b.mu.Lock()
	for _, l := range b.listeners[event] {
		if l.ptr == ptr {
			// Duplicate registration is a no-op.
			id := l.id
			b.mu.Unlock()
			return func() { b.removeByID(event, id) }
		}
	}

	limit := b.config.maxListeners
	overCap := limit > 0 && len(b.listeners[event]) >= limit

	l := &listener{
		id:   uuid.NewString(),
		fn:   handler,
		ptr:  ptr,
		once: once,
	}
	if prepend {
		b.listeners[event] = append([]*listener{l}, b.listeners[event]...)
	} else {
		b.listeners[event] = append(b.listeners[event], l)
	}
	b.mu.Unlock()

	if overCap {
		b.sink.Warn(fmt.Sprintf("event %q exceeds the listener cap of %d; registering anyway", string(event), limit))
	}
	b.debugf("registered handler %s for event %q", l.id, string(event))

	id := l.id
	return func() { b.removeByID(event, id) }
}

// Off removes one registration matching handler for event. It is a no-op
// when no such registration exists. Removing the last handler for an
// event deletes the event's entry entirely.
func (b *Bus[E]) Off(event E, handler Handler) {
	if handler == nil {
		return
	}
	ptr := handlerID(handler)

	b.mu.Lock()
	var removed string
	for i, l := range b.listeners[event] {
		if l.ptr == ptr {
			removed = l.id
			b.deleteAt(event, i)
			break
		}
	}
	b.mu.Unlock()

	if removed != "" {
		b.debugf("removed handler %s for event %q", removed, string(event))
	}
}

// removeByID removes a registration by ID and reports whether it was
// still present. Used by unsubscribe closures and once-delivery.
func (b *Bus[E]) removeByID(event E, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, l := range b.listeners[event] {
		if l.id == id {
			b.deleteAt(event, i)
			return true
		}
	}
	return false
}

// deleteAt removes the i-th listener for event and prunes the event's
// entry when it becomes empty. Caller must hold b.mu.
func (b *Bus[E]) deleteAt(event E, i int) {
	ls := b.listeners[event]
	b.listeners[event] = append(ls[:i], ls[i+1:]...)
	if len(b.listeners[event]) == 0 {
		delete(b.listeners, event)
	}
}

// Emit synchronously invokes every handler registered for event at the
// moment of the call, in registration order. Handlers added or removed
// during the emission do not affect the in-progress handler list.
//
// Emit returns false when there are no handlers and true otherwise. When
// failure isolation is enabled (the default), a failing handler is
// reported to the sink as a level-0 error and the remaining handlers
// still run; when disabled, the first failure aborts the emission and is
// returned to the caller.
func (b *Bus[E]) Emit(ctx context.Context, event E, args ...any) (bool, error) {
	snapshot := b.snapshot(event)
	if len(snapshot) == 0 {
		b.warnNoListeners(event)
		return false, nil
	}

	b.debugf("emitting event %q to %d handler(s)", string(event), len(snapshot))

	for _, l := range snapshot {
		if l.once && !b.removeByID(event, l.id) {
			// Already consumed by a concurrent emission or unsubscribed.
			continue
		}
		if err := b.invoke(ctx, event, l, args); err != nil {
			if b.config.catchErrors {
				b.sink.Error(0, err.Error())
				continue
			}
			return true, err
		}
	}
	return true, nil
}

// EmitAsync invokes every handler registered for event on its own
// goroutine and blocks until all of them complete. It returns false
// immediately when there are no handlers. Unlike Emit, failure isolation
// is never applied: the first handler failure is returned to the caller
// after all handlers have finished. There is no cancellation or timeout
// for in-flight handlers.
func (b *Bus[E]) EmitAsync(ctx context.Context, event E, args ...any) (bool, error) {
	snapshot := b.snapshot(event)
	if len(snapshot) == 0 {
		b.warnNoListeners(event)
		return false, nil
	}

	b.debugf("emitting event %q asynchronously to %d handler(s)", string(event), len(snapshot))

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for _, l := range snapshot {
		if l.once && !b.removeByID(event, l.id) {
			continue
		}
		wg.Add(1)
		go func(l *listener) {
			defer wg.Done()
			if err := b.invoke(ctx, event, l, args); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}(l)
	}
	wg.Wait()

	return true, firstErr
}

// invoke runs a single handler, converting a returned error into
// *HandlerError and a panic into *PanicError.
func (b *Bus[E]) invoke(ctx context.Context, event E, l *listener, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				Event: string(event),
				ID:    l.id,
				Value: r,
				Stack: string(debug.Stack()),
			}
		}
	}()

	if herr := l.fn(ctx, args...); herr != nil {
		return &HandlerError{Event: string(event), ID: l.id, Err: herr}
	}
	return nil
}

// snapshot returns a copy of the current handler list for event.
func (b *Bus[E]) snapshot(event E) []*listener {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ls := b.listeners[event]
	if len(ls) == 0 {
		return nil
	}
	result := make([]*listener, len(ls))
	copy(result, ls)
	return result
}

func (b *Bus[E]) warnNoListeners(event E) {
	if b.config.warnOnNoListeners {
		b.sink.Warn(fmt.Sprintf("no listeners registered for event %q", string(event)))
	}
}

// ListenerCount returns the number of handlers registered for event.
func (b *Bus[E]) ListenerCount(event E) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners[event])
}

// HasListeners reports whether event has at least one handler.
func (b *Bus[E]) HasListeners(event E) bool {
	return b.ListenerCount(event) > 0
}

// EventNames returns the names of all events with at least one handler,
// sorted for deterministic iteration.
func (b *Bus[E]) EventNames() []E {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.listeners) == 0 {
		return nil
	}
	names := make([]E, 0, len(b.listeners))
	for name := range b.listeners {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return string(names[i]) < string(names[j])
	})
	return names
}

// SetMaxListeners mutates the soft per-event listener cap for future
// registrations. Zero means unbounded.
func (b *Bus[E]) SetMaxListeners(n int) {
	if n < 0 {
		return
	}
	b.mu.Lock()
	b.config.maxListeners = n
	b.mu.Unlock()
}

// RemoveAllListeners clears the handlers of the given events, or the
// entire registry when called without arguments.
func (b *Bus[E]) RemoveAllListeners(events ...E) {
	b.mu.Lock()
	if len(events) == 0 {
		b.listeners = make(map[E][]*listener)
	} else {
		for _, event := range events {
			delete(b.listeners, event)
		}
	}
	b.mu.Unlock()

	if len(events) == 0 {
		b.debugf("cleared all listeners")
	} else {
		b.debugf("cleared listeners for %d event(s)", len(events))
	}
}

// debugf reports bus activity through the sink when debug mode is on and
// the sink implements DebugSink.
func (b *Bus[E]) debugf(format string, args ...any) {
	if !b.config.debug {
		return
	}
	if ds, ok := b.sink.(DebugSink); ok {
		ds.Debug(fmt.Sprintf(format, args...))
	}
}
