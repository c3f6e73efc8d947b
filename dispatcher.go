package emitter

import (
	"context"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/emitter/core/logger"
	"github.com/dmitrymomot/emitter/pkg/wildcard"
)

// Dispatcher is a synchronous publish/subscribe registry keyed by event
// patterns. The zero value is not usable; create one with New.
//
// Listeners run in the emitting goroutine, in pattern registration order and
// then in listener registration order. The registry lock is never held while
// a listener runs, so listeners may emit, register and unregister freely.
type Dispatcher struct {
	id string

	mu     sync.RWMutex
	order  []string
	events map[string][]Listener

	separator        string
	newListenerEvent string
	logger           *slog.Logger
	panicHandler     PanicHandler
}

// New creates an empty dispatcher with the default configuration.
func New(opts ...Option) *Dispatcher {
	return NewFromConfig(DefaultConfig(), opts...)
}

// ID returns the dispatcher's unique identifier, attached to its log records.
func (d *Dispatcher) ID() string {
	return d.id
}

// Separator returns the string placed between scope segments.
func (d *Dispatcher) Separator() string {
	return d.separator
}

// ============================================================================
// Registration
// ============================================================================

// On appends l to the listeners of event. Registering the same pattern again
// appends to the same slot. A nil listener is ignored.
func (d *Dispatcher) On(event string, l Listener) {
	if isNil(l) {
		d.logger.Debug("nil listener ignored", logger.Pattern(event))
		return
	}
	d.add(event, l, l)
}

// OnFunc registers fn and returns the handle needed to unregister it.
func (d *Dispatcher) OnFunc(event string, fn func(args ...any) any) Listener {
	l := Func(fn)
	d.On(event, l)
	return l
}

// Once registers l to run at most once. The wrapper removes itself after the
// first call, even when events are emitted re-entrantly during that call.
func (d *Dispatcher) Once(event string, l Listener) {
	if isNil(l) {
		d.logger.Debug("nil listener ignored", logger.Pattern(event))
		return
	}
	d.add(event, newOnceListener(l, d.detacher(event)), l)
}

// Many registers l to run n times, after which it is removed.
// With n <= 0 the listener is never removed automatically.
func (d *Dispatcher) Many(event string, l Listener, n int) {
	if isNil(l) {
		d.logger.Debug("nil listener ignored", logger.Pattern(event))
		return
	}
	d.add(event, newManyListener(l, n, d.detacher(event)), l)
}

func (d *Dispatcher) add(event string, entry, original Listener) {
	// warm the shared pattern cache outside the lock
	wildcard.Compile(event)

	d.mu.Lock()
	if _, ok := d.events[event]; !ok {
		d.order = append(d.order, event)
	}
	d.events[event] = append(d.events[event], entry)
	d.mu.Unlock()

	d.logger.Debug("listener registered", logger.Pattern(event), logger.Listener(original))

	if d.newListenerEvent != "" {
		d.Emit(d.newListenerEvent, event, original)
	}
}

// detacher removes one exact entry from one exact pattern slot.
func (d *Dispatcher) detacher(event string) func(Listener) {
	return func(entry Listener) {
		d.mu.Lock()
		defer d.mu.Unlock()

		listeners := d.events[event]
		for i, l := range listeners {
			if l == entry {
				d.events[event] = slices.Delete(slices.Clone(listeners), i, i+1)
				return
			}
		}
	}
}

// ============================================================================
// Removal
// ============================================================================

// Off removes the first occurrence of l from the first registered pattern
// that event, treated as a wildcard query, matches. Patterns registered with
// a wildcard are not matched by a concrete query: Off("a:b", l) leaves a
// listener registered on "a:*" in place.
func (d *Dispatcher) Off(event string, l Listener) {
	d.remove(event, l, false)
}

// OffEvery removes every occurrence of l from every registered pattern that
// event, treated as a wildcard query, matches.
func (d *Dispatcher) OffEvery(event string, l Listener) {
	d.remove(event, l, true)
}

func (d *Dispatcher) remove(event string, l Listener, all bool) {
	if l == nil {
		return
	}
	query := wildcard.Compile(event)

	d.mu.Lock()
	removed := 0
	for _, p := range d.order {
		if !query.Match(p) {
			continue
		}

		listeners := d.events[p]
		kept := make([]Listener, 0, len(listeners))
		for _, entry := range listeners {
			if (all || removed == 0) && matchesListener(entry, l) {
				removed++
				continue
			}
			kept = append(kept, entry)
		}
		if len(kept) != len(listeners) {
			d.events[p] = kept
		}
		if !all && removed > 0 {
			break
		}
	}
	d.mu.Unlock()

	if removed > 0 {
		d.logger.Debug("listener removed",
			logger.Pattern(event),
			logger.Listener(l),
			logger.Count("removed", removed),
		)
	}
}

// RemoveAll empties, without deleting, every registered pattern slot that
// event, treated as a wildcard query, matches.
func (d *Dispatcher) RemoveAll(event string) {
	query := wildcard.Compile(event)

	d.mu.Lock()
	for _, p := range d.order {
		if query.Match(p) {
			d.events[p] = []Listener{}
		}
	}
	d.mu.Unlock()

	d.logger.Debug("listeners cleared", logger.Pattern(event))
}

// Reset drops every pattern and listener.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	d.order = nil
	d.events = make(map[string][]Listener)
	d.mu.Unlock()

	d.logger.Debug("dispatcher reset")
}

// ============================================================================
// Queries
// ============================================================================

// Count returns the number of listeners on patterns that overlap event:
// a registered pattern matching event, or event matching a registered pattern.
func (d *Dispatcher) Count(event string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := 0
	for _, p := range d.order {
		if wildcard.Overlaps(p, event) {
			n += len(d.events[p])
		}
	}
	return n
}

// CountAll returns the total number of registered listeners.
func (d *Dispatcher) CountAll() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := 0
	for _, listeners := range d.events {
		n += len(listeners)
	}
	return n
}

// Listeners returns the listeners Count(event) counts, in dispatch order.
func (d *Dispatcher) Listeners(event string) []Listener {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []Listener
	for _, p := range d.order {
		if wildcard.Overlaps(p, event) {
			out = appendRegistered(out, d.events[p])
		}
	}
	return out
}

// AllListeners returns every registered listener in dispatch order.
func (d *Dispatcher) AllListeners() []Listener {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []Listener
	for _, p := range d.order {
		out = appendRegistered(out, d.events[p])
	}
	return out
}

func appendRegistered(dst, entries []Listener) []Listener {
	for _, entry := range entries {
		dst = append(dst, registered(entry))
	}
	return dst
}

// Patterns returns the registered patterns in registration order, including
// patterns whose slots have been emptied by RemoveAll.
func (d *Dispatcher) Patterns() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.order)
}

// ============================================================================
// Emission
// ============================================================================

// Emit calls every listener registered on a pattern that overlaps event with
// args followed by event. Emitting "scope:*" reaches listeners on
// "scope:event"; emitting "scope:event" reaches listeners on "scope:*".
//
// A listener returning exactly false stops the emission. Panics are
// recovered, logged and reported to the panic handler; emission continues.
//
// The pattern list is captured when Emit starts and each slot is captured
// right before its listeners run, so mutations made by a listener never
// disturb the slot being iterated.
func (d *Dispatcher) Emit(event string, args ...any) *Dispatcher {
	params := make([]any, 0, len(args)+1)
	params = append(params, args...)
	params = append(params, event)

	invoked := 0
	stopped := false

	for _, p := range d.Patterns() {
		if !wildcard.Overlaps(p, event) {
			continue
		}
		for _, l := range d.slot(p) {
			invoked++
			if isFalse(d.invoke(event, l, slices.Clone(params))) {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}
	}

	if d.logger.Enabled(context.Background(), slog.LevelDebug) {
		d.logger.Debug("event emitted",
			logger.Event(event),
			logger.Count("invoked", invoked),
			slog.Bool("stopped", stopped),
		)
	}
	return d
}

func (d *Dispatcher) slot(pattern string) []Listener {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.events[pattern])
}

func (d *Dispatcher) invoke(event string, l Listener, args []any) (result any) {
	defer func() {
		if r := recover(); r != nil {
			perr := &PanicError{
				Event:    event,
				Listener: registered(l),
				Value:    r,
				Stack:    debug.Stack(),
			}
			d.logger.Error("listener panicked",
				logger.Event(event),
				logger.Listener(perr.Listener),
				logger.Panic(r),
				logger.StackFrom(perr.Stack),
			)
			if d.panicHandler != nil {
				d.panicHandler(perr)
			}
			result = nil
		}
	}()

	result = Invoke(l, args...)
	if err, ok := result.(error); ok {
		d.logger.Warn("listener returned error",
			logger.Event(event),
			logger.Listener(registered(l)),
			logger.Error(err),
		)
	}
	return result
}

// isFalse is an exact comparison: nil, 0 and empty values do not stop emission.
func isFalse(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}

func newID() string {
	return uuid.NewString()
}
