package emitter

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Listener receives emitted events. Emit calls HandleEvent with the emitted
// arguments followed by the event name. Returning exactly false stops the
// emission; any other result, including nil, lets it continue.
type Listener interface {
	HandleEvent(args ...any) any
}

// Func adapts a plain function into a Listener. Keep the returned value to
// unregister it later: functions themselves have no identity in Go.
func Func(fn func(args ...any) any) Listener {
	return &funcListener{fn: fn}
}

type funcListener struct {
	fn func(args ...any) any
}

func (f *funcListener) HandleEvent(args ...any) any {
	if f == nil || f.fn == nil {
		return nil
	}
	return f.fn(args...)
}

// Typed adapts a handler that expects a single payload of type T. The first
// emitted argument is converted to T and the trailing event name is passed
// alongside. A payload that cannot be converted skips the handler and yields
// an error wrapping ErrPayloadType, which the dispatcher logs.
//
// Accepted payloads: a T value, raw JSON bytes, or a map decoded from JSON.
func Typed[T any](fn func(payload T, event string) any) Listener {
	return &typedListener[T]{fn: fn}
}

type typedListener[T any] struct {
	fn func(T, string) any
}

func (t *typedListener[T]) HandleEvent(args ...any) any {
	if t == nil || t.fn == nil {
		return nil
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: no payload", ErrPayloadType)
	}

	event, _ := args[len(args)-1].(string)
	payload, err := convertPayload[T](args[0])
	if err != nil {
		return err
	}
	return t.fn(payload, event)
}

func convertPayload[T any](payload any) (T, error) {
	var zero T

	if v, ok := payload.(T); ok {
		return v, nil
	}

	if data, ok := payload.([]byte); ok {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrPayloadType, err)
		}
		return v, nil
	}

	// generic JSON decoding produces maps when the concrete type is unknown
	if m, ok := payload.(map[string]any); ok {
		data, err := json.Marshal(m)
		if err != nil {
			return zero, fmt.Errorf("%w: %w", ErrPayloadType, err)
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrPayloadType, err)
		}
		return v, nil
	}

	return zero, fmt.Errorf("%w: got %T, want %T", ErrPayloadType, payload, zero)
}

// Invoke calls l with args and returns its result. A nil or malformed
// listener is a no-op returning nil.
func Invoke(l Listener, args ...any) any {
	if isNil(l) {
		return nil
	}
	return l.HandleEvent(args...)
}

func isNil(l Listener) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// unwrapper is implemented by the lifecycle wrappers installed by Once and Many.
type unwrapper interface {
	Unwrap() Listener
}

// registered returns the listener the caller originally passed in.
func registered(l Listener) Listener {
	for {
		u, ok := l.(unwrapper)
		if !ok {
			return l
		}
		l = u.Unwrap()
	}
}

// sameListener compares by identity without panicking on non-comparable values.
func sameListener(a, b Listener) (same bool) {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	// comparable struct types may still hold non-comparable interface values
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// matchesListener reports whether entry is l or a lifecycle wrapper around l.
func matchesListener(entry, l Listener) bool {
	for {
		if sameListener(entry, l) {
			return true
		}
		u, ok := entry.(unwrapper)
		if !ok {
			return false
		}
		entry = u.Unwrap()
	}
}
