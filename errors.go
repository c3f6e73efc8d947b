package emitter

import (
	"errors"
	"fmt"
)

var (
	// ErrPayloadType is returned by Typed listeners when the payload cannot be
	// converted to the handler's type.
	ErrPayloadType = errors.New("emitter: unexpected payload type")

	// ErrListenerPanic matches every *PanicError via errors.Is.
	ErrListenerPanic = errors.New("emitter: listener panicked")
)

// PanicError describes a panic recovered while a listener handled an event.
type PanicError struct {
	// Event is the emitted event name.
	Event string

	// Listener is the listener as it was registered.
	Listener Listener

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("emitter: listener %T panicked on %q: %v", e.Listener, e.Event, e.Value)
}

// Is allows errors.Is to match PanicError with ErrListenerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrListenerPanic
}
