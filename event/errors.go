package event

import "errors"

// Sentinel errors for the event bus.
var (
	// ErrNilSink is returned when a bus is constructed without a diagnostic sink.
	ErrNilSink = errors.New("diagnostic sink cannot be nil")

	// ErrHandlerPanic is returned when a handler panics during emission.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by a handler with registration context.
type HandlerError struct {
	// Event is the event name the handler was registered for.
	Event string

	// ID is the registration ID of the failing handler.
	ID string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return "handler " + e.ID + " for event " + e.Event + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a recovered panic value as an error.
type PanicError struct {
	// Event is the event name the handler was registered for.
	Event string

	// ID is the registration ID of the panicking handler.
	ID string

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at recovery time.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "handler " + e.ID + " panicked for event " + e.Event
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
