// Package event provides a typed publish/subscribe event bus for
// process-local diagnostics.
//
// A Bus is generic over its event-name type, so each owner defines its
// own string-based name type and the compiler rejects emissions keyed by
// another schema's names:
//
//	type Signal string
//
//	const SignalReady Signal = "ready"
//
//	bus, err := event.New[Signal](sink)
//
// # Registration
//
// On, Prepend and Once register handlers and return an unsubscribe
// function scoped to that single registration. A handler reference
// appears at most once per event: registering the identical handler
// twice is a no-op. Prepend places a handler ahead of all handlers
// registered for the event so far. Removing the last handler for an
// event prunes the event's entry, so EventNames never reports an event
// with an empty handler list.
//
// # Emission
//
// Emit dispatches synchronously and in registration order against a
// snapshot of the handler list taken at call time; handlers that
// register or unsubscribe mid-emission never affect the in-progress
// dispatch. EmitAsync fans out to one goroutine per handler and blocks
// until every handler completes.
//
// # Failure isolation
//
// With WithCatchErrors enabled (the default), a failing handler during
// Emit is reported to the diagnostic sink as a level-0 error and the
// remaining handlers still run. With it disabled, the first failure
// aborts the emission and is returned to the caller. EmitAsync never
// isolates: the first failure is always returned once all handlers have
// finished. Handler panics are recovered into *PanicError in both modes
// so a misbehaving observer cannot take the process down.
//
// # Diagnostic sink
//
// The bus reports its own warnings (no-listener emissions, soft
// listener-cap breaches) and handler failures through an injected
// DiagnosticSink. The sink is required and owned externally; the bus
// never constructs its own, which is what lets a logger own a bus while
// serving as that bus's sink.
package event
