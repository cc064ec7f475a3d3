// Package logger provides a named, context-aware console logger whose
// every call is mirrored as an event on an owned bus.
//
// A Logger renders severity-colored lines prefixed with a timestamp and
// its context chain:
//
//	[14:02:31] [App | db | WARNING] connection pool nearly exhausted
//
// and emits a corresponding event (EventWarn above) on its bus, so an
// observer such as a telemetry exporter can follow the logger's output
// without the logger knowing about it:
//
//	log := logger.New("App")
//	log.Bus().On(logger.EventWarn, func(ctx context.Context, args ...any) error {
//		// args[0] is the context chain, args[1:] the messages
//		return nil
//	})
//
// Child creates a logger one context segment deeper that shares the
// parent's configuration but owns an independent bus; children never
// clear the console on construction.
//
// The logger and its bus are mutually referential by design: the logger
// owns the bus, and the bus reports its internal warnings through the
// logger via the bus package's DiagnosticSink contract. The logger
// constructs the bus with no-listener warnings and failure isolation
// disabled so its self-diagnostics stay out of the way. With isolation
// off, an observer that fails aborts delivery to later observers of
// that emission; the logger reports the failure on its stderr channel.
package logger
