package logger

// Event names the bus events a Logger emits. The logger's bus is keyed
// by this type, so observers subscribe with these constants rather than
// free-form strings.
//
// Payloads by event:
//
//	EventLog     (context []string, messages ...any)
//	EventInfo    (context []string, messages ...any)
//	EventSuccess (context []string, messages ...any)
//	EventWarn    (context []string, messages ...any)
//	EventError   (context []string, level ErrorLevel, messages ...any)
//	EventPrint   (label string, colorize style.ColorFunc, messages []any, kind OutputKind)
type Event string

const (
	EventLog     Event = "log"
	EventInfo    Event = "info"
	EventSuccess Event = "success"
	EventWarn    Event = "warn"
	EventError   Event = "error"
	EventPrint   Event = "print"
)

// OutputKind selects the console channel a print goes to. OutputLog and
// OutputInfo write to stdout; OutputWarn and OutputError write to
// stderr.
type OutputKind string

const (
	OutputLog   OutputKind = "log"
	OutputInfo  OutputKind = "info"
	OutputWarn  OutputKind = "warn"
	OutputError OutputKind = "error"
)

// ErrorLevel is the severity of an Error call.
type ErrorLevel int

const (
	// LevelError is a recoverable error.
	LevelError ErrorLevel = iota

	// LevelCritical is a severe error.
	LevelCritical

	// LevelFatal is an unrecoverable error. The logger itself never
	// terminates the process; the name reflects severity only.
	LevelFatal
)

// String returns a human-readable severity name.
func (l ErrorLevel) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// clamp bounds a level to the known severity range.
func (l ErrorLevel) clamp() ErrorLevel {
	if l < LevelError {
		return LevelError
	}
	if l > LevelFatal {
		return LevelFatal
	}
	return l
}
