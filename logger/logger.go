package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/logbus/event"
	"github.com/dshills/logbus/style"
)

// Config configures a Logger.
type Config struct {
	// ClearOnInit clears the console when a root logger is constructed.
	// Child loggers never clear, regardless of this setting.
	ClearOnInit bool

	// UseTimestamps prepends an [HH:MM:SS] segment to every line.
	UseTimestamps bool

	// Stdout receives log, info and success output. Defaults to os.Stdout.
	Stdout io.Writer

	// Stderr receives warn and error output. Defaults to os.Stderr.
	Stderr io.Writer
}

// defaultConfig returns the default logger configuration.
func defaultConfig() Config {
	return Config{
		ClearOnInit:   true,
		UseTimestamps: true,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
	}
}

// Option configures a Logger.
type Option func(*Config)

// WithClearOnInit controls console clearing at root construction.
func WithClearOnInit(enabled bool) Option {
	return func(c *Config) {
		c.ClearOnInit = enabled
	}
}

// WithTimestamps controls the [HH:MM:SS] prefix segment.
func WithTimestamps(enabled bool) Option {
	return func(c *Config) {
		c.UseTimestamps = enabled
	}
}

// WithStdout redirects the logger's stdout channel.
func WithStdout(w io.Writer) Option {
	return func(c *Config) {
		if w != nil {
			c.Stdout = w
		}
	}
}

// WithStderr redirects the logger's stderr channel.
func WithStderr(w io.Writer) Option {
	return func(c *Config) {
		if w != nil {
			c.Stderr = w
		}
	}
}

// Logger is a named, context-aware console writer. Every logging call
// writes to the console and additionally emits a corresponding event on
// the logger's own bus, so observers can follow a logger's activity
// without the logger knowing about them.
type Logger struct {
	context     []string
	config      Config
	timers      map[string]time.Time
	groupIndent int
	bus         *event.Bus[Event]
}

// New creates a root logger named name. A root logger with ClearOnInit
// (the default) clears the console once during construction.
func New(name string, opts ...Option) *Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	l := newLogger([]string{name}, cfg)
	if cfg.ClearOnInit {
		l.Clear()
	}
	return l
}

// newLogger wires a logger and its exclusively-owned bus. The logger is
// injected as the bus's diagnostic sink; no-listener warnings and
// failure isolation are disabled so the logger's self-diagnostics stay
// quiet and propagate naturally.
func newLogger(ctx []string, cfg Config) *Logger {
	l := &Logger{
		context: ctx,
		config:  cfg,
		timers:  make(map[string]time.Time),
	}
	bus, err := event.New[Event](
		&diagnosticAdapter{logger: l},
		event.WithWarnOnNoListeners(false),
		event.WithCatchErrors(false),
	)
	if err != nil {
		// Unreachable: the sink is never nil here.
		panic(err)
	}
	l.bus = bus
	return l
}

// Child creates a logger whose context is this logger's context with
// name appended. The child copies this logger's configuration, never
// clears the console on construction, and owns an independent bus:
// events do not propagate between parent and child.
func (l *Logger) Child(name string) *Logger {
	ctx := make([]string, len(l.context)+1)
	copy(ctx, l.context)
	ctx[len(ctx)-1] = name

	cfg := l.config
	cfg.ClearOnInit = false

	return newLogger(ctx, cfg)
}

// Bus returns the logger's event bus for subscription. The bus runs
// without failure isolation, so an observer that fails aborts delivery
// to later observers of that emission; the logger reports such failures
// on its stderr channel without emitting further events.
func (l *Logger) Bus() *event.Bus[Event] {
	return l.bus
}

// Context returns a copy of the logger's context chain.
func (l *Logger) Context() []string {
	ctx := make([]string, len(l.context))
	copy(ctx, l.context)
	return ctx
}

// Log writes messages with no severity label and emits EventLog.
func (l *Logger) Log(messages ...any) {
	l.Print("", style.Plain, messages, OutputLog)
	l.emit(EventLog, messages)
}

// Info writes messages under the INFO label and emits EventInfo.
func (l *Logger) Info(messages ...any) {
	l.Print("INFO", style.Info, messages, OutputInfo)
	l.emit(EventInfo, messages)
}

// Success writes messages under the SUCCESS label and emits EventSuccess.
func (l *Logger) Success(messages ...any) {
	l.Print("SUCCESS", style.Success, messages, OutputLog)
	l.emit(EventSuccess, messages)
}

// Warn writes messages under the WARNING label and emits EventWarn.
// Console output goes to the stderr channel.
func (l *Logger) Warn(messages ...any) {
	l.Print("WARNING", style.Warn, messages, OutputError)
	l.emit(EventWarn, messages)
}

// severity maps error levels to their label and color.
var severity = [...]struct {
	label string
	color style.ColorFunc
}{
	LevelError:    {"ERROR", style.ErrorColor(0)},
	LevelCritical: {"CRITICAL ERROR", style.ErrorColor(1)},
	LevelFatal:    {"FATAL ERROR", style.ErrorColor(2)},
}

// Error writes messages under the level's label with increasingly
// intense coloring and emits EventError carrying the level ahead of the
// messages. Console output goes to the stderr channel. Out-of-range
// levels are clamped.
func (l *Logger) Error(level ErrorLevel, messages ...any) {
	level = level.clamp()
	sev := severity[level]
	l.Print(sev.label, sev.color, messages, OutputError)

	args := make([]any, 0, len(messages)+2)
	args = append(args, l.Context(), level)
	args = append(args, messages...)
	_, err := l.bus.Emit(context.Background(), EventError, args...)
	l.reportObserverFailure(EventError, err)
}

// Table serializes data to a human-readable structured form and writes
// it under the TABLE label. A nil data value warns and writes nothing.
// propertyNames is accepted for future column filtering but is not
// currently applied to the output.
func (l *Logger) Table(data any, propertyNames ...string) {
	if data == nil {
		l.Warn("No data provided")
		return
	}
	_ = propertyNames // column projection is not implemented
	l.Print("TABLE", style.Accent, []any{data}, OutputLog)
}

// Group writes an optional heading and raises the indent level for
// subsequent output.
func (l *Logger) Group(messages ...any) {
	if len(messages) > 0 {
		l.Print("", style.Plain, messages, OutputLog)
	}
	l.groupIndent++
}

// GroupEnd lowers the indent level. It is a no-op at level zero.
func (l *Logger) GroupEnd() {
	if l.groupIndent > 0 {
		l.groupIndent--
	}
}

// Clear clears the console unconditionally.
func (l *Logger) Clear() {
	_, _ = io.WriteString(l.config.Stdout, "\x1b[H\x1b[2J")
}

// Test invokes every severity method once with the given message, or a
// default one, to visually verify color and formatting setup.
func (l *Logger) Test(messages ...any) {
	if len(messages) == 0 {
		messages = []any{"This is a test message"}
	}
	l.Log(messages...)
	l.Info(messages...)
	l.Success(messages...)
	l.Warn(messages...)
	for level := LevelError; level <= LevelFatal; level++ {
		l.Error(level, messages...)
	}
}

// emit publishes a severity event carrying the context chain ahead of
// the messages.
func (l *Logger) emit(e Event, messages []any) {
	args := make([]any, 0, len(messages)+1)
	args = append(args, l.Context())
	args = append(args, messages...)
	_, err := l.bus.Emit(context.Background(), e, args...)
	l.reportObserverFailure(e, err)
}

// reportObserverFailure writes a failed observer's error to the stderr
// channel. The bus runs without failure isolation, so the failure has
// already aborted delivery to later observers; reporting goes straight
// to the console rather than through the bus to keep a failing observer
// from triggering itself.
func (l *Logger) reportObserverFailure(e Event, err error) {
	if err == nil {
		return
	}
	msg := fmt.Sprintf("%s observer failed: %v", e, err)
	l.printLine("OBSERVER", style.Muted, []any{msg}, OutputError, false)
}
