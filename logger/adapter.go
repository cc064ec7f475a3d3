package logger

import "github.com/dshills/logbus/style"

// diagnosticAdapter lets a Logger serve as its own bus's diagnostic
// sink. The bus only depends on the small sink contract, so the logger
// can construct the bus after its own fields are initialized without a
// circular-construction trap.
type diagnosticAdapter struct {
	logger *Logger
}

// Warn routes bus warnings through the logger's warn path.
func (a *diagnosticAdapter) Warn(messages ...any) {
	a.logger.Warn(messages...)
}

// Error routes handler-failure reports through the logger's error path.
func (a *diagnosticAdapter) Error(level int, messages ...any) {
	a.logger.Error(ErrorLevel(level), messages...)
}

// Debug renders bus debug reports without emitting further bus events.
func (a *diagnosticAdapter) Debug(messages ...any) {
	a.logger.printLine("DEBUG", style.Muted, messages, OutputLog, false)
}
