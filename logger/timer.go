package logger

import (
	"fmt"
	"time"

	"github.com/dshills/logbus/style"
)

// Time starts (or restarts) the named timer and writes a TIMER START
// notice.
func (l *Logger) Time(label string) {
	l.timers[label] = time.Now()
	l.Print("TIMER START", style.Accent, []any{label}, OutputLog)
}

// TimeLog writes the elapsed time of the named timer without stopping
// it. An unknown label warns and writes nothing.
func (l *Logger) TimeLog(label string) {
	start, ok := l.timers[label]
	if !ok {
		l.Warn(fmt.Sprintf("Timer %q does not exist", label))
		return
	}
	l.Print("TIMER", style.Accent, []any{formatElapsed(label, time.Since(start))}, OutputLog)
}

// TimeEnd writes the elapsed time of the named timer and removes it.
// Later TimeLog or TimeEnd calls on the same label hit the not-found
// warning path. An unknown label warns and writes nothing.
func (l *Logger) TimeEnd(label string) {
	start, ok := l.timers[label]
	if !ok {
		l.Warn(fmt.Sprintf("Timer %q does not exist", label))
		return
	}
	delete(l.timers, label)
	l.Print("TIMER END", style.Accent, []any{formatElapsed(label, time.Since(start))}, OutputLog)
}

// formatElapsed renders a duration in milliseconds at two decimals.
func formatElapsed(label string, d time.Duration) string {
	return fmt.Sprintf("%s: %.2fms", label, float64(d.Microseconds())/1000.0)
}
