package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tidwall/pretty"

	"github.com/dshills/logbus/style"
)

// Print is the core rendering primitive. It assembles a prefix of the
// form
//
//	[HH:MM:SS] [context | segments | LABEL]
//
// indented two spaces per group level, appends a single message inline
// or multiple messages each on their own line, colorizes the result and
// writes it to the console channel selected by kind. A call without
// messages warns and writes nothing. After writing, EventPrint is
// emitted carrying (label, colorize, messages, kind).
func (l *Logger) Print(label string, colorize style.ColorFunc, messages []any, kind OutputKind) {
	l.printLine(label, colorize, messages, kind, true)
}

func (l *Logger) printLine(label string, colorize style.ColorFunc, messages []any, kind OutputKind, emitEvent bool) {
	if len(messages) == 0 {
		l.Warn(fmt.Sprintf("%s called without messages", strings.Join(l.context, " | ")))
		return
	}
	if colorize == nil {
		colorize = style.Plain
	}
	if kind == "" {
		kind = OutputLog
	}

	line := l.prefix(label)
	if len(messages) == 1 {
		line += " " + renderMessage(messages[0])
	} else {
		for _, msg := range messages {
			line += "\n" + renderMessage(msg)
		}
	}

	_, _ = io.WriteString(l.writer(kind), colorize(line)+"\n")

	if emitEvent {
		_, err := l.bus.Emit(context.Background(), EventPrint, label, colorize, messages, kind)
		l.reportObserverFailure(EventPrint, err)
	}
}

// prefix builds the indent, timestamp and context segments of a line.
func (l *Logger) prefix(label string) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", l.groupIndent))
	if l.config.UseTimestamps {
		b.WriteString(time.Now().Format("[15:04:05] "))
	}
	b.WriteString("[")
	b.WriteString(strings.Join(l.context, " | "))
	if label != "" {
		b.WriteString(" | ")
		b.WriteString(label)
	}
	b.WriteString("]")
	return b.String()
}

// writer selects the console channel for an output kind.
func (l *Logger) writer(kind OutputKind) io.Writer {
	switch kind {
	case OutputWarn, OutputError:
		return l.config.Stderr
	default:
		return l.config.Stdout
	}
}

// renderMessage renders a primitive value as its plain textual form and
// anything else as indented JSON, falling back to fmt's verbose format
// for values JSON cannot express.
func renderMessage(msg any) string {
	switch msg.(type) {
	case nil:
		return "<nil>"
	case string, bool, error, fmt.Stringer,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128:
		return fmt.Sprint(msg)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Sprintf("%+v", msg)
	}
	return strings.TrimRight(string(pretty.Pretty(data)), "\n")
}
