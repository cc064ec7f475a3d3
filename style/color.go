package style

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// ColorFunc colorizes a rendered console line. The zero behavior when
// colors are disabled is to return the input unchanged.
type ColorFunc func(string) string

var enabled = detectColors()

// detectColors reports whether colored output should be on by default:
// stdout must be a terminal and NO_COLOR must be unset.
func detectColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Enabled reports whether colored output is currently on.
func Enabled() bool {
	return enabled
}

// ForceColors overrides terminal detection, switching colored output on
// or off for the whole process.
func ForceColors(on bool) {
	enabled = on
}

const reset = "\x1b[0m"

// colorize builds a ColorFunc emitting a 24-bit foreground sequence.
func colorize(c colorful.Color, bold bool) ColorFunc {
	r, g, b := c.RGB255()
	seq := fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	if bold {
		seq = "\x1b[1m" + seq
	}
	return func(s string) string {
		if !enabled {
			return s
		}
		return seq + s + reset
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Base hues for the console palette.
var (
	infoHue    = mustHex("#4aa8ff")
	successHue = mustHex("#3ddc84")
	warnHue    = mustHex("#ffc857")
	accentHue  = mustHex("#c792ea")
	mutedHue   = mustHex("#8a8f98")
	errorHue   = mustHex("#ff5c57")
	fatalHue   = mustHex("#b30000")
)

// Palette used by the structured logger.
var (
	// Plain performs no coloring.
	Plain ColorFunc = func(s string) string { return s }

	// Info colors informational output.
	Info = colorize(infoHue, false)

	// Success colors success output.
	Success = colorize(successHue, false)

	// Warn colors warning output.
	Warn = colorize(warnHue, false)

	// Accent colors auxiliary output such as timer lines.
	Accent = colorize(accentHue, false)

	// Muted colors low-importance output such as debug reports.
	Muted = colorize(mutedHue, false)
)

// ErrorColor returns the color for an error severity level. Levels blend
// from the base error hue toward deep red; level 2 is additionally bold.
// Out-of-range levels are clamped to [0, 2].
func ErrorColor(level int) ColorFunc {
	if level < 0 {
		level = 0
	}
	if level > 2 {
		level = 2
	}
	blend := errorHue.BlendLuv(fatalHue, float64(level)/2).Clamped()
	return colorize(blend, level == 2)
}
