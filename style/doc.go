// Package style provides the color functions used by the structured
// logger's console output.
//
// Colors are emitted as 24-bit ANSI sequences. They switch off
// automatically when stdout is not a terminal or NO_COLOR is set, and
// can be forced either way with ForceColors.
package style
