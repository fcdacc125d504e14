package internal

import (
	"strings"
)

// colorEnabled gates Style; main sets it from the color mode and TTY state.
var colorEnabled = true

// ANSI codes for CLI headings, self-test results and usage text.
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Blue   = "\x1b[38;2;122;162;247m" // headings
	Cyan   = "\x1b[38;2;42;195;222m"  // flag and usage lines
	Purple = "\x1b[38;2;187;154;247m" // banner, set titles
	Gray   = "\x1b[38;2;136;146;176m" // hints
	Red    = "\x1b[38;2;247;118;142m" // FAILED
	Green  = "\x1b[38;2;158;206;106m" // PASSED
)

// SetColorEnabled toggles ANSI styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether ANSI styling is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ResolveColor decides whether to style output for the configured mode.
// In auto mode the answer is isTTY.
func ResolveColor(mode string, isTTY bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}

// Style wraps s with the provided ANSI codes when color is enabled.
// When disabled, returns s unchanged.
//
// Example:
//
//	Style("Hello", Bold, Blue)
func Style(s string, codes ...string) string {
	if !colorEnabled {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String()
}

// Banner returns the styled CLI header.
func Banner(version string) string {
	return Style("dtcipher - double columnar transposition - "+version, Bold, Purple)
}
