package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ShouldColor resolves a --color setting ("auto", "always", "never") for output f.
// "auto" requires both a terminal and advertised 24-bit support; NO_COLOR disables it.
func ShouldColor(setting string, f *os.File) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(f) && DetectColorMode() == ColorModeTrueColor
}
