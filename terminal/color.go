package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeBasic     ColorMode = iota // no 24-bit support advertised
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the mode name as used by the --color flag
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "basic"
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// NewRGB builds a color from its three channels
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex returns the lowercase #rrggbb form
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	var buf [7]byte
	buf[0] = '#'
	buf[1], buf[2] = digits[c.R>>4], digits[c.R&0x0f]
	buf[3], buf[4] = digits[c.G>>4], digits[c.G&0x0f]
	buf[5], buf[6] = digits[c.B>>4], digits[c.B&0x0f]
	return string(buf[:])
}

// String implements fmt.Stringer
func (c RGB) String() string {
	return c.Hex()
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	for _, key := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"ALACRITTY_LOG",
		"WEZTERM_PANE",
		"WT_SESSION",
	} {
		if os.Getenv(key) != "" {
			return ColorModeTrueColor
		}
	}

	// 3. Check TERM for known true color terminals
	termLower := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(termLower, "truecolor") ||
		strings.Contains(termLower, "24bit") ||
		strings.Contains(termLower, "direct") {
		return ColorModeTrueColor
	}

	return ColorModeBasic
}
