// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
	"fmt"
	"strings"
)

// Target selects which SGR color slot a 24-bit color is applied to
type Target uint8

const (
	Foreground Target = 38
	Background Target = 48
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiReset = []byte("\x1b[0m")
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;Bm
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;Bm
)

// Reset is the SGR sequence that clears all attributes
const Reset = "\x1b[0m"

func (t Target) String() string {
	if t == Background {
		return "background"
	}
	return "foreground"
}

// ParseTarget accepts "foreground"/"fg" and "background"/"bg"
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "", "foreground", "fg":
		return Foreground, nil
	case "background", "bg":
		return Background, nil
	}
	return Foreground, fmt.Errorf("unknown color target %q (want foreground or background)", s)
}

func (t Target) prefix() []byte {
	if t == Background {
		return csiBgRGB
	}
	return csiFgRGB
}

// Sequence returns the escape that starts coloring with c
func (t Target) Sequence(c RGB) string {
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", uint8(t), c.R, c.G, c.B)
}

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteColoredRune emits ESC[{38|48};2;R;G;Bm{r}ESC[0m.
// Write errors are sticky on the bufio.Writer and surface at Flush.
func WriteColoredRune(w *bufio.Writer, t Target, c RGB, r rune) {
	w.Write(t.prefix())
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
	w.WriteByte('m')
	w.WriteRune(r)
	w.Write(csiReset)
}
