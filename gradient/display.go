package gradient

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/tint/render"
	"github.com/lixenwraith/tint/terminal"
)

// Display is text paired with a gradient. Formatting it (String, WriteTo, %s)
// wraps every character in its own 24-bit color sequence.
//
// Every line restarts the gradient sized to the longest line, so stacked lines
// share one horizontal color progression. Newlines pass through uncolored.
type Display struct {
	text   string
	stops  Stops
	target terminal.Target
	mode   render.BlendMode
}

// Text colors text with stops, foreground by default
func Text(text string, stops Stops) Display {
	return Display{text: text, stops: stops, target: terminal.Foreground}
}

// Foreground colors the glyphs. It is the default.
func (d Display) Foreground() Display {
	d.target = terminal.Foreground
	return d
}

// Background colors the cell behind each glyph
func (d Display) Background() Display {
	d.target = terminal.Background
	return d
}

// Target selects the color slot explicitly
func (d Display) Target(t terminal.Target) Display {
	d.target = t
	return d
}

// Blend selects the interpolation between stops
func (d Display) Blend(mode render.BlendMode) Display {
	d.mode = mode
	return d
}

// LineWidth is the character count of the longest line
func LineWidth(text string) int {
	width := 0
	for line := range strings.SplitSeq(text, "\n") {
		width = max(width, utf8.RuneCountInString(line))
	}
	return width
}

// WriteTo implements io.WriterTo
func (d Display) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	d.write(bw)

	err := bw.Flush()
	return cw.n, err
}

func (d Display) write(w *bufio.Writer) {
	if d.stops == nil || d.stops.Len() == 0 || d.text == "" {
		w.WriteString(d.text)
		return
	}

	width := LineWidth(d.text)
	if width == 0 {
		w.WriteString(d.text)
		return
	}

	dist := NewDistributor(d.stops, width).WithBlend(d.mode)
	for _, r := range d.text {
		if r == '\n' {
			w.WriteByte('\n')
			dist.Reset()
			continue
		}

		c, ok := dist.Next()
		if !ok {
			w.WriteRune(r)
			continue
		}
		terminal.WriteColoredRune(w, d.target, c, r)
	}
}

// Plain returns the text without any color
func (d Display) Plain() string {
	return d.text
}

// String renders the escaped text
func (d Display) String() string {
	var sb strings.Builder
	d.WriteTo(&sb)
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
