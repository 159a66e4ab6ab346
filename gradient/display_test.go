package gradient

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/lixenwraith/tint/render"
	"github.com/lixenwraith/tint/terminal"
)

func fg(c RGB, r rune) string {
	return terminal.Foreground.Sequence(c) + string(r) + terminal.Reset
}

func bg(c RGB, r rune) string {
	return terminal.Background.Sequence(c) + string(r) + terminal.Reset
}

func TestDisplayPassThrough(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		stops Stops
	}{
		{"Empty text", "", Colors{red, blue}},
		{"Empty stops", "hello", Colors{}},
		{"Nil stops", "hello\nworld", nil},
		{"Only newlines", "\n\n\n", Colors{red, blue}},
		{"Unknown preset", "hello", Preset(200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Text(tt.text, tt.stops).String()
			if got != tt.text {
				t.Errorf("Expected %q unchanged, got %q", tt.text, got)
			}
			if strings.Contains(got, "\x1b[") {
				t.Error("Expected no escape sequences")
			}
		})
	}
}

func TestDisplaySingleLine(t *testing.T) {
	got := Text("abc", Colors{black, white}).String()
	want := fg(black, 'a') + fg(RGB{123, 123, 123}, 'b') + fg(white, 'c')
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDisplayBackground(t *testing.T) {
	d := Text("ab", Colors{black, white})

	got := d.Background().String()
	want := bg(black, 'a') + bg(white, 'b')
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	// Builder returns copies: the original stays foreground
	if d.String() != fg(black, 'a')+fg(white, 'b') {
		t.Errorf("Background() mutated the receiver")
	}
	if d.Background().Foreground().String() != d.String() {
		t.Errorf("Foreground() did not restore the default")
	}
	if d.Target(terminal.Background).String() != got {
		t.Errorf("Target(Background) differs from Background()")
	}
}

func TestDisplayMultiLine(t *testing.T) {
	// Width is 3 (longest line); the short line takes a prefix of the same progression
	got := Text("abc\nd\n\nef", Colors{black, white}).String()

	mid := RGB{123, 123, 123}
	want := fg(black, 'a') + fg(mid, 'b') + fg(white, 'c') + "\n" +
		fg(black, 'd') + "\n" +
		"\n" +
		fg(black, 'e') + fg(mid, 'f')
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDisplayTrailingNewline(t *testing.T) {
	got := Text("ab\n", Colors{black, white}).String()
	want := fg(black, 'a') + fg(white, 'b') + "\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDisplayCountsCharactersNotBytes(t *testing.T) {
	// "▇▇" is 6 bytes but 2 characters
	got := Text("▇▇", Colors{black, white}).String()
	want := fg(black, '▇') + fg(white, '▇')
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if LineWidth("▇▇\nabc") != 3 {
		t.Errorf("Expected width 3, got %d", LineWidth("▇▇\nabc"))
	}
}

func TestDisplayDeterministic(t *testing.T) {
	text := strings.Repeat("gradient text ", 5) + "\nsecond line\n" + strings.Repeat("▇", 40)
	for _, p := range Presets() {
		first := Text(text, p).String()
		second := Text(text, p).String()
		if first != second {
			t.Errorf("%s: Expected byte-identical renders", p)
		}
	}
}

func TestDisplaySolid(t *testing.T) {
	got := Text("hi", Solid(red)).String()
	want := fg(red, 'h') + fg(red, 'i')
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDisplayBlend(t *testing.T) {
	got := Text("abc", Colors{red, blue}).Blend(render.BlendLinear).String()
	want := fg(red, 'a') + fg(render.Lerp(red, blue, 0.5), 'b') + fg(blue, 'c')
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDisplayWriteTo(t *testing.T) {
	d := Text("xyz\nw", Instagram)

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("Expected count %d, got %d", buf.Len(), n)
	}
	if buf.String() != d.String() {
		t.Error("WriteTo and String disagree")
	}
	if fmt.Sprintf("%s", d) != d.String() {
		t.Error("fmt verb s does not use String")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("disk full")
}

func TestDisplayWriteToError(t *testing.T) {
	_, err := Text("abc", Colors{red, blue}).WriteTo(failingWriter{})
	if err == nil {
		t.Error("Expected write error to surface")
	}
}
