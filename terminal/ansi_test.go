package terminal

import (
	"bufio"
	"bytes"
	"os"
	"testing"
)

func TestWriteColoredRune(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		color  RGB
		r      rune
		want   string
	}{
		{"Foreground", Foreground, RGB{1, 22, 255}, 'a', "\x1b[38;2;1;22;255ma\x1b[0m"},
		{"Background", Background, RGB{0, 0, 0}, 'Z', "\x1b[48;2;0;0;0mZ\x1b[0m"},
		{"Multibyte rune", Foreground, RGB{100, 200, 10}, '▇', "\x1b[38;2;100;200;10m▇\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := bufio.NewWriter(&buf)
			WriteColoredRune(w, tt.target, tt.color, tt.r)
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTargetSequenceMatchesWriter(t *testing.T) {
	c := RGB{12, 0, 250}
	for _, target := range []Target{Foreground, Background} {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		WriteColoredRune(w, target, c, 'x')
		w.Flush()

		want := target.Sequence(c) + "x" + Reset
		if buf.String() != want {
			t.Errorf("%s: Expected %q, got %q", target, want, buf.String())
		}
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input   string
		want    Target
		wantErr bool
	}{
		{"", Foreground, false},
		{"fg", Foreground, false},
		{"Foreground", Foreground, false},
		{"bg", Background, false},
		{"BACKGROUND", Background, false},
		{"sideways", Foreground, true},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTarget(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRGBHexAndEqual(t *testing.T) {
	c := NewRGB(0xAB, 0x01, 0xF0)
	if c.Hex() != "#ab01f0" {
		t.Errorf("Expected #ab01f0, got %s", c.Hex())
	}
	if !c.Equal(RGB{0xAB, 0x01, 0xF0}) {
		t.Error("Expected colors to be equal")
	}
	if c.Equal(RGBBlack) {
		t.Error("Expected colors to differ")
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, key := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "ALACRITTY_LOG", "WEZTERM_PANE", "WT_SESSION"} {
		t.Setenv(key, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TERM", "xterm")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("Expected truecolor from COLORTERM")
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-direct")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("Expected truecolor from TERM")
	}

	t.Setenv("TERM", "xterm-256color")
	if DetectColorMode() != ColorModeBasic {
		t.Error("Expected basic mode for plain xterm-256color")
	}
}

func TestShouldColor(t *testing.T) {
	if !ShouldColor("always", nil) {
		t.Error("always must color")
	}
	if ShouldColor("never", os.Stdout) {
		t.Error("never must not color")
	}
	t.Setenv("NO_COLOR", "1")
	t.Setenv("COLORTERM", "truecolor")
	if ShouldColor("auto", os.Stdout) {
		t.Error("NO_COLOR must disable auto")
	}
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
}
