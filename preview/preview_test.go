package preview

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tint/config"
	"github.com/lixenwraith/tint/gradient"
	"github.com/lixenwraith/tint/render"
	"github.com/lixenwraith/tint/terminal"
)

var (
	red  = terminal.RGB{R: 255}
	blue = terminal.RGB{B: 255}
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellFg(s tcell.Screen, x, y int) (rune, terminal.RGB) {
	r, _, style, _ := s.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return r, render.TcellToRGB(fg)
}

func TestDrawText_MatchesDistributor(t *testing.T) {
	s := newScreen(t, 20, 5)
	stops := gradient.Colors{red, blue}

	p := Painter{Target: terminal.Foreground, Base: tcell.StyleDefault}
	rows := p.DrawText(s, 0, 0, 20, "abcd\nef", stops)
	if rows != 2 {
		t.Fatalf("rows = %d, want 2", rows)
	}

	want := gradient.Distribute(stops, 4)
	for i, ch := range "abcd" {
		r, fg := cellFg(s, i, 0)
		if r != ch || fg != want[i] {
			t.Errorf("cell %d = %q %v, want %q %v", i, r, fg, ch, want[i])
		}
	}
	// Second line restarts from the first stop
	for i, ch := range "ef" {
		r, fg := cellFg(s, i, 1)
		if r != ch || fg != want[i] {
			t.Errorf("line 2 cell %d = %q %v, want %q %v", i, r, fg, ch, want[i])
		}
	}
}

func TestDrawText_Background(t *testing.T) {
	s := newScreen(t, 10, 2)
	p := Painter{Target: terminal.Background, Base: tcell.StyleDefault}
	p.DrawText(s, 0, 0, 10, "xy", gradient.Solid(red))

	_, _, style, _ := s.GetContent(1, 0)
	_, bg, _ := style.Decompose()
	if got := render.TcellToRGB(bg); got != red {
		t.Errorf("background = %v, want %v", got, red)
	}
}

func TestDrawText_Clips(t *testing.T) {
	s := newScreen(t, 10, 2)
	p := Painter{Base: tcell.StyleDefault}
	p.DrawText(s, 0, 0, 3, "abcdef", gradient.Solid(red))

	if r, _, _, _ := s.GetContent(3, 0); r != ' ' {
		t.Errorf("cell beyond clip = %q, want blank", r)
	}
}

func testEntries() []config.Named {
	return []config.Named{
		{Name: "first", Stops: gradient.Colors{red, blue}},
		{Name: "second", Stops: gradient.Atlast},
		{Name: "third", Stops: gradient.Solid(blue)},
	}
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestHandleEvent_Navigation(t *testing.T) {
	s := newScreen(t, 60, 10)
	b := New(s, testEntries(), "sample")

	tests := []struct {
		name string
		ev   tcell.Event
		want string
	}{
		{"down", key(tcell.KeyDown, 0), "second"},
		{"j", key(tcell.KeyRune, 'j'), "third"},
		{"wrap forward", key(tcell.KeyDown, 0), "first"},
		{"wrap back", key(tcell.KeyUp, 0), "third"},
		{"k", key(tcell.KeyRune, 'k'), "second"},
	}
	for _, tt := range tests {
		if !b.HandleEvent(tt.ev) {
			t.Fatalf("%s: browser quit unexpectedly", tt.name)
		}
		if got := b.Selected().Name; got != tt.want {
			t.Errorf("%s: selected %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHandleEvent_Toggles(t *testing.T) {
	s := newScreen(t, 60, 10)
	b := New(s, testEntries(), "")

	b.HandleEvent(key(tcell.KeyRune, 'b'))
	if b.painter.Target != terminal.Background {
		t.Errorf("target = %v, want background", b.painter.Target)
	}
	b.HandleEvent(key(tcell.KeyRune, 'b'))
	if b.painter.Target != terminal.Foreground {
		t.Errorf("target = %v, want foreground", b.painter.Target)
	}

	b.HandleEvent(key(tcell.KeyRune, 'm'))
	if b.painter.Blend != render.BlendModes()[1] {
		t.Errorf("blend = %v, want %v", b.painter.Blend, render.BlendModes()[1])
	}

	b.HandleEvent(key(tcell.KeyRune, 'r'))
	if !b.reverse {
		t.Error("reverse not toggled")
	}
}

func TestHandleEvent_Quit(t *testing.T) {
	s := newScreen(t, 60, 10)
	b := New(s, testEntries(), "")

	for _, ev := range []tcell.Event{
		key(tcell.KeyRune, 'q'),
		key(tcell.KeyEscape, 0),
		key(tcell.KeyCtrlC, 0),
	} {
		if b.HandleEvent(ev) {
			t.Errorf("event %v did not quit", ev)
		}
	}
}

func TestDraw_ListsEntries(t *testing.T) {
	s := newScreen(t, 60, 10)
	b := New(s, testEntries(), "hello")
	b.Draw()

	// Row 2 holds the selected first entry: marker, then the name
	if r, _, _, _ := s.GetContent(0, 2); r != '>' {
		t.Errorf("selection marker = %q, want '>'", r)
	}
	if r, _, _, _ := s.GetContent(2, 3); r != 's' {
		t.Errorf("second entry starts with %q, want 's'", r)
	}

	// Swatch starts after the padded name column
	r, fg := cellFg(s, 2+nameColumn+1, 2)
	if r != '▇' || fg != red {
		t.Errorf("swatch start = %q %v, want '▇' %v", r, fg, red)
	}
}

func TestRun_QuitKey(t *testing.T) {
	s := newScreen(t, 60, 10)
	b := New(s, testEntries(), "")

	done := make(chan error, 1)
	go func() { done <- b.Run(context.Background()) }()

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRun_ContextCancel(t *testing.T) {
	s := newScreen(t, 60, 10)
	b := New(s, testEntries(), "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_NoEntries(t *testing.T) {
	s := newScreen(t, 20, 5)
	if err := New(s, nil, "").Run(context.Background()); err == nil {
		t.Error("expected error for empty browser")
	}
}
