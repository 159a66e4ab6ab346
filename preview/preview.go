// Package preview is an interactive tcell browser over every known gradient.
package preview

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tint/config"
	"github.com/lixenwraith/tint/gradient"
	"github.com/lixenwraith/tint/render"
	"github.com/lixenwraith/tint/terminal"
)

const (
	nameColumn  = 15
	swatchGlyph = "▇"
)

// Browser lists gradients as swatches and renders a sample with the selected one
type Browser struct {
	screen  tcell.Screen
	entries []config.Named
	sample  string

	selected int
	painter  Painter
	reverse  bool
}

// New creates a browser over entries. sample is rendered below the list.
func New(screen tcell.Screen, entries []config.Named, sample string) *Browser {
	return &Browser{
		screen:  screen,
		entries: entries,
		sample:  sample,
		painter: Painter{Target: terminal.Foreground, Base: tcell.StyleDefault},
	}
}

// SetTarget selects foreground or background coloring
func (b *Browser) SetTarget(t terminal.Target) {
	b.painter.Target = t
}

// SetBlend selects the interpolation
func (b *Browser) SetBlend(mode render.BlendMode) {
	b.painter.Blend = mode
}

// SetReverse walks every gradient from its last stop
func (b *Browser) SetReverse(reverse bool) {
	b.reverse = reverse
}

// Selected returns the highlighted entry
func (b *Browser) Selected() config.Named {
	return b.entries[b.selected]
}

func (b *Browser) stops(e config.Named) gradient.Stops {
	if b.reverse {
		return gradient.Reversed(e.Stops)
	}
	return e.Stops
}

// Draw repaints the whole screen
func (b *Browser) Draw() {
	s := b.screen
	s.Clear()
	w, h := s.Size()

	header := fmt.Sprintf("tint | %s | %s | reverse:%v   ↑↓ select  b target  m blend  r reverse  q quit",
		b.painter.Blend, b.painter.Target, b.reverse)
	DrawLabel(s, 0, 0, w, header, tcell.StyleDefault.Bold(true))

	swatchWidth := max(w-nameColumn-3, 1)
	swatch := strings.Repeat(swatchGlyph, swatchWidth)

	row := 2
	for i, e := range b.entries {
		if row >= h {
			break
		}
		marker := "  "
		if i == b.selected {
			marker = "> "
		}
		col := DrawLabel(s, 0, row, w, marker+runewidth.FillRight(e.Name, nameColumn), tcell.StyleDefault)
		b.painter.DrawText(s, col+1, row, w-col-1, swatch, b.stops(e))
		row++
	}

	if b.sample != "" && row+1 < h && len(b.entries) > 0 {
		b.painter.DrawText(s, 2, row+1, w-2, b.sample, b.stops(b.Selected()))
	}

	s.Show()
}

// HandleEvent applies one input event and reports whether the browser should keep running
func (b *Browser) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			b.move(-1)
		case tcell.KeyDown:
			b.move(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				b.move(-1)
			case 'j':
				b.move(1)
			case 'b':
				if b.painter.Target == terminal.Background {
					b.painter.Target = terminal.Foreground
				} else {
					b.painter.Target = terminal.Background
				}
			case 'm':
				modes := render.BlendModes()
				b.painter.Blend = modes[(int(b.painter.Blend)+1)%len(modes)]
			case 'r':
				b.reverse = !b.reverse
			}
		}

	case *tcell.EventResize:
		b.screen.Sync()
	}

	return true
}

func (b *Browser) move(delta int) {
	n := len(b.entries)
	if n == 0 {
		return
	}
	b.selected = (b.selected + delta + n) % n
}

// Run draws and processes events until the user quits or ctx is cancelled.
// The caller owns the screen's Init and Fini.
func (b *Browser) Run(ctx context.Context) error {
	if len(b.entries) == 0 {
		return fmt.Errorf("no gradients to preview")
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	b.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !b.HandleEvent(ev) {
				log.Printf("preview: closed on %s", b.Selected().Name)
				return nil
			}
			b.Draw()
		}
	}
}
