package preview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tint/gradient"
	"github.com/lixenwraith/tint/render"
	"github.com/lixenwraith/tint/terminal"
)

// Painter carries the coloring options for drawing gradient text on a screen
type Painter struct {
	Target terminal.Target
	Blend  render.BlendMode
	Base   tcell.Style
}

// DrawText paints text at (x, y) with the same per-line distribution the escape
// renderer uses, clipping at maxWidth columns. It returns the rows consumed.
func (p Painter) DrawText(s tcell.Screen, x, y, maxWidth int, text string, stops gradient.Stops) int {
	width := gradient.LineWidth(text)
	colored := stops != nil && stops.Len() > 0 && width > 0

	var dist *gradient.Distributor
	if colored {
		dist = gradient.NewDistributor(stops, width).WithBlend(p.Blend)
	}

	row, col := y, x
	for _, r := range text {
		if r == '\n' {
			row++
			col = x
			if dist != nil {
				dist.Reset()
			}
			continue
		}

		style := p.Base
		if colored {
			if c, ok := dist.Next(); ok {
				style = render.Style(p.Base, p.Target, c)
			}
		}

		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if col+w <= x+maxWidth {
			s.SetContent(col, row, r, nil, style)
		}
		col += w
	}
	return row - y + 1
}

// DrawLabel writes plain text, clipped, and returns the column after it
func DrawLabel(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if col+w > x+maxWidth {
			break
		}
		s.SetContent(col, y, r, nil, style)
		col += w
	}
	return col
}
