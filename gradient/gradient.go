package gradient

import (
	"iter"
	"math"

	"github.com/lixenwraith/tint/render"
	"github.com/lixenwraith/tint/terminal"
)

// RGB is the 8-bit color every sequence yields
type RGB = terminal.RGB

// Gradient steps from one color to another in a fixed number of steps.
// It is a value: every call to Iter or All starts a fresh pass.
type Gradient struct {
	From  RGB
	To    RGB
	Steps int
	Mode  render.BlendMode
}

// New creates a perceptual gradient from one color to another in steps steps
func New(from, to RGB, steps int) Gradient {
	return Gradient{From: from, To: to, Steps: steps}
}

// WithBlend returns a copy using mode for interpolation
func (g Gradient) WithBlend(mode render.BlendMode) Gradient {
	g.Mode = mode
	return g
}

// Len returns the number of colors the gradient yields
func (g Gradient) Len() int {
	if g.Steps < 0 {
		return 0
	}
	return g.Steps
}

// At returns the i-th color: position i/(Steps-1) along From→To.
// A single-step gradient has no defined position and yields From.
func (g Gradient) At(i int) RGB {
	t := float64(i) / float64(g.Steps-1)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0
	}
	return render.Blend(g.Mode, g.From, g.To, t)
}

// Iter returns a cursor positioned before the first color
func (g Gradient) Iter() *Iter {
	return &Iter{g: g}
}

// All yields every color in order
func (g Gradient) All() iter.Seq[RGB] {
	return func(yield func(RGB) bool) {
		for i := 0; i < g.Len(); i++ {
			if !yield(g.At(i)) {
				return
			}
		}
	}
}

// Iter walks a Gradient once
type Iter struct {
	g Gradient
	i int
}

// Next returns the next color, false once Steps colors have been produced
func (it *Iter) Next() (RGB, bool) {
	if it.i >= it.g.Len() {
		return RGB{}, false
	}
	c := it.g.At(it.i)
	it.i++
	return c, true
}

// Remaining reports how many colors are left
func (it *Iter) Remaining() int {
	return it.g.Len() - it.i
}
