package gradient

import (
	"iter"

	"github.com/lixenwraith/tint/render"
)

// segmentState is the distributor's position in the stop path
type segmentState uint8

const (
	stateIdle   segmentState = iota // no segment started since construction or Reset
	stateActive                     // seg holds the remaining colors of the current pair
	stateDone                       // width colors produced
)

// Distributor spreads a stop path over width character positions.
//
// The path has N-1 segments of width/(N-1) positions each; the last segment also
// absorbs the division remainder. Adjacent segments share their boundary color, so
// every segment after the first skips its first step. A zero-length segment emits
// only its end stop. The total is always exactly width colors.
type Distributor struct {
	stops Stops
	width int
	chunk int
	mode  render.BlendMode

	state   segmentState
	seg     *Iter
	next    RGB // end color of the current segment
	stop    int // index of next within stops
	emitted int
}

// NewDistributor prepares a distributor for one line of the given width
func NewDistributor(stops Stops, width int) *Distributor {
	d := &Distributor{stops: stops, width: width}
	if n := d.count(); n > 2 {
		d.chunk = width / (n - 1)
	} else {
		d.chunk = width
	}
	return d
}

// WithBlend sets the interpolation for every segment
func (d *Distributor) WithBlend(mode render.BlendMode) *Distributor {
	d.mode = mode
	return d
}

func (d *Distributor) count() int {
	if d.stops == nil {
		return 0
	}
	return d.stops.Len()
}

// Width is the number of colors produced per pass
func (d *Distributor) Width() int {
	if d.count() == 0 || d.width < 0 {
		return 0
	}
	return d.width
}

// Reset restarts the path from the first stop
func (d *Distributor) Reset() {
	d.state = stateIdle
	d.seg = nil
	d.emitted = 0
}

// Next returns the color for the next character position
func (d *Distributor) Next() (RGB, bool) {
	if d.emitted >= d.Width() {
		d.state = stateDone
		return RGB{}, false
	}

	if d.state == stateIdle {
		d.begin()
	}

	c, ok := d.seg.Next()
	if !ok {
		c = d.advance()
	}
	d.emitted++
	return c, true
}

// begin opens the first segment: stop 0 to stop 1, or stop 0 to itself for a solid path
func (d *Distributor) begin() {
	first := d.stops.At(0)
	d.next = first
	d.stop = 0
	if d.count() > 1 {
		d.stop = 1
		d.next = d.stops.At(1)
	}
	d.seg = New(first, d.next, d.chunk).WithBlend(d.mode).Iter()
	d.state = stateActive
}

// advance moves to the next stop pair after the current segment is exhausted
// and returns that segment's first new color
func (d *Distributor) advance() RGB {
	if d.stop+1 >= d.count() {
		// Segment lengths always cover width; hold the final stop if they ever do not
		d.seg = New(d.next, d.next, 0).Iter()
		return d.next
	}

	d.stop++
	length := d.chunk
	if d.stop == d.count()-1 {
		length += d.width - d.chunk*d.stop
	}

	from := d.next
	d.next = d.stops.At(d.stop)

	if length == 0 {
		d.seg = New(from, d.next, 0).Iter()
		return d.next
	}

	// One extra step so the shared boundary color can be skipped
	d.seg = New(from, d.next, length+1).WithBlend(d.mode).Iter()
	d.seg.Next()
	c, _ := d.seg.Next()
	return c
}

// All yields one full pass of width colors starting from the first stop
func (d *Distributor) All() iter.Seq[RGB] {
	return func(yield func(RGB) bool) {
		d.Reset()
		for {
			c, ok := d.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Distribute returns the width colors for stops
func Distribute(stops Stops, width int) []RGB {
	return DistributeBlend(stops, width, render.BlendPerceptual)
}

// DistributeBlend is Distribute with an explicit interpolation
func DistributeBlend(stops Stops, width int, mode render.BlendMode) []RGB {
	d := NewDistributor(stops, width).WithBlend(mode)
	out := make([]RGB, 0, d.Width())
	for c := range d.All() {
		out = append(out, c)
	}
	return out
}
