package gradient

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/tint/terminal"
)

// Stops is an ordered, length-known run of colors defining a gradient path.
// Colors, Solid, Preset and Gradient all satisfy it.
type Stops interface {
	Len() int
	At(i int) RGB
}

// Colors is a caller-supplied stop list
type Colors []RGB

func (c Colors) Len() int     { return len(c) }
func (c Colors) At(i int) RGB { return c[i] }

// Solid is a single stop: every character gets the same color
type Solid RGB

func (s Solid) Len() int   { return 1 }
func (s Solid) At(int) RGB { return RGB(s) }

type reversed struct {
	stops Stops
}

func (r reversed) Len() int     { return r.stops.Len() }
func (r reversed) At(i int) RGB { return r.stops.At(r.stops.Len() - 1 - i) }

// Reversed walks stops from last to first
func Reversed(stops Stops) Stops {
	if r, ok := stops.(reversed); ok {
		return r.stops
	}
	return reversed{stops: stops}
}

// Slice copies stops into a Colors value
func Slice(stops Stops) Colors {
	if stops == nil {
		return nil
	}
	out := make(Colors, stops.Len())
	for i := range out {
		out[i] = stops.At(i)
	}
	return out
}

// ParseStops parses each entry as a hex color or palette name.
// Entries may also be comma separated within one string.
func ParseStops(values ...string) (Colors, error) {
	var out Colors
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			c, err := terminal.ParseColor(part)
			if err != nil {
				return nil, fmt.Errorf("stop %d: %w", len(out), err)
			}
			out = append(out, c)
		}
	}
	return out, nil
}
