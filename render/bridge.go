package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tint/terminal"
)

// TcellToRGB converts tcell.Color to RGB
// ColorDefault and other non-RGB colors map to black
func TcellToRGB(c tcell.Color) RGB {
	r, g, b := c.RGB()
	if r < 0 {
		return RGB{}
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Style applies c to the slot chosen by target on top of base
func Style(base tcell.Style, target terminal.Target, c RGB) tcell.Style {
	if target == terminal.Background {
		return base.Background(RGBToTcell(c))
	}
	return base.Foreground(RGBToTcell(c))
}
