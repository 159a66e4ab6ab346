package render

import (
	"math"

	"github.com/lixenwraith/tint/terminal"
)

// RGB is an alias to terminal.RGB for colors, allowing render package to extend functionality
type RGB = terminal.RGB

// LinearRGB holds channels normalized to [0,1]. It only exists while a mix is being computed.
type LinearRGB struct {
	R, G, B float64
}

func (c LinearRGB) sum() float64 {
	return c.R + c.G + c.B
}

func (c LinearRGB) scale(f float64) LinearRGB {
	return LinearRGB{c.R * f, c.G * f, c.B * f}
}

const (
	// brightnessGamma is the empirical exponent for perceived brightness of summed linear light
	brightnessGamma = 0.43

	// denormScale maps 1.0 to 255.9999 so truncation never yields 256
	denormScale = 255.9999
)

// clamp converts float to uint8, truncating
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 || math.IsNaN(v) {
		return 0
	}
	return uint8(v)
}

func normalize(c RGB) LinearRGB {
	return LinearRGB{float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0}
}

func denormalize(c LinearRGB) RGB {
	return RGB{
		R: clamp(c.R * denormScale),
		G: clamp(c.G * denormScale),
		B: clamp(c.B * denormScale),
	}
}

// srgbToLinear inverts sRGB gamma compression for one channel
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB reapplies sRGB gamma compression for one channel
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// ToLinear converts a stored color into linear light
func ToLinear(c RGB) LinearRGB {
	n := normalize(c)
	return LinearRGB{srgbToLinear(n.R), srgbToLinear(n.G), srgbToLinear(n.B)}
}

// FromLinear compands linear light back into a stored color
func FromLinear(c LinearRGB) RGB {
	return denormalize(LinearRGB{linearToSRGB(c.R), linearToSRGB(c.G), linearToSRGB(c.B)})
}

func lerp(a, b, t float64) float64 {
	return a*(1.0-t) + b*t
}

func lerpLinear(a, b LinearRGB, t float64) LinearRGB {
	return LinearRGB{lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t)}
}

// Mix interpolates between c1 and c2 in linear light and rescales the result so its
// perceived brightness follows a straight line between the endpoints.
// t=0 returns c1, t=1 returns c2; t is clamped to [0,1] and NaN is treated as 0.
func Mix(c1, c2 RGB, t float64) RGB {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	l1 := ToLinear(c1)
	l2 := ToLinear(c2)

	c := lerpLinear(l1, l2, t)

	if total := c.sum(); total != 0 {
		b1 := math.Pow(l1.sum(), brightnessGamma)
		b2 := math.Pow(l2.sum(), brightnessGamma)
		intensity := math.Pow(lerp(b1, b2, t), 1.0/brightnessGamma)
		c = c.scale(intensity / total)
	}

	return FromLinear(c)
}

// Lerp linearly interpolates between two colors in sRGB space
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}
