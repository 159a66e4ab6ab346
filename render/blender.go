package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendMode selects the interpolation used between two gradient stops
type BlendMode uint8

const (
	BlendPerceptual BlendMode = iota // gamma-aware with brightness correction (Mix)
	BlendLinear                      // naive sRGB lerp
	BlendLuv                         // CIE L*u*v*
	BlendLab                         // CIE L*a*b*
	BlendHcl                         // HCL (polar Lab), clamped to gamut
	BlendOklab                       // Oklab
)

var blendModeNames = [...]string{
	BlendPerceptual: "perceptual",
	BlendLinear:     "linear",
	BlendLuv:        "luv",
	BlendLab:        "lab",
	BlendHcl:        "hcl",
	BlendOklab:      "oklab",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// BlendModes lists every mode in declaration order
func BlendModes() []BlendMode {
	return []BlendMode{BlendPerceptual, BlendLinear, BlendLuv, BlendLab, BlendHcl, BlendOklab}
}

// ParseBlendMode resolves a mode by name, empty selects BlendPerceptual
func ParseBlendMode(s string) (BlendMode, error) {
	if s == "" {
		return BlendPerceptual, nil
	}
	for i, name := range blendModeNames {
		if strings.EqualFold(s, name) {
			return BlendMode(i), nil
		}
	}
	return BlendPerceptual, fmt.Errorf("unknown blend mode %q (want one of %s)",
		s, strings.Join(blendModeNames[:], ", "))
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend interpolates a→b at t using mode. Endpoints are returned unchanged for every mode.
func Blend(mode BlendMode, a, b RGB, t float64) RGB {
	if mode == BlendPerceptual {
		return Mix(a, b, t)
	}
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	switch mode {
	case BlendLinear:
		return Lerp(a, b, t)
	case BlendLuv:
		return fromColorful(toColorful(a).BlendLuv(toColorful(b), t))
	case BlendLab:
		return fromColorful(toColorful(a).BlendLab(toColorful(b), t))
	case BlendHcl:
		return fromColorful(toColorful(a).BlendHcl(toColorful(b), t))
	case BlendOklab:
		return fromColorful(toColorful(a).BlendOkLab(toColorful(b), t))
	default:
		return Mix(a, b, t)
	}
}
