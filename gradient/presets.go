package gradient

import (
	"fmt"
	"strings"
)

// Preset is a built-in named gradient
type Preset uint8

const (
	Atlast Preset = iota
	Cristal
	Teen
	Mind
	Morning
	Vice
	Passion
	Fruit
	Retro
	Summer
	Rainbow
	Pastel
	Monsoon
	Forest
	Instagram
)

type presetDef struct {
	name  string
	stops Colors
}

var presets = [...]presetDef{
	Atlast:  {"Atlast", Colors{{0xFE, 0xAC, 0x5E}, {0xC7, 0x9D, 0xD0}, {0x4B, 0xC0, 0xC8}}},
	Cristal: {"Cristal", Colors{{0xBD, 0xFF, 0xF3}, {0x5A, 0xC2, 0x9A}}},
	Teen:    {"Teen", Colors{{0x77, 0xA1, 0xD3}, {0x79, 0xCB, 0xCA}, {0xE6, 0x84, 0xAE}}},
	Mind:    {"Mind", Colors{{0x47, 0x3B, 0x7B}, {0x35, 0x84, 0xA7}, {0x30, 0xD2, 0xBE}}},
	Morning: {"Morning", Colors{{0xFF, 0x5F, 0x6D}, {0xFF, 0xC3, 0x71}}},
	Vice:    {"Vice", Colors{{0x5E, 0xE7, 0xDF}, {0xB4, 0x90, 0xCA}}},
	Passion: {"Passion", Colors{{0xF4, 0x3B, 0x47}, {0x45, 0x3A, 0x94}}},
	Fruit:   {"Fruit", Colors{{0xFF, 0x4E, 0x50}, {0xF9, 0xD4, 0x23}}},
	Retro: {"Retro", Colors{
		{0x3f, 0x51, 0xb1}, {0x5a, 0x55, 0xae}, {0x7b, 0x5f, 0xac},
		{0x8f, 0x6a, 0xae}, {0xa8, 0x6a, 0xa4}, {0xcc, 0x6b, 0x8e},
		{0xf1, 0x82, 0x71}, {0xf3, 0xa4, 0x69}, {0xf7, 0xc9, 0x78},
	}},
	Summer: {"Summer", Colors{{0xfd, 0xbb, 0x2d}, {0x22, 0xc1, 0xc3}}},
	Rainbow: {"Rainbow", Colors{
		{189, 19, 84}, {228, 108, 33}, {226, 166, 29},
		{46, 163, 44}, {54, 83, 238}, {87, 32, 131},
	}},
	Pastel: {"Pastel", Colors{
		{255, 223, 204}, {255, 243, 219}, {203, 235, 195},
		{173, 215, 219}, {137, 143, 173},
	}},
	Monsoon: {"Monsoon", Colors{
		{181, 199, 204}, {139, 161, 173}, {88, 123, 137},
		{36, 76, 102}, {64, 125, 108}, {125, 178, 144},
	}},
	Forest: {"Forest", Colors{
		{69, 55, 48}, {130, 94, 65}, {44, 62, 57},
		{65, 90, 69}, {108, 112, 88},
	}},
	Instagram: {"Instagram", Colors{{0x83, 0x3a, 0xb4}, {0xfd, 0x1d, 0x1d}, {0xfc, 0xb0, 0x45}}},
}

func (p Preset) valid() bool {
	return int(p) < len(presets)
}

func (p Preset) String() string {
	if !p.valid() {
		return fmt.Sprintf("Preset(%d)", uint8(p))
	}
	return presets[p].name
}

// Len returns the number of stops; an unknown preset has none
func (p Preset) Len() int {
	if !p.valid() {
		return 0
	}
	return len(presets[p].stops)
}

// At returns the i-th stop
func (p Preset) At(i int) RGB {
	return presets[p].stops[i]
}

// Presets returns every built-in gradient in catalog order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

// ParsePreset finds a preset by case-insensitive name
func ParsePreset(name string) (Preset, error) {
	for i, def := range presets {
		if strings.EqualFold(def.name, name) {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("unknown gradient preset %q", name)
}
