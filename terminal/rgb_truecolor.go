package terminal

import (
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// Named TrueColor palette accepted wherever a stop color is parsed from text.
// Names follow CSS/X11 where the RGB matches closely, descriptive compounds otherwise.
// Lookup is case-insensitive; '-', '_' and spaces are ignored.
var namedColors = map[string]RGB{
	// --- Achromatic ---
	"black":     {0, 0, 0},
	"charcoal":  {5, 5, 5},
	"obsidian":  {20, 20, 30},
	"gunmetal":  {26, 27, 38},
	"dimgray":   {55, 55, 55},
	"darkgray":  {60, 60, 60},
	"slategray": {80, 80, 90},
	"gray":      {120, 120, 120},
	"silver":    {180, 180, 180},
	"lightgray": {200, 200, 200},
	"white":     {255, 255, 255},

	// --- Brown / Earth ---
	"chocolate":   {90, 25, 15},
	"saddlebrown": {101, 67, 33},
	"sienna":      {140, 60, 0},

	// --- Red ---
	"oxblood":    {100, 20, 20},
	"darkred":    {139, 0, 0},
	"brick":      {180, 40, 40},
	"indianred":  {180, 60, 60},
	"vermilion":  {227, 66, 82},
	"red":        {255, 0, 0},
	"coral":      {255, 80, 80},
	"salmon":     {255, 100, 100},
	"lightcoral": {255, 140, 140},
	"mistyrose":  {255, 200, 200},

	// --- Orange ---
	"amber":      {180, 120, 0},
	"rust":       {180, 60, 20},
	"terracotta": {220, 100, 50},
	"orangered":  {255, 69, 0},
	"mango":      {255, 120, 50},
	"apricot":    {255, 160, 60},
	"orange":     {255, 165, 0},

	// --- Yellow ---
	"gold":   {255, 215, 0},
	"yellow": {255, 255, 0},
	"ivory":  {255, 255, 220},
	"cream":  {255, 255, 200},

	// --- Green ---
	"darkgreen":   {15, 130, 15},
	"forestgreen": {34, 139, 34},
	"seagreen":    {60, 180, 80},
	"limegreen":   {50, 205, 50},
	"lime":        {0, 255, 0},
	"mintgreen":   {100, 220, 130},
	"lightgreen":  {144, 238, 144},
	"honeydew":    {200, 255, 200},

	// --- Cyan / Teal ---
	"teal":          {0, 139, 139},
	"darkturquoise": {0, 206, 209},
	"cyan":          {0, 255, 255},
	"skyteal":       {80, 200, 220},
	"alice":         {230, 245, 255},

	// --- Blue ---
	"navy":         {30, 60, 120},
	"steelblue":    {60, 100, 180},
	"royalblue":    {65, 105, 225},
	"cornflower":   {80, 130, 255},
	"dodgerblue":   {40, 180, 255},
	"lightskyblue": {135, 206, 250},
	"blue":         {0, 0, 255},

	// --- Purple / Violet ---
	"deeppurple":   {60, 20, 80},
	"darkviolet":   {120, 40, 180},
	"mediumpurple": {170, 100, 210},
	"orchid":       {200, 120, 220},
	"lavender":     {220, 180, 255},

	// --- Pink / Rose ---
	"rosered":   {255, 60, 120},
	"hotpink":   {255, 140, 200},
	"lightpink": {255, 182, 193},
	"pink":      {255, 192, 203},
	"magenta":   {255, 0, 255},
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, name)
}

// LookupNamed resolves a palette name. The palette above wins; any other
// SVG 1.1 color keyword such as tomato is accepted after it.
func LookupNamed(name string) (RGB, bool) {
	key := normalizeName(name)
	if c, ok := namedColors[key]; ok {
		return c, true
	}
	if c, ok := colornames.Map[key]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, true
	}
	return RGB{}, false
}

// NamedColors returns every accepted name in sorted order
func NamedColors() []string {
	seen := make(map[string]struct{}, len(namedColors)+len(colornames.Map))
	for name := range namedColors {
		seen[name] = struct{}{}
	}
	for name := range colornames.Map {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
