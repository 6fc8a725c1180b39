// Package palette provides the fixed colour palettes colour
// indices are mapped through. Colours are packed as 0x00RRGGBB.
package palette

import "sort"

// Palette maps the four 2-bit colour indices to packed colours,
// index 0 first.
type Palette [4]uint32

var (
	// Green is the default palette, lightening shades of green.
	Green = Palette{0x00002200, 0x000D2F0D, 0x00D0F2D0, 0x00DDFFDD}
	// Greyscale is a greyscale palette, lightest first.
	Greyscale = Palette{0x00FFFFFF, 0x00CCCCCC, 0x00777777, 0x00000000}
	// Classic attempts to emulate the colours as they would have
	// appeared on the original Game Boy.
	Classic = Palette{0x009BBC0F, 0x008BAC0F, 0x00306230, 0x000F380F}
	// Red is a red palette.
	Red = Palette{0x00FF0000, 0x00CC0000, 0x00770000, 0x00000000}
	// Yellow is a yellow palette.
	Yellow = Palette{0x00FFFF00, 0x00CCCC00, 0x00777700, 0x00000000}
)

// Default is the palette used when none is configured.
var Default = Green

var byName = map[string]Palette{
	"green":     Green,
	"greyscale": Greyscale,
	"classic":   Classic,
	"red":       Red,
	"yellow":    Yellow,
}

// Colour returns the packed colour for the given index. Only the
// lower 2 bits of index are used.
func (p Palette) Colour(index uint8) uint32 {
	return p[index&0x03]
}

// RGB returns the colour for the given index split into its
// components.
func (p Palette) RGB(index uint8) (r, g, b uint8) {
	return Split(p.Colour(index))
}

// Split returns the red, green and blue components of a packed
// colour.
func Split(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ByName returns the named palette.
func ByName(name string) (Palette, bool) {
	p, ok := byName[name]
	return p, ok
}

// Names returns the names of all built-in palettes, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
