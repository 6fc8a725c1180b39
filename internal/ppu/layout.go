package ppu

import "fmt"

// Layout selects how the background is fetched and where decoded
// pixels are placed in the frame.
type Layout uint8

const (
	// LayoutFlat walks the 32x32 map column by column, addressing
	// tile data directly with the cell offset and reading the same
	// byte pair for all 8 rows of the tile. Pixels are written at
	// offset + row*8 + col in the flat frame, which only forms a
	// raster for the first tile. This is the reference behaviour
	// existing traces were recorded against.
	LayoutFlat Layout = iota
	// LayoutRaster fetches tile indices from the background tile
	// map, reads each of the 8 row pairs of the tile and writes
	// pixels at their screen position.
	LayoutRaster
)

func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "flat"
	case LayoutRaster:
		return "raster"
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// ParseLayout returns the layout with the given name.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "flat":
		return LayoutFlat, nil
	case "raster":
		return LayoutRaster, nil
	}
	return 0, fmt.Errorf("ppu: unknown layout %q", name)
}
