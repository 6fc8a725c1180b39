package lcd

import (
	"github.com/thelolagemann/beef/internal/types"
	"github.com/thelolagemann/beef/pkg/bits"
)

// Control is the value of the LCD Control Register (0xFF40). It is
// written by the memory mapped IO and only ever decoded here:
//
//	Bit 7 - LCD Enable                     (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Control uint8

// Enabled returns true if the LCD is enabled.
func (c Control) Enabled() bool {
	return bits.Test(uint8(c), 7)
}

// WindowTileMap returns the start address of the window tile map.
func (c Control) WindowTileMap() uint16 {
	if bits.Test(uint8(c), 6) {
		return types.TileMap1
	}
	return types.TileMap0
}

// WindowEnabled returns true if the window is enabled.
func (c Control) WindowEnabled() bool {
	return bits.Test(uint8(c), 5)
}

// UnsignedTileData returns true when tile indices are unsigned,
// i.e. bit 4 is set and tile data starts at 0x8000. When it is
// reset, tile indices are signed offsets from 0x9000.
func (c Control) UnsignedTileData() bool {
	return bits.Test(uint8(c), 4)
}

// TileDataBase returns the base address tile indices are
// relative to.
func (c Control) TileDataBase() uint16 {
	if c.UnsignedTileData() {
		return types.TileDataUnsigned
	}
	return types.TileDataSigned
}

// BackgroundTileMap returns the start address of the background
// tile map.
func (c Control) BackgroundTileMap() uint16 {
	if bits.Test(uint8(c), 3) {
		return types.TileMap1
	}
	return types.TileMap0
}

// SpriteSize returns the height of sprites, 8 or 16.
func (c Control) SpriteSize() uint8 {
	return 8 + bits.Val(uint8(c), 2)*8
}

// SpritesEnabled returns true if sprites are enabled.
func (c Control) SpritesEnabled() bool {
	return bits.Test(uint8(c), 1)
}

// BackgroundEnabled returns true if the background is enabled.
func (c Control) BackgroundEnabled() bool {
	return bits.Test(uint8(c), 0)
}
