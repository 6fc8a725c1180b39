package ppu

import (
	"github.com/thelolagemann/beef/internal/ppu/lcd"
	"github.com/thelolagemann/beef/internal/types"
	"github.com/thelolagemann/beef/pkg/bits"
)

// TileSize is the width and height of a tile in pixels.
const TileSize = 8

// TileBytes is the number of bytes a tile occupies in VRAM, two
// colour planes for each of its 8 rows.
const TileBytes = 16

// Addressing describes how tile indices are resolved to tile
// data addresses.
type Addressing uint8

const (
	// Unsigned addressing resolves offsets from 0x8000.
	Unsigned Addressing = iota
	// Signed addressing resolves offsets from 0x9000, wrapping
	// around the 16-bit address space.
	Signed
)

func (a Addressing) String() string {
	if a == Unsigned {
		return "unsigned"
	}
	return "signed"
}

// AddressingMode returns the addressing selected by LCDC bit 4.
// When the bit is set tile indices are unsigned.
func AddressingMode(c lcd.Control) Addressing {
	if c.UnsignedTileData() {
		return Unsigned
	}
	return Signed
}

// TileAddress returns the tile data address for the given offset.
// For Signed addressing the offset is a 16-bit two's complement
// value and the addition wraps, e.g. 0x9000 + 0xFFFF = 0x8FFF.
func TileAddress(mode Addressing, offset uint16) uint16 {
	if mode == Unsigned {
		return types.TileDataUnsigned + offset
	}
	return types.TileDataSigned + offset
}

// tileOffset returns the byte offset of the tile with the given
// map index. Under Signed addressing the index is an int8.
func tileOffset(mode Addressing, index uint8) uint16 {
	if mode == Unsigned {
		return uint16(index) * TileBytes
	}
	return uint16(int16(int8(index)) * TileBytes)
}

// Interleave combines one row of a tile's two colour planes into 8
// colour indices, leftmost pixel first. Each index takes its high
// bit from hi and its low bit from lo.
func Interleave(hi, lo uint8) [8]uint8 {
	var out [8]uint8
	for i := uint8(0); i < 8; i++ {
		out[i] = bits.Val(hi, 7-i)<<1 | bits.Val(lo, 7-i)
	}
	return out
}
