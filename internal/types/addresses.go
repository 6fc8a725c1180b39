package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// LCDC is the address of the LCDC hardware register. The LCDC
	// hardware register controls the LCD, such as where the
	// background tile map and tile data are located.
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register. The STAT
	// hardware register holds the current mode of the LCD and the
	// LY=LYC coincidence flag.
	STAT HardwareAddress = 0xFF41
)

const (
	// VRAMStart is the first address of video RAM.
	VRAMStart uint16 = 0x8000
	// VRAMEnd is the last address of video RAM.
	VRAMEnd uint16 = 0x9FFF
	// TileDataUnsigned is the base address of tile data when tile
	// indices are unsigned (LCDC bit 4 set).
	TileDataUnsigned uint16 = 0x8000
	// TileDataSigned is the base address of tile data when tile
	// indices are signed (LCDC bit 4 reset). Index 0 is located
	// here, -128 at 0x8800.
	TileDataSigned uint16 = 0x9000
	// TileMap0 is the first background/window tile map.
	TileMap0 uint16 = 0x9800
	// TileMap1 is the second background/window tile map.
	TileMap1 uint16 = 0x9C00
)

// AddressSpace is the size of the 16-bit address space.
const AddressSpace = 0x10000
