package ppu

import (
	"fmt"

	"github.com/thelolagemann/beef/internal/mmu"
	"github.com/thelolagemann/beef/internal/ppu/lcd"
	"github.com/thelolagemann/beef/internal/ppu/palette"
	"github.com/thelolagemann/beef/internal/types"
	"github.com/thelolagemann/beef/pkg/log"
)

const (
	// FrameWidth is the width of the rendered background in pixels.
	FrameWidth = 256
	// FrameHeight is the height of the rendered background in pixels.
	FrameHeight = 256
	// MapSize is the width and height of the background map in tiles.
	MapSize = 32
)

// Presenter is the surface a completed frame is handed to. The
// frame holds width*height packed 0x00RRGGBB colours in row-major
// order and is only valid for the duration of the call.
type Presenter interface {
	Present(fb []uint32, width, height int) error
}

// PPU decodes the background from VRAM into a frame and presents
// it. The whole frame is rendered at once, nothing can change in
// the middle of it.
type PPU struct {
	lcdc lcd.Control
	stat lcd.Status

	presenter Presenter
	palette   palette.Palette
	layout    Layout

	log.Logger
}

// Opt is a function that modifies a PPU instance.
type Opt func(p *PPU)

// WithPalette sets the palette colour indices are mapped through.
func WithPalette(pal palette.Palette) Opt {
	return func(p *PPU) {
		p.palette = pal
	}
}

// WithLayout sets the layout used by Render.
func WithLayout(l Layout) Opt {
	return func(p *PPU) {
		p.layout = l
	}
}

// WithLogger sets the logger of the PPU.
func WithLogger(l log.Logger) Opt {
	return func(p *PPU) {
		p.Logger = l
	}
}

// New returns a PPU presenting to p.
func New(p Presenter, opts ...Opt) *PPU {
	ppu := &PPU{
		presenter: p,
		palette:   palette.Default,
		layout:    LayoutFlat,
		Logger:    log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(ppu)
	}

	return ppu
}

// NewHeadless returns a PPU without a presentation surface, its
// Render is a no-op.
func NewHeadless(opts ...Opt) *PPU {
	return New(nil, opts...)
}

// Headless returns true if the PPU has no presentation surface.
func (p *PPU) Headless() bool {
	return p.presenter == nil
}

// Layout returns the layout used by Render.
func (p *PPU) Layout() Layout {
	return p.layout
}

// Write writes to one of the LCD registers.
func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case types.LCDC:
		p.lcdc = lcd.Control(value)
		return
	case types.STAT:
		p.stat = lcd.Status(value)
		return
	}

	panic(fmt.Sprintf("ppu: invalid write to address 0x%04X", address))
}

// Read reads one of the LCD registers.
func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case types.LCDC:
		return uint8(p.lcdc)
	case types.STAT:
		return p.stat.Read()
	}

	panic(fmt.Sprintf("ppu: invalid read from address 0x%04X", address))
}

// Render decodes the background from mem and presents it. A
// headless PPU returns immediately without touching mem. An error
// is only returned when the frame could not be presented.
func (p *PPU) Render(mem mmu.Reader) error {
	if p.presenter == nil {
		return nil
	}

	fb := make([]uint32, FrameWidth*FrameHeight)
	mode := AddressingMode(p.lcdc)

	switch p.layout {
	case LayoutRaster:
		p.renderRaster(mem, mode, fb)
	default:
		p.renderFlat(mem, mode, fb)
	}
	p.Debugf("rendered %s frame using %s addressing", p.layout, mode)

	if err := p.presenter.Present(fb, FrameWidth, FrameHeight); err != nil {
		return fmt.Errorf("ppu: presenting frame: %w", err)
	}

	return nil
}

func (p *PPU) renderFlat(mem mmu.Reader, mode Addressing, fb []uint32) {
	for x := uint16(0); x < MapSize; x++ {
		for y := uint16(0); y < MapSize; y++ {
			offset := x*MapSize + y
			tileAddr := TileAddress(mode, offset)

			for i := 0; i < TileSize; i++ {
				pair := mem.LoadBlock(tileAddr, tileAddr+1)
				for j, pixel := range Interleave(pair[0], pair[1]) {
					fb[int(offset)+i*TileSize+j] = p.palette.Colour(pixel)
				}
			}
		}
	}
}

func (p *PPU) renderRaster(mem mmu.Reader, mode Addressing, fb []uint32) {
	tileMap := p.lcdc.BackgroundTileMap()
	indices := mem.LoadBlock(tileMap, tileMap+MapSize*MapSize-1)

	for row := 0; row < MapSize; row++ {
		for col := 0; col < MapSize; col++ {
			tileAddr := TileAddress(mode, tileOffset(mode, indices[row*MapSize+col]))
			data := mem.LoadBlock(tileAddr, tileAddr+TileBytes-1)

			for i := 0; i < TileSize; i++ {
				// the first byte of each row holds the low bits
				pixels := Interleave(data[i*2+1], data[i*2])
				line := (row*TileSize + i) * FrameWidth
				for j, pixel := range pixels {
					fb[line+col*TileSize+j] = p.palette.Colour(pixel)
				}
			}
		}
	}
}
