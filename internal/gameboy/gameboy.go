// Package gameboy provides the machine context tying together the
// register file, memory and PPU of one emulated Game Boy.
package gameboy

import (
	"github.com/thelolagemann/beef/internal/cpu"
	"github.com/thelolagemann/beef/internal/mmu"
	"github.com/thelolagemann/beef/internal/ppu"
	"github.com/thelolagemann/beef/internal/ppu/palette"
	"github.com/thelolagemann/beef/internal/types"
	"github.com/thelolagemann/beef/pkg/log"
)

// GameBoy represents a Game Boy. Every component is owned by the
// instance, so any number of them can run side by side.
type GameBoy struct {
	Registers *cpu.Registers
	Memory    mmu.Reader
	PPU       *ppu.PPU

	log.Logger

	presenter ppu.Presenter
	palette   palette.Palette
	layout    ppu.Layout
	lcdc      uint8
	debug     bool

	frames uint64
}

// NewGameBoy returns a new GameBoy reading from mem. Without a
// presenter the PPU is headless.
func NewGameBoy(mem mmu.Reader, opts ...Opt) *GameBoy {
	gb := &GameBoy{
		Registers: cpu.NewRegisters(),
		Memory:    mem,
		Logger:    log.NewNullLogger(),
		palette:   palette.Default,
		layout:    ppu.LayoutFlat,
		lcdc:      0x91,
	}
	for _, opt := range opts {
		opt(gb)
	}

	ppuOpts := []ppu.Opt{
		ppu.WithPalette(gb.palette),
		ppu.WithLayout(gb.layout),
		ppu.WithLogger(gb.Logger),
	}
	if gb.presenter == nil {
		gb.PPU = ppu.NewHeadless(ppuOpts...)
	} else {
		gb.PPU = ppu.New(gb.presenter, ppuOpts...)
	}
	gb.PPU.Write(types.LCDC, gb.lcdc)

	return gb
}

// Frame renders a single frame. The returned error is fatal, the
// frame could not be presented.
func (g *GameBoy) Frame() error {
	if err := g.PPU.Render(g.Memory); err != nil {
		return err
	}
	g.frames++

	if g.debug {
		g.Debugf("frame %d", g.frames)
		g.Registers.Dump(g.Logger)
	}

	return nil
}

// Frames returns the number of frames rendered so far.
func (g *GameBoy) Frames() uint64 {
	return g.frames
}
