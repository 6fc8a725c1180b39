package gameboy

import (
	"github.com/thelolagemann/beef/internal/ppu"
	"github.com/thelolagemann/beef/internal/ppu/palette"
	"github.com/thelolagemann/beef/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug dumps the registers after every frame.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithPresenter sets the surface frames are presented to.
func WithPresenter(p ppu.Presenter) Opt {
	return func(gb *GameBoy) {
		gb.presenter = p
	}
}

func WithPalette(p palette.Palette) Opt {
	return func(gb *GameBoy) {
		gb.palette = p
	}
}

func WithLayout(l ppu.Layout) Opt {
	return func(gb *GameBoy) {
		gb.layout = l
	}
}

// WithLCDC sets the initial value of the LCDC register, which
// would otherwise be 0x91 as left by the boot ROM.
func WithLCDC(v uint8) Opt {
	return func(gb *GameBoy) {
		gb.lcdc = v
	}
}
