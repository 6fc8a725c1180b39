package ppu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/beef/internal/mmu"
	"github.com/thelolagemann/beef/internal/ppu/palette"
	"github.com/thelolagemann/beef/internal/types"
)

// countingMemory records every LoadBlock call made against it.
type countingMemory struct {
	*mmu.Memory
	calls  int
	starts []uint16
}

func (c *countingMemory) LoadBlock(start, end uint16) []uint8 {
	c.calls++
	c.starts = append(c.starts, start)
	return c.Memory.LoadBlock(start, end)
}

// capture is a presenter that keeps the last frame it was handed.
type capture struct {
	fb            []uint32
	width, height int
	frames        int
	err           error
}

func (c *capture) Present(fb []uint32, width, height int) error {
	if c.err != nil {
		return c.err
	}
	c.fb = append(c.fb[:0], fb...)
	c.width, c.height = width, height
	c.frames++
	return nil
}

func TestPPU_Headless(t *testing.T) {
	mem := &countingMemory{Memory: mmu.New()}
	p := NewHeadless()

	assert.True(t, p.Headless())
	assert.NoError(t, p.Render(mem))
	assert.Zero(t, mem.calls)
}

func TestPPU_Registers(t *testing.T) {
	p := NewHeadless()
	p.Write(types.LCDC, 0x91)
	p.Write(types.STAT, 0x45)

	assert.Equal(t, uint8(0x91), p.Read(types.LCDC))
	assert.Equal(t, uint8(0xC5), p.Read(types.STAT))

	assert.Panics(t, func() { p.Write(0xFF42, 0) })
	assert.Panics(t, func() { p.Read(0x8000) })
}

func TestPPU_RenderFlat(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		mem := &countingMemory{Memory: mmu.New()}
		mem.Write(0x8000, 0b11110000)
		mem.Write(0x8001, 0b10101010)

		c := &capture{}
		p := New(c)
		p.Write(types.LCDC, 0x10)
		require.NoError(t, p.Render(mem))

		assert.Equal(t, 1, c.frames)
		assert.Equal(t, FrameWidth, c.width)
		assert.Equal(t, FrameHeight, c.height)
		require.Len(t, c.fb, FrameWidth*FrameHeight)

		// each cell re-reads the same pair for all 8 rows
		assert.Equal(t, MapSize*MapSize*TileSize, mem.calls)
		for i := 0; i < TileSize; i++ {
			assert.Equal(t, uint16(0x8000), mem.starts[i])
		}
		assert.Equal(t, uint16(0x8001), mem.starts[TileSize])

		// only cell 0 reaches index 0
		assert.Equal(t, palette.Green.Colour(3), c.fb[0])
		// the last cell ends at 1023 + 7*8 + 7, the rest is untouched
		assert.Zero(t, c.fb[1087])
		assert.Zero(t, c.fb[len(c.fb)-1])
	})

	t.Run("signed", func(t *testing.T) {
		mem := &countingMemory{Memory: mmu.New()}
		mem.Write(0x9000, 0xFF)

		c := &capture{}
		p := New(c, WithPalette(palette.Greyscale))
		p.Write(types.LCDC, 0x00)
		require.NoError(t, p.Render(mem))

		assert.Equal(t, palette.Greyscale.Colour(2), c.fb[0])
		for _, start := range mem.starts {
			if start < 0x9000 || start > 0x93FF {
				t.Fatalf("unexpected read from 0x%04X", start)
			}
		}
	})

	t.Run("transient", func(t *testing.T) {
		mem := mmu.New()
		c := &capture{}
		p := New(c)
		p.Write(types.LCDC, 0x10)
		mem.Write(0x8000, 0xFF)
		mem.Write(0x8001, 0xFF)
		require.NoError(t, p.Render(mem))
		assert.Equal(t, palette.Green.Colour(3), c.fb[0])

		mem.Write(0x8000, 0x00)
		mem.Write(0x8001, 0x00)
		require.NoError(t, p.Render(mem))
		assert.Equal(t, palette.Green.Colour(0), c.fb[0])
		assert.Equal(t, 2, c.frames)
	})
}

func TestPPU_RenderRaster(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		mem := mmu.New()
		// tile 0 uses colour 1, tile 1 colour 2
		for i := uint16(0); i < TileSize; i++ {
			mem.Write(0x8000+i*2, 0xFF)
			mem.Write(0x8010+i*2+1, 0xFF)
		}
		mem.Write(types.TileMap0+1, 1)

		c := &capture{}
		p := New(c, WithLayout(LayoutRaster))
		p.Write(types.LCDC, 0x10)
		require.NoError(t, p.Render(mem))

		pal := palette.Default
		assert.Equal(t, pal.Colour(1), c.fb[0])
		assert.Equal(t, pal.Colour(1), c.fb[7*FrameWidth+7])
		assert.Equal(t, pal.Colour(2), c.fb[8])
		assert.Equal(t, pal.Colour(2), c.fb[7*FrameWidth+15])
		assert.Equal(t, pal.Colour(1), c.fb[16])
		assert.Equal(t, pal.Colour(1), c.fb[8*FrameWidth+8])
		assert.Equal(t, pal.Colour(1), c.fb[len(c.fb)-1])
	})

	t.Run("signed", func(t *testing.T) {
		mem := mmu.New()
		// index 0x80 is tile -128, at 0x8800
		mem.Write(types.TileMap1, 0x80)
		mem.Write(0x8800+3*2, 0xFF)
		mem.Write(0x8800+3*2+1, 0xFF)

		c := &capture{}
		p := New(c, WithLayout(LayoutRaster))
		p.Write(types.LCDC, 0x08)
		require.NoError(t, p.Render(mem))

		pal := palette.Default
		assert.Equal(t, pal.Colour(0), c.fb[0])
		assert.Equal(t, pal.Colour(3), c.fb[3*FrameWidth])
		assert.Equal(t, pal.Colour(3), c.fb[3*FrameWidth+7])
		assert.Equal(t, pal.Colour(0), c.fb[3*FrameWidth+8])
	})

	t.Run("second row", func(t *testing.T) {
		mem := mmu.New()
		mem.Write(0x8010, 0xFF)
		mem.Write(types.TileMap0+MapSize, 1)

		c := &capture{}
		p := New(c, WithLayout(LayoutRaster))
		p.Write(types.LCDC, 0x10)
		require.NoError(t, p.Render(mem))

		assert.Equal(t, palette.Default.Colour(1), c.fb[8*FrameWidth])
		assert.Equal(t, palette.Default.Colour(0), c.fb[0])
	})
}

func TestPPU_PresentError(t *testing.T) {
	closed := errors.New("surface destroyed")
	p := New(&capture{err: closed})

	err := p.Render(mmu.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, closed)
}
