package mmu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_LoadBlock(t *testing.T) {
	m := New()
	m.Write(0x8000, 0x3C)
	m.Write(0x8001, 0x7E)
	m.Write(0xFFFF, 0xAA)
	m.Write(0x0000, 0x55)

	t.Run("pair", func(t *testing.T) {
		assert.Equal(t, []uint8{0x3C, 0x7E}, m.LoadBlock(0x8000, 0x8001))
	})
	t.Run("single", func(t *testing.T) {
		assert.Equal(t, []uint8{0x3C}, m.LoadBlock(0x8000, 0x8000))
	})
	t.Run("wraps", func(t *testing.T) {
		assert.Equal(t, []uint8{0xAA, 0x55}, m.LoadBlock(0xFFFF, 0x0000))
	})
	t.Run("whole space", func(t *testing.T) {
		assert.Len(t, m.LoadBlock(0x0000, 0xFFFF), 0x10000)
	})
}

func TestMemory_Load(t *testing.T) {
	m := NewFromBytes([]byte{1, 2, 3})
	assert.Equal(t, []uint8{1, 2, 3, 0}, m.LoadBlock(0, 3))

	m.Load(0xFFFE, []byte{9, 8, 7})
	assert.Equal(t, uint8(9), m.Read(0xFFFE))
	assert.Equal(t, uint8(8), m.Read(0xFFFF))
	assert.Equal(t, uint8(7), m.Read(0x0000))

	// oversized images are truncated to the address space
	big := make([]byte, 0x10010)
	big[0x10000] = 0xEE
	m = NewFromBytes(big)
	assert.Equal(t, uint8(0), m.Read(0))
}

func TestMapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vram.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x10, 0x20, 0x30}, 0o644))

	m, err := MapFile(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, []uint8{0x10, 0x20}, m.LoadBlock(0, 1))
	assert.Equal(t, []uint8{0x30, openBus}, m.LoadBlock(2, 3))
	assert.Equal(t, uint8(openBus), m.Read(0x9000))
}

func TestMapped_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := MapFile(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{openBus, openBus}, m.LoadBlock(0x8000, 0x8001))
	assert.NoError(t, m.Close())
}

func TestMapFile_Missing(t *testing.T) {
	_, err := MapFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
