package mmu

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// openBus is the value read from addresses not backed by the file.
const openBus = 0xFF

// Mapped is a read-only view of a raw memory dump, mapped into the
// process rather than copied. Address 0 is the first byte of the
// file.
type Mapped struct {
	file *os.File
	mmap mmap.MMap
}

// MapFile maps the file at path. The caller must Close the
// returned Mapped once finished with it.
func MapFile(path string) (*Mapped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	m := &Mapped{file: f}
	// an empty file can't be mapped, it simply reads as open bus
	if info.Size() > 0 {
		m.mmap, err = mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("mmu: mapping %s: %w", path, err)
		}
	}

	return m, nil
}

// Read returns the value at the given address.
func (m *Mapped) Read(address uint16) uint8 {
	if int(address) >= len(m.mmap) {
		return openBus
	}
	return m.mmap[address]
}

// LoadBlock implements Reader.
func (m *Mapped) LoadBlock(start, end uint16) []uint8 {
	return loadBlock(m.Read, start, end)
}

// Close unmaps the file and closes it.
func (m *Mapped) Close() error {
	if m.mmap != nil {
		if err := m.mmap.Unmap(); err != nil {
			return err
		}
		m.mmap = nil
	}
	return m.file.Close()
}
