// Package mmu provides the memory the decode pipeline reads
// from. The emulated address space is fully mapped, every
// 16-bit address can be read.
package mmu

import "github.com/thelolagemann/beef/internal/types"

// Reader is the interface that wraps the LoadBlock method.
//
// LoadBlock returns the bytes from start to end inclusive. When
// end is lower than start the range wraps around 0xFFFF, so
// LoadBlock(0xFFFF, 0x0000) returns two bytes. Implementations
// must not fail for any address.
type Reader interface {
	LoadBlock(start, end uint16) []uint8
}

// Memory is a flat 64 KiB address space.
type Memory struct {
	data [types.AddressSpace]uint8
}

// New returns a new zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// NewFromBytes returns a Memory with b copied to address 0. Bytes
// beyond the address space are ignored.
func NewFromBytes(b []byte) *Memory {
	m := New()
	m.Load(0, b)
	return m
}

// Read returns the value at the given address.
func (m *Memory) Read(address uint16) uint8 {
	return m.data[address]
}

// Write writes the value to the given address.
func (m *Memory) Write(address uint16, value uint8) {
	m.data[address] = value
}

// Load copies data into memory starting at the given address,
// wrapping around the end of the address space.
func (m *Memory) Load(at uint16, data []byte) {
	if len(data) > types.AddressSpace {
		data = data[:types.AddressSpace]
	}
	for i, b := range data {
		m.data[at+uint16(i)] = b
	}
}

// LoadBlock implements Reader.
func (m *Memory) LoadBlock(start, end uint16) []uint8 {
	return loadBlock(m.Read, start, end)
}

func loadBlock(read func(uint16) uint8, start, end uint16) []uint8 {
	n := int(end-start) + 1
	out := make([]uint8, n)
	for i := range out {
		out[i] = read(start + uint16(i))
	}
	return out
}
