package cpu

import "github.com/thelolagemann/beef/pkg/bits"

// Flag identifies one of the four flags held in the upper
// nibble of the F register. Its value is the bit index.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the state of the F register. Only the upper nibble
// of F is backed by storage, the lower nibble always reads as 0.
//
//	Bit 7 - Z Zero
//	Bit 6 - N Subtract
//	Bit 5 - H Half Carry
//	Bit 4 - C Carry
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// NewFlags returns the flags as they are left by the boot ROM,
// which packs to 0b1011_0000.
func NewFlags() Flags {
	return Flags{
		Zero:      true,
		Subtract:  false,
		HalfCarry: true,
		Carry:     true,
	}
}

// AsByte packs the flags into a byte of the form 0bZNHC_0000.
func (f Flags) AsByte() uint8 {
	var value uint8
	value = bits.Assign(value, FlagZero, f.Zero)
	value = bits.Assign(value, FlagSubtract, f.Subtract)
	value = bits.Assign(value, FlagHalfCarry, f.HalfCarry)
	value = bits.Assign(value, FlagCarry, f.Carry)
	return value
}

// SetBits sets the flags from the upper nibble of value. The lower
// nibble is discarded.
func (f *Flags) SetBits(value uint8) {
	f.Zero = bits.Test(value, FlagZero)
	f.Subtract = bits.Test(value, FlagSubtract)
	f.HalfCarry = bits.Test(value, FlagHalfCarry)
	f.Carry = bits.Test(value, FlagCarry)
}

// Test returns true if the given flag is set.
func (f Flags) Test(flag Flag) bool {
	switch flag {
	case FlagZero:
		return f.Zero
	case FlagSubtract:
		return f.Subtract
	case FlagHalfCarry:
		return f.HalfCarry
	case FlagCarry:
		return f.Carry
	}
	return false
}

// Set sets the given flag to v. Values that do not name a flag
// are ignored, in the same way the lower nibble of F is.
func (f *Flags) Set(flag Flag, v bool) {
	switch flag {
	case FlagZero:
		f.Zero = v
	case FlagSubtract:
		f.Subtract = v
	case FlagHalfCarry:
		f.HalfCarry = v
	case FlagCarry:
		f.Carry = v
	}
}
