package cpu

import "github.com/thelolagemann/beef/pkg/bits"

// Reg identifies one of the 8-bit general purpose registers.
type Reg uint8

const (
	RegA Reg = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

func (r Reg) String() string {
	switch r {
	case RegA:
		return "A"
	case RegB:
		return "B"
	case RegC:
		return "C"
	case RegD:
		return "D"
	case RegE:
		return "E"
	case RegH:
		return "H"
	case RegL:
		return "L"
	}
	return "?"
}

// Registers represents the register file of the CPU. The 16-bit
// register pairs BC, DE, HL and AF are not stored, they are views
// composed from the 8-bit registers on every access.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	// F holds the flags in place of the F register.
	F Flags

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// IME is the interrupt master enable flag.
	IME bool
}

// NewRegisters returns the register file in the state the boot ROM
// leaves it in (see mooneye's misc/boot_regs-cgb).
func NewRegisters() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset restores the post-boot register state in place.
func (r *Registers) Reset() {
	*r = Registers{
		A:   0x01,
		F:   NewFlags(),
		B:   0x00,
		C:   0x13,
		D:   0x00,
		E:   0xD8,
		H:   0x01,
		L:   0x4D,
		SP:  0xFFFE,
		PC:  0x0100,
		IME: true,
	}
}

// BC returns the word held in the BC register pair.
func (r *Registers) BC() uint16 {
	return bits.Join(r.B, r.C)
}

// SetBC sets the word held in the BC register pair.
func (r *Registers) SetBC(value uint16) {
	r.B, r.C = bits.Split(value)
}

// DE returns the word held in the DE register pair.
func (r *Registers) DE() uint16 {
	return bits.Join(r.D, r.E)
}

// SetDE sets the word held in the DE register pair.
func (r *Registers) SetDE(value uint16) {
	r.D, r.E = bits.Split(value)
}

// HL returns the word held in the HL register pair.
func (r *Registers) HL() uint16 {
	return bits.Join(r.H, r.L)
}

// SetHL sets the word held in the HL register pair.
func (r *Registers) SetHL(value uint16) {
	r.H, r.L = bits.Split(value)
}

// AF returns the word held in the AF register pair. The low byte is
// the packed flags, so its lower nibble is always 0.
func (r *Registers) AF() uint16 {
	return bits.Join(r.A, r.F.AsByte())
}

// SetAF sets the word held in the AF register pair. The lower nibble
// of value is discarded.
func (r *Registers) SetAF(value uint16) {
	var f uint8
	r.A, f = bits.Split(value)
	r.F.SetBits(f)
}

// Zero returns the zero flag.
func (r *Registers) Zero() bool {
	return r.F.Zero
}

// SetZero sets the zero flag.
func (r *Registers) SetZero(v bool) {
	r.F.Zero = v
}

// Subtract returns the subtract flag.
func (r *Registers) Subtract() bool {
	return r.F.Subtract
}

// SetSubtract sets the subtract flag.
func (r *Registers) SetSubtract(v bool) {
	r.F.Subtract = v
}

// HalfCarry returns the half carry flag.
func (r *Registers) HalfCarry() bool {
	return r.F.HalfCarry
}

// SetHalfCarry sets the half carry flag.
func (r *Registers) SetHalfCarry(v bool) {
	r.F.HalfCarry = v
}

// Carry returns the carry flag.
func (r *Registers) Carry() bool {
	return r.F.Carry
}

// SetCarry sets the carry flag.
func (r *Registers) SetCarry(v bool) {
	r.F.Carry = v
}

// register returns a pointer to the 8-bit register r names.
func (r *Registers) register(reg Reg) *uint8 {
	switch reg {
	case RegA:
		return &r.A
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	return nil
}

// Get returns the value of the given 8-bit register. Unknown
// registers read as 0.
func (r *Registers) Get(reg Reg) uint8 {
	if p := r.register(reg); p != nil {
		return *p
	}
	return 0
}

// Set sets the value of the given 8-bit register. Writes to unknown
// registers are dropped.
func (r *Registers) Set(reg Reg, value uint8) {
	if p := r.register(reg); p != nil {
		*p = value
	}
}
