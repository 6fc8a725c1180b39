package lcd

import "github.com/thelolagemann/beef/pkg/bits"

// Status is the value of the LCD status register (0xFF41):
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3, see below) (Read Only)
//		0: During H-Blank
//		1: During V-Blank
//		2: During Searching OAM-RAM
//		3: During Transferring Data to LCD Driver
type Status uint8

// Mode returns the current mode of the LCD.
func (s Status) Mode() Mode {
	return Mode(s & 0x03)
}

// Coincidence returns true if the LYC=LY flag is set.
func (s Status) Coincidence() bool {
	return bits.Test(uint8(s), 2)
}

// Interrupts returns which of the STAT interrupt sources are
// enabled.
func (s Status) Interrupts() (hblank, vblank, oam, coincidence bool) {
	v := uint8(s)
	return bits.Test(v, 3), bits.Test(v, 4), bits.Test(v, 5), bits.Test(v, 6)
}

// Read returns the value as seen by the CPU, bit 7 always reads
// as set.
func (s Status) Read() uint8 {
	return uint8(s) | 0x80
}
