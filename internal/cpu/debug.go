package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/beef/pkg/log"
)

// lines returns the diagnostic lines for the register file, in the
// order a, b, c, d, e, h, l, sp, pc, ime, flags.
func (r *Registers) lines() []string {
	ime := 0
	if r.IME {
		ime = 1
	}
	return []string{
		fmt.Sprintf("[REGISTER] a: 0x%02X", r.A),
		fmt.Sprintf("[REGISTER] b: 0x%02X", r.B),
		fmt.Sprintf("[REGISTER] c: 0x%02X", r.C),
		fmt.Sprintf("[REGISTER] d: 0x%02X", r.D),
		fmt.Sprintf("[REGISTER] e: 0x%02X", r.E),
		fmt.Sprintf("[REGISTER] h: 0x%02X", r.H),
		fmt.Sprintf("[REGISTER] l: 0x%02X", r.L),
		fmt.Sprintf("[REGISTER] sp: 0x%04X", r.SP),
		fmt.Sprintf("[REGISTER] pc: 0x%04X", r.PC),
		fmt.Sprintf("[REGISTER] ime: %d", ime),
		fmt.Sprintf("[REGISTER] flags: 0b%08b", r.F.AsByte()),
	}
}

func (r *Registers) String() string {
	return strings.Join(r.lines(), "\n")
}

// Dump writes the register file to l at debug level.
func (r *Registers) Dump(l log.Logger) {
	for _, line := range r.lines() {
		l.Debugf("%s", line)
	}
}
