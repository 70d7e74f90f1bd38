// Package irq demultiplexes the CPU-side interrupt causes reported in scause
// and dispatches device interrupts to registered handlers.
//
// A cause with the highest bit set is a CPU-side interrupt straight from
// scause. A number with the highest bit clear is a device interrupt as
// numbered by the external interrupt controller.
package irq

import "math/bits"

// CauseInterrupt is the `Interrupt` bit in scause.
const CauseInterrupt uint = 1 << (bits.UintSize - 1)

// CPU-side interrupt causes in scause
const (
	SupervisorSoft  = CauseInterrupt + 1 // inter-processor interrupt
	SupervisorTimer = CauseInterrupt + 5 // architectural timer
	SupervisorExt   = CauseInterrupt + 9 // forwarded by the interrupt controller
)

// MaxIRQ is the highest device interrupt number the dispatch table accepts.
const MaxIRQ = 1024

// Context returns the S-mode interrupt controller context of a logical cpu.
// Hart 0 has no S-mode, so the kernel's harts start at context 2 and each
// hart owns an M-mode and an S-mode context pair.
func Context(cpu int) int {
	return (cpu + 1) * 2
}
