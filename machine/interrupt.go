package machine

import (
	_ "unsafe" // for linkname

	"github.com/pengzechen/axplat-riscv64-sg2002/soc/irq"
)

// The runtime routes the three supervisor interrupt causes to these
// handlers. Everything device-side is claimed from the interrupt controller
// behind the external cause.

//go:linkname softHandler IRQ1_Handler
//go:interrupthandler
func softHandler() {
	if !irq.Handle(irq.SupervisorSoft) {
		panic("unhandled interrupt")
	}
}

//go:linkname timerHandler IRQ5_Handler
//go:interrupthandler
func timerHandler() {
	if !irq.Handle(irq.SupervisorTimer) {
		panic("unhandled interrupt")
	}
}

//go:linkname externalHandler IRQ9_Handler
//go:interrupthandler
func externalHandler() {
	if !irq.Handle(irq.SupervisorExt) {
		panic("unhandled interrupt")
	}
}
