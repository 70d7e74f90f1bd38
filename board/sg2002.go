package board

import (
	"github.com/pengzechen/axplat-riscv64-sg2002/soc/cpu"
	"github.com/pengzechen/axplat-riscv64-sg2002/soc/irq"
)

// The SG2002 exposes five harts. Hart 0 lacks an S-mode and is claimed by the
// vendor firmware, the kernel must never run there. Harts 1 to 4 boot the
// kernel.
const (
	NumHarts     = 5
	ReservedHart = 0
)

// HartIDs lists the native hart ids the hardware reports, including the
// reserved one.
var HartIDs = [NumHarts]uint{0, 1, 2, 3, 4}

// HartCapable reports whether the hart with the given native id can run the
// kernel. It is the predicate handed to the topology mapper, other boards
// with different reservation patterns supply their own.
func HartCapable(id uint) bool {
	return id != ReservedHart && id < NumHarts
}

// SG2002 is the descriptor for SG2002 based boards (Milk-V Duo class).
//
// The whole low gigabyte is declared as a single MMIO window. That is
// coarser than the SoC's real address decoding and gives up marking any RAM
// below 1 GiB as cacheable, but RAM starts at 1 GiB on this board, so
// nothing is lost and the page attribute decision stays a one-interval
// lookup.
var SG2002 = Descriptor{
	PhysMemory: Region{Base: 0x4000_0000, Size: 0x4000_0000},

	KernelPaddr: 0x4020_0000,
	KernelVaddr: 0x4020_0000 + cpu.PhysVirtOffset,

	MMIO: []Region{
		{Base: 0x0, Size: 0x4000_0000},
	},

	Devices: map[string]Device{
		UART0:  {Base: 0x0414_0000, IRQ: 44},
		PLIC:   {Base: 0x2000_0000, IRQ: NoIRQ},
		RTC:    {Base: 0x0502_6000, IRQ: 17},
		SDHCI0: {Base: 0x0431_0000, IRQ: 36},
	},

	TimerFreq: cpu.TimerClock,

	TimerIRQ: irq.SupervisorTimer,
	IPIIRQ:   irq.SupervisorSoft,
}
