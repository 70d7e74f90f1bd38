// Package rtc reads the SoC's always-on real-time clock, a plain seconds
// counter in the battery-backed power domain.
package rtc

import (
	"embedded/mmio"
	"unsafe"

	"github.com/pengzechen/axplat-riscv64-sg2002/board"
	"github.com/pengzechen/axplat-riscv64-sg2002/plat"
)

type registers struct {
	_       [4]mmio.U32
	setSec  mmio.U32 // 0x10 counter value to load
	setTrig mmio.U32 // 0x14 write 1 to latch setSec into the counter
	_       [48]mmio.U32
	secCnt  mmio.U32 // 0xd8 running seconds counter
}

type Driver struct {
	regs *registers
}

// Probe locates the rtc through the platform provider. Returns nil if the
// board has none.
func Probe() *Driver {
	dev, ok := plat.Peripheral(board.RTC)
	if !ok {
		return nil
	}
	return &Driver{regs: (*registers)(unsafe.Pointer(plat.PhysToVirt(dev.Base)))}
}

// Seconds returns the running counter. Two equal consecutive reads guard
// against racing the counter increment.
func (d *Driver) Seconds() uint32 {
	for {
		s := d.regs.secCnt.Load()
		if d.regs.secCnt.Load() == s {
			return s
		}
	}
}

// SetSeconds loads a new counter value.
func (d *Driver) SetSeconds(s uint32) {
	d.regs.setSec.Store(s)
	d.regs.setTrig.Store(1)
}
