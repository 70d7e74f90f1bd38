//go:build riscv64

package irq

import (
	"github.com/pengzechen/axplat-riscv64-sg2002/hart"
	"github.com/pengzechen/axplat-riscv64-sg2002/soc/sbi"
)

// SendIPI raises a software interrupt on the hart behind a logical cpu
// number.
func SendIPI(cpu int) error {
	id := hart.Active().LogicalToPhysical(cpu)
	return sbi.SendIPI(1<<id, 0)
}

// SendIPIAllExcept raises a software interrupt on every booted hart except
// the given one.
func SendIPIAllExcept(cpu int) error {
	m := hart.Active()
	var mask uintptr
	for i := 0; i < m.Count(); i++ {
		if i != cpu && m.Registered(i) {
			mask |= 1 << m.LogicalToPhysical(i)
		}
	}
	if mask == 0 {
		return nil
	}
	return sbi.SendIPI(mask, 0)
}
