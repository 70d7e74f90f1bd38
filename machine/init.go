//go:build sg2002

package machine

import (
	"embedded/arch/riscv/systim"

	"github.com/pengzechen/axplat-riscv64-sg2002/soc/cpu"
)

func init() {
	systim.Setup(cpu.TimerClock)
}
