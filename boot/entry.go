//go:build riscv64

package boot

import (
	"sync/atomic"

	"github.com/pengzechen/axplat-riscv64-sg2002/board"
	"github.com/pengzechen/axplat-riscv64-sg2002/hart"
	"github.com/pengzechen/axplat-riscv64-sg2002/plat"
	"github.com/pengzechen/axplat-riscv64-sg2002/soc/sbi"
)

// released is the one-time barrier between the primary hart's global setup
// and everything the secondaries do. Go's atomics are sequentially
// consistent, so the Store below publishes the descriptor and the topology
// table to every hart that observes it.
var released atomic.Uint32

// Primary is the stage-2 entry of the boot hart. The firmware starts
// exactly one hart here; which one is its choice, not ours.
//
// It performs the one-time global setup: validates and installs the board
// descriptor, builds the topology table, establishes the initial mappings
// through the kernel's MapRange hook, then releases the secondary harts and
// enters the kernel itself.
func Primary(hartid uint) {
	if !board.HartCapable(hartid) {
		// The firmware must never boot us on the reserved hart. If it
		// does anyway there is nothing we can safely touch.
		Park()
	}
	if hooks.Main == nil {
		Park()
	}

	d := &board.SG2002
	if err := d.Validate(); err != nil {
		Park()
	}
	plat.Set(d)

	m := hart.NewMapper(board.HartIDs[:], board.HartCapable)
	hart.Set(m)
	cpu, ok := m.AssignLogicalID(hartid)
	if !ok {
		Park()
	}

	if hooks.MapRange != nil {
		if err := plat.MapAll(hooks.MapRange); err != nil {
			Park()
		}
	}

	released.Store(1)

	hooks.Main(cpu)
	Park()
}

// Secondary is the stage-2 entry of every other hart. A reserved hart parks
// forever, a capable one blocks until the primary's global setup completed
// and then proceeds independently.
func Secondary(hartid uint) {
	if !board.HartCapable(hartid) {
		Park()
	}

	for released.Load() == 0 {
		wfi()
	}

	cpu, ok := hart.Active().AssignLogicalID(hartid)
	if !ok {
		Park()
	}

	hooks.Main(cpu)
	Park()
}

// StartSecondaries asks the firmware to start all capable harts except the
// calling one at the given physical entry address. Kernels whose bootloader
// only releases the boot hart call this from their Main hook.
func StartSecondaries(self uint, entry uintptr) error {
	for _, id := range board.HartIDs {
		if id == self || !board.HartCapable(id) {
			continue
		}
		if err := sbi.HartStart(uintptr(id), entry, uintptr(id)); err != nil {
			return err
		}
	}
	return nil
}

// Park halts the calling hart permanently in a low-power wait. It never
// returns.
//
//go:nosplit
func Park() {
	park()
}

func park()
func wfi()
