// Package plat is the read-only query surface through which the rest of the
// kernel locates memory, devices and interrupts on the running board.
//
// The surface is backed by a single [board.Descriptor] installed once during
// early boot. All queries are pure reads of that immutable table, so no
// locking is involved anywhere.
package plat

import (
	"sync/atomic"

	"github.com/pengzechen/axplat-riscv64-sg2002/board"
	"github.com/pengzechen/axplat-riscv64-sg2002/soc/cpu"
)

var active atomic.Pointer[board.Descriptor]

// Set installs the board descriptor. It must be called exactly once, before
// any other kernel code queries the platform, and panics on a second call or
// an invalid descriptor. The boot shim does this on the primary hart before
// releasing the secondaries.
func Set(d *board.Descriptor) {
	if err := d.Validate(); err != nil {
		panic("plat: " + err.Error())
	}
	if !active.CompareAndSwap(nil, d) {
		panic("plat: descriptor already set")
	}
}

// Active returns the installed descriptor, or nil during very early boot.
func Active() *board.Descriptor { return active.Load() }

func descriptor() *board.Descriptor {
	d := active.Load()
	if d == nil {
		panic("plat: queried before Set")
	}
	return d
}

// MemoryRegion returns the installed RAM window.
func MemoryRegion() board.Region { return descriptor().PhysMemory }

// KernelLoad returns the physical address the kernel image is placed at and
// the virtual address it is mapped to.
func KernelLoad() (paddr, vaddr uintptr) {
	d := descriptor()
	return d.KernelPaddr, d.KernelVaddr
}

// IsMMIO reports whether addr belongs to a device register window and hence
// must be mapped uncached.
func IsMMIO(addr uintptr) bool { return descriptor().IsMMIO(addr) }

// Peripheral looks up a device by name, see [board.Descriptor.Peripheral].
func Peripheral(name string) (board.Device, bool) {
	return descriptor().Peripheral(name)
}

// TimerFrequency returns the tick rate of the architectural timer in Hz.
func TimerFrequency() int64 { return descriptor().TimerFreq }

// PhysToVirt returns the kernel virtual address a physical address is
// reachable at through the fixed offset mapping.
func PhysToVirt(paddr uintptr) uintptr { return cpu.Addr(paddr).Virt() }

// VirtToPhys is the inverse of [PhysToVirt].
func VirtToPhys(vaddr uintptr) uintptr { return uintptr(cpu.PhysicalAddress(vaddr)) }
