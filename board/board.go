// Package board holds the static hardware description of the target board:
// memory extents, kernel load addresses, MMIO windows, peripheral bases and
// interrupt lines. It is pure data, consumed by platform-independent kernel
// code through the plat package.
//
// A port to a similar board supplies a new [Descriptor] and hart plan, the
// rest of the platform layer stays untouched.
package board

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pengzechen/axplat-riscv64-sg2002/soc/cpu"
)

// Validation failures of a [Descriptor]. These surface in the board's own
// tests, i.e. at build time: the descriptor is immutable and board-fixed, a
// shipped kernel never sees them.
var (
	ErrMemoryEmpty    = errors.New("physical memory region is empty")
	ErrMemoryAlign    = errors.New("physical memory region is not page aligned")
	ErrMMIOEmpty      = errors.New("empty mmio range")
	ErrMMIOOverlap    = errors.New("mmio range overlaps")
	ErrDeviceUnmapped = errors.New("device base outside all mmio ranges")
	ErrKernelLoad     = errors.New("kernel load address outside physical memory")
	ErrKernelMapping  = errors.New("kernel virtual base breaks offset mapping")
	ErrTimerFreq      = errors.New("timer frequency must be positive")
)

// Region is a contiguous physical address interval.
type Region struct {
	Base uintptr
	Size uintptr
}

// End returns the first address past the region.
func (r Region) End() uintptr { return r.Base + r.Size }

// Empty reports whether the region covers no addresses.
func (r Region) Empty() bool { return r.Size == 0 }

// Contains reports whether addr lies inside the region.
func (r Region) Contains(addr uintptr) bool {
	return addr >= r.Base && addr < r.End()
}

// Overlaps reports whether the two regions share at least one address.
func (r Region) Overlaps(o Region) bool {
	return !r.Empty() && !o.Empty() && r.Base < o.End() && o.Base < r.End()
}

// NoIRQ marks a device without an interrupt line wired to the interrupt
// controller.
const NoIRQ = -1

// Device locates a peripheral: its register base in physical address space
// and its interrupt controller line, or [NoIRQ].
type Device struct {
	Base uintptr
	IRQ  int
}

// Names of the peripherals a board may wire. A name missing from a board's
// device table means the device is not present there, which callers must
// treat as a normal probe result.
const (
	UART0  = "uart0"  // serial console
	PLIC   = "plic"   // platform level interrupt controller
	RTC    = "rtc"    // real-time clock
	SDHCI0 = "sdhci0" // SD/eMMC host controller
)

// Descriptor is the static table of board constants. It is initialized at
// compile time, validated by tests and never mutated, so all reads are safe
// without synchronization.
type Descriptor struct {
	// PhysMemory is the installed RAM window.
	PhysMemory Region

	// KernelPaddr is where the bootloader places the kernel image,
	// KernelVaddr where the kernel expects to run. The two must differ by
	// exactly [cpu.PhysVirtOffset].
	KernelPaddr uintptr
	KernelVaddr uintptr

	// MMIO lists the address intervals decoded to device registers. The
	// board uses a deliberately coarse single window covering all
	// peripheral space, trading address-decoding precision for
	// simplicity.
	MMIO []Region

	// Devices maps peripheral names to their location.
	Devices map[string]Device

	// TimerFreq is the tick rate of the architectural timer in Hz.
	TimerFreq int64

	// TimerIRQ and IPIIRQ are architectural scause values, not board
	// specific. They are carried here to document the board's agreement
	// with the platform baseline.
	TimerIRQ uint
	IPIIRQ   uint
}

// IsMMIO reports whether addr is decoded to device registers. The memory
// mapping subsystem uses this to choose non-cacheable attributes for a page.
func (d *Descriptor) IsMMIO(addr uintptr) bool {
	for _, r := range d.MMIO {
		if r.Contains(addr) {
			return true
		}
	}
	return false
}

// Peripheral looks up a device by name. ok is false if the device is not
// wired on this board, an expected outcome that probe routines handle by
// skipping registration.
func (d *Descriptor) Peripheral(name string) (dev Device, ok bool) {
	dev, ok = d.Devices[name]
	return
}

// Validate checks the cross-field invariants of the descriptor. It is meant
// to be called from the board's tests and from the boot shim before any other
// code consumes the table.
func (d *Descriptor) Validate() error {
	if d.PhysMemory.Empty() {
		return ErrMemoryEmpty
	}
	if !cpu.Aligned(d.PhysMemory.Base, uintptr(cpu.PageSize)) ||
		!cpu.Aligned(d.PhysMemory.Size, uintptr(cpu.PageSize)) {
		return ErrMemoryAlign
	}

	mmio := make([]Region, len(d.MMIO))
	copy(mmio, d.MMIO)
	sort.Slice(mmio, func(i, j int) bool { return mmio[i].Base < mmio[j].Base })
	for i, r := range mmio {
		if r.Empty() {
			return fmt.Errorf("%w: {%#x, %#x}", ErrMMIOEmpty, r.Base, r.Size)
		}
		if r.Overlaps(d.PhysMemory) {
			return fmt.Errorf("%w: {%#x, %#x} intersects ram", ErrMMIOOverlap, r.Base, r.Size)
		}
		if i > 0 && r.Overlaps(mmio[i-1]) {
			return fmt.Errorf("%w: {%#x, %#x} intersects {%#x, %#x}",
				ErrMMIOOverlap, r.Base, r.Size, mmio[i-1].Base, mmio[i-1].Size)
		}
	}

	for name, dev := range d.Devices {
		if !d.IsMMIO(dev.Base) {
			return fmt.Errorf("%w: %s at %#x", ErrDeviceUnmapped, name, dev.Base)
		}
	}

	if !d.PhysMemory.Contains(d.KernelPaddr) {
		return fmt.Errorf("%w: %#x", ErrKernelLoad, d.KernelPaddr)
	}
	if d.KernelVaddr != d.KernelPaddr+cpu.PhysVirtOffset {
		return fmt.Errorf("%w: %#x", ErrKernelMapping, d.KernelVaddr)
	}

	if d.TimerFreq <= 0 {
		return fmt.Errorf("%w: %d", ErrTimerFreq, d.TimerFreq)
	}
	return nil
}
