package cpu

import "unsafe"

// The C906 core clock speed
const ClockSpeed = 1e9

// The architectural timer (mtime) tick rate
const TimerClock = 25e6

// Page granularity of the Sv39 MMU
const (
	PageSize = 4096
	PageMask = PageSize - 1
)

// PhysVirtOffset is the fixed offset between a physical address and its
// kernel-space mapping. All of the platform's MMIO and RAM is reachable
// through this single offset scheme, no per-device mappings are needed.
const PhysVirtOffset uintptr = 0xffff_ffc0_0000_0000

// Addr represents a physical memory address
type Addr uintptr

// Virt returns the kernel virtual address a physical address is mapped at.
func (a Addr) Virt() uintptr {
	return uintptr(a) + PhysVirtOffset
}

// PhysicalAddress returns the physical address of a virtual address in the
// offset-mapped kernel window.
func PhysicalAddress(addr uintptr) Addr {
	return Addr(addr - PhysVirtOffset)
}

// Same as [PhysicalAddress] but for slices.
func PhysicalAddressSlice(s []byte) Addr {
	return PhysicalAddress(uintptr(unsafe.Pointer(unsafe.SliceData(s))))
}
