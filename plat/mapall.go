package plat

// MapAttr selects the page attributes of a mapped range.
type MapAttr uint8

const (
	// AttrMemory maps a range as ordinary cacheable memory.
	AttrMemory MapAttr = iota
	// AttrDevice maps a range with device semantics, uncached and
	// strictly ordered.
	AttrDevice
)

// MapFunc installs a virtual-to-physical mapping. The kernel's memory
// mapping subsystem provides an implementation through the boot hooks.
type MapFunc func(vaddr, paddr, size uintptr, attr MapAttr) error

// MapAll establishes the offset mappings for the RAM window and every MMIO
// range. The boot shim calls it on the primary hart before handing any hart
// to the kernel, so by the time drivers probe their devices the register
// windows are reachable.
func MapAll(m MapFunc) error {
	d := descriptor()

	ram := d.PhysMemory
	if err := m(PhysToVirt(ram.Base), ram.Base, ram.Size, AttrMemory); err != nil {
		return err
	}
	for _, r := range d.MMIO {
		if err := m(PhysToVirt(r.Base), r.Base, r.Size, AttrDevice); err != nil {
			return err
		}
	}
	return nil
}
