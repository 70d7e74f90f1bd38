package boot

import "github.com/pengzechen/axplat-riscv64-sg2002/plat"

// Hooks is the narrow interface between this layer and the generic kernel.
type Hooks struct {
	// Main is invoked exactly once on every surviving hart, with the
	// hart's logical cpu number. It must not return.
	Main func(cpu int)

	// MapRange installs a virtual-to-physical mapping in the initial
	// page tables. The primary hart calls it for the RAM window and
	// every MMIO range before any secondary hart is released. May be nil
	// if a prior boot stage already established the offset mappings.
	MapRange plat.MapFunc
}

var hooks Hooks

// Setup registers the kernel hooks. It must be called once, before the
// first hart enters [Primary] or [Secondary].
func Setup(h Hooks) {
	if h.Main == nil {
		panic("boot: Main hook required")
	}
	if hooks.Main != nil {
		panic("boot: hooks already set")
	}
	hooks = h
}
