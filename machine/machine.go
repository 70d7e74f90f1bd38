// Package machine is imported by the runtime and allows the target to
// implement some hooks, most importantly rt0.
package machine

// Variables handed over by the previous boot stage: the firmware passes the
// booting hart's native id in a0 and the devicetree blob address in a1. rt0
// stores them here before the runtime initializes.
var (
	BootHart uint
	DTB      uintptr
)
