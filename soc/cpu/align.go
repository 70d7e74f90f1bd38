package cpu

import "golang.org/x/exp/constraints"

// AlignDown rounds addr down to the next multiple of align, which must be a
// power of two.
func AlignDown[T constraints.Unsigned](addr, align T) T {
	return addr &^ (align - 1)
}

// AlignUp rounds addr up to the next multiple of align, which must be a power
// of two.
func AlignUp[T constraints.Unsigned](addr, align T) T {
	return (addr + align - 1) &^ (align - 1)
}

// Aligned reports whether addr is a multiple of align.
func Aligned[T constraints.Unsigned](addr, align T) bool {
	return addr&(align-1) == 0
}
