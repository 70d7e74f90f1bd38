package machine

import (
	"embedded/mmio"
	"unsafe"

	"github.com/pengzechen/axplat-riscv64-sg2002/soc/cpu"
)

var regs *registers = (*registers)(unsafe.Pointer(baseAddr))

const baseAddr uintptr = cpu.PhysVirtOffset + 0x0414_0000

const lsrTxEmpty = 1 << 5

// Byte-wide 16550 registers, spaced four bytes apart on the APB bus.
type registers struct {
	thr mmio.U32
	_   [4]mmio.U32
	lsr mmio.U32
}

// Writes to the console uart directly, regardless of whether a driver was
// set up. Polled and slow. Only intended as a fail safe logger in very
// early boot and for panics.
//
//go:nowritebarrierrec
//go:nosplit
//go:linkname DefaultWrite runtime.defaultWrite
func DefaultWrite(fd int, p []byte) int {
	for _, c := range p {
		if c == '\n' {
			putByte('\r')
		}
		putByte(c)
	}
	return len(p)
}

//go:nosplit
func putByte(c byte) {
	for regs.lsr.LoadBits(lsrTxEmpty) == 0 {
		// wait for transmit hold register
	}
	regs.thr.Store(uint32(c))
}

type defaultWriter int

// DefaultWriter provides the failsafe writer as an io.Writer.
const DefaultWriter defaultWriter = 0

func (v defaultWriter) Write(p []byte) (int, error) {
	return DefaultWrite(int(v), p), nil
}
