// Package uart drives the board's 16550 serial ports. The SoC spaces the
// byte-wide 16550 registers four bytes apart on its APB bus.
package uart

import (
	"embedded/mmio"
	"unsafe"

	"github.com/pengzechen/axplat-riscv64-sg2002/board"
	"github.com/pengzechen/axplat-riscv64-sg2002/plat"
)

type registers struct {
	rbr mmio.U32 // RBR/THR/DLL
	ier mmio.U32 // IER/DLH
	iir mmio.U32 // IIR/FCR
	lcr mmio.U32
	mcr mmio.U32
	lsr mmio.U32
	msr mmio.U32
	scr mmio.U32
}

type lsrFlags uint32

const (
	dataReady lsrFlags = 1 << iota
	overrunError
	parityError
	framingError
	breakInterrupt
	txEmpty
	txIdle
)

const (
	fifoEnable  = 1 << 0 // FCR
	fifoClearRx = 1 << 1
	fifoClearTx = 1 << 2
)

// Driver is a polled 16550. The prior boot stage already configured the
// baud rate, it is not touched here.
type Driver struct {
	regs *registers
	irq  int
}

// Probe locates the console uart through the platform provider. It returns
// nil if the board has none, which callers treat as the device being
// absent, not as a fault.
func Probe() *Driver {
	dev, ok := plat.Peripheral(board.UART0)
	if !ok {
		return nil
	}
	d := &Driver{
		regs: (*registers)(unsafe.Pointer(plat.PhysToVirt(dev.Base))),
		irq:  dev.IRQ,
	}
	d.regs.iir.Store(fifoEnable | fifoClearRx | fifoClearTx)
	return d
}

// IRQ returns the device's interrupt line at the interrupt controller.
func (d *Driver) IRQ() int { return d.irq }

func (d *Driver) WriteByte(c byte) error {
	for d.regs.lsr.LoadBits(uint32(txEmpty)) == 0 {
		// wait for transmit hold register
	}
	d.regs.rbr.Store(uint32(c))
	return nil
}

func (d *Driver) Write(p []byte) (n int, err error) {
	for _, c := range p {
		d.WriteByte(c)
	}
	return len(p), nil
}

// ReadByte returns the next received byte, or ok == false if the receive
// FIFO is empty.
func (d *Driver) ReadByte() (c byte, ok bool) {
	if d.regs.lsr.LoadBits(uint32(dataReady)) == 0 {
		return 0, false
	}
	return byte(d.regs.rbr.Load()), true
}

func (d *Driver) Read(p []byte) (n int, err error) {
	for n < len(p) {
		c, ok := d.ReadByte()
		if !ok {
			if n > 0 {
				return n, nil
			}
			continue
		}
		p[n] = c
		n++
	}
	return n, nil
}

// Flush blocks until the transmitter is completely idle.
func (d *Driver) Flush() {
	for d.regs.lsr.LoadBits(uint32(txIdle)) == 0 {
	}
}
