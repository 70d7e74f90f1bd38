package board_test

import (
	"errors"
	"testing"

	"github.com/pengzechen/axplat-riscv64-sg2002/board"
	"github.com/pengzechen/axplat-riscv64-sg2002/soc/cpu"
)

// The shipped descriptor must hold all cross-field invariants. A failure
// here is a porting error, not a runtime condition.
func TestSG2002Valid(t *testing.T) {
	if err := board.SG2002.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestIsMMIO(t *testing.T) {
	d := board.Descriptor{
		PhysMemory:  board.Region{Base: 0x4000_0000, Size: 0x4000_0000},
		KernelPaddr: 0x4020_0000,
		KernelVaddr: 0x4020_0000 + cpu.PhysVirtOffset,
		MMIO:        []board.Region{{Base: 0x0, Size: 0x4000_0000}},
		TimerFreq:   4000000,
	}
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		addr uintptr
		want bool
	}{
		{0x0, true},
		{0x1000_0000, true},
		{0x3fff_ffff, true},
		{0x4000_0000, false}, // start of ram
		{0x4020_0000, false}, // kernel base
		{0x7fff_ffff, false},
		{0x8000_0000, false}, // past ram, not decoded at all
	} {
		if got := d.IsMMIO(tc.addr); got != tc.want {
			t.Errorf("IsMMIO(%#x) = %v, want %v", tc.addr, got, tc.want)
		}
	}

	if d.TimerFreq != 4000000 {
		t.Errorf("TimerFreq = %d, want 4000000", d.TimerFreq)
	}
}

// Every address inside a configured MMIO range must be classified as device
// memory and every address inside RAM must not, given the two are disjoint.
func TestIsMMIODisjoint(t *testing.T) {
	d := &board.SG2002
	for addr := uintptr(0); addr < d.PhysMemory.End(); addr += 0x100_0000 {
		inRAM := d.PhysMemory.Contains(addr)
		if got := d.IsMMIO(addr); got && inRAM {
			t.Fatalf("IsMMIO(%#x) = true inside ram", addr)
		}
	}
	for _, r := range d.MMIO {
		for _, addr := range []uintptr{r.Base, r.Base + r.Size/2, r.End() - 1} {
			if !d.IsMMIO(addr) {
				t.Errorf("IsMMIO(%#x) = false inside mmio range", addr)
			}
		}
	}
}

func TestPeripheral(t *testing.T) {
	uart, ok := board.SG2002.Peripheral(board.UART0)
	if !ok {
		t.Fatal("uart0 not wired")
	}
	if uart.Base == 0 || uart.IRQ == board.NoIRQ {
		t.Errorf("uart0 = %+v", uart)
	}

	// Absence is a normal probe result, not a fault.
	if _, ok := board.SG2002.Peripheral("gpu0"); ok {
		t.Error("gpu0 reported as wired")
	}
}

func TestValidate(t *testing.T) {
	valid := func() board.Descriptor {
		return board.Descriptor{
			PhysMemory:  board.Region{Base: 0x4000_0000, Size: 0x4000_0000},
			KernelPaddr: 0x4020_0000,
			KernelVaddr: 0x4020_0000 + cpu.PhysVirtOffset,
			MMIO:        []board.Region{{Base: 0x0, Size: 0x4000_0000}},
			TimerFreq:   25_000_000,
		}
	}

	for _, tc := range []struct {
		name   string
		mutate func(*board.Descriptor)
		want   error
	}{
		{"valid", func(d *board.Descriptor) {}, nil},
		{"empty ram", func(d *board.Descriptor) { d.PhysMemory.Size = 0 }, board.ErrMemoryEmpty},
		{"unaligned ram", func(d *board.Descriptor) { d.PhysMemory.Base += 2 }, board.ErrMemoryAlign},
		{"empty mmio", func(d *board.Descriptor) {
			d.MMIO = append(d.MMIO, board.Region{Base: 0x9000_0000})
		}, board.ErrMMIOEmpty},
		{"mmio in ram", func(d *board.Descriptor) {
			d.MMIO = append(d.MMIO, board.Region{Base: 0x5000_0000, Size: 0x1000})
		}, board.ErrMMIOOverlap},
		{"mmio overlap", func(d *board.Descriptor) {
			d.MMIO = append(d.MMIO, board.Region{Base: 0x3fff_0000, Size: 0x2_0000})
		}, board.ErrMMIOOverlap},
		{"device unmapped", func(d *board.Descriptor) {
			d.Devices = map[string]board.Device{board.UART0: {Base: 0x9000_0000, IRQ: 44}}
		}, board.ErrDeviceUnmapped},
		{"kernel outside ram", func(d *board.Descriptor) { d.KernelPaddr = 0x1000 }, board.ErrKernelLoad},
		{"kernel vaddr off", func(d *board.Descriptor) { d.KernelVaddr += 0x1000 }, board.ErrKernelMapping},
		{"zero timer freq", func(d *board.Descriptor) { d.TimerFreq = 0 }, board.ErrTimerFreq},
		{"negative timer freq", func(d *board.Descriptor) { d.TimerFreq = -1 }, board.ErrTimerFreq},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := valid()
			tc.mutate(&d)
			err := d.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRegion(t *testing.T) {
	r := board.Region{Base: 0x1000, Size: 0x1000}
	if !r.Contains(0x1000) || !r.Contains(0x1fff) {
		t.Error("Contains misses own bounds")
	}
	if r.Contains(0xfff) || r.Contains(0x2000) {
		t.Error("Contains exceeds own bounds")
	}
	if !r.Overlaps(board.Region{Base: 0x1fff, Size: 1}) {
		t.Error("Overlaps misses touching region")
	}
	if r.Overlaps(board.Region{Base: 0x2000, Size: 0x1000}) {
		t.Error("Overlaps reports adjacent region")
	}
	if r.Overlaps(board.Region{Base: 0x1800, Size: 0}) {
		t.Error("Overlaps reports empty region")
	}
}
