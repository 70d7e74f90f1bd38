package plat_test

import (
	"testing"

	"github.com/pengzechen/axplat-riscv64-sg2002/board"
	"github.com/pengzechen/axplat-riscv64-sg2002/plat"
	"github.com/pengzechen/axplat-riscv64-sg2002/soc/cpu"
)

// The descriptor cell is process-wide and single-assignment, so the whole
// test binary shares one Set call.
func TestMain(m *testing.M) {
	plat.Set(&board.SG2002)
	m.Run()
}

func TestQueries(t *testing.T) {
	if plat.Active() != &board.SG2002 {
		t.Fatal("Active() does not return the installed descriptor")
	}

	ram := plat.MemoryRegion()
	if ram != board.SG2002.PhysMemory {
		t.Errorf("MemoryRegion() = %+v", ram)
	}

	paddr, vaddr := plat.KernelLoad()
	if !ram.Contains(paddr) {
		t.Errorf("kernel paddr %#x outside ram", paddr)
	}
	if vaddr != paddr+cpu.PhysVirtOffset {
		t.Errorf("kernel vaddr %#x breaks the offset scheme", vaddr)
	}

	if plat.TimerFrequency() != board.SG2002.TimerFreq {
		t.Errorf("TimerFrequency() = %d", plat.TimerFrequency())
	}

	if !plat.IsMMIO(0x0414_0000) {
		t.Error("uart window not classified as mmio")
	}
	if plat.IsMMIO(paddr) {
		t.Error("kernel base classified as mmio")
	}
}

func TestPeripheral(t *testing.T) {
	uart, ok := plat.Peripheral(board.UART0)
	if !ok {
		t.Fatal("uart0 absent")
	}
	if !plat.IsMMIO(uart.Base) {
		t.Errorf("uart base %#x not inside an mmio range", uart.Base)
	}

	if _, ok := plat.Peripheral("watchdog1"); ok {
		t.Error("unwired peripheral reported present")
	}
}

func TestPhysToVirt(t *testing.T) {
	for _, paddr := range []uintptr{0x0, 0x0414_0000, 0x4020_0000} {
		vaddr := plat.PhysToVirt(paddr)
		if plat.VirtToPhys(vaddr) != paddr {
			t.Errorf("round trip of %#x via %#x failed", paddr, vaddr)
		}
	}
}

func TestMapAll(t *testing.T) {
	type mapping struct {
		vaddr, paddr, size uintptr
		attr               plat.MapAttr
	}
	var got []mapping
	err := plat.MapAll(func(vaddr, paddr, size uintptr, attr plat.MapAttr) error {
		got = append(got, mapping{vaddr, paddr, size, attr})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := len(board.SG2002.MMIO) + 1
	if len(got) != want {
		t.Fatalf("MapAll installed %d ranges, want %d", len(got), want)
	}

	ram := got[0]
	if ram.paddr != board.SG2002.PhysMemory.Base || ram.attr != plat.AttrMemory {
		t.Errorf("ram mapping = %+v", ram)
	}
	for _, m := range got[1:] {
		if m.attr != plat.AttrDevice {
			t.Errorf("mmio mapping %+v not mapped as device", m)
		}
	}
	for _, m := range got {
		if m.vaddr != m.paddr+cpu.PhysVirtOffset {
			t.Errorf("mapping %+v breaks the offset scheme", m)
		}
	}
}
