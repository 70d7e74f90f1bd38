package irq_test

import (
	"testing"

	"github.com/pengzechen/axplat-riscv64-sg2002/soc/irq"
)

func TestCauses(t *testing.T) {
	// The interrupt bit distinguishes CPU-side causes from device
	// interrupt numbers.
	for _, cause := range []uint{irq.SupervisorSoft, irq.SupervisorTimer, irq.SupervisorExt} {
		if cause&irq.CauseInterrupt == 0 {
			t.Errorf("cause %#x misses the interrupt bit", cause)
		}
	}
	if irq.SupervisorTimer-irq.CauseInterrupt != 5 {
		t.Error("timer cause is not scause 5")
	}
	if irq.SupervisorSoft-irq.CauseInterrupt != 1 {
		t.Error("soft cause is not scause 1")
	}
}

func TestContext(t *testing.T) {
	// Hart 0 has no S-mode context, so logical cpu 0 lives in context 2.
	for cpu, want := range []int{2, 4, 6, 8} {
		if got := irq.Context(cpu); got != want {
			t.Errorf("Context(%d) = %d, want %d", cpu, got, want)
		}
	}
}

func TestDeviceDispatch(t *testing.T) {
	const line = 44

	if got := irq.Handle(line); got {
		t.Error("unregistered device interrupt reported handled")
	}

	fired := 0
	if !irq.SetHandler(line, func() { fired++ }) {
		t.Fatal("SetHandler failed")
	}
	defer irq.ClearHandler(line)

	if irq.SetHandler(line, func() {}) {
		t.Error("second SetHandler on same line succeeded")
	}

	if !irq.Handle(line) {
		t.Error("registered device interrupt not handled")
	}
	if fired != 1 {
		t.Errorf("handler fired %d times", fired)
	}
}

func TestTimerAndIPIDispatch(t *testing.T) {
	var timer, ipi int
	if !irq.SetTimerHandler(func() { timer++ }) {
		t.Fatal("SetTimerHandler failed")
	}
	if !irq.SetIPIHandler(func() { ipi++ }) {
		t.Fatal("SetIPIHandler failed")
	}

	irq.Handle(irq.SupervisorTimer)
	irq.Handle(irq.SupervisorSoft)
	if timer != 1 || ipi != 1 {
		t.Errorf("timer fired %d, ipi fired %d", timer, ipi)
	}

	if irq.SetTimerHandler(func() {}) {
		t.Error("second timer handler registration succeeded")
	}
}

func TestExternalDispatch(t *testing.T) {
	const line = 36

	var fired []uint
	irq.SetHandler(line, func() { fired = append(fired, line) })
	defer irq.ClearHandler(line)

	// Stands in for the interrupt controller driver's claim/complete
	// loop.
	completed := false
	irq.SetExtDispatch(func(dispatch func(uint)) {
		dispatch(line)
		completed = true
	})

	if !irq.Handle(irq.SupervisorExt) {
		t.Fatal("external cause not handled")
	}
	if len(fired) != 1 || !completed {
		t.Errorf("fired = %v, completed = %v", fired, completed)
	}
}

func TestHandlerBounds(t *testing.T) {
	if irq.SetHandler(irq.MaxIRQ, func() {}) {
		t.Error("handler registered past MaxIRQ")
	}
	if irq.Handler(irq.MaxIRQ) != nil {
		t.Error("handler returned past MaxIRQ")
	}
}
