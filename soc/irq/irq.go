package irq

import "sync/atomic"

var (
	timerHandler atomic.Pointer[func()]
	ipiHandler   atomic.Pointer[func()]

	// extClaim is owned by the interrupt controller driver. It claims
	// the pending device interrupt, calls the argument with its number
	// and completes it.
	extClaim atomic.Pointer[func(func(irq uint))]

	handlers [MaxIRQ]atomic.Pointer[func()]
)

// SetTimerHandler registers the handler invoked on the timer cause. It
// reports false if one is already registered.
func SetTimerHandler(handler func()) bool {
	return timerHandler.CompareAndSwap(nil, &handler)
}

// SetIPIHandler registers the handler invoked on the software interrupt
// cause. It reports false if one is already registered.
func SetIPIHandler(handler func()) bool {
	return ipiHandler.CompareAndSwap(nil, &handler)
}

// SetExtDispatch registers the interrupt controller driver's claim loop. The
// driver is expected to claim the pending interrupt, pass its number to
// dispatch and complete it afterwards.
func SetExtDispatch(claim func(dispatch func(irq uint))) {
	extClaim.Store(&claim)
}

// SetHandler registers the handler for a device interrupt number.
func SetHandler(irq uint, handler func()) bool {
	if irq >= MaxIRQ {
		return false
	}
	return handlers[irq].CompareAndSwap(nil, &handler)
}

// ClearHandler removes a device interrupt handler. It returns the handler
// that was registered, if any.
func ClearHandler(irq uint) func() {
	if irq >= MaxIRQ {
		return nil
	}
	if h := handlers[irq].Swap(nil); h != nil {
		return *h
	}
	return nil
}

// Handler returns the registered handler for a device interrupt number.
func Handler(irq uint) func() {
	if irq >= MaxIRQ {
		return nil
	}
	if h := handlers[irq].Load(); h != nil {
		return *h
	}
	return nil
}

// Handle demultiplexes an interrupt cause. It is called by the common trap
// handler with the scause value for CPU-side interrupts or with a device
// interrupt number. It reports whether the cause was handled.
func Handle(cause uint) bool {
	switch cause {
	case SupervisorTimer:
		if h := timerHandler.Load(); h != nil {
			(*h)()
		}
		return true
	case SupervisorSoft:
		if h := ipiHandler.Load(); h != nil {
			(*h)()
		}
		return true
	case SupervisorExt:
		claim := extClaim.Load()
		if claim == nil {
			return false
		}
		(*claim)(dispatch)
		return true
	default:
		if cause&CauseInterrupt != 0 {
			// Other CPU-side causes are not expected on this board.
			return false
		}
		return dispatchOK(cause)
	}
}

func dispatch(irq uint) {
	if !dispatchOK(irq) {
		panic("unhandled interrupt")
	}
}

func dispatchOK(irq uint) bool {
	h := Handler(irq)
	if h == nil {
		return false
	}
	h()
	return true
}
