//go:build riscv64

package sbi

// ecall traps into the firmware. Implemented in sbi_riscv64.s.
//
//go:nosplit
func ecall(eid, fid, a0, a1, a2 uintptr) (code int64, value uintptr)

// SetTimer programs the next timer interrupt for the calling hart, in
// absolute ticks of the architectural timer.
func SetTimer(stime uint64) error {
	code, _ := ecall(eidTime, fidSetTimer, uintptr(stime), 0, 0)
	return sbiError(code)
}

// SendIPI raises a supervisor software interrupt on every hart whose bit is
// set in mask. The mask is based at native hart id base.
func SendIPI(mask, base uintptr) error {
	code, _ := ecall(eidIPI, fidSendIPI, mask, base, 0)
	return sbiError(code)
}

// HartStart releases a stopped hart into supervisor mode at the given
// physical address, with opaque in a1.
func HartStart(hartid, startAddr, opaque uintptr) error {
	code, _ := ecall(eidHSM, fidHartStart, hartid, startAddr, opaque)
	return sbiError(code)
}

// HartStop returns the calling hart to the firmware. On success it does not
// return.
func HartStop() error {
	code, _ := ecall(eidHSM, fidHartStop, 0, 0, 0)
	return sbiError(code)
}

// HartState queries the firmware's lifecycle state of a hart.
func HartState(hartid uintptr) (int, error) {
	code, state := ecall(eidHSM, fidHartGetState, hartid, 0, 0)
	return int(state), sbiError(code)
}

// Shutdown powers the board off. It only returns on error.
func Shutdown() error {
	code, _ := ecall(eidSRST, fidSystemReset, resetShutdown, reasonNoReason, 0)
	return sbiError(code)
}

// Reboot cold-reboots the board. It only returns on error.
func Reboot() error {
	code, _ := ecall(eidSRST, fidSystemReset, resetColdReboot, reasonNoReason, 0)
	return sbiError(code)
}
