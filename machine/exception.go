package machine

var excNames = [16]string{
	0:  "Instruction Address Misaligned",
	1:  "Instruction Access Fault",
	2:  "Illegal Instruction",
	3:  "Breakpoint",
	4:  "Load Address Misaligned",
	5:  "Load Access Fault",
	6:  "Store Address Misaligned",
	7:  "Store Access Fault",
	8:  "Environment Call (U)",
	9:  "Environment Call (S)",
	12: "Instruction Page Fault",
	13: "Load Page Fault",
	15: "Store Page Fault",
}

//go:nosplit
func Exception(scause, sepc, sstatus, stval, ra uint64) {
	var buf [16]byte
	DefaultWrite(0, []byte("Unhandled "))
	name := excNames[scause&15]
	if scause >= 16 || name == "" {
		name = "Unknown"
	}
	DefaultWrite(0, []byte(name))
	DefaultWrite(0, []byte(" Exception"))

	DefaultWrite(0, []byte("\nscause  0x"))
	DefaultWrite(0, itoa(buf[:], scause))
	DefaultWrite(0, []byte("\nsepc    0x"))
	DefaultWrite(0, itoa(buf[:], sepc))
	DefaultWrite(0, []byte("\nsstatus 0x"))
	DefaultWrite(0, itoa(buf[:], sstatus))
	DefaultWrite(0, []byte("\nstval   0x"))
	DefaultWrite(0, itoa(buf[:], stval))
	DefaultWrite(0, []byte("\nra      0x"))
	DefaultWrite(0, itoa(buf[:], ra))
	DefaultWrite(0, []byte("\n"))
}

//go:nosplit
func itoa(buf []byte, num uint64) []byte {
	for i := range 16 {
		char := byte(num>>(60-(4*i))) & 0xf
		if char > 9 {
			char += 'a' - 10
		} else {
			char += '0'
		}
		buf[i] = char
	}
	return buf
}
