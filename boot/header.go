// Package boot contains the first code a hart executes after the firmware
// hands over, and the boot image header that makes the kernel binary
// loadable by two different bootloader conventions at once.
//
// Failures in this package happen before any console is guaranteed mapped.
// They halt the offending hart in place and manifest as silence, not as a
// diagnostic message. This is an accepted limitation of the bring-up phase.
package boot

import (
	"encoding/binary"
	"errors"
)

// HeaderSize is the fixed size of the boot image header. The entry code
// starts immediately after it.
const HeaderSize = 64

// Field offsets within the header.
const (
	offMagic = 0x00 // [2]byte "MZ"
	offJump  = 0x02 // instruction skipping the header on a raw jump
	offEntry = 0x04 // uint32 LE, entry point offset from image base
	offSize  = 0x08 // uint32 LE, total image size
	offFlags = 0x0c // uint32 LE, load flags
	offPlat  = 0x30 // [8]byte "RISCV\0\0\0"
)

// Header flags
const (
	FlagBigEndian = 1 << 0 // image expects big-endian execution
)

var (
	ErrShortHeader = errors.New("boot: short header")
	ErrBadMagic    = errors.New("boot: bad header magic")
)

// The header serves two consumers that never know about each other. A
// loader that validates boot images checks the "MZ" and "RISCV" signatures
// and jumps to the entry offset. A loader that jumps straight to the image
// base instead executes the header: "MZ" encodes `c.li s4,-13` and the
// following `c.j` hops over the remaining header bytes into the entry code.
// No code anywhere detects which loader was used.
var template = [HeaderSize]byte{
	offMagic: 'M', 'Z',
	offJump:  0x3d, 0xa8, // c.j +62
	offPlat:  'R', 'I', 'S', 'C', 'V',
}

// Header describes the loadable kernel image.
type Header struct {
	Entry uint32 // entry point offset from the image base
	Size  uint32 // image size in bytes, header included
	Flags uint32
}

// Encode writes the header's fixed 64-byte layout into p.
func (h *Header) Encode(p []byte) error {
	if len(p) < HeaderSize {
		return ErrShortHeader
	}
	copy(p, template[:])
	binary.LittleEndian.PutUint32(p[offEntry:], h.Entry)
	binary.LittleEndian.PutUint32(p[offSize:], h.Size)
	binary.LittleEndian.PutUint32(p[offFlags:], h.Flags)
	return nil
}

// Decode reads a header back from the start of an image. It performs the
// validation a header-checking bootloader would: both signatures must match.
func Decode(p []byte) (Header, error) {
	if len(p) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	if p[offMagic] != 'M' || p[offMagic+1] != 'Z' {
		return Header{}, ErrBadMagic
	}
	if string(p[offPlat:offPlat+8]) != "RISCV\x00\x00\x00" {
		return Header{}, ErrBadMagic
	}
	return Header{
		Entry: binary.LittleEndian.Uint32(p[offEntry:]),
		Size:  binary.LittleEndian.Uint32(p[offSize:]),
		Flags: binary.LittleEndian.Uint32(p[offFlags:]),
	}, nil
}
