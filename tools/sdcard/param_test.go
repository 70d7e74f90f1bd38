package sdcard

import (
	"encoding/binary"
	"testing"

	"github.com/sigurn/crc8"
)

func TestParamBlock(t *testing.T) {
	p := paramBlock(0x1234, 0xabcd)

	if string(p[:4]) != "CVBL" {
		t.Errorf("magic = %q", p[:4])
	}
	if got := binary.LittleEndian.Uint32(p[0x08:]); got != 0x1234 {
		t.Errorf("fip size = %#x", got)
	}
	if got := binary.LittleEndian.Uint32(p[0x0c:]); got != 0xabcd {
		t.Errorf("image size = %#x", got)
	}
	if got := crc8.Checksum(p[:0x10], paramCRC); got != p[0x10] {
		t.Errorf("crc = %#x, header says %#x", got, p[0x10])
	}

	// The block must detect a corrupted field.
	p[0x08] ^= 0xff
	if crc8.Checksum(p[:0x10], paramCRC) == p[0x10] {
		t.Error("crc unchanged after corruption")
	}
}
