package sdcard

import (
	"encoding/binary"

	"github.com/sigurn/crc8"
)

// The boot rom locates the firmware through a small parameter block in
// sector 1, outside any partition. Layout, all little endian:
//
//	0x00 [4]byte magic "CVBL"
//	0x04 uint32  version
//	0x08 uint32  fip size
//	0x0c uint32  kernel image size
//	0x10 byte    crc8 over bytes 0x00..0x0f
const paramSize = 17

var paramCRC = crc8.MakeTable(crc8.CRC8)

func paramBlock(fipSize, imgSize uint32) []byte {
	p := make([]byte, paramSize)
	copy(p, "CVBL")
	binary.LittleEndian.PutUint32(p[0x04:], 1)
	binary.LittleEndian.PutUint32(p[0x08:], fipSize)
	binary.LittleEndian.PutUint32(p[0x0c:], imgSize)
	p[0x10] = crc8.Checksum(p[:0x10], paramCRC)
	return p
}
