// Package sdcard builds bootable sd card images for the board: an MBR
// partition table, a FAT32 boot partition holding the firmware blob and the
// kernel image, and the boot rom's parameter block in the gap behind the
// MBR.
package sdcard

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

const usageString = `Bootable sd card image builder.

Usage: %s [flags] <imagefile>

`

var (
	flags = flag.NewFlagSet("sdcard", flag.ExitOnError)

	infile string
	out    = flags.String("o", "sdcard.img", "output file")
	fip    = flags.String("fip", "fip.bin", "firmware image package")
	sizeMB = flags.Int64("size", 64, "card image size in MiB")
)

const (
	sectorSize = 512
	// first partition starts at the conventional 1 MiB boundary, the
	// sectors between MBR and partition hold the boot parameter block
	partStart = 2048
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "sdcard")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	size := *sizeMB << 20
	d, err := diskfs.Create(*out, size, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		log.Fatalln(err)
	}

	sectors := uint32(size / sectorSize)
	table := &mbr.Table{
		Partitions: []*mbr.Partition{{
			Bootable: true,
			Type:     mbr.Fat32LBA,
			Start:    partStart,
			Size:     sectors - partStart,
		}},
	}
	if err := d.Partition(table); err != nil {
		log.Fatalln("partition:", err)
	}

	fs, err := d.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: "boot",
	})
	if err != nil {
		log.Fatalln("mkfs:", err)
	}

	fipSize, err := install(fs, *fip, "/fip.bin")
	if err != nil {
		log.Fatalln(err)
	}
	imgSize, err := install(fs, infile, "/boot.img")
	if err != nil {
		log.Fatalln(err)
	}

	param := paramBlock(uint32(fipSize), uint32(imgSize))
	if _, err := d.File.WriteAt(param, sectorSize); err != nil {
		log.Fatalln("write param block:", err)
	}

	if err := d.Close(); err != nil {
		log.Fatalln(err)
	}
	log.Printf("%s: %d MiB, fip %d bytes, kernel %d bytes", *out, *sizeMB, fipSize, imgSize)
}

func install(fs filesystem.FileSystem, src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return 0, err
	}
	return io.Copy(out, in)
}
