// Package image converts an elf kernel into the raw boot image format the
// board's loaders accept: the fixed 64-byte header followed by the loadable
// segments, linked to run at the board's kernel load address.
package image

import (
	"debug/elf"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pengzechen/axplat-riscv64-sg2002/boot"
)

const usageString = `ELF to SG2002 boot image converter.

Usage: %s [flags] <elffile>

`

var (
	flags = flag.NewFlagSet("image", flag.ExitOnError)

	infile string
	out    = flags.String("o", "", "output file, default derived from input")
	run    = flags.String("run", "", "run the image with command")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "image")
	flags.PrintDefaults()
}

func objcopy(dst io.WriterAt, src *elf.File) (size int64, err error) {
	for _, s := range src.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return 0, err
		}

		if s.Addr < src.Entry {
			return 0, errors.New("data before entry point")
		}

		off := int64(s.Addr - src.Entry)
		if _, err := dst.WriteAt(data, off); err != nil {
			return 0, err
		}
		if end := off + int64(len(data)); end > size {
			size = end
		}
	}

	return size, nil
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

	outfile := *out
	if outfile == "" {
		outfile, _ = strings.CutSuffix(infile, ".elf")
		outfile += ".img"
	}

	elffile, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer elffile.Close()

	img, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer img.Close()

	size, err := objcopy(io.NewOffsetWriter(img, boot.HeaderSize), elffile)
	if err != nil {
		log.Fatalln("objcopy:", err)
	}

	h := boot.Header{
		Entry: boot.HeaderSize,
		Size:  uint32(size) + boot.HeaderSize,
	}
	var hdr [boot.HeaderSize]byte
	if err := h.Encode(hdr[:]); err != nil {
		log.Fatalln("write header:", err)
	}
	if _, err := img.WriteAt(hdr[:], 0); err != nil {
		log.Fatalln("write header:", err)
	}

	if *run != "" {
		runImage(*run, outfile)
	}
}
