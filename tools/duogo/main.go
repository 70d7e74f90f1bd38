package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pengzechen/axplat-riscv64-sg2002/tools/image"
	"github.com/pengzechen/axplat-riscv64-sg2002/tools/sdcard"
	"github.com/pengzechen/axplat-riscv64-sg2002/tools/serial"
)

const usageString = `duogo is a tool for development of SG2002 kernels.

Usage:

	%s <command> [arguments]

The commands are:

	image    convert an elf kernel to a bootable image
	sdcard   build a bootable sd card image
	serial   attach to the board's serial console
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "image":
		image.Main(flag.Args())
	case "sdcard":
		sdcard.Main(flag.Args())
	case "serial":
		serial.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
