// Package serial attaches to the board's serial console from the host. It
// forwards stdin to the board, mirrors the board's output and, for use on
// CI, exits with the verdict of an on-target test run.
package serial

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tty "github.com/mattn/go-tty"
)

const usageString = `Serial console for the board.

Usage: %s [flags]

`

var (
	flags = flag.NewFlagSet("serial", flag.ExitOnError)

	dev    = flags.String("dev", "/dev/ttyUSB0", "serial device")
	expect = flags.Bool("expect", false, "exit with the PASS/FAIL verdict of a test run")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "serial")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	t, err := tty.OpenDevice(*dev)
	if err != nil {
		log.Fatalln("open console:", err)
	}
	defer t.Close()
	restore := t.MustRaw()
	defer restore()

	go io.Copy(t.Output(), os.Stdin)

	scanner := bufio.NewScanner(t.Input())
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Println(line)
		if !*expect {
			continue
		}
		switch {
		case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
			fallthrough
		case line == "FAIL":
			restore()
			os.Exit(1)
		case line == "PASS":
			restore()
			os.Exit(0)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalln("read console:", err)
	}
}
