// Package testing provides utilities for running tests on the board itself.
package testing

import (
	"embedded/rtos"
	"os"
	"syscall"
	"testing"

	"github.com/pengzechen/axplat-riscv64-sg2002/board"
	_ "github.com/pengzechen/axplat-riscv64-sg2002/machine"
	"github.com/pengzechen/axplat-riscv64-sg2002/plat"
	"github.com/pengzechen/axplat-riscv64-sg2002/soc/uart"

	"github.com/embeddedgo/fs/termfs"
)

// TestMain should be used as TestMain for on-target tests. It routes stdout
// and stderr to the console uart.
func TestMain(m *testing.M) {
	var err error

	// The test binary boots without the kernel's bring-up sequence, so
	// install the platform descriptor if nobody did yet.
	if plat.Active() == nil {
		plat.Set(&board.SG2002)
	}

	u := uart.Probe()
	if u == nil {
		// The failsafe writer still reaches the uart, so this panic
		// will be visible.
		panic("no console uart wired")
	}

	fs := termfs.NewLight("termfs", u, u)
	rtos.Mount(fs, "/dev/console")
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		panic(err)
	}
	os.Stderr = os.Stdout

	// TODO find a way to pass these from the 'go test' command
	os.Args = append(os.Args, "-test.v")

	os.Exit(m.Run())
}
