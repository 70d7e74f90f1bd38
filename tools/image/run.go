package image

import (
	"bufio"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/aymanbagabas/go-pty"
	"github.com/kballard/go-shellquote"
)

// runImage executes the boot image with the given command, usually an
// emulator invocation, and scans its output for a test verdict. The command
// runs on a pty so it keeps line buffering and its interactive monitor.
func runImage(cmdpath, imgpath string) {
	args, err := shellquote.Split(cmdpath)
	if err != nil {
		log.Fatal("run:", err)
	}
	args = append(args, imgpath)

	ptmx, err := pty.New()
	if err != nil {
		log.Fatal("open pty:", err)
	}
	defer ptmx.Close()

	cmd := ptmx.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		log.Fatal("start command:", err)
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	go func() {
		<-sigintr
		ptmx.Close()
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
	}()

	scanner := bufio.NewScanner(ptmx)
	exiting := false
	code := 0
	for scanner.Scan() {
		line := scanner.Text()
		log.Println(line)
		if exiting {
			continue
		}
		switch {
		case strings.HasPrefix(line, "fatal error:"), strings.HasPrefix(line, "panic:"):
			fallthrough
		case line == "FAIL":
			code = 1
			fallthrough
		case line == "PASS":
			exiting = true
			if cmd.Process != nil {
				cmd.Process.Kill()
			}
		}
	}

	cmd.Wait()
	os.Exit(code)
}
