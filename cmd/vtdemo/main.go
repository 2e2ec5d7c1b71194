// Command vtdemo runs a shell inside a pty and renders its output through
// package vt, demonstrating Feed/Resize end to end with a plain-text
// String redraw. Keystrokes on stdin are not read or forwarded.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/a1exwang/vtcore"
	"github.com/creack/pty"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer ptmx.Close()

	_ = pty.InheritSize(os.Stdin, ptmx)
	rows, cols := 24, 80
	if r, c, err := pty.Getsize(ptmx); err == nil && r > 0 && c > 0 {
		rows, cols = r, c
	}

	vterm := vt.New(
		vt.WithSize(rows, cols),
		vt.WithResponse(ptmx),
		vt.WithTitleProvider(titlePrinter{}),
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	go func() {
		for range sig {
			_ = pty.InheritSize(os.Stdin, ptmx)
			if r, c, err := pty.Getsize(ptmx); err == nil {
				vterm.Resize(r, c)
			}
		}
	}()

	oldState, err := termRaw()
	if err == nil {
		defer termRestore(oldState)
	}

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			vterm.Feed(buf[:n])
			fmt.Print("\x1b[H\x1b[2J")
			fmt.Print(vterm.String())
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func termRaw() (*term.State, error) {
	return term.MakeRaw(int(os.Stdin.Fd()))
}

func termRestore(state *term.State) {
	term.Restore(int(os.Stdin.Fd()), state)
}

type titlePrinter struct{}

func (titlePrinter) SetTitle(title string) {
	fmt.Fprintf(os.Stderr, "\x1b]0;%s\x07", title)
}
