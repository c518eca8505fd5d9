//go:build linux || darwin

// Package host ties the interpreter, renderer, input controller, and frame
// limiter together into the run loop, and owns terminal raw-mode
// acquisition/restoration around it.
package host

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

// Terminal puts stdin into raw, non-blocking mode for the duration of a
// run and restores the saved attributes on Close, no matter which exit
// path triggers it.
type Terminal struct {
	fd       int
	oldState *term.State
}

// OpenTerminal disables ICANON/ECHO on stdin and sets it non-blocking,
// matching sys_init's termios setup (VMIN=0, VTIME=0 via non-blocking
// reads instead of a cc[] tweak, since x/term's raw mode already clears
// ICANON/ECHO for us).
func OpenTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("host: failed to set raw mode: %w", err)
	}
	if err := syscall.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, oldState)
		return nil, fmt.Errorf("host: failed to set stdin non-blocking: %w", err)
	}
	return &Terminal{fd: fd, oldState: oldState}, nil
}

// Read performs one non-blocking read of stdin into buf, returning 0 and a
// nil error when nothing is currently available.
func (t *Terminal) Read(buf []byte) (int, error) {
	n, err := syscall.Read(t.fd, buf)
	if err != nil {
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			return 0, nil
		}
		return 0, err
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// Close restores the terminal's original attributes.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.oldState)
}
