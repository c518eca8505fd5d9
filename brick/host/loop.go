package host

import (
	"fmt"

	"github.com/valerio/brick4bit/brick/cpu"
	"github.com/valerio/brick4bit/brick/display"
	"github.com/valerio/brick4bit/brick/input"
	"github.com/valerio/brick4bit/brick/timing"
)

// StdinReader abstracts a single non-blocking read of stdin, so Loop can be
// driven by a real Terminal or, in tests, by a canned byte source.
type StdinReader interface {
	Read(buf []byte) (int, error)
}

// readBufSize matches brickgame.c's "char buf[8]" in sys_events.
const readBufSize = 8

// Loop drives the interpreter, renderer, and input controller through the
// frame-boundary protocol from brickgame.c's run_game: execute SleepTicks
// instructions, render, pace, poll input, and latch ports — in that order,
// once per frame, observing quit only at the boundary.
type Loop struct {
	Interp     *cpu.Interpreter
	Renderer   *display.Renderer
	Controller *input.Controller
	Limiter    timing.Limiter
	Stdin      StdinReader

	SleepTicks uint64
}

// Run executes frames until the controller reports quit or the ROM hits a
// fault. A fault from Step (unknown opcode) surfaces as a returned error
// rather than crashing the process, so the caller can restore terminal
// state before exiting.
func (l *Loop) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if fault, ok := r.(*cpu.FaultError); ok {
				err = fault
				return
			}
			panic(r)
		}
	}()

	l.Renderer.Init()
	defer l.Renderer.Close()

	buf := make([]byte, readBufSize)
	for {
		for i := uint64(0); i < l.SleepTicks; i++ {
			l.Interp.Step()
		}

		l.Renderer.Render(&l.Interp.State.Mem)
		l.Limiter.WaitForNextFrame()

		n, readErr := l.Stdin.Read(buf)
		if readErr != nil {
			return fmt.Errorf("host: stdin read: %w", readErr)
		}
		l.Controller.Feed(buf[:n], n == readBufSize)
		l.Controller.PollGamepad()

		if l.Controller.Quit() {
			return nil
		}

		pp, ps := l.Controller.Ports()
		l.Interp.SetPorts(ps, pp)
	}
}
