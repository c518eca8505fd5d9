package cpu

import (
	"fmt"

	"github.com/valerio/brick4bit/brick/rom"
)

// FaultError reports an opcode byte with no assigned handler. The dispatch
// table built by buildOpcodeTable is dense (every byte 0x00-0xFF decodes to
// something), so this can only fire against a hand-built, non-standard
// table — kept for parity with the original's unreachable default case.
type FaultError struct {
	Opcode uint8
	PC     uint16
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02x at pc 0x%03x", e.Opcode, e.PC)
}

// Interpreter executes a ROM image against a CPU State, one instruction at
// a time. It owns the four I/O ports the original wires to OUT/IN
// instructions: pa (output, never read back by the CPU itself), pm
// (hard-wired to 0xF, see DESIGN.md), ps and pp (latched by the host once
// per frame from the input controller).
type Interpreter struct {
	State *State
	Rom   *rom.ROM

	pa, pm, ps, pp uint8
	curOp          uint8

	tmrFrac  uint32
	timerInc uint32
}

// NewInterpreter returns an interpreter over image starting from a
// power-on state. pm is hard-wired to 0xF, matching the original
// firmware's unused input port (brickgame.c never writes it).
func NewInterpreter(image *rom.ROM) *Interpreter {
	return NewInterpreterWithState(image, New())
}

// NewInterpreterWithState wraps an existing, already-validated State (e.g.
// loaded from a save file) instead of a fresh power-on one.
func NewInterpreterWithState(image *rom.ROM, s *State) *Interpreter {
	return &Interpreter{
		State:    s,
		Rom:      image,
		pm:       0xF,
		timerInc: TimerIncrementFor(DefaultTimerDivisor),
	}
}

// SetPorts latches the PS (switches) and PP (buttons) input ports, as the
// host loop does once per frame from polled input.
func (ip *Interpreter) SetPorts(ps, pp uint8) {
	ip.ps = ps & 0xF
	ip.pp = pp & 0xF
}

// OutputPort returns the last value written by OUT PA,A.
func (ip *Interpreter) OutputPort() uint8 { return ip.pa }

// fetch consumes the byte immediately after the current PC, mirroring the
// original's "rom[++pc & 0xfff]": it advances PC first, then reads. Used by
// every two-byte non-branch opcode (immediate ALU ops, wide MOVs, TIMER).
func (ip *Interpreter) fetch() uint8 {
	ip.State.PC = (ip.State.PC + 1) & 0xFFF
	return ip.Rom.Read(ip.State.PC)
}

// Step decodes and executes exactly one instruction, advances the timer by
// one tick, and applies the uniform end-of-instruction PC increment. It
// panics with *FaultError if dispatch ever lands on an unassigned opcode
// (unreachable against the built-in table, reachable only if a caller
// replaces opcodeTable).
func (ip *Interpreter) Step() {
	s := ip.State
	ip.curOp = ip.Rom.Read(s.PC)
	opcodeTable[ip.curOp](ip)
	s.PC = (s.PC + 1) & 0xFFF
	ip.tickTimer()
}
