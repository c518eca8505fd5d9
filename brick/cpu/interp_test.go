package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/brick4bit/brick/rom"
)

func TestTimerTicksOnlyWhenEnabled(t *testing.T) {
	ip := newTestInterpreter(t, map[uint16]uint8{0: 0x3E}) // NOP
	ip.SetTimerIncrement(0x10000)                          // one full tick per instruction
	ip.State.TimerEnable = false

	ip.Step()
	assert.Equal(t, uint8(0), ip.State.Timer)

	ip.State.TimerEnable = true
	ip.Step()
	assert.Equal(t, uint8(1), ip.State.Timer)
}

func TestTimerOverflowSetsFlag(t *testing.T) {
	ip := newTestInterpreter(t, map[uint16]uint8{0: 0x3E})
	ip.SetTimerIncrement(0x10000)
	ip.State.TimerEnable = true
	ip.State.Timer = 0xFF

	ip.Step()

	assert.Equal(t, uint8(0), ip.State.Timer)
	assert.True(t, ip.State.TF)
}

func TestTimerIncrementForMatchesOriginalDivisorFormula(t *testing.T) {
	assert.Equal(t, uint32(0x10000), TimerIncrementFor(0))
	assert.Equal(t, uint32(0x10000/32), TimerIncrementFor(32))
	assert.Equal(t, uint32(0x10000), TimerIncrementFor(1))
}

func TestOutputPortLatchesLastWrite(t *testing.T) {
	ip := newTestInterpreter(t, map[uint16]uint8{0: 0x30}) // OUT PA, A
	ip.State.A = 0x7
	ip.Step()
	assert.Equal(t, uint8(0x7), ip.OutputPort())
}

func TestInAPmIsHardWiredToF(t *testing.T) {
	ip := newTestInterpreter(t, map[uint16]uint8{0: 0x32}) // IN A, PM
	ip.Step()
	assert.Equal(t, uint8(0xF), ip.State.A)
}

func TestSetPortsLatchesPsAndPp(t *testing.T) {
	ip := newTestInterpreter(t, map[uint16]uint8{
		0: 0x33, // IN A, PS
		1: 0x3E, // NOP
		2: 0x34, // IN A, PP
	})
	ip.SetPorts(0x5, 0xA)
	ip.Step()
	assert.Equal(t, uint8(0x5), ip.State.A)
	ip.Step()
	ip.Step()
	assert.Equal(t, uint8(0xA), ip.State.A)
}

func TestFetchWrapsAtRomBoundary(t *testing.T) {
	var data [rom.Size]byte
	data[rom.Size-1] = 0x40 // ADD A, imm4
	data[0] = 0x9           // wraps around to address 0
	image, err := rom.FromBytes(data[:])
	assert.NoError(t, err)

	ip := NewInterpreter(image)
	ip.State.PC = rom.Size - 1
	ip.Step()

	assert.Equal(t, uint8(0x9), ip.State.A)
	assert.Equal(t, uint16(1), ip.State.PC)
}
