package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompileEmitsMnemonicForVisitedInstruction(t *testing.T) {
	image := newTestROM(t, map[uint16]uint8{
		0x000: 0x3e, // NOP
		0x001: 0x2e, // RET
	})
	report := Walk(image)
	lines := Decompile(image, report)

	assert.Equal(t, Instruction{Address: 0x000, Text: "; nop"}, lines[0])
	assert.Equal(t, Instruction{Address: 0x001, Text: "ret\n"}, lines[1])
}

func TestDecompileEmitsLabelBeforeBranchTarget(t *testing.T) {
	image := newTestROM(t, map[uint16]uint8{
		0x000: 0xe0,
		0x001: 0x05,
		0x005: 0x2e,
	})
	report := Walk(image)
	lines := Decompile(image, report)

	var sawLabel, sawRet bool
	for i, l := range lines {
		if l.Address == 0x005 && l.Text == "l_005:" {
			sawLabel = true
			assert.Equal(t, Instruction{Address: 0x005, Text: "ret\n"}, lines[i+1])
		}
		if l.Address == 0x005 && l.Text == "ret\n" {
			sawRet = true
		}
	}
	assert.True(t, sawLabel)
	assert.True(t, sawRet)
}

func TestDecompileSkipsOperandBytes(t *testing.T) {
	image := newTestROM(t, map[uint16]uint8{
		0x000: 0x40, // ADD A, imm4
		0x001: 0x07, // operand, must not get its own line
		0x002: 0x2e,
	})
	report := Walk(image)
	lines := Decompile(image, report)

	for _, l := range lines {
		assert.NotEqual(t, uint16(0x001), l.Address)
	}
}

func TestDecompileMarksUnreachedBytesAsComments(t *testing.T) {
	image := newTestROM(t, map[uint16]uint8{
		0x000: 0x2e, // RET immediately: nothing past here is reached
		0x001: 0xff, // never walked
	})
	report := Walk(image)
	lines := Decompile(image, report)

	found := false
	for _, l := range lines {
		if l.Address == 0x001 {
			assert.True(t, strings.HasPrefix(l.Text, ";"))
			found = true
		}
	}
	assert.True(t, found)
}

func TestWriteReportIncludesReferencedPageAndInstructions(t *testing.T) {
	image := newTestROM(t, map[uint16]uint8{
		0x000: 0xe1,
		0x001: 0x05,
		0x105: 0x4c,
		0x106: 0x2e,
	})
	report := Walk(image)
	lines := Decompile(image, report)

	var buf strings.Builder
	err := WriteReport(&buf, image, report, lines)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "rom page 0x1")
	assert.Contains(t, out, "0x105:")
	assert.Contains(t, out, "rom_1[a<<4 | mem[r1r0]]")
}
