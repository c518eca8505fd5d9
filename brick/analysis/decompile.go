package analysis

import (
	"bufio"
	"fmt"
	"io"

	"github.com/valerio/brick4bit/brick/rom"
)

// Instruction is one line of human-readable pseudocode for a single ROM
// address, produced by Decompile.
type Instruction struct {
	Address uint16
	Text    string
}

// Decompile walks every address in ROM order and renders a pseudocode line
// for each instruction start a Report marked reachable, a label line for
// each branch/call target, and a comment for bytes the walk never reached.
// Operand bytes belonging to a two-byte instruction are skipped; they're
// folded into the mnemonic of the instruction that consumes them.
func Decompile(image *rom.ROM, report *Report) []Instruction {
	var lines []Instruction
	for addr := uint16(0); addr < rom.Size; addr++ {
		x := report.Marks[addr]
		if x&markOperand != 0 {
			continue
		}

		switch {
		case x&markFuncLabel != 0:
			lines = append(lines, Instruction{Address: addr, Text: fmt.Sprintf("f_%03x:", addr)})
		case x&markLabel != 0:
			lines = append(lines, Instruction{Address: addr, Text: fmt.Sprintf("l_%03x:", addr)})
		}

		op := image.Read(addr)
		if x&markVisited == 0 {
			lines = append(lines, Instruction{Address: addr, Text: fmt.Sprintf("; unreached, raw 0x%02x", op)})
			continue
		}
		lines = append(lines, Instruction{Address: addr, Text: mnemonic(image, addr, op)})
	}
	return lines
}

// WriteReport renders the ROM pages touched by READ/READF followed by the
// full instruction listing, in the format brickdisasm writes to its output
// file.
func WriteReport(w io.Writer, image *rom.ROM, report *Report, lines []Instruction) error {
	bw := bufio.NewWriter(w)

	for page := 0; page < 16; page++ {
		if report.ReadMask>>uint(page)&1 == 0 {
			continue
		}
		fmt.Fprintf(bw, "; rom page 0x%x (read by READ/READF)\n", page)
		for row := 0; row < 0x100; row += 16 {
			fmt.Fprint(bw, ";  ")
			for col := 0; col < 16; col++ {
				fmt.Fprintf(bw, "%02x ", image.ReadPage(uint8(page), uint8(row+col)))
			}
			fmt.Fprintln(bw)
		}
	}

	for _, l := range lines {
		fmt.Fprintf(bw, "0x%03x: %s\n", l.Address, l.Text)
	}

	return bw.Flush()
}

func mnemonic(image *rom.ROM, pc uint16, op uint8) string {
	operand := func() uint8 { return image.Read((pc + 1) & 0xFFF) }
	branchTarget := func() uint16 { return (pc & 0x800) | uint16(op&7)<<8 | uint16(operand()) }

	switch op {
	case 0x00:
		return "rr a"
	case 0x01:
		return "rl a"
	case 0x02:
		return "rrc a"
	case 0x03:
		return "rlc a"
	case 0x04:
		return "a = mem[r1r0]"
	case 0x05:
		return "mem[r1r0] = a"
	case 0x06:
		return "a = mem[r3r2]"
	case 0x07:
		return "mem[r3r2] = a"
	case 0x08:
		return "adc a, mem[r1r0]"
	case 0x09:
		return "add a, mem[r1r0]"
	case 0x0a:
		return "sbc a, mem[r1r0]"
	case 0x0b:
		return "sub a, mem[r1r0]"
	case 0x0c:
		return "inc mem[r1r0]"
	case 0x0d:
		return "dec mem[r1r0]"
	case 0x0e:
		return "inc mem[r3r2]"
	case 0x0f:
		return "dec mem[r3r2]"
	case 0x10:
		return "inc r0"
	case 0x11:
		return "dec r0"
	case 0x12:
		return "inc r1"
	case 0x13:
		return "dec r1"
	case 0x14:
		return "inc r2"
	case 0x15:
		return "dec r2"
	case 0x16:
		return "inc r3"
	case 0x17:
		return "dec r3"
	case 0x18:
		return "inc r4"
	case 0x19:
		return "dec r4"
	case 0x1a:
		return "a &= mem[r1r0]"
	case 0x1b:
		return "a ^= mem[r1r0]"
	case 0x1c:
		return "a |= mem[r1r0]"
	case 0x1d:
		return "mem[r1r0] &= a"
	case 0x1e:
		return "mem[r1r0] ^= a"
	case 0x1f:
		return "mem[r1r0] |= a"
	case 0x20:
		return "r1r0 = (r1r0 & 0xf0) | a"
	case 0x21:
		return "a = r1r0 & 0xf"
	case 0x22:
		return "r1r0 = a<<4 | (r1r0 & 0xf)"
	case 0x23:
		return "a = r1r0 >> 4"
	case 0x24:
		return "r3r2 = (r3r2 & 0xf0) | a"
	case 0x25:
		return "a = r3r2 & 0xf"
	case 0x26:
		return "r3r2 = a<<4 | (r3r2 & 0xf)"
	case 0x27:
		return "a = r3r2 >> 4"
	case 0x28:
		return "r4 = a"
	case 0x29:
		return "a = r4"
	case 0x2a:
		return "cf = 0"
	case 0x2b:
		return "cf = 1"
	case 0x2c:
		return "ei"
	case 0x2d:
		return "di"
	case 0x2e:
		return "ret\n"
	case 0x2f:
		return "reti\n"
	case 0x30:
		return "pa = a"
	case 0x31:
		return "inc a"
	case 0x32:
		return "a = pm"
	case 0x33:
		return "a = ps"
	case 0x34:
		return "a = pp"
	case 0x35:
		return "; op35 (unknown)"
	case 0x36:
		return "daa"
	case 0x37:
		return "halt"
	case 0x38:
		return "timer on"
	case 0x39:
		return "timer off"
	case 0x3a:
		return "a = tmr & 0xf"
	case 0x3b:
		return "a = tmr >> 4"
	case 0x3c:
		return "tmr = (tmr & 0xf0) | a"
	case 0x3d:
		return "tmr = a<<4 | (tmr & 0xf)"
	case 0x3e:
		return "; nop"
	case 0x3f:
		return "dec a"
	case 0x40:
		return fmt.Sprintf("add a, 0x%x", operand()&0xF)
	case 0x41:
		return fmt.Sprintf("sub a, 0x%x", operand()&0xF)
	case 0x42:
		return fmt.Sprintf("a &= 0x%x", operand()&0xF)
	case 0x43:
		return fmt.Sprintf("a ^= 0x%x", operand()&0xF)
	case 0x44:
		return fmt.Sprintf("a |= 0x%x", operand()&0xF)
	case 0x45:
		return fmt.Sprintf("sound 0x%x", operand()&0xF)
	case 0x46:
		return fmt.Sprintf("r4 = 0x%x", operand()&0xF)
	case 0x47:
		return fmt.Sprintf("tmr = 0x%02x", operand())
	case 0x48:
		return "sound one"
	case 0x49:
		return "sound loop"
	case 0x4a:
		return "sound off"
	case 0x4b:
		return "sound a"
	case 0x4c:
		return fmt.Sprintf("a = rom_%x[a<<4 | mem[r1r0]]; r4 = a>>4; a &= 0xf", pc>>8)
	case 0x4d:
		return "a = rom_f[a<<4 | mem[r1r0]]; r4 = a>>4; a &= 0xf"
	case 0x4e:
		return fmt.Sprintf("a = rom_%x[a<<4 | r4]; mem[r1r0] = a>>4; a &= 0xf", pc>>8)
	case 0x4f:
		return "a = rom_f[a<<4 | r4]; mem[r1r0] = a>>4; a &= 0xf"
	}

	switch {
	case op >= 0x50 && op <= 0x5f:
		return fmt.Sprintf("r1r0 = 0x%02x", uint16(operand()&0xF)<<4|uint16(op&0xF))
	case op >= 0x60 && op <= 0x6f:
		return fmt.Sprintf("r3r2 = 0x%02x", uint16(operand()&0xF)<<4|uint16(op&0xF))
	case op >= 0x70 && op <= 0x7f:
		return fmt.Sprintf("a = 0x%x", op&0xF)
	case op >= 0x80 && op <= 0x9f:
		return fmt.Sprintf("if a & 0x%x: goto l_%03x", 1<<((op>>3)&3), branchTarget())
	case op >= 0xa0 && op <= 0xa7:
		return fmt.Sprintf("if r1r0 & 0xf: goto l_%03x", branchTarget())
	case op >= 0xa8 && op <= 0xaf:
		return fmt.Sprintf("if r1r0 & 0xf0: goto l_%03x", branchTarget())
	case op >= 0xb0 && op <= 0xb7:
		return fmt.Sprintf("if !a: goto l_%03x", branchTarget())
	case op >= 0xb8 && op <= 0xbf:
		return fmt.Sprintf("if a: goto l_%03x", branchTarget())
	case op >= 0xc0 && op <= 0xc7:
		return fmt.Sprintf("if cf: goto l_%03x", branchTarget())
	case op >= 0xc8 && op <= 0xcf:
		return fmt.Sprintf("if !cf: goto l_%03x", branchTarget())
	case op >= 0xd0 && op <= 0xd7:
		return fmt.Sprintf("on timer overflow: goto l_%03x", branchTarget())
	case op >= 0xd8 && op <= 0xdf:
		return fmt.Sprintf("if r4: goto l_%03x", branchTarget())
	case op >= 0xe0 && op <= 0xef:
		return fmt.Sprintf("goto l_%03x\n", uint16(op&0xF)<<8|uint16(operand()))
	case op >= 0xf0:
		return fmt.Sprintf("call f_%03x", uint16(op&0xF)<<8|uint16(operand()))
	}
	return fmt.Sprintf("; unknown opcode 0x%02x", op)
}
