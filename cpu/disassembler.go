package cpu

import (
	"fmt"
)

// Disassemble renders the memory range [start, end] as one listing line per
// instruction, using the descriptor table to size and format each one.
// Bytes with no table entry are listed as raw data so that the walk can
// continue past them.
func (c *Cpu) Disassemble(start, end uint16) []string {
	var lines []string

	// wider than uint16 so the walk can step past 0xffff and stop
	addr := uint32(start)
	for addr <= uint32(end) {
		pc := uint16(addr)
		b := c.Read(pc)
		op := Opcodes[b]
		if !op.Valid() {
			lines = append(lines, fmt.Sprintf("$%04X: .byte $%02X", pc, b))
			addr++
			continue
		}

		line := fmt.Sprintf("$%04X: %s", pc, op.Name)
		if operand := c.formatOperand(pc+1, op.Mode); operand != "" {
			line += " " + operand
		}
		lines = append(lines, line)
		addr += uint32(op.Length)
	}
	return lines
}

func (c *Cpu) formatOperand(addr uint16, mode AddressingMode) string {
	switch mode {
	case Immediate:
		return fmt.Sprintf("#$%02X", c.Read(addr))
	case ZeroPage:
		return fmt.Sprintf("$%02X", c.Read(addr))
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", c.Read(addr))
	case Absolute:
		return fmt.Sprintf("$%04X", c.Read16(addr))
	case AbsoluteX:
		return fmt.Sprintf("$%04X,X", c.Read16(addr))
	case AbsoluteY:
		return fmt.Sprintf("$%04X,Y", c.Read16(addr))
	case IndirectX:
		return fmt.Sprintf("($%02X,X)", c.Read(addr))
	case IndirectY:
		return fmt.Sprintf("($%02X),Y", c.Read(addr))
	}
	return "" // Implied
}
