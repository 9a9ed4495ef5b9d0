package cpu

import (
	"mos6502/status"
)

// https://www.nesdev.org/obelisk-6502-guide/reference.html

// shared flag helpers

// setNZ derives Zero and Negative from an 8-bit result.
func (c *Cpu) setNZ(result byte) {
	c.Status.Update(status.Zero, result == 0)
	c.Status.Update(status.Negative, result&0x80 != 0)
}

// addToAccumulator performs A + v + C in 16 bits, storing the low byte in
// A. Carry is unsigned overflow of the sum; Overflow is set when A and v
// agree in sign but the result does not. N/Z are left to the caller.
func (c *Cpu) addToAccumulator(v byte) {
	sum := uint16(c.Accumulator) + uint16(v)
	if c.Status.Test(status.Carry) {
		sum++
	}
	c.Status.Update(status.Carry, sum > 0xff)

	result := byte(sum)
	c.Status.Update(status.Overflow, (v^result)&(result^c.Accumulator)&0x80 != 0)
	c.Accumulator = result
}

// compare sets Carry for an unsigned register >= v, and N/Z from the
// difference. The register itself is untouched.
func (c *Cpu) compare(register, v byte) {
	c.Status.Update(status.Carry, register >= v)
	c.setNZ(register - v)
}

// operand fetches the byte the current instruction operates on.
func (c *Cpu) operand(op Opcode) (byte, error) {
	addr, err := c.OperandAddress(op.Mode)
	if err != nil {
		return 0, err
	}
	return c.Read(addr), nil
}

// modify applies f to the instruction's target -- the Accumulator in
// Implied mode, the byte at the effective address otherwise -- writes the
// result back to that target, and derives N/Z from it.
func (c *Cpu) modify(op Opcode, f func(byte) byte) error {
	if op.Mode == Implied {
		c.Accumulator = f(c.Accumulator)
		c.setNZ(c.Accumulator)
		return nil
	}
	addr, err := c.OperandAddress(op.Mode)
	if err != nil {
		return err
	}
	result := f(c.Read(addr))
	c.Write(addr, result)
	c.setNZ(result)
	return nil
}

// store writes v to the effective address; stores never touch flags.
func (c *Cpu) store(op Opcode, v byte) error {
	addr, err := c.OperandAddress(op.Mode)
	if err != nil {
		return err
	}
	c.Write(addr, v)
	return nil
}

// ADC - Add with Carry
func (c *Cpu) ADC(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.addToAccumulator(v)
	c.setNZ(c.Accumulator)
	return nil
}

// SBC - Subtract with Carry. A - v - (1-C) is the same sum as
// A + ^v + C, so the borrow falls out of the ordinary add path.
func (c *Cpu) SBC(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.addToAccumulator(v ^ 0xff)
	c.setNZ(c.Accumulator)
	return nil
}

// AND - Logical AND
func (c *Cpu) AND(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.Accumulator &= v
	c.setNZ(c.Accumulator)
	return nil
}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.Accumulator |= v
	c.setNZ(c.Accumulator)
	return nil
}

// EOR - Exclusive OR
func (c *Cpu) EOR(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.Accumulator ^= v
	c.setNZ(c.Accumulator)
	return nil
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(op Opcode) error {
	return c.modify(op, func(v byte) byte {
		c.Status.Update(status.Carry, v&0x80 != 0) // old bit 7
		return v << 1
	})
}

// LSR - Logical Shift Right
func (c *Cpu) LSR(op Opcode) error {
	return c.modify(op, func(v byte) byte {
		c.Status.Update(status.Carry, v&0x01 != 0) // old bit 0
		return v >> 1
	})
}

// ROL - Rotate Left, 9 bits through Carry
func (c *Cpu) ROL(op Opcode) error {
	carryIn := c.Status.Test(status.Carry)
	return c.modify(op, func(v byte) byte {
		c.Status.Update(status.Carry, v&0x80 != 0)
		v <<= 1
		if carryIn {
			v |= 0x01
		}
		return v
	})
}

// ROR - Rotate Right, 9 bits through Carry
func (c *Cpu) ROR(op Opcode) error {
	carryIn := c.Status.Test(status.Carry)
	return c.modify(op, func(v byte) byte {
		c.Status.Update(status.Carry, v&0x01 != 0)
		v >>= 1
		if carryIn {
			v |= 0x80
		}
		return v
	})
}

// CMP - Compare
func (c *Cpu) CMP(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.compare(c.Accumulator, v)
	return nil
}

// CPX - Compare X Register
func (c *Cpu) CPX(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.compare(c.X, v)
	return nil
}

// CPY - Compare Y Register
func (c *Cpu) CPY(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.compare(c.Y, v)
	return nil
}

// INC - Increment Memory
func (c *Cpu) INC(op Opcode) error {
	return c.modify(op, func(v byte) byte { return v + 1 })
}

// DEC - Decrement Memory
func (c *Cpu) DEC(op Opcode) error {
	return c.modify(op, func(v byte) byte { return v - 1 })
}

// INX - Increment X Register
func (c *Cpu) INX(Opcode) error {
	c.X++
	c.setNZ(c.X)
	return nil
}

// INY - Increment Y Register
func (c *Cpu) INY(Opcode) error {
	c.Y++
	c.setNZ(c.Y)
	return nil
}

// DEX - Decrement X Register
func (c *Cpu) DEX(Opcode) error {
	c.X--
	c.setNZ(c.X)
	return nil
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(Opcode) error {
	c.Y--
	c.setNZ(c.Y)
	return nil
}

// LDA - Load Accumulator
func (c *Cpu) LDA(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.Accumulator = v
	c.setNZ(v)
	return nil
}

// LDX - Load X Register
func (c *Cpu) LDX(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.X = v
	c.setNZ(v)
	return nil
}

// LDY - Load Y Register
func (c *Cpu) LDY(op Opcode) error {
	v, err := c.operand(op)
	if err != nil {
		return err
	}
	c.Y = v
	c.setNZ(v)
	return nil
}

// STA - Store Accumulator
func (c *Cpu) STA(op Opcode) error { return c.store(op, c.Accumulator) }

// STX - Store X Register
func (c *Cpu) STX(op Opcode) error { return c.store(op, c.X) }

// STY - Store Y Register
func (c *Cpu) STY(op Opcode) error { return c.store(op, c.Y) }

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(Opcode) error {
	c.X = c.Accumulator
	c.setNZ(c.X)
	return nil
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(Opcode) error {
	c.Y = c.Accumulator
	c.setNZ(c.Y)
	return nil
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(Opcode) error {
	c.Accumulator = c.X
	c.setNZ(c.Accumulator)
	return nil
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(Opcode) error {
	c.Accumulator = c.Y
	c.setNZ(c.Accumulator)
	return nil
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(Opcode) error {
	c.X = c.Stack
	c.setNZ(c.X)
	return nil
}

// TXS - Transfer X to Stack Pointer. The only transfer that leaves the
// flags alone.
func (c *Cpu) TXS(Opcode) error {
	c.Stack = c.X
	return nil
}

// PHA - Push Accumulator
func (c *Cpu) PHA(Opcode) error { return c.push8(c.Accumulator) }

// PHP - Push Processor Status
func (c *Cpu) PHP(Opcode) error { return c.push8(c.Status.Byte()) }

// PLA - Pull Accumulator
func (c *Cpu) PLA(Opcode) error {
	v, err := c.pop8()
	if err != nil {
		return err
	}
	c.Accumulator = v
	c.setNZ(v)
	return nil
}

// PLP - Pull Processor Status. The whole byte is replaced; no flag
// survives.
func (c *Cpu) PLP(Opcode) error {
	v, err := c.pop8()
	if err != nil {
		return err
	}
	c.Status.Assign(v)
	return nil
}

// CLC - Clear Carry Flag
func (c *Cpu) CLC(Opcode) error {
	c.Status.Clear(status.Carry)
	return nil
}

// SEC - Set Carry Flag
func (c *Cpu) SEC(Opcode) error {
	c.Status.Set(status.Carry)
	return nil
}

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(Opcode) error {
	c.Status.Clear(status.Decimal)
	return nil
}

// SED - Set Decimal Flag
func (c *Cpu) SED(Opcode) error {
	c.Status.Set(status.Decimal)
	return nil
}

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(Opcode) error {
	c.Status.Clear(status.Interrupt)
	return nil
}

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(Opcode) error {
	c.Status.Set(status.Interrupt)
	return nil
}

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(Opcode) error {
	c.Status.Clear(status.Overflow)
	return nil
}

// NOP - No Operation
func (c *Cpu) NOP(Opcode) error { return nil }

// BRK - Force Interrupt. Here it simply ends the run: no stack traffic, no
// interrupt vector.
func (c *Cpu) BRK(Opcode) error {
	c.halted = true
	return nil
}
