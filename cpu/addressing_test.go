package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// operandAt builds a Cpu whose ProgramCounter sits on the given operand
// bytes, as it does when a handler runs.
func operandAt(pc uint16, operand ...byte) *Cpu {
	c := New()
	c.ProgramCounter = pc
	for i, b := range operand {
		c.Write(pc+uint16(i), b)
	}
	return c
}

func TestImmediateIsTheOperandItself(t *testing.T) {
	c := operandAt(0x0601, 0x42)
	addr, err := c.OperandAddress(Immediate)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0601), addr)
}

func TestZeroPage(t *testing.T) {
	c := operandAt(0x0601, 0x42)
	addr, err := c.OperandAddress(ZeroPage)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0042), addr)
}

func TestZeroPageXStaysInPageZero(t *testing.T) {
	c := operandAt(0x0601, 0x80)
	c.X = 0x10
	addr, err := c.OperandAddress(ZeroPageX)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0090), addr)

	// the index addition wraps within 8 bits
	c = operandAt(0x0601, 0xff)
	c.X = 0x02
	addr, err = c.OperandAddress(ZeroPageX)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0001), addr)
}

func TestAbsolute(t *testing.T) {
	c := operandAt(0x0601, 0x34, 0x12)
	addr, err := c.OperandAddress(Absolute)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), addr)
}

func TestAbsoluteXWrapsInSixteenBits(t *testing.T) {
	c := operandAt(0x0601, 0x00, 0x20)
	c.X = 0x05
	addr, err := c.OperandAddress(AbsoluteX)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x2005), addr)

	c = operandAt(0x0601, 0xff, 0xff)
	c.X = 0x02
	addr, err = c.OperandAddress(AbsoluteX)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0001), addr)
}

func TestAbsoluteY(t *testing.T) {
	c := operandAt(0x0601, 0x00, 0x10)
	c.Y = 0x03
	addr, err := c.OperandAddress(AbsoluteY)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1003), addr)
}

func TestIndirectX(t *testing.T) {
	c := operandAt(0x0601, 0x20)
	c.X = 0x04
	c.Write(0x24, 0x74)
	c.Write(0x25, 0x20)
	addr, err := c.OperandAddress(IndirectX)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x2074), addr)
}

func TestIndirectXPointerWrapsInPageZero(t *testing.T) {
	// pointer lands on 0xFF, so its high byte comes from 0x00
	c := operandAt(0x0601, 0xfe)
	c.X = 0x01
	c.Write(0xff, 0x34)
	c.Write(0x00, 0x12)
	addr, err := c.OperandAddress(IndirectX)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), addr)
}

func TestIndirectY(t *testing.T) {
	c := operandAt(0x0601, 0x86)
	c.Y = 0x10
	c.Write(0x86, 0x28)
	c.Write(0x87, 0x40)
	addr, err := c.OperandAddress(IndirectY)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x4038), addr)
}

func TestIndirectYPointerWrapsInPageZero(t *testing.T) {
	c := operandAt(0x0601, 0xff)
	c.Y = 0x01
	c.Write(0xff, 0x00)
	c.Write(0x00, 0x30)
	addr, err := c.OperandAddress(IndirectY)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x3001), addr)
}

func TestImpliedHasNoAddress(t *testing.T) {
	c := New()
	_, err := c.OperandAddress(Implied)
	var bad BadAddressingMode
	assert.ErrorAs(t, err, &bad)
	assert.Equal(t, Implied, bad.Mode)
}

func TestResolverMutatesNothing(t *testing.T) {
	c := operandAt(0x0601, 0x42)
	c.X = 1
	c.Y = 2
	before := snapshot(c)

	_, err := c.OperandAddress(ZeroPageX)
	assert.NoError(t, err)
	assert.Equal(t, before, snapshot(c))
}
