// Package cpu implements a software interpreter for the MOS Technology
// 6502 microprocessor, as used in the NES.

package cpu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mos6502/mem"
	"mos6502/status"
)

// https://www.nesdev.org/wiki/CPU#Frequencies

// Tick is the nominal cycle period of the NTSC NES CPU (1.789773 MHz). The
// core never sleeps; hosts that want real-time pacing multiply Tick by the
// cycles an instruction consumed.
var (
	tick = 1e9 / 1789773 // cannot be inlined into time.Duration, even with cast
	Tick = time.Nanosecond * time.Duration(tick)
)

const (
	// LoadBase is where Load places program images; the reset vector is
	// pointed here so that execution begins at the image.
	LoadBase uint16 = 0x0600

	// ResetVector holds the little-endian address execution starts from
	// after Reset.
	ResetVector uint16 = 0xfffc

	// stackBase anchors the stack page; Stack is an offset into it.
	stackBase uint16 = 0x0100
)

// The Cpu has no memory of its own (aside from a number of small registers
// which amount to about 7 bytes). Instead, the Cpu interfaces with a Bus
// that provides memory.
//
// All register fields are exported so that a host driver -- or the callback
// passed to RunWithCallback -- can inspect and mutate machine state between
// instructions.
type Cpu struct {
	Bus *mem.Bus

	// The Accumulator is the primary arithmetic/logic register.
	Accumulator byte
	X           byte
	Y           byte

	// Status is the packed flag byte (NV-BDIZC).
	Status status.Register

	// Stack instructions (PHA, PLA, PHP, PLP) always access the 01 page
	// (0x0100-0x01ff). Stack holds the low byte of the pointer; the page
	// is implicit.
	Stack byte

	// The ProgramCounter is a 2-byte (word) memory address. The byte
	// located at this address provides the Cpu with an Opcode that
	// specifies the next instruction to execute.
	ProgramCounter uint16

	// ClockCount sums the nominal cycle column of every executed
	// instruction. Page-cross penalties are not modelled.
	ClockCount uint64

	halted bool
}

// New returns a Cpu wired to its own zeroed 64 kB Bus. The registers are
// zero; call Load and Reset before Run.
func New() *Cpu {
	return &Cpu{Bus: &mem.Bus{}}
}

// An UnknownOpcode error reports a fetched byte with no table entry. The
// run cannot continue past it.
type UnknownOpcode struct {
	Code byte
}

func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X", e.Code)
}

// A BadAddressingMode error reports a mode the resolver cannot produce an
// effective address for. Only a defective handler can trigger it.
type BadAddressingMode struct {
	Mode AddressingMode
}

func (e BadAddressingMode) Error() string {
	return fmt.Sprintf("no effective address in %s mode", e.Mode)
}

var (
	// ErrStackOverflow is returned when a push would leave the 01 page.
	ErrStackOverflow = errors.New("stack overflow: push below 0x0100")
	// ErrStackUnderflow is returned when a pop would leave the 01 page.
	ErrStackUnderflow = errors.New("stack underflow: pop above 0x01ff")
)

// Read reads one byte from the given addr.
func (c *Cpu) Read(addr uint16) byte { return c.Bus.Read(addr) }

// Write passes data to the Bus, which actually performs the write.
func (c *Cpu) Write(addr uint16, data byte) { c.Bus.Write(addr, data) }

// Read16 reads a little-endian word starting at addr.
func (c *Cpu) Read16(addr uint16) uint16 { return c.Bus.Read16(addr) }

// Write16 writes a little-endian word starting at addr.
func (c *Cpu) Write16(addr uint16, data uint16) { c.Bus.Write16(addr, data) }

// StackAddr returns the full 16-bit address the stack pointer currently
// designates, always within 0x0100-0x01ff.
func (c *Cpu) StackAddr() uint16 { return stackBase | uint16(c.Stack) }

// push8 stores v at the stack pointer and moves the pointer down.
func (c *Cpu) push8(v byte) error {
	c.Write(c.StackAddr(), v)
	if c.Stack == 0x00 {
		return ErrStackOverflow
	}
	c.Stack--
	return nil
}

// push16 pushes high byte then low byte, so that pop16 reads the word back
// little-endian.
func (c *Cpu) push16(v uint16) error {
	if err := c.push8(byte(v >> 8)); err != nil {
		return err
	}
	return c.push8(byte(v))
}

// pop8 moves the stack pointer up and returns the byte there.
func (c *Cpu) pop8() (byte, error) {
	if c.Stack == 0xff {
		return 0, ErrStackUnderflow
	}
	c.Stack++
	return c.Read(c.StackAddr()), nil
}

func (c *Cpu) pop16() (uint16, error) {
	lo, err := c.pop8()
	if err != nil {
		return 0, err
	}
	hi, err := c.pop8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Load copies a program image into memory at LoadBase and points the reset
// vector at it. The image is raw 6502 machine code, terminated by a BRK
// (0x00) byte; there are no headers and no relocation.
func (c *Cpu) Load(program []byte) {
	copy(c.Bus.Ram[LoadBase:], program)
	c.Write16(ResetVector, LoadBase)
}

// Reset clears the registers, seeds the stack pointer at 0x01fd, and jumps
// to the address in the reset vector.
func (c *Cpu) Reset() {
	c.Accumulator = 0
	c.X = 0
	c.Y = 0
	c.Status.Assign(0)
	c.Stack = 0xfd
	c.ProgramCounter = c.Read16(ResetVector)
	c.halted = false
}

// Step fetches, decodes, and executes a single instruction. It returns
// done=true once a BRK has executed. Fetching a byte with no table entry,
// or over- or under-running the stack, ends the run with an error.
func (c *Cpu) Step() (done bool, err error) {
	b := c.Read(c.ProgramCounter)
	op := Opcodes[b]
	if op.exec == nil {
		return false, UnknownOpcode{Code: b}
	}

	// 1 for the opcode byte; the operand bytes are accounted after the
	// handler, which expects ProgramCounter to sit on the operand.
	c.ProgramCounter++

	if err := op.exec(c, op); err != nil {
		return false, err
	}

	c.ProgramCounter += uint16(op.Length - 1)
	c.ClockCount += uint64(op.Cycles)
	return c.halted, nil
}

// RunWithCallback drives the fetch-decode-execute loop until BRK or an
// error. The callback is invoked at the top of every iteration, before the
// fetch, with mutable access to the Cpu; a host can use it to trace,
// throttle, or rewrite state (including the ProgramCounter).
func (c *Cpu) RunWithCallback(callback func(*Cpu)) error {
	for {
		if callback != nil {
			callback(c)
		}
		done, err := c.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Run drives the loop with no observer.
func (c *Cpu) Run() error {
	return c.RunWithCallback(nil)
}

// LoadAndRun loads the program, resets, and runs it to completion.
func (c *Cpu) LoadAndRun(program []byte) error {
	c.Load(program)
	c.Reset()
	return c.Run()
}

// ParseHex converts whitespace-separated hex byte text ("A9 05 00") into a
// program image.
func ParseHex(text string) ([]byte, error) {
	fields := strings.Fields(text)
	program := make([]byte, 0, len(fields))
	for _, f := range fields {
		b, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad program byte %q: %w", f, err)
		}
		program = append(program, byte(b))
	}
	return program, nil
}
