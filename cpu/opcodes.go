package cpu

// An Opcode is associated with a unique byte value (0x00-0xff). There are
// 256 possible opcodes, but only the documented subset below corresponds to
// a valid instruction.
//
// The descriptor carries everything the dispatch site needs: the
// AddressingMode the operand is fetched with, the total instruction Length
// in bytes (opcode included, which drives the ProgramCounter advance), and
// the nominal cycle count.
//
// Multiple Opcodes may execute the same instruction, differing only in how
// the operand is to be retrieved; the handler receives its own descriptor
// and resolves the operand through it.
type Opcode struct {
	Name   string
	Mode   AddressingMode
	Length byte
	Cycles byte

	exec func(*Cpu, Opcode) error
}

// Valid reports whether the descriptor describes a real instruction rather
// than an unpopulated table slot.
func (o Opcode) Valid() bool { return o.exec != nil }

// Opcodes maps every instruction byte to its descriptor. Entries not listed
// are unpopulated; fetching one during execution is an UnknownOpcode error.
//
// Generated from http://www.6502.org/tutorials/6502opcodes.html
var Opcodes = [256]Opcode{
	0x69: {Name: "ADC", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).ADC},
	0x65: {Name: "ADC", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).ADC},
	0x75: {Name: "ADC", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).ADC},
	0x6d: {Name: "ADC", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).ADC},
	0x7d: {Name: "ADC", Mode: AbsoluteX, Length: 3, Cycles: 4, exec: (*Cpu).ADC},
	0x79: {Name: "ADC", Mode: AbsoluteY, Length: 3, Cycles: 4, exec: (*Cpu).ADC},
	0x61: {Name: "ADC", Mode: IndirectX, Length: 2, Cycles: 6, exec: (*Cpu).ADC},
	0x71: {Name: "ADC", Mode: IndirectY, Length: 2, Cycles: 5, exec: (*Cpu).ADC},

	0x29: {Name: "AND", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).AND},
	0x25: {Name: "AND", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).AND},
	0x35: {Name: "AND", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).AND},
	0x2d: {Name: "AND", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).AND},
	0x3d: {Name: "AND", Mode: AbsoluteX, Length: 3, Cycles: 4, exec: (*Cpu).AND},
	0x39: {Name: "AND", Mode: AbsoluteY, Length: 3, Cycles: 4, exec: (*Cpu).AND},
	0x21: {Name: "AND", Mode: IndirectX, Length: 2, Cycles: 6, exec: (*Cpu).AND},
	0x31: {Name: "AND", Mode: IndirectY, Length: 2, Cycles: 5, exec: (*Cpu).AND},

	0x0a: {Name: "ASL", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).ASL},
	0x06: {Name: "ASL", Mode: ZeroPage, Length: 2, Cycles: 5, exec: (*Cpu).ASL},
	0x16: {Name: "ASL", Mode: ZeroPageX, Length: 2, Cycles: 6, exec: (*Cpu).ASL},
	0x0e: {Name: "ASL", Mode: Absolute, Length: 3, Cycles: 6, exec: (*Cpu).ASL},
	0x1e: {Name: "ASL", Mode: AbsoluteX, Length: 3, Cycles: 7, exec: (*Cpu).ASL},

	0x00: {Name: "BRK", Mode: Implied, Length: 1, Cycles: 7, exec: (*Cpu).BRK},

	0xc9: {Name: "CMP", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).CMP},
	0xc5: {Name: "CMP", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).CMP},
	0xd5: {Name: "CMP", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).CMP},
	0xcd: {Name: "CMP", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).CMP},
	0xdd: {Name: "CMP", Mode: AbsoluteX, Length: 3, Cycles: 4, exec: (*Cpu).CMP},
	0xd9: {Name: "CMP", Mode: AbsoluteY, Length: 3, Cycles: 4, exec: (*Cpu).CMP},
	0xc1: {Name: "CMP", Mode: IndirectX, Length: 2, Cycles: 6, exec: (*Cpu).CMP},
	0xd1: {Name: "CMP", Mode: IndirectY, Length: 2, Cycles: 5, exec: (*Cpu).CMP},

	0xe0: {Name: "CPX", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).CPX},
	0xe4: {Name: "CPX", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).CPX},
	0xec: {Name: "CPX", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).CPX},

	0xc0: {Name: "CPY", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).CPY},
	0xc4: {Name: "CPY", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).CPY},
	0xcc: {Name: "CPY", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).CPY},

	0xc6: {Name: "DEC", Mode: ZeroPage, Length: 2, Cycles: 5, exec: (*Cpu).DEC},
	0xd6: {Name: "DEC", Mode: ZeroPageX, Length: 2, Cycles: 6, exec: (*Cpu).DEC},
	0xce: {Name: "DEC", Mode: Absolute, Length: 3, Cycles: 6, exec: (*Cpu).DEC},
	0xde: {Name: "DEC", Mode: AbsoluteX, Length: 3, Cycles: 7, exec: (*Cpu).DEC},

	0x49: {Name: "EOR", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).EOR},
	0x45: {Name: "EOR", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).EOR},
	0x55: {Name: "EOR", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).EOR},
	0x4d: {Name: "EOR", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).EOR},
	0x5d: {Name: "EOR", Mode: AbsoluteX, Length: 3, Cycles: 4, exec: (*Cpu).EOR},
	0x59: {Name: "EOR", Mode: AbsoluteY, Length: 3, Cycles: 4, exec: (*Cpu).EOR},
	0x41: {Name: "EOR", Mode: IndirectX, Length: 2, Cycles: 6, exec: (*Cpu).EOR},
	0x51: {Name: "EOR", Mode: IndirectY, Length: 2, Cycles: 5, exec: (*Cpu).EOR},

	0xe6: {Name: "INC", Mode: ZeroPage, Length: 2, Cycles: 5, exec: (*Cpu).INC},
	0xf6: {Name: "INC", Mode: ZeroPageX, Length: 2, Cycles: 6, exec: (*Cpu).INC},
	0xee: {Name: "INC", Mode: Absolute, Length: 3, Cycles: 6, exec: (*Cpu).INC},
	0xfe: {Name: "INC", Mode: AbsoluteX, Length: 3, Cycles: 7, exec: (*Cpu).INC},

	0xa9: {Name: "LDA", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).LDA},
	0xa5: {Name: "LDA", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).LDA},
	0xb5: {Name: "LDA", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).LDA},
	0xad: {Name: "LDA", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).LDA},
	0xbd: {Name: "LDA", Mode: AbsoluteX, Length: 3, Cycles: 4, exec: (*Cpu).LDA},
	0xb9: {Name: "LDA", Mode: AbsoluteY, Length: 3, Cycles: 4, exec: (*Cpu).LDA},
	0xa1: {Name: "LDA", Mode: IndirectX, Length: 2, Cycles: 6, exec: (*Cpu).LDA},
	0xb1: {Name: "LDA", Mode: IndirectY, Length: 2, Cycles: 5, exec: (*Cpu).LDA},

	0xa2: {Name: "LDX", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).LDX},
	0xa6: {Name: "LDX", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).LDX},
	0xb6: {Name: "LDX", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).LDX},
	0xae: {Name: "LDX", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).LDX},
	0xbe: {Name: "LDX", Mode: AbsoluteY, Length: 3, Cycles: 4, exec: (*Cpu).LDX},

	0xa0: {Name: "LDY", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).LDY},
	0xa4: {Name: "LDY", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).LDY},
	0xb4: {Name: "LDY", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).LDY},
	0xac: {Name: "LDY", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).LDY},
	0xbc: {Name: "LDY", Mode: AbsoluteX, Length: 3, Cycles: 4, exec: (*Cpu).LDY},

	0x4a: {Name: "LSR", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).LSR},
	0x46: {Name: "LSR", Mode: ZeroPage, Length: 2, Cycles: 5, exec: (*Cpu).LSR},
	0x56: {Name: "LSR", Mode: ZeroPageX, Length: 2, Cycles: 6, exec: (*Cpu).LSR},
	0x4e: {Name: "LSR", Mode: Absolute, Length: 3, Cycles: 6, exec: (*Cpu).LSR},
	0x5e: {Name: "LSR", Mode: AbsoluteX, Length: 3, Cycles: 7, exec: (*Cpu).LSR},

	0xea: {Name: "NOP", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).NOP},

	0x09: {Name: "ORA", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).ORA},
	0x05: {Name: "ORA", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).ORA},
	0x15: {Name: "ORA", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).ORA},
	0x0d: {Name: "ORA", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).ORA},
	0x1d: {Name: "ORA", Mode: AbsoluteX, Length: 3, Cycles: 4, exec: (*Cpu).ORA},
	0x19: {Name: "ORA", Mode: AbsoluteY, Length: 3, Cycles: 4, exec: (*Cpu).ORA},
	0x01: {Name: "ORA", Mode: IndirectX, Length: 2, Cycles: 6, exec: (*Cpu).ORA},
	0x11: {Name: "ORA", Mode: IndirectY, Length: 2, Cycles: 5, exec: (*Cpu).ORA},

	0x2a: {Name: "ROL", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).ROL},
	0x26: {Name: "ROL", Mode: ZeroPage, Length: 2, Cycles: 5, exec: (*Cpu).ROL},
	0x36: {Name: "ROL", Mode: ZeroPageX, Length: 2, Cycles: 6, exec: (*Cpu).ROL},
	0x2e: {Name: "ROL", Mode: Absolute, Length: 3, Cycles: 6, exec: (*Cpu).ROL},
	0x3e: {Name: "ROL", Mode: AbsoluteX, Length: 3, Cycles: 7, exec: (*Cpu).ROL},

	0x6a: {Name: "ROR", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).ROR},
	0x66: {Name: "ROR", Mode: ZeroPage, Length: 2, Cycles: 5, exec: (*Cpu).ROR},
	0x76: {Name: "ROR", Mode: ZeroPageX, Length: 2, Cycles: 6, exec: (*Cpu).ROR},
	0x6e: {Name: "ROR", Mode: Absolute, Length: 3, Cycles: 6, exec: (*Cpu).ROR},
	0x7e: {Name: "ROR", Mode: AbsoluteX, Length: 3, Cycles: 7, exec: (*Cpu).ROR},

	0xe9: {Name: "SBC", Mode: Immediate, Length: 2, Cycles: 2, exec: (*Cpu).SBC},
	0xe5: {Name: "SBC", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).SBC},
	0xf5: {Name: "SBC", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).SBC},
	0xed: {Name: "SBC", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).SBC},
	0xfd: {Name: "SBC", Mode: AbsoluteX, Length: 3, Cycles: 4, exec: (*Cpu).SBC},
	0xf9: {Name: "SBC", Mode: AbsoluteY, Length: 3, Cycles: 4, exec: (*Cpu).SBC},
	0xe1: {Name: "SBC", Mode: IndirectX, Length: 2, Cycles: 6, exec: (*Cpu).SBC},
	0xf1: {Name: "SBC", Mode: IndirectY, Length: 2, Cycles: 5, exec: (*Cpu).SBC},

	0x85: {Name: "STA", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).STA},
	0x95: {Name: "STA", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).STA},
	0x8d: {Name: "STA", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).STA},
	0x9d: {Name: "STA", Mode: AbsoluteX, Length: 3, Cycles: 5, exec: (*Cpu).STA},
	0x99: {Name: "STA", Mode: AbsoluteY, Length: 3, Cycles: 5, exec: (*Cpu).STA},
	0x81: {Name: "STA", Mode: IndirectX, Length: 2, Cycles: 6, exec: (*Cpu).STA},
	0x91: {Name: "STA", Mode: IndirectY, Length: 2, Cycles: 6, exec: (*Cpu).STA},

	0x86: {Name: "STX", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).STX},
	0x96: {Name: "STX", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).STX},
	0x8e: {Name: "STX", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).STX},

	0x84: {Name: "STY", Mode: ZeroPage, Length: 2, Cycles: 3, exec: (*Cpu).STY},
	0x94: {Name: "STY", Mode: ZeroPageX, Length: 2, Cycles: 4, exec: (*Cpu).STY},
	0x8c: {Name: "STY", Mode: Absolute, Length: 3, Cycles: 4, exec: (*Cpu).STY},

	// clear, set
	0x18: {Name: "CLC", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).CLC},
	0x38: {Name: "SEC", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).SEC},
	0x58: {Name: "CLI", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).CLI},
	0x78: {Name: "SEI", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).SEI},
	0xb8: {Name: "CLV", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).CLV},
	0xd8: {Name: "CLD", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).CLD},
	0xf8: {Name: "SED", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).SED},

	// increment, decrement, transfer
	0xaa: {Name: "TAX", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).TAX},
	0x8a: {Name: "TXA", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).TXA},
	0xca: {Name: "DEX", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).DEX},
	0xe8: {Name: "INX", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).INX},
	0xa8: {Name: "TAY", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).TAY},
	0x98: {Name: "TYA", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).TYA},
	0x88: {Name: "DEY", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).DEY},
	0xc8: {Name: "INY", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).INY},

	// stack
	0x9a: {Name: "TXS", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).TXS},
	0xba: {Name: "TSX", Mode: Implied, Length: 1, Cycles: 2, exec: (*Cpu).TSX},
	0x48: {Name: "PHA", Mode: Implied, Length: 1, Cycles: 3, exec: (*Cpu).PHA},
	0x68: {Name: "PLA", Mode: Implied, Length: 1, Cycles: 4, exec: (*Cpu).PLA},
	0x08: {Name: "PHP", Mode: Implied, Length: 1, Cycles: 3, exec: (*Cpu).PHP},
	0x28: {Name: "PLP", Mode: Implied, Length: 1, Cycles: 4, exec: (*Cpu).PLP},
}
