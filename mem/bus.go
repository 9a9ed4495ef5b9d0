// Package mem provides the flat 64 kB of memory a Cpu addresses.
package mem

// Capacity is the full address space of the 6502: 0x0000-0xffff.
const Capacity = 64 * 1024

// A Bus connects the Cpu to its memory. Every address is valid; there is no
// mirroring, mapping, or memory-mapped I/O -- the whole space is plain RAM,
// zeroed on init.
//
// One or more components (structs) can be connected to a Bus by means of a
// pointer; e.g. Cpu.Bus = &Bus{}.
type Bus struct {
	Ram [Capacity]byte
}

// Read returns the byte stored at addr.
func (b *Bus) Read(addr uint16) byte { return b.Ram[addr] }

// Write stores data at addr.
func (b *Bus) Write(addr uint16, data byte) { b.Ram[addr] = data }

// Read16 reads a little-endian word: the low byte at addr, the high byte at
// addr+1. The second read wraps to 0x0000 at the top of memory.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Write16 stores a little-endian word: the low byte at addr, the high byte
// at addr+1.
func (b *Bus) Write16(addr uint16, data uint16) {
	b.Write(addr, byte(data))
	b.Write(addr+1, byte(data>>8))
}
