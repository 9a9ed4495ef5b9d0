// Package status models the 6502 status register (P): eight flags packed
// into a single byte.
//
// The bit layout, high to low, is NV-BDIZC:
//
//	7654 3210
//	NV-B DIZC
//
// Bit 5 has no meaning; it is carried as plain data so that the byte
// round-trips bit-identically through PHP/PLP.
package status

// https://www.nesdev.org/wiki/Status_flags#Flags

const (
	// Carry is unsigned overflow, and the shift-in/shift-out bit of the
	// shift and rotate instructions.
	Carry byte = 1 << iota
	// Zero is set when the last result was 0x00.
	Zero
	// Interrupt disables the IRQ line on real hardware; here it is only a
	// bit the program can set and clear.
	Interrupt
	// Decimal selects BCD arithmetic on a stock 6502. The NES variant
	// omits the mode, so the bit is honored as data only.
	Decimal
	// Break is bit 4. PHP pushes the byte unchanged and BRK pushes
	// nothing, so the bit is only data the program sets, clears, or pulls.
	Break
	// Unused is bit 5; like Break it is carried as plain data.
	Unused
	// Overflow is signed overflow: the operands agree in sign but the
	// result does not.
	Overflow
	// Negative mirrors bit 7 of the last result.
	Negative
)

// A Register is the packed flag byte. Instructions address it through
// masks, never through individual booleans, so that PHP/PLP can move the
// whole byte at once.
type Register byte

// Set turns on every flag in mask.
func (r *Register) Set(mask byte) { *r |= Register(mask) }

// Clear turns off every flag in mask.
func (r *Register) Clear(mask byte) { *r &^= Register(mask) }

// Assign replaces the whole byte.
func (r *Register) Assign(b byte) { *r = Register(b) }

// Update sets or clears every flag in mask according to on.
func (r *Register) Update(mask byte, on bool) {
	if on {
		r.Set(mask)
	} else {
		r.Clear(mask)
	}
}

// Test reports whether any flag in mask is on.
func (r Register) Test(mask byte) bool { return byte(r)&mask != 0 }

// Byte returns the packed byte.
func (r Register) Byte() byte { return byte(r) }

// String renders the register as NV-BDIZC, with '.' for a cleared flag.
func (r Register) String() string {
	symbols := []struct {
		mask byte
		sym  byte
	}{
		{Negative, 'N'},
		{Overflow, 'V'},
		{Unused, '-'},
		{Break, 'B'},
		{Decimal, 'D'},
		{Interrupt, 'I'},
		{Zero, 'Z'},
		{Carry, 'C'},
	}
	out := make([]byte, len(symbols))
	for i, s := range symbols {
		if r.Test(s.mask) {
			out[i] = s.sym
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
