package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetClear(t *testing.T) {
	var r Register
	r.Set(Carry | Overflow)
	assert.Equal(t, byte(0x41), r.Byte())
	assert.True(t, r.Test(Carry))
	assert.True(t, r.Test(Overflow))
	assert.False(t, r.Test(Zero))

	r.Clear(Carry)
	assert.False(t, r.Test(Carry))
	assert.True(t, r.Test(Overflow))
}

func TestSetIsIdempotent(t *testing.T) {
	var r Register
	r.Set(Negative)
	r.Set(Negative)
	assert.Equal(t, byte(0x80), r.Byte())
}

func TestAssignReplacesWholeByte(t *testing.T) {
	var r Register
	r.Set(Carry | Negative)
	r.Assign(Zero | Unused)
	assert.Equal(t, Zero|Unused, r.Byte())
}

func TestUpdate(t *testing.T) {
	var r Register
	r.Update(Zero, true)
	assert.True(t, r.Test(Zero))
	r.Update(Zero, false)
	assert.False(t, r.Test(Zero))
}

func TestTestMatchesAnyBitInMask(t *testing.T) {
	var r Register
	r.Set(Carry)
	assert.True(t, r.Test(Carry|Zero))
}

func TestByteRoundTrips(t *testing.T) {
	// PHP/PLP depend on the byte surviving untouched, including the two
	// bits with no flag semantics.
	for _, b := range []byte{0x00, 0x30, 0xff, 0xa5} {
		var r Register
		r.Assign(b)
		assert.Equal(t, b, r.Byte())
	}
}

func TestString(t *testing.T) {
	var r Register
	assert.Equal(t, "........", r.String())
	r.Set(Negative | Carry | Zero)
	assert.Equal(t, "N.....ZC", r.String())
	r.Assign(0xff)
	assert.Equal(t, "NV-BDIZC", r.String())
}
