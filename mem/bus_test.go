package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	b := &Bus{}
	assert.Equal(t, byte(0), b.Read(0x1234))

	b.Write(0x1234, 0xab)
	assert.Equal(t, byte(0xab), b.Read(0x1234))
	assert.Equal(t, byte(0), b.Read(0x1235))
}

func TestReadWrite16LittleEndian(t *testing.T) {
	b := &Bus{}
	b.Write16(0x0600, 0xbeef)
	assert.Equal(t, byte(0xef), b.Read(0x0600)) // low byte first
	assert.Equal(t, byte(0xbe), b.Read(0x0601))
	assert.Equal(t, uint16(0xbeef), b.Read16(0x0600))
}

func TestRead16WrapsAtTopOfMemory(t *testing.T) {
	b := &Bus{}
	b.Write(0xffff, 0x34)
	b.Write(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), b.Read16(0xffff))
}

func TestWrite16WrapsAtTopOfMemory(t *testing.T) {
	b := &Bus{}
	b.Write16(0xffff, 0xabcd)
	assert.Equal(t, byte(0xcd), b.Read(0xffff))
	assert.Equal(t, byte(0xab), b.Read(0x0000))
}
