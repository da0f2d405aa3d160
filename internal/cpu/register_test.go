package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAliasing(t *testing.T) {
	c := newTestCPU()

	c.B, c.C = 0x12, 0x34
	assert.Equal(t, uint16(0x1234), c.BC.Uint16())

	c.DE.SetUint16(0xABCD)
	assert.Equal(t, uint8(0xAB), c.D)
	assert.Equal(t, uint8(0xCD), c.E)

	c.HL.SetUint16(0x1122)
	assert.Equal(t, uint8(0x11), c.H)
	assert.Equal(t, uint8(0x22), c.L)
}

func TestSetAFMasksLowNibble(t *testing.T) {
	c := newTestCPU()

	c.SetAF(0x12FF)

	assert.Equal(t, uint8(0x12), c.A)
	assert.Equal(t, uint8(0xF0), c.F)
	assert.Zero(t, c.F&0x0F)
}

func TestSetFMasksLowNibble(t *testing.T) {
	c := newTestCPU()

	c.SetF(0xFF)

	assert.Equal(t, uint8(0xF0), c.F)
}
