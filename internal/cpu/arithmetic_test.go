package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fennelabs/sm83/internal/bus"
)

func TestIncrementSetsHalfCarryAcrossNibble(t *testing.T) {
	c := newTestCPU()
	c.B = 0x0F

	c.B = c.increment(c.B)

	assert.Equal(t, uint8(0x10), c.B)
	assert.True(t, c.isFlagSet(FlagHalfCarry))
	assert.False(t, c.isFlagSet(FlagSubtract))
	fNibbleInvariant(t, c)
}

func TestIncrementWrapsAndSetsZero(t *testing.T) {
	c := newTestCPU()
	c.B = 0xFF

	c.B = c.increment(c.B)

	assert.Zero(t, c.B)
	assert.True(t, c.isFlagSet(FlagZero))
}

func TestIncrementLeavesCarryUntouched(t *testing.T) {
	c := newTestCPU()
	c.setFlag(FlagCarry)
	c.B = 1

	c.B = c.increment(c.B)

	assert.True(t, c.isFlagSet(FlagCarry))
}

func TestDecrementSetsHalfCarryOnBorrowFromBit4(t *testing.T) {
	c := newTestCPU()
	c.B = 0x10

	c.B = c.decrement(c.B)

	assert.Equal(t, uint8(0x0F), c.B)
	assert.True(t, c.isFlagSet(FlagHalfCarry))
	assert.True(t, c.isFlagSet(FlagSubtract))
}

func TestAddHLSetsHalfCarryAndCarry(t *testing.T) {
	c := newTestCPU()
	c.HL.SetUint16(0x0FFF)

	c.addHL(0x0001)

	assert.Equal(t, uint16(0x1000), c.HL.Uint16())
	assert.True(t, c.isFlagSet(FlagHalfCarry))
	assert.False(t, c.isFlagSet(FlagCarry))

	c.HL.SetUint16(0xFFFF)
	c.addHL(0x0001)
	assert.Zero(t, c.HL.Uint16())
	assert.True(t, c.isFlagSet(FlagCarry))
}

func TestAddHLLeavesZeroFlagUntouched(t *testing.T) {
	c := newTestCPU()
	c.setFlag(FlagZero)
	c.HL.SetUint16(1)

	c.addHL(1)

	assert.True(t, c.isFlagSet(FlagZero))
}

func TestAddOverflowSetsCarryWithoutHalfCarry(t *testing.T) {
	c := newTestCPU()

	result := c.add(0xF0, 0x20, false)

	assert.Equal(t, uint8(0x10), result)
	assert.True(t, c.isFlagSet(FlagCarry))
	assert.False(t, c.isFlagSet(FlagHalfCarry))
	assert.False(t, c.isFlagSet(FlagZero))
}

func TestAddWithCarryIncludesIncomingCarry(t *testing.T) {
	c := newTestCPU()
	c.setFlag(FlagCarry)

	result := c.add(0x0F, 0x00, true)

	assert.Equal(t, uint8(0x10), result)
	assert.True(t, c.isFlagSet(FlagHalfCarry))
}

func TestSubBorrowSetsCarryAndSubtract(t *testing.T) {
	c := newTestCPU()

	result := c.sub(0x10, 0x20, false)

	assert.Equal(t, uint8(0xF0), result)
	assert.True(t, c.isFlagSet(FlagCarry))
	assert.True(t, c.isFlagSet(FlagSubtract))
}

func TestSubExactMatchSetsZero(t *testing.T) {
	c := newTestCPU()

	result := c.sub(0x42, 0x42, false)

	assert.Zero(t, result)
	assert.True(t, c.isFlagSet(FlagZero))
	assert.False(t, c.isFlagSet(FlagCarry))
}

func TestPushPopRoundTrips(t *testing.T) {
	c := newTestCPU()
	c.bus = bus.NewFlatMemory()
	sp := c.SP

	c.push(0xBEEF)
	assert.Equal(t, sp-2, c.SP)

	got := c.pop()
	assert.Equal(t, uint16(0xBEEF), got)
	assert.Equal(t, sp, c.SP)
}

func TestPopAFMasksLowNibbleOfF(t *testing.T) {
	c := newTestCPU()
	c.bus = bus.NewFlatMemory()
	c.push(0x12FF)

	c.SetAF(c.pop())

	assert.Equal(t, uint8(0x12), c.A)
	assert.Zero(t, c.F&0x0F)
}

func TestAddSPSignedNegativeDisplacement(t *testing.T) {
	c := newTestCPU()
	c.SP = 0x1000

	result := c.addSPSigned(0xFE) // -2

	assert.Equal(t, uint16(0x0FFE), result)
	assert.False(t, c.isFlagSet(FlagZero))
	assert.False(t, c.isFlagSet(FlagSubtract))
}
