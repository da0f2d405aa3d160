package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAndForcesHalfCarrySet(t *testing.T) {
	c := newTestCPU()

	result := c.and(0xF0, 0x0F)

	assert.Zero(t, result)
	assert.True(t, c.isFlagSet(FlagZero))
	assert.True(t, c.isFlagSet(FlagHalfCarry))
	assert.False(t, c.isFlagSet(FlagCarry))
}

func TestOrClearsAllButZero(t *testing.T) {
	c := newTestCPU()
	c.setFlag(FlagCarry)
	c.setFlag(FlagHalfCarry)

	result := c.or(0x00, 0x00)

	assert.Zero(t, result)
	assert.True(t, c.isFlagSet(FlagZero))
	assert.False(t, c.isFlagSet(FlagCarry))
	assert.False(t, c.isFlagSet(FlagHalfCarry))
}

func TestXorSelfIsZero(t *testing.T) {
	c := newTestCPU()

	result := c.xor(0x5A, 0x5A)

	assert.Zero(t, result)
	assert.True(t, c.isFlagSet(FlagZero))
}

func TestCompareDoesNotMutateOperands(t *testing.T) {
	c := newTestCPU()
	c.A = 0x10

	c.compare(c.A, 0x20)

	assert.Equal(t, uint8(0x10), c.A, "CP must not store the subtraction result")
	assert.True(t, c.isFlagSet(FlagCarry))
	assert.True(t, c.isFlagSet(FlagSubtract))
}

func TestALUAddOpcodeAgainstRegister(t *testing.T) {
	c := newTestCPU()
	c.A = 0x3A
	c.B = 0xC6
	instr := opcodeTable[0x80] // ADD A, B

	cycles := instr.fn(c)

	assert.Equal(t, 1, cycles)
	assert.Zero(t, c.A)
	assert.True(t, c.isFlagSet(FlagZero))
	assert.True(t, c.isFlagSet(FlagHalfCarry))
	assert.True(t, c.isFlagSet(FlagCarry))
}

func TestALUSubImmediateOpcode(t *testing.T) {
	c := newTestCPU()
	b := testBus()
	c.bus = b
	c.A = 0x3E
	b.LoadAt(c.PC, []byte{0x40}) // SUB A, d8
	instr := opcodeTable[0xD6]

	cycles := instr.fn(c)

	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint8(0xFE), c.A)
	assert.True(t, c.isFlagSet(FlagCarry))
}

func TestALUAndIndirectHL(t *testing.T) {
	c := newTestCPU()
	b := testBus()
	c.bus = b
	c.A = 0xFF
	c.HL.SetUint16(0xC000)
	b.Write8(0xC000, 0x0F)
	instr := opcodeTable[0xA6] // AND (HL)

	cycles := instr.fn(c)

	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint8(0x0F), c.A)
}
