package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRegisterToRegister(t *testing.T) {
	c := newTestCPU()
	c.B = 0x99
	c.C = 0x00

	c.loadRegisterToRegister(&c.C, &c.B)

	assert.Equal(t, uint8(0x99), c.C)
	assert.Equal(t, uint8(0x99), c.B)
}

func TestLoadRegisterToRegisterOpcodeTable(t *testing.T) {
	c := newTestCPU()
	c.D = 0x7E
	c.B = 0

	cycles := opcodeTable[0x42].fn(c) // LD B, D

	assert.Equal(t, 1, cycles)
	assert.Equal(t, uint8(0x7E), c.B)
}

func TestLoadIndirectHLFromRegister(t *testing.T) {
	c := newTestCPU()
	b := testBus()
	c.bus = b
	c.HL.SetUint16(0xC000)
	c.A = 0x42

	cycles := opcodeTable[0x77].fn(c) // LD (HL), A

	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint8(0x42), b.Read8(0xC000))
}

func TestLoadImmediate16IntoPair(t *testing.T) {
	c := newTestCPU()
	b := testBus()
	c.bus = b
	b.LoadAt(c.PC, []byte{0xCD, 0xAB}) // little-endian 0xABCD

	cycles := opcodeTable[0x21].fn(c) // LD HL, d16

	assert.Equal(t, 3, cycles)
	assert.Equal(t, uint16(0xABCD), c.HL.Uint16())
}

func TestLoadHLIncrementWritesThenBumps(t *testing.T) {
	c := newTestCPU()
	b := testBus()
	c.bus = b
	c.HL.SetUint16(0xC000)
	c.A = 0x11

	opcodeTable[0x22].fn(c) // LD (HL+), A

	assert.Equal(t, uint8(0x11), b.Read8(0xC000))
	assert.Equal(t, uint16(0xC001), c.HL.Uint16())
}

func TestLoadHLDecrementReadsThenDrops(t *testing.T) {
	c := newTestCPU()
	b := testBus()
	c.bus = b
	c.HL.SetUint16(0xC000)
	b.Write8(0xC000, 0x99)

	opcodeTable[0x3A].fn(c) // LD A, (HL-)

	assert.Equal(t, uint8(0x99), c.A)
	assert.Equal(t, uint16(0xBFFF), c.HL.Uint16())
}

func TestLDHAccessesHighPage(t *testing.T) {
	c := newTestCPU()
	b := testBus()
	c.bus = b
	b.Write8(0xFF80, 0x55)
	b.LoadAt(c.PC, []byte{0x80})

	opcodeTable[0xF0].fn(c) // LDH A, (a8)

	assert.Equal(t, uint8(0x55), c.A)
}

func TestLoadSPPlusSignedOffsetIntoHL(t *testing.T) {
	c := newTestCPU()
	b := testBus()
	c.bus = b
	c.SP = 0xFFF8
	b.LoadAt(c.PC, []byte{0x02})

	cycles := opcodeTable[0xF8].fn(c) // LD HL, SP+e8

	assert.Equal(t, 3, cycles)
	assert.Equal(t, uint16(0xFFFA), c.HL.Uint16())
	assert.False(t, c.isFlagSet(FlagZero))
}
