package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennelabs/sm83/internal/bus"
	"github.com/fennelabs/sm83/internal/interrupts"
	"github.com/fennelabs/sm83/pkg/log"
)

func newTestCPU() *CPU {
	return NewCPU(bus.NewFlatMemory(), WithLogger(log.NewNullLogger()))
}

// testBus returns a concrete FlatMemory so callers can reach LoadAt
// alongside the Bus methods without a type assertion.
func testBus() *bus.FlatMemory {
	return bus.NewFlatMemory()
}

func TestNewCPUPostBootState(t *testing.T) {
	c := newTestCPU()

	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.False(t, c.IME)
	assert.False(t, c.Halted())
	assert.False(t, c.Stopped())
}

func TestResetRestoresPostBootState(t *testing.T) {
	c := newTestCPU()
	c.A, c.B, c.PC, c.SP, c.IME = 0xFF, 0xFF, 0x8000, 0x1234, true

	c.Reset()

	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.False(t, c.IME)
}

// fNibbleInvariant asserts the F & 0x0F == 0 invariant on c's current
// state.
func fNibbleInvariant(t *testing.T, c *CPU) {
	t.Helper()
	assert.Zero(t, c.F&0x0F)
}

func TestStepIdlesWhileHalted(t *testing.T) {
	c := newTestCPU()
	c.halted = true
	before := c.PC

	cycles := c.Step()

	assert.Equal(t, uint32(idleCycles), cycles)
	assert.Equal(t, before, c.PC)
}

func TestStepIdlesWhileStopped(t *testing.T) {
	c := newTestCPU()
	c.stopped = true
	before := c.PC

	cycles := c.Step()

	assert.Equal(t, uint32(idleCycles), cycles)
	assert.Equal(t, before, c.PC)
}

func TestEIThenDILeavesIMEFalse(t *testing.T) {
	c := newTestCPU()
	b := bus.NewFlatMemory()
	c.bus = b
	b.LoadAt(c.PC, []byte{0xFB, 0xF3}) // EI; DI

	c.Step()
	c.Step()

	assert.False(t, c.IME)
}

func TestEIThenNOPLeavesIMETrueAfterNOP(t *testing.T) {
	c := newTestCPU()
	b := bus.NewFlatMemory()
	c.bus = b
	b.LoadAt(c.PC, []byte{0xFB, 0x00}) // EI; NOP

	c.Step()
	require.False(t, c.IME, "IME must not flip true during EI's own step")

	c.Step()
	assert.True(t, c.IME, "IME should flip true once the instruction after EI completes")
}

func TestHaltWakesOnRequestInterrupt(t *testing.T) {
	c := newTestCPU()
	c.halted = true

	c.RequestInterrupt(interrupts.VBlank)

	assert.False(t, c.Halted())
}

func TestRequestInterruptDispatchesWhenIMESet(t *testing.T) {
	c := newTestCPU()
	b := bus.NewFlatMemory()
	c.bus = b
	c.IME = true
	c.PC = 0x8000
	c.SP = 0xFFFE

	cycles := c.RequestInterrupt(interrupts.Timer)

	assert.Equal(t, uint16(0x0050), c.PC)
	assert.False(t, c.IME)
	assert.Equal(t, uint16(0xFFFC), c.SP)
	assert.Equal(t, uint16(0x8000), b.Read16(c.SP))
	assert.NotZero(t, cycles)
}

func TestRequestInterruptOnlyClearsHaltedWhenIMEIsFalse(t *testing.T) {
	c := newTestCPU()
	c.halted = true
	c.IME = false
	pc := c.PC

	c.RequestInterrupt(interrupts.Joypad)

	assert.False(t, c.Halted())
	assert.Equal(t, pc, c.PC)
}

func TestUndefinedOpcodeReportsAndAdvancesPCByOne(t *testing.T) {
	c := newTestCPU()
	b := bus.NewFlatMemory()
	c.bus = b
	b.LoadAt(c.PC, []byte{0xD3})
	pc := c.PC

	cycles := c.Step()

	require.Error(t, c.LastError())
	var undef *UndefinedOpcodeError
	require.ErrorAs(t, c.LastError(), &undef)
	assert.Equal(t, uint8(0xD3), undef.Opcode)
	assert.Equal(t, pc+1, c.PC)
	assert.Equal(t, uint32(idleCycles), cycles)
}

func TestHaltBugDoubleExecutesFollowingByte(t *testing.T) {
	c := newTestCPU()
	b := &pendingInterruptBus{FlatMemory: bus.NewFlatMemory(), pending: true}
	c.bus = b
	c.IME = false
	b.LoadAt(c.PC, []byte{0x76, 0x3C}) // HALT; INC A

	c.Step() // HALT, with a pending interrupt and IME=0: arms the halt bug
	require.True(t, c.haltBug)
	require.False(t, c.halted)

	pcAfterHalt := c.PC
	c.Step() // executes INC A without having advanced past it
	assert.Equal(t, uint8(1), c.A)
	assert.Equal(t, pcAfterHalt, c.PC, "halt bug re-fetches the same byte")

	c.Step() // executes INC A again, this time advancing normally
	assert.Equal(t, uint8(2), c.A)
	assert.Equal(t, pcAfterHalt+1, c.PC)
}

type pendingInterruptBus struct {
	*bus.FlatMemory
	pending bool
}

func (b *pendingInterruptBus) HasPendingInterrupts() bool { return b.pending }
