// Package cpu implements the fetch-decode-execute engine for the Sharp
// SM83 (Game Boy) CPU: the register file, the opcode and CB-prefixed
// decode tables, the per-instruction executors, and the step driver that
// ties HALT/STOP/IME-delay semantics together.
package cpu

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/fennelabs/sm83/internal/bus"
	"github.com/fennelabs/sm83/internal/interrupts"
	"github.com/fennelabs/sm83/pkg/log"
)

// undefinedOpcodes has no defined behavior on real hardware. The core
// reports them rather than panicking; see UndefinedOpcodeError.
var undefinedOpcodes = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
	0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

// UndefinedOpcodeError is reported when the decoder is asked to dispatch
// one of the eleven unprefixed opcodes SM83 leaves undefined. State other
// than PC is left unchanged; PC is advanced by 1.
type UndefinedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UndefinedOpcodeError) Error() string {
	return fmt.Sprintf("undefined opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// pendingInterruptSource is an optional Bus capability: a bus that tracks
// IE/IF state may implement it so the core can model the HALT bug, which
// depends on whether an interrupt is already latched at the moment HALT
// executes. A Bus that doesn't implement it simply never triggers the bug.
type pendingInterruptSource interface {
	HasPendingInterrupts() bool
}

// CPU is the SM83 interpreter core. It owns the register file and the
// IME/halted/stopped/ime_pending execution state; it borrows a Bus for the
// duration of each Step.
type CPU struct {
	Registers

	IME bool

	halted     bool
	stopped    bool
	imePending uint8
	haltBug    bool

	bus bus.Bus
	log log.Logger

	lastErr error
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithLogger overrides the default fmt-based logger.
func WithLogger(l log.Logger) Option {
	return func(c *CPU) { c.log = l }
}

// WithPC sets the initial program counter, overriding the post-boot
// default of 0x0100.
func WithPC(pc uint16) Option {
	return func(c *CPU) { c.PC = pc }
}

// WithSP sets the initial stack pointer, overriding the post-boot default
// of 0xFFFE.
func WithSP(sp uint16) Option {
	return func(c *CPU) { c.SP = sp }
}

// NewCPU constructs a CPU driven against bus b, with post-boot register
// state (PC=0x0100, SP=0xFFFE, IME=false) unless overridden by opts.
func NewCPU(b bus.Bus, opts ...Option) *CPU {
	c := &CPU{
		bus: b,
		log: log.New(),
	}
	c.BC = &RegisterPair{&c.B, &c.C}
	c.DE = &RegisterPair{&c.D, &c.E}
	c.HL = &RegisterPair{&c.H, &c.L}
	c.AF = &RegisterPair{&c.A, &c.F}

	c.Reset()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset restores post-boot-ROM register and execution state: PC=0x0100,
// SP=0xFFFE, IME=false, halted=false, ime_pending=0. Callers that applied
// construction Options for PC/SP should re-apply them after a Reset if
// they need those overrides to survive it.
func (c *CPU) Reset() {
	c.A = 0
	c.SetF(0)
	c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0
	c.PC = 0x0100
	c.SP = 0xFFFE
	c.IME = false
	c.halted = false
	c.stopped = false
	c.imePending = 0
	c.haltBug = false
	c.lastErr = nil
}

// LastError returns the most recently reported UndefinedOpcodeError, if
// any instruction executed since construction or the last Reset hit one.
// It is not cleared by subsequent successful steps.
func (c *CPU) LastError() error {
	return c.lastErr
}

// Halted reports whether the CPU is currently idling in HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// Stopped reports whether the CPU is currently idling in STOP.
func (c *CPU) Stopped() bool {
	return c.stopped
}

const idleCycles = 1

// Step executes exactly one instruction (or one idle M-cycle when halted
// or stopped) and returns the number of M-cycles consumed.
func (c *CPU) Step() uint32 {
	if c.halted || c.stopped {
		return idleCycles
	}

	pendingBefore := c.imePending

	var opcode uint8
	if c.haltBug {
		// The byte after HALT is fetched and executed without advancing
		// PC past it first, so the following Step re-fetches the same
		// byte and runs it again.
		opcode = c.bus.Read8(c.PC)
		c.haltBug = false
	} else {
		opcode = c.fetch8()
	}

	cycles := c.execute(opcode)

	if pendingBefore != 0 && c.imePending != 0 {
		c.IME = true
		c.imePending = 0
	}

	return cycles
}

// RequestInterrupt wakes the CPU from HALT unconditionally and, if IME is
// set, pushes PC and jumps to source's vector, clearing IME. When IME is
// clear, the call only clears halted — the caller is expected to have
// already latched the interrupt in its own IE/IF state. STOP is not left
// by an interrupt request; only Reset clears it.
func (c *CPU) RequestInterrupt(source interrupts.Source) uint32 {
	c.halted = false

	if !c.IME {
		return 0
	}

	c.IME = false
	c.SP -= 2
	c.bus.Write16(c.SP, c.PC)
	c.PC = source.Vector()
	return 5
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read8(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	v := c.bus.Read16(c.PC)
	c.PC += 2
	return v
}

func (c *CPU) hasPendingInterrupt() bool {
	p, ok := c.bus.(pendingInterruptSource)
	return ok && p.HasPendingInterrupts()
}

// execute dispatches a fetched opcode, consuming a second byte from the
// CB table when opcode is the 0xCB prefix.
func (c *CPU) execute(opcode uint8) uint32 {
	if opcode == 0xCB {
		cbOpcode := c.fetch8()
		instr := cbOpcodeTable[cbOpcode]
		if instr.fn == nil {
			return c.reportUndefined(opcode)
		}
		return uint32(instr.fn(c))
	}

	if undefinedOpcodes[opcode] {
		return c.reportUndefined(opcode)
	}

	instr := opcodeTable[opcode]
	if instr.fn == nil {
		return c.reportUndefined(opcode)
	}
	return uint32(instr.fn(c))
}

func (c *CPU) reportUndefined(opcode uint8) uint32 {
	err := &UndefinedOpcodeError{Opcode: opcode, PC: c.PC - 1}
	c.lastErr = errors.WithStack(err)
	c.log.Errorf("%s", err)
	return idleCycles
}

// registerName returns the mnemonic of a Register, used by instruction
// names and trace output.
func (c *CPU) registerName(reg *Register) string {
	switch reg {
	case &c.A:
		return "A"
	case &c.B:
		return "B"
	case &c.C:
		return "C"
	case &c.D:
		return "D"
	case &c.E:
		return "E"
	case &c.H:
		return "H"
	case &c.L:
		return "L"
	}
	return "(HL)"
}

// registerIndex returns the Register pointer for r8 operand index idx (0
// through 7, excluding 6 which selects indirect HL and has no backing
// Register — callers must special-case it before calling this).
func (c *CPU) registerIndex(idx uint8) *Register {
	p := c.registerPointers()[idx&0x7]
	if p == nil {
		panic(fmt.Sprintf("registerIndex: index %d is (HL), not a register", idx))
	}
	return p
}
