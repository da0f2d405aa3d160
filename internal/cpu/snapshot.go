package cpu

import "github.com/fennelabs/sm83/internal/types"

// Snapshot captures a flat, independent copy of the register file and
// execution state, for debuggers, trace tooling and save states. It does
// not capture bus contents — the Bus is an external collaborator.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	IME                    bool
	Halted, Stopped        bool
	ImePending             uint8
	HaltBug                bool
}

// Snapshot returns the current register/execution state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
		IME:        c.IME,
		Halted:     c.halted,
		Stopped:    c.stopped,
		ImePending: c.imePending,
		HaltBug:    c.haltBug,
	}
}

// Restore overwrites the current register/execution state from a prior
// Snapshot.
func (c *CPU) Restore(s Snapshot) {
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L
	c.SP, c.PC = s.SP, s.PC
	c.IME = s.IME
	c.halted = s.Halted
	c.stopped = s.Stopped
	c.imePending = s.ImePending
	c.haltBug = s.HaltBug
}

var _ types.Stater = (*CPU)(nil)
var _ types.Resettable = (*CPU)(nil)

// Load restores register/execution state from a byte-oriented State,
// satisfying types.Stater for save-state tooling built on top of the core.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IME = s.ReadBool()
	c.halted = s.ReadBool()
	c.stopped = s.ReadBool()
	c.imePending = s.Read8()
	c.haltBug = s.ReadBool()
}

// Save serializes register/execution state into s, satisfying
// types.Stater.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.IME)
	s.WriteBool(c.halted)
	s.WriteBool(c.stopped)
	s.Write8(c.imePending)
	s.WriteBool(c.haltBug)
}

// RegisterValue returns the current value of one of the eight r8 operand
// slots, per registerIndex's encoding — index 6, "(HL)", always panics
// since it has no backing register.
func (c *CPU) RegisterValue(idx uint8) uint8 {
	return *c.registerIndex(idx)
}
