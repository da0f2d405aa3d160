package cpu

// Register holds an 8-bit value. The CPU has eight of them: A, B, C, D, E,
// F, H and L. F is special — it holds the four condition flags in its top
// nibble; the bottom nibble always reads as zero.
type Register = uint8

// RegisterPair is a 16-bit view over two 8-bit Registers, high byte first.
// BC, DE and HL are all RegisterPairs over their component registers; AF is
// a RegisterPair over A and F, with F's low-nibble masking enforced by
// Registers.SetAF rather than by the pair itself.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair's value as a single 16-bit word.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 stores a 16-bit word into the pair's two registers.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers is the SM83 register file: six 16-bit registers (AF, BC, DE,
// HL, SP, PC), four of which (AF, BC, DE, HL) are addressable as pairs of
// 8-bit halves.
type Registers struct {
	A, F Register
	B, C Register
	D, E Register
	H, L Register
	SP   uint16
	PC   uint16

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// NewRegisters wires up the BC/DE/HL/AF pairs over the individual 8-bit
// registers of a zero-valued Registers. Call it once after constructing a
// Registers value, since the pairs hold pointers into the struct itself.
func NewRegisters() *Registers {
	r := &Registers{}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
	r.AF = &RegisterPair{&r.A, &r.F}
	return r
}

// SetAF writes AF as a 16-bit word, masking the low nibble of F to zero —
// those four bits are unused and must always read back as zero.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8)
	r.F = uint8(value) & 0xF0
}

// SetF writes the F register directly, masking its low nibble to zero.
func (r *Registers) SetF(value uint8) {
	r.F = value & 0xF0
}

// registerPointers indexes the eight r8 operand slots (B, C, D, E, H, L,
// (HL) placeholder, A) in SM83 bit-pattern order. Index 6, "(HL)", has no
// backing register — callers must special-case it before dereferencing.
func (c *CPU) registerPointers() [8]*Register {
	return [8]*Register{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L, nil, &c.A}
}

var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
