package cpu

// and performs a bitwise AND of a and b.
//
//	AND n
//
// Flags: Z=· N=0 H=1 C=0
func (c *CPU) and(a, b uint8) uint8 {
	result := a & b
	c.setFlags(result == 0, false, true, false)
	return result
}

// or performs a bitwise OR of a and b.
//
//	OR n
//
// Flags: Z=· N=0 H=0 C=0
func (c *CPU) or(a, b uint8) uint8 {
	result := a | b
	c.setFlags(result == 0, false, false, false)
	return result
}

// xor performs a bitwise XOR of a and b.
//
//	XOR n
//
// Flags: Z=· N=0 H=0 C=0
func (c *CPU) xor(a, b uint8) uint8 {
	result := a ^ b
	c.setFlags(result == 0, false, false, false)
	return result
}

// compare sets the flags as SUB a,b would, without storing the result.
//
//	CP n
//
// Flags: Z=· N=1 H=set if borrow out of bit 4 C=set if borrow
func (c *CPU) compare(a, b uint8) {
	c.sub(a, b, false)
}

// aluOp indexes the eight Block-2/3 ALU operations in their opcode
// bit-pattern order (bits 5..3 of the opcode select the op).
type aluOp func(c *CPU, b uint8)

var aluOps = [8]aluOp{
	func(c *CPU, b uint8) { c.A = c.add(c.A, b, false) },
	func(c *CPU, b uint8) { c.A = c.add(c.A, b, true) },
	func(c *CPU, b uint8) { c.A = c.sub(c.A, b, false) },
	func(c *CPU, b uint8) { c.A = c.sub(c.A, b, true) },
	func(c *CPU, b uint8) { c.A = c.and(c.A, b) },
	func(c *CPU, b uint8) { c.A = c.xor(c.A, b) },
	func(c *CPU, b uint8) { c.A = c.or(c.A, b) },
	func(c *CPU, b uint8) { c.compare(c.A, b) },
}

var aluNames = [8]string{"ADD A,", "ADC A,", "SUB A,", "SBC A,", "AND", "XOR", "OR", "CP"}

// generateALUInstructions fills the Block-2 (0x80-0xBF, ALU A, r8) and the
// matching Block-3 immediate forms (0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE,
// 0xF6, 0xFE, ALU A, imm8).
func generateALUInstructions() {
	regs := [7]uint8{0, 1, 2, 3, 4, 5, 7}
	for op := uint8(0); op < 8; op++ {
		o := op
		for _, src := range regs {
			s := src
			opcode := 0x80 + o<<3 + s
			define(opcode, aluNames[o]+" "+registerNames[s], func(c *CPU) int {
				aluOps[o](c, *c.registerIndex(s))
				return 1
			})
		}
		opcode := 0x80 + o<<3 + 6
		define(opcode, aluNames[o]+" (HL)", func(c *CPU) int {
			aluOps[o](c, c.bus.Read8(c.HL.Uint16()))
			return 2
		})

		immOpcode := 0xC6 + o<<3
		define(immOpcode, aluNames[o]+" d8", func(c *CPU) int {
			aluOps[o](c, c.fetch8())
			return 2
		})
	}
}

func init() {
	generateALUInstructions()
}
