package cpu

// call pushes the address of the following instruction and jumps to
// address.
//
//	CALL a16
func (c *CPU) call(address uint16) {
	c.push(c.PC)
	c.PC = address
}

// ret pops the top of the stack into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
}

// jumpRelative adds a signed 8-bit displacement to PC, which at the point
// of the call already points past the JR instruction and its operand.
//
//	JR e8
func (c *CPU) jumpRelative(offset uint8) {
	c.PC = uint16(int32(c.PC) + int32(int8(offset)))
}

func init() {
	define(0x18, "JR e8", func(c *CPU) int {
		offset := c.fetch8()
		c.jumpRelative(offset)
		return 3
	})

	condJR := func(opcode uint8, name string, cond func(*CPU) bool) {
		define(opcode, name, func(c *CPU) int {
			offset := c.fetch8()
			if cond(c) {
				c.jumpRelative(offset)
				return 3
			}
			return 2
		})
	}
	condJR(0x20, "JR NZ, e8", func(c *CPU) bool { return !c.isFlagSet(FlagZero) })
	condJR(0x28, "JR Z, e8", func(c *CPU) bool { return c.isFlagSet(FlagZero) })
	condJR(0x30, "JR NC, e8", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) })
	condJR(0x38, "JR C, e8", func(c *CPU) bool { return c.isFlagSet(FlagCarry) })

	define(0xC3, "JP a16", func(c *CPU) int { c.PC = c.fetch16(); return 4 })
	define(0xE9, "JP HL", func(c *CPU) int { c.PC = c.HL.Uint16(); return 1 })

	condJP := func(opcode uint8, name string, cond func(*CPU) bool) {
		define(opcode, name, func(c *CPU) int {
			target := c.fetch16()
			if cond(c) {
				c.PC = target
				return 4
			}
			return 3
		})
	}
	condJP(0xC2, "JP NZ, a16", func(c *CPU) bool { return !c.isFlagSet(FlagZero) })
	condJP(0xCA, "JP Z, a16", func(c *CPU) bool { return c.isFlagSet(FlagZero) })
	condJP(0xD2, "JP NC, a16", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) })
	condJP(0xDA, "JP C, a16", func(c *CPU) bool { return c.isFlagSet(FlagCarry) })

	define(0xCD, "CALL a16", func(c *CPU) int {
		target := c.fetch16()
		c.call(target)
		return 6
	})

	condCALL := func(opcode uint8, name string, cond func(*CPU) bool) {
		define(opcode, name, func(c *CPU) int {
			target := c.fetch16()
			if cond(c) {
				c.call(target)
				return 6
			}
			return 3
		})
	}
	condCALL(0xC4, "CALL NZ, a16", func(c *CPU) bool { return !c.isFlagSet(FlagZero) })
	condCALL(0xCC, "CALL Z, a16", func(c *CPU) bool { return c.isFlagSet(FlagZero) })
	condCALL(0xD4, "CALL NC, a16", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) })
	condCALL(0xDC, "CALL C, a16", func(c *CPU) bool { return c.isFlagSet(FlagCarry) })

	define(0xC9, "RET", func(c *CPU) int { c.ret(); return 4 })
	define(0xD9, "RETI", func(c *CPU) int {
		c.ret()
		c.IME = true
		c.imePending = 0
		return 4
	})

	condRET := func(opcode uint8, name string, cond func(*CPU) bool) {
		define(opcode, name, func(c *CPU) int {
			if cond(c) {
				c.ret()
				return 5
			}
			return 2
		})
	}
	condRET(0xC0, "RET NZ", func(c *CPU) bool { return !c.isFlagSet(FlagZero) })
	condRET(0xC8, "RET Z", func(c *CPU) bool { return c.isFlagSet(FlagZero) })
	condRET(0xD0, "RET NC", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) })
	condRET(0xD8, "RET C", func(c *CPU) bool { return c.isFlagSet(FlagCarry) })

	generateRSTInstructions()
}

// generateRSTInstructions fills the eight RST opcodes (0xC7, 0xCF, 0xD7,
// 0xDF, 0xE7, 0xEF, 0xF7, 0xFF); bits 5..3 of the opcode encode the target
// vector n*8.
func generateRSTInstructions() {
	for n := uint8(0); n < 8; n++ {
		target := uint16(n) * 8
		opcode := 0xC7 + n<<3
		define(opcode, "RST "+hex2(uint8(target))+"h", func(c *CPU) int {
			c.call(target)
			return 4
		})
	}
}
