package cpu

// loadRegisterToRegister copies src into dst. No flags affected.
//
//	LD r8, r8
func (c *CPU) loadRegisterToRegister(dst, src *Register) {
	*dst = *src
}

// generateLoadRegisterToRegisterInstructions fills the 0x40-0x7F block:
// LD r8, r8 for every (dst, src) pair, with 0x76 excluded since that bit
// pattern is HALT instead (defined in instruction.go). Index 6 on either
// side means indirect HL rather than a register.
func generateLoadRegisterToRegisterInstructions() {
	regs := [7]uint8{0, 1, 2, 3, 4, 5, 7} // skip index 6, handled inline below
	for _, dst := range regs {
		for _, src := range regs {
			opcode := 0x40 + dst<<3 + src
			d, s := dst, src
			define(opcode, "LD "+registerNames[d]+", "+registerNames[s], func(c *CPU) int {
				c.loadRegisterToRegister(c.registerIndex(d), c.registerIndex(s))
				return 1
			})
		}
		if dst != 6 {
			d := dst
			opcode := 0x40 + d<<3 + 6
			define(opcode, "LD "+registerNames[d]+", (HL)", func(c *CPU) int {
				*c.registerIndex(d) = c.bus.Read8(c.HL.Uint16())
				return 2
			})
		}
	}
	for _, src := range regs {
		s := src
		opcode := 0x40 + uint8(6)<<3 + s
		define(opcode, "LD (HL), "+registerNames[s], func(c *CPU) int {
			c.bus.Write8(c.HL.Uint16(), *c.registerIndex(s))
			return 2
		})
	}
}

func init() {
	generateLoadRegisterToRegisterInstructions()

	// LD r8, imm8 — one opcode per r8 destination, stepping by 8 starting
	// at 0x06; (HL) (opcode 0x36) writes memory instead of a register.
	for _, idx := range [7]uint8{0, 1, 2, 3, 4, 5, 7} {
		i := idx
		opcode := 0x06 + i<<3
		define(opcode, "LD "+registerNames[i]+", d8", func(c *CPU) int {
			*c.registerIndex(i) = c.fetch8()
			return 2
		})
	}
	define(0x36, "LD (HL), d8", func(c *CPU) int {
		c.bus.Write8(c.HL.Uint16(), c.fetch8())
		return 3
	})

	define(0x01, "LD BC, d16", func(c *CPU) int { c.BC.SetUint16(c.fetch16()); return 3 })
	define(0x11, "LD DE, d16", func(c *CPU) int { c.DE.SetUint16(c.fetch16()); return 3 })
	define(0x21, "LD HL, d16", func(c *CPU) int { c.HL.SetUint16(c.fetch16()); return 3 })
	define(0x31, "LD SP, d16", func(c *CPU) int { c.SP = c.fetch16(); return 3 })

	define(0x02, "LD (BC), A", func(c *CPU) int { c.bus.Write8(c.BC.Uint16(), c.A); return 2 })
	define(0x12, "LD (DE), A", func(c *CPU) int { c.bus.Write8(c.DE.Uint16(), c.A); return 2 })
	define(0x22, "LD (HL+), A", func(c *CPU) int {
		c.bus.Write8(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 2
	})
	define(0x32, "LD (HL-), A", func(c *CPU) int {
		c.bus.Write8(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 2
	})

	define(0x0A, "LD A, (BC)", func(c *CPU) int { c.A = c.bus.Read8(c.BC.Uint16()); return 2 })
	define(0x1A, "LD A, (DE)", func(c *CPU) int { c.A = c.bus.Read8(c.DE.Uint16()); return 2 })
	define(0x2A, "LD A, (HL+)", func(c *CPU) int {
		c.A = c.bus.Read8(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return 2
	})
	define(0x3A, "LD A, (HL-)", func(c *CPU) int {
		c.A = c.bus.Read8(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return 2
	})

	define(0x08, "LD (a16), SP", func(c *CPU) int {
		c.bus.Write16(c.fetch16(), c.SP)
		return 5
	})

	define(0xE0, "LDH (a8), A", func(c *CPU) int {
		c.bus.Write8(0xFF00+uint16(c.fetch8()), c.A)
		return 3
	})
	define(0xF0, "LDH A, (a8)", func(c *CPU) int {
		c.A = c.bus.Read8(0xFF00 + uint16(c.fetch8()))
		return 3
	})
	define(0xE2, "LD (C), A", func(c *CPU) int {
		c.bus.Write8(0xFF00+uint16(c.C), c.A)
		return 2
	})
	define(0xF2, "LD A, (C)", func(c *CPU) int {
		c.A = c.bus.Read8(0xFF00 + uint16(c.C))
		return 2
	})
	define(0xEA, "LD (a16), A", func(c *CPU) int {
		c.bus.Write8(c.fetch16(), c.A)
		return 4
	})
	define(0xFA, "LD A, (a16)", func(c *CPU) int {
		c.A = c.bus.Read8(c.fetch16())
		return 4
	})

	define(0xF9, "LD SP, HL", func(c *CPU) int { c.SP = c.HL.Uint16(); return 2 })
	define(0xF8, "LD HL, SP+e8", func(c *CPU) int {
		c.HL.SetUint16(c.addSPSigned(c.fetch8()))
		return 3
	})
}
