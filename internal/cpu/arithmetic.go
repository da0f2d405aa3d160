package cpu

// increment adds 1 to value.
//
//	INC r8
//
// Flags: Z=· N=0 H=set if carry out of bit 3 C=unaffected
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.setFlags(result == 0, false, value&0xF == 0xF, c.isFlagSet(FlagCarry))
	return result
}

// decrement subtracts 1 from value.
//
//	DEC r8
//
// Flags: Z=· N=1 H=set if borrow out of bit 4 C=unaffected
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.setFlags(result == 0, true, value&0xF == 0x0, c.isFlagSet(FlagCarry))
	return result
}

// incrementNN adds 1 to a 16-bit register pair. No flags affected.
//
//	INC r16
func (c *CPU) incrementNN(pair *RegisterPair) {
	pair.SetUint16(pair.Uint16() + 1)
}

// decrementNN subtracts 1 from a 16-bit register pair. No flags affected.
//
//	DEC r16
func (c *CPU) decrementNN(pair *RegisterPair) {
	pair.SetUint16(pair.Uint16() - 1)
}

// addHL adds a 16-bit value into HL.
//
//	ADD HL, r16
//
// Flags: Z=unaffected N=0 H=set if carry out of bit 11 C=set if carry out of bit 15
func (c *CPU) addHL(value uint16) {
	a := c.HL.Uint16()
	sum := uint32(a) + uint32(value)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(value&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// add computes a+b(+carry) and sets flags accordingly.
//
//	ADD A, r8/imm8
//	ADC A, r8/imm8 (withCarry=true)
//
// Flags: Z=· N=0 H=set if carry out of bit 3 C=set if carry out of bit 7
func (c *CPU) add(a, b uint8, withCarry bool) uint8 {
	var cy uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		cy = 1
	}
	sum := uint16(a) + uint16(b) + uint16(cy)
	half := uint16(a&0xF) + uint16(b&0xF) + uint16(cy)
	c.setFlags(uint8(sum) == 0, false, half > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub computes a-b(-carry) and sets flags accordingly.
//
//	SUB A, r8/imm8
//	SBC A, r8/imm8 (withCarry=true)
//	CP A, r8/imm8 (result discarded by the caller)
//
// Flags: Z=· N=1 H=set if borrow out of bit 4 C=set if borrow
func (c *CPU) sub(a, b uint8, withCarry bool) uint8 {
	var cy uint8
	if withCarry && c.isFlagSet(FlagCarry) {
		cy = 1
	}
	diff := int16(a) - int16(b) - int16(cy)
	half := int16(a&0xF) - int16(b&0xF) - int16(cy)
	c.setFlags(uint8(diff) == 0, true, half < 0, diff < 0)
	return uint8(diff)
}

// addSPSigned computes SP + sign_extend(e8). Flags are computed on the low
// byte of SP against the unsigned operand byte, per the same rule used by
// LD HL, SP+e8.
//
//	ADD SP, e8
func (c *CPU) addSPSigned(e8 uint8) uint16 {
	result := uint16(int32(c.SP) + int32(int8(e8)))
	half := (c.SP & 0xF) + uint16(e8&0xF)
	full := (c.SP & 0xFF) + uint16(e8)
	c.setFlags(false, false, half > 0xF, full > 0xFF)
	return result
}

// push writes a 16-bit word to the stack, predecrementing SP.
func (c *CPU) push(value uint16) {
	c.SP -= 2
	c.bus.Write16(c.SP, value)
}

// pop reads a 16-bit word from the stack, postincrementing SP.
func (c *CPU) pop() uint16 {
	value := c.bus.Read16(c.SP)
	c.SP += 2
	return value
}

func init() {
	define(0x03, "INC BC", func(c *CPU) int { c.incrementNN(c.BC); return 2 })
	define(0x04, "INC B", func(c *CPU) int { c.B = c.increment(c.B); return 1 })
	define(0x05, "DEC B", func(c *CPU) int { c.B = c.decrement(c.B); return 1 })
	define(0x09, "ADD HL, BC", func(c *CPU) int { c.addHL(c.BC.Uint16()); return 2 })
	define(0x0B, "DEC BC", func(c *CPU) int { c.decrementNN(c.BC); return 2 })
	define(0x0C, "INC C", func(c *CPU) int { c.C = c.increment(c.C); return 1 })
	define(0x0D, "DEC C", func(c *CPU) int { c.C = c.decrement(c.C); return 1 })
	define(0x13, "INC DE", func(c *CPU) int { c.incrementNN(c.DE); return 2 })
	define(0x14, "INC D", func(c *CPU) int { c.D = c.increment(c.D); return 1 })
	define(0x15, "DEC D", func(c *CPU) int { c.D = c.decrement(c.D); return 1 })
	define(0x19, "ADD HL, DE", func(c *CPU) int { c.addHL(c.DE.Uint16()); return 2 })
	define(0x1B, "DEC DE", func(c *CPU) int { c.decrementNN(c.DE); return 2 })
	define(0x1C, "INC E", func(c *CPU) int { c.E = c.increment(c.E); return 1 })
	define(0x1D, "DEC E", func(c *CPU) int { c.E = c.decrement(c.E); return 1 })
	define(0x23, "INC HL", func(c *CPU) int { c.incrementNN(c.HL); return 2 })
	define(0x24, "INC H", func(c *CPU) int { c.H = c.increment(c.H); return 1 })
	define(0x25, "DEC H", func(c *CPU) int { c.H = c.decrement(c.H); return 1 })
	define(0x29, "ADD HL, HL", func(c *CPU) int { c.addHL(c.HL.Uint16()); return 2 })
	define(0x2B, "DEC HL", func(c *CPU) int { c.decrementNN(c.HL); return 2 })
	define(0x2C, "INC L", func(c *CPU) int { c.L = c.increment(c.L); return 1 })
	define(0x2D, "DEC L", func(c *CPU) int { c.L = c.decrement(c.L); return 1 })
	define(0x33, "INC SP", func(c *CPU) int { c.SP++; return 2 })
	define(0x34, "INC (HL)", func(c *CPU) int {
		c.bus.Write8(c.HL.Uint16(), c.increment(c.bus.Read8(c.HL.Uint16())))
		return 3
	})
	define(0x35, "DEC (HL)", func(c *CPU) int {
		c.bus.Write8(c.HL.Uint16(), c.decrement(c.bus.Read8(c.HL.Uint16())))
		return 3
	})
	define(0x39, "ADD HL, SP", func(c *CPU) int { c.addHL(c.SP); return 2 })
	define(0x3B, "DEC SP", func(c *CPU) int { c.SP--; return 2 })
	define(0x3C, "INC A", func(c *CPU) int { c.A = c.increment(c.A); return 1 })
	define(0x3D, "DEC A", func(c *CPU) int { c.A = c.decrement(c.A); return 1 })

	define(0xC1, "POP BC", func(c *CPU) int { c.BC.SetUint16(c.pop()); return 3 })
	define(0xC5, "PUSH BC", func(c *CPU) int { c.push(c.BC.Uint16()); return 4 })
	define(0xD1, "POP DE", func(c *CPU) int { c.DE.SetUint16(c.pop()); return 3 })
	define(0xD5, "PUSH DE", func(c *CPU) int { c.push(c.DE.Uint16()); return 4 })
	define(0xE1, "POP HL", func(c *CPU) int { c.HL.SetUint16(c.pop()); return 3 })
	define(0xE5, "PUSH HL", func(c *CPU) int { c.push(c.HL.Uint16()); return 4 })
	define(0xF1, "POP AF", func(c *CPU) int { c.SetAF(c.pop()); return 3 })
	define(0xF5, "PUSH AF", func(c *CPU) int { c.push(c.AF.Uint16()); return 4 })

	define(0xE8, "ADD SP, e8", func(c *CPU) int {
		c.SP = c.addSPSigned(c.fetch8())
		return 4
	})
}
