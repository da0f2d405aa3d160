package cpu

// rotateLeftCarry rotates n left by 1 bit; bit 7 moves into both the carry
// flag and bit 0.
//
//	RLC n
//
// Flags: Z=· N=0 H=0 C=old bit 7
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n&0x80 != 0
	result := n << 1
	if carry {
		result |= 0x01
	}
	c.setFlags(result == 0, false, false, carry)
	return result
}

// rotateRightCarry rotates n right by 1 bit; bit 0 moves into both the
// carry flag and bit 7.
//
//	RRC n
//
// Flags: Z=· N=0 H=0 C=old bit 0
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n&0x01 != 0
	result := n >> 1
	if carry {
		result |= 0x80
	}
	c.setFlags(result == 0, false, false, carry)
	return result
}

// rotateLeftThroughCarry rotates n left by 1 bit; the carry flag moves into
// bit 0, and bit 7 moves into the carry flag.
//
//	RL n
//
// Flags: Z=· N=0 H=0 C=old bit 7
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	carryIn := c.isFlagSet(FlagCarry)
	carryOut := n&0x80 != 0
	result := n << 1
	if carryIn {
		result |= 0x01
	}
	c.setFlags(result == 0, false, false, carryOut)
	return result
}

// rotateRightThroughCarry rotates n right by 1 bit; the carry flag moves
// into bit 7, and bit 0 moves into the carry flag.
//
//	RR n
//
// Flags: Z=· N=0 H=0 C=old bit 0
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	carryIn := c.isFlagSet(FlagCarry)
	carryOut := n&0x01 != 0
	result := n >> 1
	if carryIn {
		result |= 0x80
	}
	c.setFlags(result == 0, false, false, carryOut)
	return result
}

// rotateLeftCarryAccumulator is RLCA: like rotateLeftCarry, but always
// forces Z=0 regardless of the result.
func (c *CPU) rotateLeftCarryAccumulator() {
	carry := c.A&0x80 != 0
	c.A <<= 1
	if carry {
		c.A |= 0x01
	}
	c.setFlags(false, false, false, carry)
}

// rotateRightAccumulator is RRCA: like rotateRightCarry, but always forces
// Z=0.
func (c *CPU) rotateRightAccumulator() {
	carry := c.A&0x01 != 0
	c.A >>= 1
	if carry {
		c.A |= 0x80
	}
	c.setFlags(false, false, false, carry)
}

// rotateLeftAccumulatorThroughCarry is RLA: like rotateLeftThroughCarry, but
// always forces Z=0.
func (c *CPU) rotateLeftAccumulatorThroughCarry() {
	carryIn := c.isFlagSet(FlagCarry)
	carryOut := c.A&0x80 != 0
	c.A <<= 1
	if carryIn {
		c.A |= 0x01
	}
	c.setFlags(false, false, false, carryOut)
}

// rotateRightAccumulatorThroughCarry is RRA: like rotateRightThroughCarry,
// but always forces Z=0.
func (c *CPU) rotateRightAccumulatorThroughCarry() {
	carryIn := c.isFlagSet(FlagCarry)
	carryOut := c.A&0x01 != 0
	c.A >>= 1
	if carryIn {
		c.A |= 0x80
	}
	c.setFlags(false, false, false, carryOut)
}

func init() {
	define(0x07, "RLCA", func(c *CPU) int { c.rotateLeftCarryAccumulator(); return 1 })
	define(0x0F, "RRCA", func(c *CPU) int { c.rotateRightAccumulator(); return 1 })
	define(0x17, "RLA", func(c *CPU) int { c.rotateLeftAccumulatorThroughCarry(); return 1 })
	define(0x1F, "RRA", func(c *CPU) int { c.rotateRightAccumulatorThroughCarry(); return 1 })
}
