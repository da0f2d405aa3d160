package cpu

import "github.com/fennelabs/sm83/pkg/bits"

// testBit sets Z iff bit n of value is clear, forces N=0 and H=1, and
// leaves C untouched.
//
//	BIT n, r
func (c *CPU) testBit(value uint8, n uint8) {
	c.shouldZeroFlag(bits.Val(value, n))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// resetBit clears bit n of value. No flags affected.
//
//	RES n, r
func (c *CPU) resetBit(value uint8, n uint8) uint8 {
	return bits.Reset(value, n)
}

// storeBit sets bit n of value. No flags affected.
//
//	SET n, r
func (c *CPU) storeBit(value uint8, n uint8) uint8 {
	return bits.Set(value, n)
}
