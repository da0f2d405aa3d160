package cpu

// cbOp is one of the eight rotate/shift ops selected by bits 5..3 of a
// 0x00-0x3F CB opcode.
type cbOp func(c *CPU, n uint8) uint8

var cbOps = [8]cbOp{
	(*CPU).rotateLeftCarry,
	(*CPU).rotateRightCarry,
	(*CPU).rotateLeftThroughCarry,
	(*CPU).rotateRightThroughCarry,
	(*CPU).shiftLeftArithmetic,
	(*CPU).shiftRightArithmetic,
	(*CPU).swap,
	(*CPU).shiftRightLogical,
}

var cbOpNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// generateRotateInstructions fills CB opcodes 0x00-0x3F: RLC/RRC/RL/RR/
// SLA/SRA/SWAP/SRL over every r8 operand, register ops costing 2 M-cycles
// and the indirect-HL form costing 4.
func generateRotateInstructions() {
	regs := [7]uint8{0, 1, 2, 3, 4, 5, 7}
	for op := uint8(0); op < 8; op++ {
		o := op
		for _, idx := range regs {
			i := idx
			opcode := o<<3 + i
			defineCB(opcode, cbOpNames[o]+" "+registerNames[i], func(c *CPU) int {
				r := c.registerIndex(i)
				*r = cbOps[o](c, *r)
				return 2
			})
		}
		opcode := o<<3 + 6
		defineCB(opcode, cbOpNames[o]+" (HL)", func(c *CPU) int {
			c.bus.Write8(c.HL.Uint16(), cbOps[o](c, c.bus.Read8(c.HL.Uint16())))
			return 4
		})
	}
}

// generateBitInstructions fills CB opcodes 0x40-0xFF: BIT/RES/SET b, r8.
// Bits 7..6 select the op (BIT=01, RES=10, SET=11), bits 5..3 select the
// bit index, bits 2..0 select the r8 operand.
func generateBitInstructions() {
	regs := [7]uint8{0, 1, 2, 3, 4, 5, 7}
	bitOpNames := [3]string{"BIT", "RES", "SET"}
	for group := uint8(0); group < 3; group++ { // 0=BIT(0x40), 1=RES(0x80), 2=SET(0xC0)
		g := group
		base := 0x40 + g<<6
		for bit := uint8(0); bit < 8; bit++ {
			n := bit
			for _, idx := range regs {
				i := idx
				opcode := base + n<<3 + i
				name := bitOpNames[g] + " " + itoa(n) + ", " + registerNames[i]
				defineCB(opcode, name, func(c *CPU) int {
					r := c.registerIndex(i)
					switch g {
					case 0:
						c.testBit(*r, n)
					case 1:
						*r = c.resetBit(*r, n)
					case 2:
						*r = c.storeBit(*r, n)
					}
					return 2
				})
			}
			opcode := base + n<<3 + 6
			name := bitOpNames[g] + " " + itoa(n) + ", (HL)"
			switch g {
			case 0:
				defineCB(opcode, name, func(c *CPU) int {
					c.testBit(c.bus.Read8(c.HL.Uint16()), n)
					return 3
				})
			case 1:
				defineCB(opcode, name, func(c *CPU) int {
					c.bus.Write8(c.HL.Uint16(), c.resetBit(c.bus.Read8(c.HL.Uint16()), n))
					return 4
				})
			case 2:
				defineCB(opcode, name, func(c *CPU) int {
					c.bus.Write8(c.HL.Uint16(), c.storeBit(c.bus.Read8(c.HL.Uint16()), n))
					return 4
				})
			}
		}
	}
}

func itoa(n uint8) string {
	return string([]byte{'0' + n})
}

func init() {
	generateRotateInstructions()
	generateBitInstructions()
}
