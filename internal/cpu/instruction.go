package cpu

// Instruction pairs a mnemonic (used for tracing and debug tooling) with
// the handler that performs it. fn returns the number of M-cycles the
// instruction consumed.
type Instruction struct {
	name string
	fn   func(*CPU) int
}

// opcodeTable holds the 256 unprefixed instructions, indexed by opcode.
// Entries are populated by per-concern init() functions (arithmetic.go,
// load.go, jump.go, rotate.go, ...) plus the generator loops in load.go,
// alu.go and jump.go for mechanically-repetitive ranges.
var opcodeTable [256]Instruction

// cbOpcodeTable holds the 256 CB-prefixed instructions.
var cbOpcodeTable [256]Instruction

// define registers an unprefixed instruction. Panics on a duplicate
// registration, since that always indicates a decoding mistake caught at
// init time rather than at runtime.
func define(opcode uint8, name string, fn func(*CPU) int) {
	if opcodeTable[opcode].fn != nil {
		panic("cpu: opcode 0x" + hex2(opcode) + " already defined as " + opcodeTable[opcode].name)
	}
	opcodeTable[opcode] = Instruction{name: name, fn: fn}
}

// defineCB registers a CB-prefixed instruction.
func defineCB(opcode uint8, name string, fn func(*CPU) int) {
	if cbOpcodeTable[opcode].fn != nil {
		panic("cpu: CB opcode 0x" + hex2(opcode) + " already defined as " + cbOpcodeTable[opcode].name)
	}
	cbOpcodeTable[opcode] = Instruction{name: name, fn: fn}
}

const hexDigits = "0123456789ABCDEF"

func hex2(b uint8) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}

func init() {
	define(0x00, "NOP", func(c *CPU) int { return 1 })

	// STOP consumes the byte following it as padding and idles the core
	// until an external reset; speed-switch semantics are platform
	// specific (spec §9 open question) and are out of scope here.
	define(0x10, "STOP", func(c *CPU) int {
		c.fetch8()
		c.stopped = true
		return 1
	})

	define(0x27, "DAA", func(c *CPU) int {
		var adjust uint8
		carry := c.isFlagSet(FlagCarry)
		if !c.isFlagSet(FlagSubtract) {
			if carry || c.A > 0x99 {
				adjust |= 0x60
				carry = true
			}
			if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
				adjust |= 0x06
			}
			c.A += adjust
		} else {
			if carry {
				adjust |= 0x60
			}
			if c.isFlagSet(FlagHalfCarry) {
				adjust |= 0x06
			}
			c.A -= adjust
		}
		c.shouldZeroFlag(c.A)
		c.clearFlag(FlagHalfCarry)
		c.setFlagBool(FlagCarry, carry)
		return 1
	})

	define(0x2F, "CPL", func(c *CPU) int {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
		return 1
	})

	define(0x37, "SCF", func(c *CPU) int {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		return 1
	})

	define(0x3F, "CCF", func(c *CPU) int {
		c.setFlagBool(FlagCarry, !c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		return 1
	})

	// 0x76 is the sole exception inside the LD r8,r8 block (0x40-0x7F):
	// the bit pattern that would decode as "LD (HL), (HL)" is HALT
	// instead. See load.go's generator, which skips this opcode.
	define(0x76, "HALT", func(c *CPU) int {
		if !c.IME && c.hasPendingInterrupt() {
			c.haltBug = true
		} else {
			c.halted = true
		}
		return 1
	})

	define(0xF3, "DI", func(c *CPU) int {
		c.IME = false
		c.imePending = 0
		return 1
	})

	define(0xFB, "EI", func(c *CPU) int {
		c.imePending = 1
		return 1
	})
}
