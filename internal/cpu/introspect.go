package cpu

// Name returns the mnemonic of the unprefixed instruction at opcode, or
// the empty string if opcode has no defined handler (the eleven
// architecturally-undefined opcodes, or the 0xCB prefix byte itself).
func Name(opcode uint8) string {
	return opcodeTable[opcode].name
}

// CBName returns the mnemonic of the CB-prefixed instruction at opcode.
func CBName(opcode uint8) string {
	return cbOpcodeTable[opcode].name
}

// Defined reports whether opcode dispatches to a handler in the
// unprefixed table: used by debugging and conformance tooling to skip
// the undefined opcodes and the 0xCB prefix byte during enumeration.
func Defined(opcode uint8) bool {
	return opcode != 0xCB && !undefinedOpcodes[opcode] && opcodeTable[opcode].fn != nil
}

// CBDefined reports whether opcode dispatches to a handler in the
// CB-prefixed table. Every one of the 256 CB opcodes is defined, but
// tooling that enumerates both tables generically still wants a single
// predicate.
func CBDefined(opcode uint8) bool {
	return cbOpcodeTable[opcode].fn != nil
}
