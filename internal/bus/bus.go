// Package bus defines the memory contract the CPU core reads and writes
// through, plus a flat 64 KiB reference implementation for tests, tools
// and standalone programs that have no real memory map (MBC banking, I/O
// registers, mirroring) to plug in.
package bus

// Bus is the memory-mapped address space the CPU core is driven against.
// Addresses are always taken modulo 2^16 by implementations; callers never
// need to range-check a uint16 before passing it in.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, value uint8)
	Read16(addr uint16) uint16
	Write16(addr uint16, value uint16)
}

// FlatMemory is the simplest possible Bus: a single unbanked 64 KiB array
// with no mirroring and no I/O-register side effects. It is not a Game Boy
// memory map — cartridge banking, the PPU/APU registers and mirrored RAM
// are all external collaborators per the core's scope — but it is enough
// to fetch-decode-execute against, which is what the interpreter core
// tests and tools need.
type FlatMemory struct {
	ram [0x10000]uint8
}

// NewFlatMemory returns a zeroed 64 KiB address space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// LoadAt copies data into memory starting at addr, wrapping around the top
// of the address space if it overruns 0xFFFF.
func (m *FlatMemory) LoadAt(addr uint16, data []byte) {
	for i, b := range data {
		m.ram[uint16(addr)+uint16(i)] = b
	}
}

func (m *FlatMemory) Read8(addr uint16) uint8 {
	return m.ram[addr]
}

func (m *FlatMemory) Write8(addr uint16, value uint8) {
	m.ram[addr] = value
}

// Read16 composes two bytes little-endian: low byte at addr, high byte at
// addr+1.
func (m *FlatMemory) Read16(addr uint16) uint16 {
	return uint16(m.Read8(addr)) | uint16(m.Read8(addr+1))<<8
}

// Write16 writes value little-endian: low byte at addr, high byte at
// addr+1.
func (m *FlatMemory) Write16(addr uint16, value uint16) {
	m.Write8(addr, uint8(value))
	m.Write8(addr+1, uint8(value>>8))
}

var _ Bus = (*FlatMemory)(nil)
