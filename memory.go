package chip8

import "github.com/pkg/errors"

// Memory geometry. The region below ProgramStart is reserved for the
// interpreter and holds the font sprites; program code is never loaded
// there by LoadProgram, though programs are free to address it.
const (
	MemorySize     = 4096                      // Total memory capacity in bytes.
	ProgramStart   = 0x200                     // Load address for program code.
	MaxProgramSize = MemorySize - ProgramStart // Largest accepted ROM image.

	fontStart     = 0x000
	fontGlyphSize = 5
)

// Memory defines the machine's 4096 byte address space.
type Memory struct {
	data [MemorySize]byte
}

// Reset zeroes the address space and rewrites the font sprites.
func (m *Memory) Reset() {
	m.data = [MemorySize]byte{}
	copy(m.data[fontStart:], fontSprites[:])
}

// ReadByte returns the byte at the given address.
func (m *Memory) ReadByte(addr int) (byte, error) {
	if addr < 0 || addr >= MemorySize {
		return 0, errors.Wrapf(ErrAddressOutOfBounds, "read 0x%03X", addr)
	}
	return m.data[addr], nil
}

// ReadWord returns the big-endian 16-bit value at the given address.
func (m *Memory) ReadWord(addr int) (uint16, error) {
	if addr < 0 || addr+1 >= MemorySize {
		return 0, errors.Wrapf(ErrAddressOutOfBounds, "read 0x%03X", addr)
	}
	return uint16(m.data[addr])<<8 | uint16(m.data[addr+1]), nil
}

// WriteByte sets the byte at the given address.
func (m *Memory) WriteByte(addr int, value byte) error {
	if addr < 0 || addr >= MemorySize {
		return errors.Wrapf(ErrAddressOutOfBounds, "write 0x%03X", addr)
	}
	m.data[addr] = value
	return nil
}

// Read reads len(p) bytes from memory into p, starting at the given
// address. The range is validated up front; a failed read leaves p
// untouched.
func (m *Memory) Read(addr int, p []byte) error {
	if addr < 0 || addr+len(p) > MemorySize {
		return errors.Wrapf(ErrAddressOutOfBounds, "read %d bytes at 0x%03X", len(p), addr)
	}
	copy(p, m.data[addr:])
	return nil
}

// Write writes len(p) bytes from p into memory, starting at the given
// address. The range is validated up front; a failed write leaves memory
// untouched.
func (m *Memory) Write(addr int, p []byte) error {
	if addr < 0 || addr+len(p) > MemorySize {
		return errors.Wrapf(ErrAddressOutOfBounds, "write %d bytes at 0x%03X", len(p), addr)
	}
	copy(m.data[addr:], p)
	return nil
}

// LoadProgram zeroes the program region and copies the given ROM image
// into it, starting at ProgramStart.
func (m *Memory) LoadProgram(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes exceeds %d", len(rom), MaxProgramSize)
	}

	for i := ProgramStart; i < MemorySize; i++ {
		m.data[i] = 0
	}

	copy(m.data[ProgramStart:], rom)
	return nil
}

// FontAddr returns the address of the font sprite for the given hex digit.
func (m *Memory) FontAddr(digit byte) (uint16, error) {
	if digit > 0xf {
		return 0, errors.Wrapf(ErrUnmappedFont, "digit 0x%02X", digit)
	}
	return fontStart + uint16(digit)*fontGlyphSize, nil
}
