package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryReadWrite(t *testing.T) {
	var m Memory
	m.Reset()

	assert.NoError(t, m.WriteByte(0x300, 0x12))
	assert.NoError(t, m.WriteByte(0x301, 0x34))

	b, err := m.ReadByte(0x300)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), b)

	// Words are big-endian.
	w, err := m.ReadWord(0x300)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)
}

func TestMemoryBounds(t *testing.T) {
	var m Memory
	m.Reset()

	_, err := m.ReadByte(-1)
	assert.True(t, errors.Is(err, ErrAddressOutOfBounds))

	_, err = m.ReadByte(MemorySize)
	assert.True(t, errors.Is(err, ErrAddressOutOfBounds))

	// The second byte of the word falls outside the address space.
	_, err = m.ReadWord(MemorySize - 1)
	assert.True(t, errors.Is(err, ErrAddressOutOfBounds))

	err = m.WriteByte(MemorySize, 1)
	assert.True(t, errors.Is(err, ErrAddressOutOfBounds))

	var p [10]byte
	assert.True(t, errors.Is(m.Read(MemorySize-5, p[:]), ErrAddressOutOfBounds))
	assert.True(t, errors.Is(m.Write(MemorySize-5, p[:]), ErrAddressOutOfBounds))

	// A failed ranged write must leave memory untouched.
	b, err := m.ReadByte(MemorySize - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestMemoryLoadProgram(t *testing.T) {
	var m Memory
	m.Reset()

	rom := make([]byte, MaxProgramSize)
	rom[0] = 0xaa
	rom[len(rom)-1] = 0xbb
	assert.NoError(t, m.LoadProgram(rom))

	b, err := m.ReadByte(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xaa), b)

	b, err = m.ReadByte(MemorySize - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xbb), b)

	// One byte over the limit is rejected.
	err = m.LoadProgram(make([]byte, MaxProgramSize+1))
	assert.True(t, errors.Is(err, ErrProgramTooLarge))

	// Loading a smaller program clears remnants of the previous one.
	assert.NoError(t, m.LoadProgram([]byte{0x01}))

	b, err = m.ReadByte(MemorySize - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestMemoryFont(t *testing.T) {
	var m Memory
	m.Reset()

	// Digit 0 starts at the base of the font region.
	b, err := m.ReadByte(fontStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xf0), b)

	// Digit 1, second row.
	b, err = m.ReadByte(fontStart + fontGlyphSize + 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x60), b)

	addr, err := m.FontAddr(0xf)
	assert.NoError(t, err)
	assert.Equal(t, uint16(fontStart+15*fontGlyphSize), addr)

	_, err = m.FontAddr(0x10)
	assert.True(t, errors.Is(err, ErrUnmappedFont))
}
