package arch

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		op   Opcode
		asm  string
	}{
		{0x00e0, CLS, "CLS"},
		{0x00ee, RET, "RET"},
		{0x0123, SYS, "SYS 0x123"},
		{0x1208, JP, "JP 0x208"},
		{0x2345, CALL, "CALL 0x345"},
		{0x3a12, SEB, "SE VA, 0x12"},
		{0x4a12, SNEB, "SNE VA, 0x12"},
		{0x5ab0, SER, "SE VA, VB"},
		{0x6a12, LDB, "LD VA, 0x12"},
		{0x7a12, ADDB, "ADD VA, 0x12"},
		{0x8ab0, LDR, "LD VA, VB"},
		{0x8ab1, OR, "OR VA, VB"},
		{0x8ab2, AND, "AND VA, VB"},
		{0x8ab3, XOR, "XOR VA, VB"},
		{0x8ab4, ADDR, "ADD VA, VB"},
		{0x8ab5, SUB, "SUB VA, VB"},
		{0x8ab6, SHR, "SHR VA"},
		{0x8ab7, SUBN, "SUBN VA, VB"},
		{0x8abe, SHL, "SHL VA"},
		{0x9ab0, SNER, "SNE VA, VB"},
		{0xa123, LDI, "LD I, 0x123"},
		{0xb123, JPV, "JP V0, 0x123"},
		{0xca12, RND, "RND VA, 0x12"},
		{0xdab5, DRW, "DRW VA, VB, 5"},
		{0xea9e, SKP, "SKP VA"},
		{0xeaa1, SKNP, "SKNP VA"},
		{0xfa07, LDDT, "LD VA, DT"},
		{0xfa0a, LDK, "LD VA, K"},
		{0xfa15, STDT, "LD DT, VA"},
		{0xfa18, STST, "LD ST, VA"},
		{0xfa1e, ADDI, "ADD I, VA"},
		{0xfa29, LDF, "LD F, VA"},
		{0xfa33, BCD, "LD B, VA"},
		{0xfa55, SAVE, "LD [I], VA"},
		{0xfa65, RESTORE, "LD VA, [I]"},
	}

	for _, tt := range tests {
		i, ok := Decode(tt.word)
		assert.True(t, ok)
		assert.Equal(t, tt.op, i.Op)
		assert.Equal(t, tt.asm, i.String())
	}
}

func TestDecodeOperands(t *testing.T) {
	i, ok := Decode(0xdab5)
	assert.True(t, ok)
	assert.Equal(t, uint16(0xdab5), i.Word)
	assert.Equal(t, byte(0xa), i.X)
	assert.Equal(t, byte(0xb), i.Y)
	assert.Equal(t, byte(0x5), i.N)
	assert.Equal(t, byte(0xb5), i.NN)
	assert.Equal(t, uint16(0xab5), i.NNN)
}

func TestDecodeInvalid(t *testing.T) {
	for _, word := range []uint16{
		0x5ab1, // 5xy_ requires a zero low nibble.
		0x8ab8,
		0x8abf,
		0x9ab1,
		0xea00,
		0xeaff,
		0xfa00,
		0xfaff,
	} {
		_, ok := Decode(word)
		assert.True(t, !ok)
	}
}

// Decoding depends on nothing but the word itself.
func TestDecodePure(t *testing.T) {
	for _, word := range []uint16{0x00e0, 0x8ab4, 0xfa65, 0x1fff} {
		a, aok := Decode(word)
		b, bok := Decode(word)
		assert.Equal(t, aok, bok)
		assert.Equal(t, a, b)
	}
}
