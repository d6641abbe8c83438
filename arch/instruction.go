package arch

import "fmt"

// Instruction defines decoded instruction data.
type Instruction struct {
	Word uint16 // Raw instruction word.
	Op   Opcode // Instruction opcode.
	X    byte   // First register operand.
	Y    byte   // Second register operand.
	N    byte   // 4-bit immediate.
	NN   byte   // 8-bit immediate.
	NNN  uint16 // 12-bit address.
}

// Decode maps the given big-endian instruction word to one of the 35
// instruction forms. It is a pure function of the word; the same input
// always yields the same instruction. Returns false if the bit pattern
// does not match any known instruction.
func Decode(word uint16) (Instruction, bool) {
	i := Instruction{
		Word: word,
		X:    byte(word >> 8 & 0xf),
		Y:    byte(word >> 4 & 0xf),
		N:    byte(word & 0xf),
		NN:   byte(word),
		NNN:  word & 0xfff,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			i.Op = CLS
		case 0x00ee:
			i.Op = RET
		default:
			i.Op = SYS
		}
	case 0x1:
		i.Op = JP
	case 0x2:
		i.Op = CALL
	case 0x3:
		i.Op = SEB
	case 0x4:
		i.Op = SNEB
	case 0x5:
		if i.N != 0 {
			return i, false
		}
		i.Op = SER
	case 0x6:
		i.Op = LDB
	case 0x7:
		i.Op = ADDB
	case 0x8:
		switch i.N {
		case 0x0:
			i.Op = LDR
		case 0x1:
			i.Op = OR
		case 0x2:
			i.Op = AND
		case 0x3:
			i.Op = XOR
		case 0x4:
			i.Op = ADDR
		case 0x5:
			i.Op = SUB
		case 0x6:
			i.Op = SHR
		case 0x7:
			i.Op = SUBN
		case 0xe:
			i.Op = SHL
		default:
			return i, false
		}
	case 0x9:
		if i.N != 0 {
			return i, false
		}
		i.Op = SNER
	case 0xa:
		i.Op = LDI
	case 0xb:
		i.Op = JPV
	case 0xc:
		i.Op = RND
	case 0xd:
		i.Op = DRW
	case 0xe:
		switch i.NN {
		case 0x9e:
			i.Op = SKP
		case 0xa1:
			i.Op = SKNP
		default:
			return i, false
		}
	case 0xf:
		switch i.NN {
		case 0x07:
			i.Op = LDDT
		case 0x0a:
			i.Op = LDK
		case 0x15:
			i.Op = STDT
		case 0x18:
			i.Op = STST
		case 0x1e:
			i.Op = ADDI
		case 0x29:
			i.Op = LDF
		case 0x33:
			i.Op = BCD
		case 0x55:
			i.Op = SAVE
		case 0x65:
			i.Op = RESTORE
		default:
			return i, false
		}
	}

	return i, true
}

// String returns the assembly representation of the instruction.
func (i Instruction) String() string {
	name, ok := Name(i.Op)
	if !ok {
		return fmt.Sprintf(".dw 0x%04X", i.Word)
	}

	switch i.Op {
	case CLS, RET:
		return name
	case SYS, JP, CALL:
		return fmt.Sprintf("%s 0x%03X", name, i.NNN)
	case LDI:
		return fmt.Sprintf("%s I, 0x%03X", name, i.NNN)
	case JPV:
		return fmt.Sprintf("%s V0, 0x%03X", name, i.NNN)
	case SEB, SNEB, LDB, ADDB, RND:
		return fmt.Sprintf("%s V%X, 0x%02X", name, i.X, i.NN)
	case SER, SNER, LDR, OR, AND, XOR, ADDR, SUB, SUBN:
		return fmt.Sprintf("%s V%X, V%X", name, i.X, i.Y)
	case SHR, SHL, SKP, SKNP:
		return fmt.Sprintf("%s V%X", name, i.X)
	case DRW:
		return fmt.Sprintf("%s V%X, V%X, %d", name, i.X, i.Y, i.N)
	case LDDT:
		return fmt.Sprintf("%s V%X, DT", name, i.X)
	case LDK:
		return fmt.Sprintf("%s V%X, K", name, i.X)
	case STDT:
		return fmt.Sprintf("%s DT, V%X", name, i.X)
	case STST:
		return fmt.Sprintf("%s ST, V%X", name, i.X)
	case ADDI:
		return fmt.Sprintf("%s I, V%X", name, i.X)
	case LDF:
		return fmt.Sprintf("%s F, V%X", name, i.X)
	case BCD:
		return fmt.Sprintf("%s B, V%X", name, i.X)
	case SAVE:
		return fmt.Sprintf("%s [I], V%X", name, i.X)
	case RESTORE:
		return fmt.Sprintf("%s V%X, [I]", name, i.X)
	}

	return name
}
