// Package arch defines the CHIP-8 instruction set along with
// some related helper functions.
package arch

// Opcode identifies one of the 35 instruction forms.
type Opcode int

// Known opcodes.
const (
	CLS  Opcode = iota // 00E0: clear the display.
	RET                // 00EE: return from a subroutine.
	SYS                // 0nnn: native routine call; treated as a no-op.
	JP                 // 1nnn: jump to address.
	CALL               // 2nnn: call subroutine at address.
	SEB                // 3xnn: skip next instruction if VX == nn.
	SNEB               // 4xnn: skip next instruction if VX != nn.
	SER                // 5xy0: skip next instruction if VX == VY.
	LDB                // 6xnn: VX = nn.
	ADDB               // 7xnn: VX += nn, no carry flag.
	LDR                // 8xy0: VX = VY.
	OR                 // 8xy1: VX |= VY.
	AND                // 8xy2: VX &= VY.
	XOR                // 8xy3: VX ^= VY.
	ADDR               // 8xy4: VX += VY, VF = carry.
	SUB                // 8xy5: VX -= VY, VF = no borrow.
	SHR                // 8xy6: VF = VX & 1, VX >>= 1.
	SUBN               // 8xy7: VX = VY - VX, VF = no borrow.
	SHL                // 8xyE: VF = VX >> 7, VX <<= 1.
	SNER               // 9xy0: skip next instruction if VX != VY.
	LDI                // Annn: I = nnn.
	JPV                // Bnnn: jump to nnn + V0.
	RND                // Cxnn: VX = random byte & nn.
	DRW                // Dxyn: draw n-byte sprite at (VX, VY), VF = collision.
	SKP                // Ex9E: skip next instruction if key VX is pressed.
	SKNP               // ExA1: skip next instruction if key VX is not pressed.
	LDDT               // Fx07: VX = delay timer.
	LDK                // Fx0A: wait for a key press, VX = key.
	STDT               // Fx15: delay timer = VX.
	STST               // Fx18: sound timer = VX.
	ADDI               // Fx1E: I += VX, no overflow flag.
	LDF                // Fx29: I = font sprite address for digit VX.
	BCD                // Fx33: memory[I..I+3) = decimal digits of VX.
	SAVE               // Fx55: memory[I..] = V0..VX.
	RESTORE            // Fx65: V0..VX = memory[I..].
)

// Name returns the assembly mnemonic for the given opcode.
// Returns false if the opcode is not recognized.
func Name(opcode Opcode) (string, bool) {
	switch opcode {
	case CLS:
		return "CLS", true
	case RET:
		return "RET", true
	case SYS:
		return "SYS", true
	case JP, JPV:
		return "JP", true
	case CALL:
		return "CALL", true
	case SEB, SER:
		return "SE", true
	case SNEB, SNER:
		return "SNE", true
	case LDB, LDR, LDI, LDDT, LDK, STDT, STST, LDF, BCD, SAVE, RESTORE:
		return "LD", true
	case ADDB, ADDR, ADDI:
		return "ADD", true
	case OR:
		return "OR", true
	case AND:
		return "AND", true
	case XOR:
		return "XOR", true
	case SUB:
		return "SUB", true
	case SHR:
		return "SHR", true
	case SUBN:
		return "SUBN", true
	case SHL:
		return "SHL", true
	case RND:
		return "RND", true
	case DRW:
		return "DRW", true
	case SKP:
		return "SKP", true
	case SKNP:
		return "SKNP", true
	}
	return "", false
}
