package chip8

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
)

// StackDepth is the number of return addresses the call stack can hold.
const StackDepth = 16

// TraceFunc represents a callback handler for debug trace output.
// It receives the address and decoded form of every executed instruction.
type TraceFunc func(pc uint16, i *arch.Instruction)

// CPU implements the fetch-decode-execute cycle. It owns the registers,
// program counter, call stack and timers, and applies opcode effects to
// the memory, display and keypad it is wired to.
type CPU struct {
	mem     *Memory
	display *Display
	keypad  *Keypad
	trace   TraceFunc
	rng     *rand.Rand

	v     [16]uint8            // General purpose registers V0-VF.
	stack [StackDepth]uint16   // Return addresses; sp indexes the next free slot.
	i     uint16               // Address register.
	pc    uint16               // Program counter.
	sp    uint8                // Stack pointer, in [0, StackDepth].
	dt    uint8                // Delay timer.
	st    uint8                // Sound timer.
	instr arch.Instruction     // Decoded instruction data.
}

// reset restores the register file to its power-on state.
// Memory and display contents are not touched.
func (c *CPU) reset() {
	c.v = [16]uint8{}
	c.stack = [StackDepth]uint16{}
	c.i = 0
	c.pc = ProgramStart
	c.sp = 0
	c.dt = 0
	c.st = 0
}

// tickTimers decrements the delay and sound timers by one if nonzero.
// It is driven by the host at a fixed 60 Hz cadence, independent of the
// instruction execution rate.
func (c *CPU) tickTimers() {
	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}
}

// Step performs a single fetch-decode-execute cycle.
//
// Every instruction either completes in full or leaves the machine
// unchanged; faults are returned, never partially applied. On an invalid
// opcode the program counter has already advanced past the offending
// word, so a host that chooses to continue makes progress.
func (c *CPU) Step() error {
	word, err := c.mem.ReadWord(int(c.pc))
	if err != nil {
		return err
	}

	instr := &c.instr
	var ok bool
	if *instr, ok = arch.Decode(word); !ok {
		c.pc += 2
		return errors.Wrapf(ErrInvalidOpcode, "0x%04X at 0x%03X", word, c.pc-2)
	}

	c.trace(c.pc, instr)

	switch instr.Op {
	case arch.CLS:
		c.display.Clear()
		c.pc += 2

	case arch.RET:
		if c.sp == 0 {
			return errors.Wrapf(ErrStackUnderflow, "RET at 0x%03X", c.pc)
		}
		c.sp--
		c.pc = c.stack[c.sp]

	case arch.SYS:
		// Native routine calls have no host machine to run on.
		c.pc += 2

	case arch.JP:
		c.pc = instr.NNN

	case arch.CALL:
		if c.sp == StackDepth {
			return errors.Wrapf(ErrStackOverflow, "CALL 0x%03X at 0x%03X", instr.NNN, c.pc)
		}
		c.stack[c.sp] = c.pc + 2
		c.sp++
		c.pc = instr.NNN

	case arch.SEB:
		c.skipIf(c.v[instr.X] == instr.NN)
	case arch.SNEB:
		c.skipIf(c.v[instr.X] != instr.NN)
	case arch.SER:
		c.skipIf(c.v[instr.X] == c.v[instr.Y])
	case arch.SNER:
		c.skipIf(c.v[instr.X] != c.v[instr.Y])

	case arch.LDB:
		c.v[instr.X] = instr.NN
		c.pc += 2
	case arch.ADDB:
		c.v[instr.X] += instr.NN
		c.pc += 2

	case arch.LDR:
		c.v[instr.X] = c.v[instr.Y]
		c.pc += 2
	case arch.OR:
		c.v[instr.X] |= c.v[instr.Y]
		c.pc += 2
	case arch.AND:
		c.v[instr.X] &= c.v[instr.Y]
		c.pc += 2
	case arch.XOR:
		c.v[instr.X] ^= c.v[instr.Y]
		c.pc += 2

	case arch.ADDR:
		sum := uint16(c.v[instr.X]) + uint16(c.v[instr.Y])
		c.v[instr.X] = uint8(sum)
		c.setFlag(sum > 0xff)
		c.pc += 2

	case arch.SUB:
		noBorrow := c.v[instr.X] >= c.v[instr.Y]
		c.v[instr.X] -= c.v[instr.Y]
		c.setFlag(noBorrow)
		c.pc += 2

	case arch.SUBN:
		noBorrow := c.v[instr.Y] >= c.v[instr.X]
		c.v[instr.X] = c.v[instr.Y] - c.v[instr.X]
		c.setFlag(noBorrow)
		c.pc += 2

	case arch.SHR:
		bit := c.v[instr.X] & 1
		c.v[instr.X] >>= 1
		c.v[0xf] = bit
		c.pc += 2

	case arch.SHL:
		bit := c.v[instr.X] >> 7
		c.v[instr.X] <<= 1
		c.v[0xf] = bit
		c.pc += 2

	case arch.LDI:
		c.i = instr.NNN
		c.pc += 2

	case arch.JPV:
		c.pc = instr.NNN + uint16(c.v[0])

	case arch.RND:
		c.v[instr.X] = uint8(c.rng.Intn(256)) & instr.NN
		c.pc += 2

	case arch.DRW:
		var sprite [16]byte
		n := int(instr.N)
		if err := c.mem.Read(int(c.i), sprite[:n]); err != nil {
			return err
		}
		collision := c.display.DrawSprite(int(c.v[instr.X]), int(c.v[instr.Y]), sprite[:n])
		c.setFlag(collision)
		c.pc += 2

	case arch.SKP:
		c.skipIf(c.keypad.Pressed(c.v[instr.X]))
	case arch.SKNP:
		c.skipIf(!c.keypad.Pressed(c.v[instr.X]))

	case arch.LDDT:
		c.v[instr.X] = c.dt
		c.pc += 2
	case arch.STDT:
		c.dt = c.v[instr.X]
		c.pc += 2
	case arch.STST:
		c.st = c.v[instr.X]
		c.pc += 2

	case arch.LDK:
		// The sole suspension point. With no fresh key press the program
		// counter stays put and the instruction retries next cycle, after
		// the host has had a chance to deliver key events.
		key, ok := c.keypad.WaitForKey()
		if !ok {
			return nil
		}
		c.v[instr.X] = key
		c.pc += 2

	case arch.ADDI:
		c.i += uint16(c.v[instr.X])
		c.pc += 2

	case arch.LDF:
		addr, err := c.mem.FontAddr(c.v[instr.X] & 0xf)
		if err != nil {
			return err
		}
		c.i = addr
		c.pc += 2

	case arch.BCD:
		v := c.v[instr.X]
		digits := [3]byte{v / 100, v / 10 % 10, v % 10}
		if err := c.mem.Write(int(c.i), digits[:]); err != nil {
			return err
		}
		c.pc += 2

	case arch.SAVE:
		if err := c.mem.Write(int(c.i), c.v[:instr.X+1]); err != nil {
			return err
		}
		c.pc += 2

	case arch.RESTORE:
		if err := c.mem.Read(int(c.i), c.v[:instr.X+1]); err != nil {
			return err
		}
		c.pc += 2
	}

	return nil
}

// skipIf advances the program counter past the next instruction if the
// condition holds, or to the next instruction if it does not.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

// setFlag sets VF to 1 or 0.
func (c *CPU) setFlag(v bool) {
	if v {
		c.v[0xf] = 1
	} else {
		c.v[0xf] = 0
	}
}
