// Package chip8 implements the CHIP-8 virtual machine: a 4096 byte
// address space, a register/stack CPU interpreting the 35-opcode
// instruction set, a 64x32 monochrome framebuffer and 60 Hz timers.
//
// All state lives in fixed-size buffers inside a single Machine value;
// no allocation happens after construction and multiple machines are
// fully independent.
package chip8

import (
	"math/rand"
	"time"

	"github.com/hexaflex/chip8/arch"
)

// FaultFunc decides what the run loop does with a fault reported by
// Step. Returning true continues execution as if the instruction were a
// no-op; returning false halts the run loop with the fault.
type FaultFunc func(error) bool

// Machine composes the CPU, memory, display and keypad into one
// runnable unit. It is not safe for concurrent use; a host drives it
// from a single goroutine.
type Machine struct {
	cpu     CPU
	mem     Memory
	display Display
	keypad  Keypad
	fault   FaultFunc
}

// New creates a new machine with the font sprites loaded and the
// program counter at ProgramStart. Optionally with the given debug
// trace handler.
func New(trace TraceFunc) *Machine {
	if trace == nil {
		trace = func(uint16, *arch.Instruction) { /* nop */ }
	}

	m := &Machine{}
	m.cpu = CPU{
		mem:     &m.mem,
		display: &m.display,
		keypad:  &m.keypad,
		trace:   trace,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.Init()
	return m
}

// Init resets all state: memory is zeroed and the font set rewritten,
// the display cleared, the keypad released and the register file
// restored to power-on values. The underlying buffers are reused, never
// reallocated.
func (m *Machine) Init() {
	m.mem.Reset()
	m.display.Clear()
	m.keypad = Keypad{}
	m.cpu.reset()
}

// LoadProgram loads the given ROM image, a raw big-endian opcode
// stream, at ProgramStart and re-initializes registers, stack, timers
// and display for a fresh run.
func (m *Machine) LoadProgram(rom []byte) error {
	if err := m.mem.LoadProgram(rom); err != nil {
		return err
	}

	m.display.Clear()
	m.keypad = Keypad{}
	m.cpu.reset()
	return nil
}

// SetKeys updates the keypad snapshot. The host calls this once per
// cycle, before Step.
func (m *Machine) SetKeys(mask uint16) {
	m.keypad.SetKeys(mask)
}

// Step executes one instruction. A returned fault describes the failed
// instruction; the machine remains usable and the host decides whether
// to continue.
func (m *Machine) Step() error {
	return m.cpu.Step()
}

// TickTimers decrements the delay and sound timers by one if nonzero.
// The host calls this at a fixed 60 Hz cadence.
func (m *Machine) TickTimers() {
	m.cpu.tickTimers()
}

// Framebuffer returns a copy of the display's rows, one uint64 per row
// with bit 63 as column 0.
func (m *Machine) Framebuffer() [DisplayHeight]uint64 {
	return m.display.Framebuffer()
}

// Pixel returns true if the display pixel at (x, y) is lit.
func (m *Machine) Pixel(x, y int) bool {
	return m.display.Pixel(x, y)
}

// SeedRandom reseeds the random number generator behind the RND
// instruction, yielding a deterministic instruction stream.
func (m *Machine) SeedRandom(seed int64) {
	m.cpu.rng = rand.New(rand.NewSource(seed))
}

// SetFaultPolicy installs the fault handler consulted by Run.
// A nil handler halts on every fault.
func (m *Machine) SetFaultPolicy(f FaultFunc) {
	m.fault = f
}

// Run repeatedly executes instructionsPerTick steps followed by one
// timer tick, then yields to the host for rendering and input. The loop
// terminates when yield returns false, or on a fault the installed
// fault policy does not absorb. Faults are only ever surfaced between
// completed instructions.
func (m *Machine) Run(instructionsPerTick int, yield func(*Machine) bool) error {
	if instructionsPerTick < 1 {
		instructionsPerTick = 1
	}

	for {
		for i := 0; i < instructionsPerTick; i++ {
			if err := m.Step(); err != nil {
				if m.fault == nil || !m.fault(err) {
					return err
				}
			}
		}

		m.TickTimers()

		if yield != nil && !yield(m) {
			return nil
		}
	}
}
