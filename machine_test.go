package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMachineLifecycle(t *testing.T) {
	m := New(nil)

	// The font set is loaded at construction.
	b, err := m.mem.ReadByte(fontStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xf0), b)

	//   LD V0, 0x07
	//   DRW V0, V0, 1
	assert.NoError(t, m.LoadProgram(prog(0x6007, 0xd001)))
	step(t, m, 2)

	assert.Equal(t, uint8(7), m.cpu.v[0])
	assert.True(t, m.Pixel(7, 7))

	// A fresh load reuses the buffers but resets registers, PC and
	// display state.
	assert.NoError(t, m.LoadProgram(prog(0x6001)))

	assert.Equal(t, uint16(ProgramStart), m.cpu.pc)
	assert.Equal(t, uint8(0), m.cpu.v[0])
	assert.Equal(t, uint8(0), m.cpu.sp)
	for _, row := range m.Framebuffer() {
		assert.Equal(t, uint64(0), row)
	}
}

func TestMachineInit(t *testing.T) {
	m := newTestMachine(t, 0x6005, 0xf015)
	step(t, m, 2)
	assert.Equal(t, uint8(5), m.cpu.dt)

	m.Init()

	assert.Equal(t, uint8(0), m.cpu.dt)
	assert.Equal(t, uint16(ProgramStart), m.cpu.pc)

	// Init also wipes the loaded program.
	b, err := m.mem.ReadByte(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestMachineRunCadence(t *testing.T) {
	//   LD V0, 0x05
	//   LD DT, V0
	// loop:
	//   JP loop

	m := newTestMachine(t, 0x6005, 0xf015, 0x1204)

	var ticks int
	err := m.Run(2, func(*Machine) bool {
		ticks++
		return ticks < 5
	})
	assert.NoError(t, err)

	// Five ticks with two instructions each: the timer was set during
	// the first tick and decremented once per tick since.
	assert.Equal(t, 5, ticks)
	assert.Equal(t, uint8(0), m.cpu.dt)
}

func TestMachineRunFaultHalts(t *testing.T) {
	m := newTestMachine(t, 0xffff)

	err := m.Run(1, func(*Machine) bool { return true })
	assert.True(t, errors.Is(err, ErrInvalidOpcode))
}

func TestMachineRunFaultPolicy(t *testing.T) {
	// loop:
	//   <invalid>
	//   JP loop

	m := newTestMachine(t, 0xffff, 0x1200)

	var faults int
	m.SetFaultPolicy(func(err error) bool {
		faults++
		return errors.Is(err, ErrInvalidOpcode)
	})

	var ticks int
	err := m.Run(2, func(*Machine) bool {
		ticks++
		return ticks < 3
	})

	// Invalid opcodes were absorbed as no-ops and the loop kept running.
	assert.NoError(t, err)
	assert.Equal(t, 3, faults)
}
