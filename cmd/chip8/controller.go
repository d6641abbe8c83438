package main

import (
	"time"

	"github.com/hexaflex/chip8"
)

// MachineController controls the execution of a machine.
type MachineController struct {
	machine    *chip8.Machine
	continueOn func(error) bool
	start      time.Time
	cycleCount uint64
	running    bool
}

// NewMachineController creates a new controller for the given machine.
// continueOn decides which faults are absorbed; faults it rejects stop
// execution.
func NewMachineController(m *chip8.Machine, continueOn func(error) bool) *MachineController {
	if continueOn == nil {
		continueOn = func(error) bool { return false }
	}

	return &MachineController{
		machine:    m,
		continueOn: continueOn,
	}
}

// Running returns true if the machine is currently running.
func (c *MachineController) Running() bool {
	return c.running
}

// Frequency returns the current clock frequency in herz.
func (c *MachineController) Frequency() float64 {
	if c.running {
		return float64(c.cycleCount) / time.Since(c.start).Seconds()
	} else {
		return 0
	}
}

// ToggleRun starts or stops program execution.
func (c *MachineController) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins execution of the program.
func (c *MachineController) Start() {
	c.setRunning(true)
}

// Stop pauses execution of the program.
func (c *MachineController) Stop() {
	c.setRunning(false)
}

// Step performs a single execution step.
// A fault the controller's policy does not absorb pauses execution.
func (c *MachineController) Step() error {
	c.cycleCount++

	err := c.machine.Step()
	if err != nil && !c.continueOn(err) {
		c.setRunning(false)
		return err
	}

	return nil
}

// setRunning determines if the machine is running or is paused.
func (c *MachineController) setRunning(v bool) {
	c.running = v
	c.start = time.Now()
	c.cycleCount = 0
}
