package chip8

import "github.com/pkg/errors"

// Fault conditions reported by LoadProgram and Step. Faults are
// deterministic functions of program content; none of them are transient.
// Fault sites wrap these with address context, so hosts should classify
// with errors.Is.
var (
	ErrAddressOutOfBounds = errors.New("address out of bounds")
	ErrStackOverflow      = errors.New("call stack overflow")
	ErrStackUnderflow     = errors.New("call stack underflow")
	ErrProgramTooLarge    = errors.New("program too large")
	ErrInvalidOpcode      = errors.New("invalid opcode")
	ErrUnmappedFont       = errors.New("unmapped font sprite")
)
