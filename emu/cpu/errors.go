package cpu

import (
	"errors"
	"fmt"
)

var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownOpcode  = errors.New("unknown opcode")
)

// UnknownOpcodeError carries the undecodable word and the address it was
// fetched from.
type UnknownOpcodeError struct {
	Opcode uint16
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("%v: 0x%04X at 0x%03X", ErrUnknownOpcode, e.Opcode, e.PC)
}

func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}

// HaltError wraps the condition that stopped the interpreter with the
// instruction that caused it.
type HaltError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("halted at 0x%03X (0x%04X): %v", e.PC, e.Opcode, e.Err)
}

func (e *HaltError) Unwrap() error {
	return e.Err
}
