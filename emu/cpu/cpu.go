// Package cpu is the CHIP-8 interpreter core: register file, stack, timers,
// keypad and the fetch-decode-execute cycle over memory and the display.
//
// The core never blocks. A host loop calls Step once per emulated
// instruction and TickTimers at 60 Hz, and updates the keypad in between.
package cpu

import (
	"github.com/beanboi7/chyp8/emu/display"
	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/sirupsen/logrus"
)

// VF is the register used for carry, borrow, shifted-out bit and collision.
const VF = 0xF

type EMU struct {
	cfg Config
	log *logrus.Logger

	memory  *memory.Memory
	display *display.Buffer
	V       [16]uint8
	I       uint16 //address register
	pc      uint16
	stack   Stack
	timers  Timers
	keys    Keypad

	waiting bool  //blocked on FX0A, pc stays on the FX0A word
	waitReg uint8 //register FX0A stores into
	halt    error
	cycles  uint64
}

// Registers is a copy of the register file for inspection.
type Registers struct {
	V          [16]uint8
	I          uint16
	PC         uint16
	StackDepth int
}

// New returns an interpreter with empty memory (font only) and PC at 0x200.
func New(cfg Config) *EMU {
	cfg = cfg.withDefaults()
	emu := &EMU{
		cfg:     cfg,
		log:     cfg.Logger,
		memory:  memory.New(),
		display: display.New(),
		pc:      memory.ProgramStart,
	}
	return emu
}

// Reset clears all state and loads rom. An oversize rom is refused and
// leaves the interpreter halted with memory.ErrROMTooLarge.
func (emu *EMU) Reset(rom []byte) error {
	emu.memory.Reset()
	emu.display.Clear()
	emu.V = [16]uint8{}
	emu.I = 0
	emu.pc = memory.ProgramStart
	emu.stack.Reset()
	emu.timers = Timers{}
	emu.keys.ReleaseAll()
	emu.waiting = false
	emu.halt = nil
	emu.cycles = 0

	if err := emu.memory.Load(rom); err != nil {
		emu.halt = err
		return err
	}
	emu.log.WithField("size", len(rom)).Debug("rom loaded")
	return nil
}

// Step runs one cycle: a single instruction, or one keypad poll while waiting
// on FX0A. It returns nil while the interpreter can continue and the halting
// error once it has stopped. Further calls after a halt do nothing and return
// the same error.
func (emu *EMU) Step() error {
	if emu.halt != nil {
		return emu.halt
	}
	emu.cycles++

	if emu.waiting {
		if key, ok := emu.keys.First(); ok {
			emu.V[emu.waitReg] = key
			emu.waiting = false
			emu.pc += 2
		}
		return nil
	}

	fetchPC := emu.pc
	opcode, err := emu.fetch()
	if err != nil {
		return emu.stop(fetchPC, 0, err)
	}
	emu.pc += 2

	ins := Decode(opcode)
	if emu.log.IsLevelEnabled(logrus.TraceLevel) {
		emu.log.WithFields(logrus.Fields{
			"pc":     fetchPC,
			"opcode": opcode,
		}).Trace(ins.String())
	}

	if err := emu.execute(ins, fetchPC); err != nil {
		return emu.stop(fetchPC, opcode, err)
	}
	return nil
}

func (emu *EMU) fetch() (uint16, error) {
	hi, err := emu.memory.Read(emu.pc)
	if err != nil {
		return 0, err
	}
	lo, err := emu.memory.Read(emu.pc + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (emu *EMU) stop(pc, opcode uint16, err error) error {
	emu.halt = &HaltError{PC: pc, Opcode: opcode, Err: err}
	emu.log.WithError(err).Error("interpreter halted")
	return emu.halt
}

// TickTimers counts the delay and sound timers down once. Call at TimerHz.
func (emu *EMU) TickTimers() {
	emu.timers.Tick()
}

func (emu *EMU) Halted() bool {
	return emu.halt != nil
}

// Err is the condition that halted the interpreter, nil while running.
func (emu *EMU) Err() error {
	return emu.halt
}

// Waiting reports whether the interpreter is blocked on FX0A.
func (emu *EMU) Waiting() bool {
	return emu.waiting
}

// Keypad is the key state shared with the input side.
func (emu *EMU) Keypad() *Keypad {
	return &emu.keys
}

func (emu *EMU) Display() *display.Buffer {
	return emu.display
}

func (emu *EMU) Memory() *memory.Memory {
	return emu.memory
}

func (emu *EMU) Timers() Timers {
	return emu.timers
}

func (emu *EMU) Registers() Registers {
	return Registers{
		V:          emu.V,
		I:          emu.I,
		PC:         emu.pc,
		StackDepth: emu.stack.Depth(),
	}
}

// Cycles is the number of Step calls since the last Reset, including
// keypad polls.
func (emu *EMU) Cycles() uint64 {
	return emu.cycles
}
