package cpu

import (
	"github.com/beanboi7/chyp8/emu/memory"
)

// execute runs a decoded instruction. pc has already been moved past it, so
// jumps simply overwrite it and skips add another 2. Handlers that report a
// flag write VF after the result, so VF as a destination ends up holding the
// flag.
func (emu *EMU) execute(ins Instruction, fetchPC uint16) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpSys:
		// machine code routines of the original interpreter, ignored

	case OpCls:
		emu.display.Clear()

	case OpRet:
		addr, err := emu.stack.Pop()
		if err != nil {
			return err
		}
		emu.pc = addr

	case OpJp:
		emu.pc = ins.NNN

	case OpCall:
		if err := emu.stack.Push(emu.pc); err != nil {
			return err
		}
		emu.pc = ins.NNN

	case OpSeByte:
		emu.skipIf(emu.V[x] == ins.NN)
	case OpSneByte:
		emu.skipIf(emu.V[x] != ins.NN)
	case OpSeReg:
		emu.skipIf(emu.V[x] == emu.V[y])
	case OpSneReg:
		emu.skipIf(emu.V[x] != emu.V[y])

	case OpLdByte:
		emu.V[x] = ins.NN
	case OpAddByte:
		emu.V[x] += ins.NN

	case OpLdReg:
		emu.V[x] = emu.V[y]
	case OpOr:
		emu.V[x] |= emu.V[y]
	case OpAnd:
		emu.V[x] &= emu.V[y]
	case OpXor:
		emu.V[x] ^= emu.V[y]

	case OpAddReg:
		sum := uint16(emu.V[x]) + uint16(emu.V[y])
		emu.V[x] = uint8(sum)
		emu.V[VF] = flag(sum > 0xFF)

	case OpSub:
		notBorrow := emu.V[x] >= emu.V[y]
		emu.V[x] -= emu.V[y]
		emu.V[VF] = flag(notBorrow)

	case OpSubn:
		notBorrow := emu.V[y] >= emu.V[x]
		emu.V[x] = emu.V[y] - emu.V[x]
		emu.V[VF] = flag(notBorrow)

	case OpShr:
		src := emu.shiftSource(x, y)
		emu.V[x] = src >> 1
		emu.V[VF] = src & 0x01

	case OpShl:
		src := emu.shiftSource(x, y)
		emu.V[x] = src << 1
		emu.V[VF] = src >> 7

	case OpLdI:
		emu.I = ins.NNN

	case OpJpV0:
		emu.pc = ins.NNN + uint16(emu.V[0])

	case OpRnd:
		emu.V[x] = uint8(emu.cfg.Rand.Intn(256)) & ins.NN

	case OpDrw:
		rows, err := emu.readRange(emu.I, int(ins.N))
		if err != nil {
			return err
		}
		collision := emu.display.DrawSprite(int(emu.V[x]), int(emu.V[y]), rows)
		emu.V[VF] = flag(collision)

	case OpSkp:
		emu.skipIf(emu.keys.Pressed(emu.V[x]))
	case OpSknp:
		emu.skipIf(!emu.keys.Pressed(emu.V[x]))

	case OpLdVxDT:
		emu.V[x] = emu.timers.Delay
	case OpLdKey:
		// rewind onto FX0A; Step polls the keypad until a key is down
		emu.pc = fetchPC
		emu.waiting = true
		emu.waitReg = x
	case OpLdDTVx:
		emu.timers.Delay = emu.V[x]
	case OpLdSTVx:
		emu.timers.Sound = emu.V[x]

	case OpAddI:
		sum := emu.I + uint16(emu.V[x])
		if emu.cfg.Quirks.IndexOverflow {
			emu.V[VF] = flag(sum > 0x0FFF)
		}
		emu.I = sum

	case OpLdFont:
		emu.I = memory.FontStart + uint16(emu.V[x]&0x0F)*memory.GlyphSize

	case OpLdBCD:
		v := emu.V[x]
		digits := [3]uint8{v / 100, (v / 10) % 10, v % 10}
		for i, d := range digits {
			if err := emu.writeAt(emu.I+uint16(i), d); err != nil {
				return err
			}
		}

	case OpStore:
		for i := uint16(0); i <= uint16(x); i++ {
			if err := emu.writeAt(emu.I+i, emu.V[i]); err != nil {
				return err
			}
		}
		if emu.cfg.Quirks.LoadStoreIncrementsI {
			emu.I += uint16(x) + 1
		}

	case OpLoad:
		for i := uint16(0); i <= uint16(x); i++ {
			v, err := emu.readAt(emu.I + i)
			if err != nil {
				return err
			}
			emu.V[i] = v
		}
		if emu.cfg.Quirks.LoadStoreIncrementsI {
			emu.I += uint16(x) + 1
		}

	default:
		err := &UnknownOpcodeError{Opcode: ins.Opcode, PC: fetchPC}
		if !emu.cfg.Permissive {
			return err
		}
		emu.log.WithError(err).Warn("skipping unknown opcode")
	}
	return nil
}

func (emu *EMU) skipIf(cond bool) {
	if cond {
		emu.pc += 2
	}
}

func (emu *EMU) shiftSource(x, y uint8) uint8 {
	if emu.cfg.Quirks.ShiftUsesVY {
		return emu.V[y]
	}
	return emu.V[x]
}

// I relative accessors. They fail past the top of memory unless the WrapIndex
// quirk masks the address to 12 bits.

func (emu *EMU) readAt(addr uint16) (uint8, error) {
	if emu.cfg.Quirks.WrapIndex {
		return emu.memory.ReadMasked(addr), nil
	}
	return emu.memory.Read(addr)
}

func (emu *EMU) writeAt(addr uint16, v uint8) error {
	if emu.cfg.Quirks.WrapIndex {
		emu.memory.WriteMasked(addr, v)
		return nil
	}
	return emu.memory.Write(addr, v)
}

func (emu *EMU) readRange(addr uint16, n int) ([]byte, error) {
	if emu.cfg.Quirks.WrapIndex {
		return emu.memory.SliceMasked(addr, n), nil
	}
	return emu.memory.Slice(addr, n)
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
