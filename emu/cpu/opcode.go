package cpu

import "fmt"

// Op identifies one of the base CHIP-8 instructions.
type Op int

const (
	OpUnknown Op = iota
	OpSys        // 0NNN
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1NNN
	OpCall       // 2NNN
	OpSeByte     // 3XNN
	OpSneByte    // 4XNN
	OpSeReg      // 5XY0
	OpLdByte     // 6XNN
	OpAddByte    // 7XNN
	OpLdReg      // 8XY0
	OpOr         // 8XY1
	OpAnd        // 8XY2
	OpXor        // 8XY3
	OpAddReg     // 8XY4
	OpSub        // 8XY5
	OpShr        // 8XY6
	OpSubn       // 8XY7
	OpShl        // 8XYE
	OpSneReg     // 9XY0
	OpLdI        // ANNN
	OpJpV0       // BNNN
	OpRnd        // CXNN
	OpDrw        // DXYN
	OpSkp        // EX9E
	OpSknp       // EXA1
	OpLdVxDT     // FX07
	OpLdKey      // FX0A
	OpLdDTVx     // FX15
	OpLdSTVx     // FX18
	OpAddI       // FX1E
	OpLdFont     // FX29
	OpLdBCD      // FX33
	OpStore      // FX55
	OpLoad       // FX65
)

var opNames = map[Op]string{
	OpUnknown: "???",
	OpSys:     "SYS",
	OpCls:     "CLS",
	OpRet:     "RET",
	OpJp:      "JP",
	OpCall:    "CALL",
	OpSeByte:  "SE",
	OpSneByte: "SNE",
	OpSeReg:   "SE",
	OpLdByte:  "LD",
	OpAddByte: "ADD",
	OpLdReg:   "LD",
	OpOr:      "OR",
	OpAnd:     "AND",
	OpXor:     "XOR",
	OpAddReg:  "ADD",
	OpSub:     "SUB",
	OpShr:     "SHR",
	OpSubn:    "SUBN",
	OpShl:     "SHL",
	OpSneReg:  "SNE",
	OpLdI:     "LD",
	OpJpV0:    "JP",
	OpRnd:     "RND",
	OpDrw:     "DRW",
	OpSkp:     "SKP",
	OpSknp:    "SKNP",
	OpLdVxDT:  "LD",
	OpLdKey:   "LD",
	OpLdDTVx:  "LD",
	OpLdSTVx:  "LD",
	OpAddI:    "ADD",
	OpLdFont:  "LD",
	OpLdBCD:   "LD",
	OpStore:   "LD",
	OpLoad:    "LD",
}

// Name is the assembler mnemonic. Several ops share one.
func (o Op) Name() string {
	return opNames[o]
}

// Instruction is a decoded instruction word with every operand field
// extracted, whether or not the op uses it.
type Instruction struct {
	Op     Op
	Opcode uint16
	X      uint8  // second nibble
	Y      uint8  // third nibble
	N      uint8  // lowest nibble
	NN     uint8  // low byte
	NNN    uint16 // low 12 bits
}

// Decode splits the word on its high nibble, then on the low nibble or low
// byte for the 0, 8, E and F families.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8((opcode & 0x0F00) >> 8),
		Y:      uint8((opcode & 0x00F0) >> 4),
		N:      uint8(opcode & 0x000F),
		NN:     uint8(opcode & 0x00FF),
		NNN:    opcode & 0x0FFF,
	}
	ins.Op = decodeOp(ins)
	return ins
}

func decodeOp(ins Instruction) Op {
	switch ins.Opcode & 0xF000 {
	case 0x0000:
		switch ins.Opcode {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
		return OpSys
	case 0x1000:
		return OpJp
	case 0x2000:
		return OpCall
	case 0x3000:
		return OpSeByte
	case 0x4000:
		return OpSneByte
	case 0x5000:
		if ins.N == 0 {
			return OpSeReg
		}
	case 0x6000:
		return OpLdByte
	case 0x7000:
		return OpAddByte
	case 0x8000:
		switch ins.N {
		case 0x0:
			return OpLdReg
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAddReg
		case 0x5:
			return OpSub
		case 0x6:
			return OpShr
		case 0x7:
			return OpSubn
		case 0xE:
			return OpShl
		}
	case 0x9000:
		if ins.N == 0 {
			return OpSneReg
		}
	case 0xA000:
		return OpLdI
	case 0xB000:
		return OpJpV0
	case 0xC000:
		return OpRnd
	case 0xD000:
		return OpDrw
	case 0xE000:
		switch ins.NN {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF000:
		switch ins.NN {
		case 0x07:
			return OpLdVxDT
		case 0x0A:
			return OpLdKey
		case 0x15:
			return OpLdDTVx
		case 0x18:
			return OpLdSTVx
		case 0x1E:
			return OpAddI
		case 0x29:
			return OpLdFont
		case 0x33:
			return OpLdBCD
		case 0x55:
			return OpStore
		case 0x65:
			return OpLoad
		}
	}
	return OpUnknown
}

// String renders the instruction in the usual assembler syntax.
func (ins Instruction) String() string {
	name := ins.Op.Name()
	switch ins.Op {
	case OpCls, OpRet:
		return name
	case OpUnknown:
		return fmt.Sprintf("%s $%04X", name, ins.Opcode)
	case OpSys, OpJp, OpCall:
		return fmt.Sprintf("%s $%03X", name, ins.NNN)
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte, OpRnd:
		return fmt.Sprintf("%s V%X, $%02X", name, ins.X, ins.NN)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn, OpShr, OpShl:
		return fmt.Sprintf("%s V%X, V%X", name, ins.X, ins.Y)
	case OpLdI:
		return fmt.Sprintf("%s I, $%03X", name, ins.NNN)
	case OpJpV0:
		return fmt.Sprintf("%s V0, $%03X", name, ins.NNN)
	case OpDrw:
		return fmt.Sprintf("%s V%X, V%X, $%X", name, ins.X, ins.Y, ins.N)
	case OpSkp, OpSknp:
		return fmt.Sprintf("%s V%X", name, ins.X)
	case OpLdVxDT:
		return fmt.Sprintf("%s V%X, DT", name, ins.X)
	case OpLdKey:
		return fmt.Sprintf("%s V%X, K", name, ins.X)
	case OpLdDTVx:
		return fmt.Sprintf("%s DT, V%X", name, ins.X)
	case OpLdSTVx:
		return fmt.Sprintf("%s ST, V%X", name, ins.X)
	case OpAddI:
		return fmt.Sprintf("%s I, V%X", name, ins.X)
	case OpLdFont:
		return fmt.Sprintf("%s F, V%X", name, ins.X)
	case OpLdBCD:
		return fmt.Sprintf("%s B, V%X", name, ins.X)
	case OpStore:
		return fmt.Sprintf("%s [I], V%X", name, ins.X)
	case OpLoad:
		return fmt.Sprintf("%s V%X, [I]", name, ins.X)
	}
	return name
}
