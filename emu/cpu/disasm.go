package cpu

import (
	"fmt"
	"io"

	"github.com/beanboi7/chyp8/emu/memory"
)

// Disassemble writes one line per instruction word of rom, addressed as if
// loaded at 0x200. Data bytes mixed into the code decode like anything else;
// a trailing odd byte is printed on its own.
func Disassemble(w io.Writer, rom []byte) error {
	addr := uint16(memory.ProgramStart)
	for i := 0; i+1 < len(rom); i += 2 {
		opcode := uint16(rom[i])<<8 | uint16(rom[i+1])
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", addr, opcode, Decode(opcode)); err != nil {
			return err
		}
		addr += 2
	}
	if len(rom)%2 == 1 {
		if _, err := fmt.Fprintf(w, "%03X  %02X    DB $%02X\n", addr, rom[len(rom)-1], rom[len(rom)-1]); err != nil {
			return err
		}
	}
	return nil
}
