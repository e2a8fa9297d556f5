// Package memory holds the 4K address space of the interpreter: font data in
// the reserved low area and the loaded ROM from 0x200 up.
package memory

import (
	"errors"
	"fmt"
)

const (
	Size         = 4096
	ProgramStart = 0x200
	FontStart    = 0x050
	MaxROMSize   = Size - ProgramStart

	// GlyphSize is the number of bytes (rows) of one font glyph.
	GlyphSize = 5
)

var (
	ErrROMTooLarge = errors.New("rom too large")
	ErrOutOfBounds = errors.New("memory access out of bounds")
)

// FontSet is the built in 4x5 hex font, glyphs 0 to F.
var FontSet = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// OutOfBoundsError is returned by the checked accessors. It matches
// ErrOutOfBounds with errors.Is.
type OutOfBoundsError struct {
	Addr int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: 0x%04X", ErrOutOfBounds, e.Addr)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

type Memory struct {
	data [Size]byte
}

// New returns memory with the font loaded and nothing else.
func New() *Memory {
	m := &Memory{}
	m.loadFont()
	return m
}

func (m *Memory) loadFont() {
	copy(m.data[FontStart:], FontSet[:])
}

// Reset zeroes the whole space and reloads the font.
func (m *Memory) Reset() {
	m.data = [Size]byte{}
	m.loadFont()
}

// Load copies the rom to ProgramStart. A rom that does not fit is refused and
// memory is left as it was.
func (m *Memory) Load(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, max %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	copy(m.data[ProgramStart:], rom)
	return nil
}

func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= Size {
		return 0, &OutOfBoundsError{Addr: int(addr)}
	}
	return m.data[addr], nil
}

func (m *Memory) Write(addr uint16, v byte) error {
	if int(addr) >= Size {
		return &OutOfBoundsError{Addr: int(addr)}
	}
	m.data[addr] = v
	return nil
}

// ReadMasked reads with the address truncated to 12 bits.
func (m *Memory) ReadMasked(addr uint16) byte {
	return m.data[addr&0x0FFF]
}

// WriteMasked writes with the address truncated to 12 bits.
func (m *Memory) WriteMasked(addr uint16, v byte) {
	m.data[addr&0x0FFF] = v
}

// Slice returns a copy of n bytes starting at addr. The whole range must be
// inside memory.
func (m *Memory) Slice(addr uint16, n int) ([]byte, error) {
	end := int(addr) + n
	if end > Size {
		return nil, &OutOfBoundsError{Addr: end - 1}
	}
	out := make([]byte, n)
	copy(out, m.data[addr:end])
	return out, nil
}

// SliceMasked is Slice with every address truncated to 12 bits, so a range
// running off the top wraps to 0x000.
func (m *Memory) SliceMasked(addr uint16, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = m.ReadMasked(addr + uint16(i))
	}
	return out
}
