package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	b, err := m.Read(FontStart)
	require.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)

	// glyph for 1 starts 5 bytes in
	b, err = m.Read(FontStart + GlyphSize)
	require.NoError(t, err)
	assert.Equal(t, byte(0x20), b)

	b, err = m.Read(ProgramStart)
	require.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestLoad(t *testing.T) {
	m := New()
	require.NoError(t, m.Load([]byte{0x60, 0x0A}))

	b, _ := m.Read(ProgramStart)
	assert.Equal(t, byte(0x60), b)
	b, _ = m.Read(ProgramStart + 1)
	assert.Equal(t, byte(0x0A), b)
}

func TestLoad_maxSize(t *testing.T) {
	m := New()
	rom := make([]byte, MaxROMSize)
	for i := range rom {
		rom[i] = 1
	}
	require.NoError(t, m.Load(rom))

	b, _ := m.Read(ProgramStart - 1)
	assert.Equal(t, byte(0), b)
	b, _ = m.Read(Size - 1)
	assert.Equal(t, byte(1), b)
}

func TestLoad_tooLarge(t *testing.T) {
	m := New()
	err := m.Load(make([]byte, MaxROMSize+1))
	assert.True(t, errors.Is(err, ErrROMTooLarge))
}

func TestReadWrite_outOfBounds(t *testing.T) {
	m := New()

	_, err := m.Read(Size)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	err = m.Write(0x1234, 1)
	var oob *OutOfBoundsError
	require.True(t, errors.As(err, &oob))
	assert.Equal(t, 0x1234, oob.Addr)
}

func TestMasked(t *testing.T) {
	m := New()
	m.WriteMasked(0x1300, 0xAB)

	b, err := m.Read(0x300)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)
	assert.Equal(t, byte(0xAB), m.ReadMasked(0xF300))
}

func TestSlice(t *testing.T) {
	m := New()

	rows, err := m.Slice(FontStart, GlyphSize)
	require.NoError(t, err)
	assert.Equal(t, FontSet[:GlyphSize], rows)

	_, err = m.Slice(Size-2, 3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	m.WriteMasked(0x000, 0x11)
	assert.Equal(t, []byte{0, 0x11}, m.SliceMasked(Size-1, 2))
}

func TestReset(t *testing.T) {
	m := New()
	require.NoError(t, m.Load([]byte{0xFF}))
	m.Reset()

	b, _ := m.Read(ProgramStart)
	assert.Equal(t, byte(0), b)
	b, _ = m.Read(FontStart)
	assert.Equal(t, byte(0xF0), b)
}
