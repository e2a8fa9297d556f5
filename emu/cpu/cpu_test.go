package cpu

import (
	"errors"
	"testing"

	"github.com/beanboi7/chyp8/emu/display"
	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	emu := New(Config{})
	assert.Equal(t, uint16(0x200), emu.Registers().PC)
	assert.False(t, emu.Halted())
	assert.Nil(t, emu.Err())
}

func TestAddRegisters(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0x600A, 0x6105, 0x8014)
	steps(t, emu, 3)

	r := emu.Registers()
	assert.Equal(t, uint8(15), r.V[0])
	assert.Equal(t, uint8(5), r.V[1])
	assert.Equal(t, uint8(0), r.V[VF])
	assert.Equal(t, uint16(0x206), r.PC)
}

func TestClearThenDrawFont(t *testing.T) {
	// V0 = 0, I = glyph 0, draw 5 rows at (V0, V0)
	emu := newTestEMU(t, Config{}, 0x00E0, 0x6000, 0xF029, 0xD005)
	emu.V[VF] = 1
	steps(t, emu, 4)

	assert.Equal(t, uint8(0), emu.V[VF])
	frame := emu.Display().Snapshot()
	for row := 0; row < memory.GlyphSize; row++ {
		bits := memory.FontSet[row]
		for col := 0; col < 8; col++ {
			want := bits&(0x80>>col) != 0
			assert.Equal(t, want, frame.At(col, row), "pixel %d,%d", col, row)
		}
	}
}

func TestDrawTwiceCollides(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0xF029, 0xD005, 0xD005)
	steps(t, emu, 3)

	assert.Equal(t, uint8(1), emu.V[VF])
	assert.Equal(t, display.Frame{}, emu.Display().Snapshot())
}

func TestUnknownOpcodeHalts(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0x6001, 0xFFFF)
	require.NoError(t, emu.Step())

	err := emu.Step()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOpcode))

	var unknown *UnknownOpcodeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, uint16(0xFFFF), unknown.Opcode)
	assert.Equal(t, uint16(0x202), unknown.PC)
	assert.True(t, emu.Halted())

	// halted: no further effect, same error
	before := emu.Registers()
	assert.Equal(t, err, emu.Step())
	assert.Equal(t, before, emu.Registers())
}

func TestUnknownOpcodePermissive(t *testing.T) {
	emu := newTestEMU(t, Config{Permissive: true}, 0xFFFF, 0x6007)
	steps(t, emu, 2)
	assert.Equal(t, uint8(7), emu.V[0])
	assert.Equal(t, uint16(0x204), emu.Registers().PC)
}

func TestStackOverflow(t *testing.T) {
	// calls itself forever
	emu := newTestEMU(t, Config{}, 0x2200)
	steps(t, emu, StackDepth)

	err := emu.Step()
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.True(t, emu.Halted())
}

func TestStackUnderflow(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0x00EE)
	err := emu.Step()
	assert.True(t, errors.Is(err, ErrStackUnderflow))

	var halt *HaltError
	require.True(t, errors.As(err, &halt))
	assert.Equal(t, uint16(0x200), halt.PC)
	assert.Equal(t, uint16(0x00EE), halt.Opcode)
}

func TestFetchOutOfBounds(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0x1FFE)
	require.NoError(t, emu.Step())
	require.NoError(t, emu.Memory().Write(0xFFE, 0x60))

	// 0xFFE is a valid instruction, the next fetch runs off the end
	require.NoError(t, emu.Step())
	err := emu.Step()
	assert.True(t, errors.Is(err, memory.ErrOutOfBounds))
}

func TestIndexOutOfBounds(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0xAFFF, 0x6F00, 0xF155)
	steps(t, emu, 2)
	err := emu.Step()
	assert.True(t, errors.Is(err, memory.ErrOutOfBounds))
}

func TestIndexWrapQuirk(t *testing.T) {
	cfg := Config{Quirks: Quirks{WrapIndex: true}}
	emu := newTestEMU(t, cfg, 0xAFFF, 0x60AA, 0x61BB, 0xF155)
	steps(t, emu, 4)

	b, err := emu.Memory().Read(0x000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xBB), b)
}

func TestResetRomTooLarge(t *testing.T) {
	emu := New(Config{})
	err := emu.Reset(make([]byte, memory.MaxROMSize+1))
	assert.True(t, errors.Is(err, memory.ErrROMTooLarge))
	assert.True(t, errors.Is(emu.Step(), memory.ErrROMTooLarge))
}

func TestResetClearsState(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0x6F05, 0xF015, 0x2300)
	steps(t, emu, 3)
	emu.Keypad().Press(3)

	require.NoError(t, emu.Reset(rom(0x1200)))
	r := emu.Registers()
	assert.Equal(t, [16]uint8{}, r.V)
	assert.Equal(t, uint16(0x200), r.PC)
	assert.Equal(t, 0, r.StackDepth)
	assert.Equal(t, Timers{}, emu.Timers())
	assert.False(t, emu.Keypad().Pressed(3))
	assert.Equal(t, uint64(0), emu.Cycles())
}

func TestTickTimers(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0x6002, 0xF015, 0xF018)
	steps(t, emu, 3)
	assert.True(t, emu.Timers().SoundActive())

	emu.TickTimers()
	assert.Equal(t, Timers{Delay: 1, Sound: 1}, emu.Timers())
	emu.TickTimers()
	emu.TickTimers()
	assert.Equal(t, Timers{}, emu.Timers())
	assert.False(t, emu.Timers().SoundActive())
}

func TestWaitForKey(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0xF50A, 0x6001)
	require.NoError(t, emu.Step())
	assert.True(t, emu.Waiting())
	assert.Equal(t, uint16(0x200), emu.Registers().PC)

	// no key: nothing moves
	steps(t, emu, 3)
	assert.True(t, emu.Waiting())
	assert.Equal(t, uint16(0x200), emu.Registers().PC)

	emu.Keypad().Press(0xB)
	require.NoError(t, emu.Step())
	assert.False(t, emu.Waiting())
	assert.Equal(t, uint8(0xB), emu.V[5])
	assert.Equal(t, uint16(0x202), emu.Registers().PC)

	require.NoError(t, emu.Step())
	assert.Equal(t, uint8(1), emu.V[0])
}

func TestTimersKeepRunningWhileWaiting(t *testing.T) {
	emu := newTestEMU(t, Config{}, 0x6003, 0xF015, 0xF00A)
	steps(t, emu, 3)
	emu.TickTimers()
	assert.Equal(t, uint8(2), emu.Timers().Delay)
}
