package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	var buf bytes.Buffer
	program := append(rom(0x00E0, 0x6A02, 0xDAB5, 0xFFFF), 0x12)
	require.NoError(t, Disassemble(&buf, program))

	want := "" +
		"200  00E0  CLS\n" +
		"202  6A02  LD VA, $02\n" +
		"204  DAB5  DRW VA, VB, $5\n" +
		"206  FFFF  ??? $FFFF\n" +
		"208  12    DB $12\n"
	assert.Equal(t, want, buf.String())
}

func TestDisassemble_empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Disassemble(&buf, nil))
	assert.Empty(t, buf.String())
}
