package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// rom encodes instruction words big endian.
func rom(words ...uint16) []byte {
	b := make([]byte, 0, len(words)*2)
	for _, w := range words {
		b = append(b, byte(w>>8), byte(w))
	}
	return b
}

func newTestEMU(t *testing.T, cfg Config, words ...uint16) *EMU {
	t.Helper()
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	emu := New(cfg)
	require.NoError(t, emu.Reset(rom(words...)))
	return emu
}

func steps(t *testing.T, emu *EMU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, emu.Step())
	}
}
