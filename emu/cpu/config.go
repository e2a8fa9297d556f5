package cpu

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Quirks select between behaviours that differ across CHIP-8 interpreters.
// The zero value matches most modern emulators.
type Quirks struct {
	// ShiftUsesVY makes 8XY6 and 8XYE shift VY and store the result in VX,
	// as the COSMAC VIP did. Otherwise VX is shifted in place.
	ShiftUsesVY bool

	// IndexOverflow makes FX1E set VF to 1 when I+VX passes 0xFFF and 0
	// otherwise. Otherwise VF is untouched.
	IndexOverflow bool

	// LoadStoreIncrementsI makes FX55 and FX65 leave I at I+X+1.
	LoadStoreIncrementsI bool

	// WrapIndex masks I relative memory access to 12 bits. Otherwise an
	// access past 0xFFF halts the interpreter.
	WrapIndex bool
}

type Config struct {
	Quirks Quirks

	// Permissive turns unknown opcodes into logged no-ops instead of halting.
	Permissive bool

	// Rand feeds CXNN. Seeded from the clock when nil.
	Rand *rand.Rand

	// Logger receives a trace line per instruction. Discarded when nil.
	Logger *logrus.Logger
}

func (cfg Config) withDefaults() Config {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
		cfg.Logger.SetOutput(io.Discard)
	}
	return cfg
}
