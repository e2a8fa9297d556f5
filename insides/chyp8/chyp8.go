// Package chyp8 reads ROM images from disk.
package chyp8

import (
	"errors"
	"fmt"
	"os"

	"github.com/beanboi7/chyp8/emu/memory"
	homedir "github.com/mitchellh/go-homedir"
)

var ErrEmptyROM = errors.New("rom is empty")

// ReadROM reads the ROM at path, expanding a leading ~. The image must fit
// in program memory.
func ReadROM(path string) ([]byte, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding rom path %q: %w", path, err)
	}

	info, err := os.Stat(expanded)
	if err != nil {
		return nil, fmt.Errorf("opening rom: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening rom: %s is a directory", expanded)
	}
	if info.Size() > memory.MaxROMSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, can't cross %d", memory.ErrROMTooLarge, expanded, info.Size(), memory.MaxROMSize)
	}

	rom, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	if len(rom) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyROM, expanded)
	}
	return rom, nil
}
