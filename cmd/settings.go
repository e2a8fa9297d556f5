package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
)

// Settings is the merged view of flags, environment and config file.
type Settings struct {
	Clock      int
	Refresh    int
	Frontend   string
	Scale      int
	Mute       bool
	Tone       float64
	Permissive bool
	Quirks     cpu.Quirks

	LogLevel string
	LogFile  string
}

func loadSettings() (Settings, error) {
	s := Settings{
		Clock:      viper.GetInt("clock"),
		Refresh:    viper.GetInt("refresh"),
		Frontend:   viper.GetString("frontend"),
		Scale:      viper.GetInt("scale"),
		Mute:       viper.GetBool("mute"),
		Tone:       viper.GetFloat64("tone"),
		Permissive: viper.GetBool("permissive"),
		Quirks: cpu.Quirks{
			ShiftUsesVY:          viper.GetBool("quirks.shift-vy"),
			IndexOverflow:        viper.GetBool("quirks.index-overflow"),
			LoadStoreIncrementsI: viper.GetBool("quirks.load-store-inc"),
			WrapIndex:            viper.GetBool("quirks.wrap-index"),
		},
		LogLevel: viper.GetString("log-level"),
		LogFile:  viper.GetString("log-file"),
	}

	if s.Clock <= 0 {
		return s, fmt.Errorf("clock must be positive, got %d", s.Clock)
	}
	if s.Refresh <= 0 {
		return s, fmt.Errorf("refresh must be positive, got %d", s.Refresh)
	}
	switch s.Frontend {
	case frontendWindow, frontendTerminal:
	default:
		return s, fmt.Errorf("unknown frontend %q, want %s or %s", s.Frontend, frontendWindow, frontendTerminal)
	}
	return s, nil
}

// newLogger builds the logger from the settings. The terminal frontend owns
// stderr's screen, so without a log file it logs nowhere.
func newLogger(s Settings) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)

	switch {
	case s.LogFile != "":
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		logger.SetOutput(f)
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		return logger, f, nil
	case s.Frontend == frontendTerminal:
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(os.Stderr)
	}
	return logger, io.NopCloser(nil), nil
}

func (s Settings) cpuConfig(logger *logrus.Logger) cpu.Config {
	return cpu.Config{
		Quirks:     s.Quirks,
		Permissive: s.Permissive,
		Logger:     logger,
	}
}
