package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beanboi7/chyp8/chyp"
	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/beanboi7/chyp8/emu/term"
	"github.com/beanboi7/chyp8/insides/chyp8"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// frontend is what the session needs from a window or terminal, plus a way
// to give the device back.
type frontend interface {
	chyp.Frontend
	Close()
}

// chyp8 start 'path/to/ROM' -r 60 -c 700
func Start(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	logger, logCloser, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	rom, err := chyp8.ReadROM(args[0])
	if err != nil {
		return err
	}

	front, err := openFrontend(settings)
	if err != nil {
		return err
	}
	defer front.Close()

	var beeper chyp.Beeper = audio.Silent{}
	if !settings.Mute {
		b, err := audio.NewBeeper(settings.Tone)
		if err != nil {
			logger.WithError(err).Warn("no audio, running muted")
		} else {
			defer b.Close()
			beeper = b
		}
	}

	emu := cpu.New(settings.cpuConfig(logger))
	session := chyp.New(emu, front, beeper, chyp.Options{
		ClockHz:   settings.Clock,
		RefreshHz: settings.Refresh,
		Logger:    logger,
	})
	if err := session.LoadGame(rom); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"rom":      args[0],
		"size":     len(rom),
		"frontend": settings.Frontend,
		"quirks":   fmt.Sprintf("%+v", settings.Quirks),
	}).Info("rom loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil {
		regs := emu.Registers()
		logger.WithFields(logrus.Fields{
			"pc": fmt.Sprintf("0x%03X", regs.PC),
			"i":  fmt.Sprintf("0x%03X", regs.I),
			"v":  fmt.Sprintf("% X", regs.V[:]),
		}).Error("emulation halted")
		return fmt.Errorf("emulation halted: %w", err)
	}
	return nil
}

func openFrontend(s Settings) (frontend, error) {
	switch s.Frontend {
	case frontendTerminal:
		t, err := term.New()
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		win, err := screen.NewWindow("Chyp8", s.Scale)
		if err != nil {
			return nil, err
		}
		return win, nil
	}
}

func init() {
	flags := startCmd.Flags()
	flags.IntP("refresh", "r", 60, "sets the refresh rate of the display in Hz")
	flags.IntP("clock", "c", 700, "instructions executed per second")
	flags.StringP("frontend", "f", frontendWindow, "window or terminal")
	flags.IntP("scale", "s", screen.DefaultScale, "window pixels per CHIP-8 pixel")
	flags.Bool("mute", false, "disable the beep")
	flags.Float64("tone", audio.DefaultTone, "beep frequency in Hz")
	flags.Bool("permissive", false, "skip unknown opcodes instead of halting")
	flags.Bool("quirk-shift-vy", false, "8XY6/8XYE shift VY into VX")
	flags.Bool("quirk-index-overflow", false, "FX1E sets VF when I passes 0xFFF")
	flags.Bool("quirk-load-store-inc", false, "FX55/FX65 advance I past the last register")
	flags.Bool("quirk-wrap-index", false, "wrap I relative memory access at 0xFFF")

	bind := map[string]string{
		"refresh":               "refresh",
		"clock":                 "clock",
		"frontend":              "frontend",
		"scale":                 "scale",
		"mute":                  "mute",
		"tone":                  "tone",
		"permissive":            "permissive",
		"quirks.shift-vy":       "quirk-shift-vy",
		"quirks.index-overflow": "quirk-index-overflow",
		"quirks.load-store-inc": "quirk-load-store-inc",
		"quirks.wrap-index":     "quirk-wrap-index",
	}
	for key, flag := range bind {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}
