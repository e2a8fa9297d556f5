// Package chyp is the host loop: it feeds input to the interpreter, runs
// instructions and timer ticks at their own rates, and hands frames and the
// sound state to the frontend.
package chyp

import (
	"context"
	"io"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/display"
	"github.com/sirupsen/logrus"
)

// Frontend renders frames and supplies key state.
type Frontend interface {
	// Poll updates keys from the input device. It returns false once the
	// user has closed the frontend.
	Poll(keys *cpu.Keypad) bool
	Render(frame display.Frame)
}

// Beeper plays a tone while active.
type Beeper interface {
	SetActive(on bool)
}

type Options struct {
	ClockHz   int // instructions per second
	RefreshHz int // host loop iterations per second
	Logger    *logrus.Logger
}

type Chyp8 struct {
	emu    *cpu.EMU
	front  Frontend
	beeper Beeper
	sched  *Scheduler
	log    *logrus.Logger

	refresh time.Duration
	beeping bool
}

func New(emu *cpu.EMU, front Frontend, beeper Beeper, opts Options) *Chyp8 {
	if opts.RefreshHz <= 0 {
		opts.RefreshHz = cpu.TimerHz
	}
	if opts.ClockHz <= 0 {
		opts.ClockHz = 700
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}
	return &Chyp8{
		emu:     emu,
		front:   front,
		beeper:  beeper,
		sched:   NewScheduler(opts.ClockHz, cpu.TimerHz),
		log:     opts.Logger,
		refresh: time.Second / time.Duration(opts.RefreshHz),
	}
}

// LoadGame resets the interpreter with rom and restarts the schedule.
func (c *Chyp8) LoadGame(rom []byte) error {
	c.sched.Reset()
	c.setBeep(false)
	return c.emu.Reset(rom)
}

// Run drives the interpreter until ctx is cancelled, the frontend closes or
// the interpreter halts. Only a halt is returned as an error.
func (c *Chyp8) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.refresh)
	defer ticker.Stop()
	defer c.setBeep(false)

	c.log.WithFields(logrus.Fields{
		"clock":   c.sched.ClockHz,
		"refresh": c.refresh,
	}).Info("emulation started")

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			c.log.Info("emulation stopped")
			return nil
		case now := <-ticker.C:
			open, err := c.EmulateFrame(now.Sub(last))
			last = now
			if err != nil {
				return err
			}
			if !open {
				c.log.Info("frontend closed")
				return nil
			}
		}
	}
}

// EmulateFrame is one host loop iteration covering elapsed wall time: poll
// input, run the due cycles, tick the due timers, update the tone and
// render if the display changed. open is false when the frontend was closed.
func (c *Chyp8) EmulateFrame(elapsed time.Duration) (open bool, err error) {
	if !c.front.Poll(c.emu.Keypad()) {
		return false, nil
	}

	cycles, ticks := c.sched.Advance(elapsed)
	for i := 0; i < cycles; i++ {
		if err := c.emu.Step(); err != nil {
			c.setBeep(false)
			return true, err
		}
	}
	for i := 0; i < ticks; i++ {
		c.emu.TickTimers()
	}
	c.setBeep(c.emu.Timers().SoundActive())

	if screen := c.emu.Display(); screen.Dirty() {
		c.front.Render(screen.Snapshot())
		screen.ClearDirty()
	}
	return true, nil
}

func (c *Chyp8) setBeep(on bool) {
	if on == c.beeping {
		return
	}
	c.beeping = on
	if c.beeper != nil {
		c.beeper.SetActive(on)
	}
	c.log.WithField("on", on).Debug("sound")
}
