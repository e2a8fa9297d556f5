// Package audio plays the interpreter's single tone through the system
// speaker while the sound timer is running.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultTone is the square wave frequency in Hz.
	DefaultTone = 440
	volume      = 0.15
)

// Beeper streams a square wave that is paused unless active.
type Beeper struct {
	ctrl *beep.Ctrl
}

// NewBeeper initialises the speaker and starts a paused tone of freq Hz.
func NewBeeper(freq float64) (*Beeper, error) {
	if freq <= 0 {
		freq = DefaultTone
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}

	ctrl := &beep.Ctrl{Streamer: squareWave(freq), Paused: true}
	speaker.Play(ctrl)
	return &Beeper{ctrl: ctrl}, nil
}

func (b *Beeper) SetActive(on bool) {
	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
}

// Close stops the tone. The speaker itself stays initialised.
func (b *Beeper) Close() {
	speaker.Clear()
}

func squareWave(freq float64) beep.Streamer {
	period := float64(sampleRate) / freq
	var pos float64
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := volume
			if pos >= period/2 {
				v = -volume
			}
			samples[i][0], samples[i][1] = v, v
			pos = math.Mod(pos+1, period)
		}
		return len(samples), true
	})
}

// Silent satisfies the same interface without touching the speaker.
type Silent struct{}

func (Silent) SetActive(bool) {}
