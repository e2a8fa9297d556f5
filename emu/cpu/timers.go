package cpu

// TimerHz is the fixed rate the delay and sound timers count down at.
const TimerHz = 60

// Timers are the two 8-bit countdown registers. They decay at TimerHz no
// matter how fast instructions execute.
type Timers struct {
	Delay byte
	Sound byte
}

// Tick counts both timers down by one, stopping at zero.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}

// SoundActive reports whether a tone should be playing.
func (t Timers) SoundActive() bool {
	return t.Sound > 0
}
