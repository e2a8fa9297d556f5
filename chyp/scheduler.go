package chyp

import "time"

// maxCatchUp bounds how much wall time a single Advance accounts for, so a
// stalled host (window drag, debugger) does not fire a burst of cycles.
const maxCatchUp = time.Second / 4

// Scheduler turns elapsed wall time into a number of instruction cycles and
// timer ticks. The two rates are independent: the instruction rate is
// configurable while the timers always run at TimerHz.
type Scheduler struct {
	ClockHz int
	TimerHz int

	elapsed time.Duration
	cycles  int64
	ticks   int64
}

func NewScheduler(clockHz, timerHz int) *Scheduler {
	return &Scheduler{ClockHz: clockHz, TimerHz: timerHz}
}

// Advance adds elapsed to the running total and returns how many cycles and
// ticks are now due. Fractions carry over to the next call.
func (s *Scheduler) Advance(elapsed time.Duration) (cycles, ticks int) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxCatchUp {
		elapsed = maxCatchUp
	}
	s.elapsed += elapsed

	wantCycles := due(s.elapsed, s.ClockHz)
	wantTicks := due(s.elapsed, s.TimerHz)
	cycles, ticks = int(wantCycles-s.cycles), int(wantTicks-s.ticks)
	s.cycles, s.ticks = wantCycles, wantTicks
	return cycles, ticks
}

func (s *Scheduler) Reset() {
	s.elapsed, s.cycles, s.ticks = 0, 0, 0
}

func due(elapsed time.Duration, hz int) int64 {
	return int64(elapsed) * int64(hz) / int64(time.Second)
}
