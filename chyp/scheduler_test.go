package chyp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_oneSecond(t *testing.T) {
	for _, clock := range []int{60, 500, 700, 1000} {
		s := NewScheduler(clock, 60)
		cycles, ticks := 0, 0
		for i := 0; i < 1000; i++ {
			c, tk := s.Advance(time.Millisecond)
			cycles += c
			ticks += tk
		}
		assert.Equal(t, clock, cycles, "clock %d", clock)
		assert.Equal(t, 60, ticks, "clock %d", clock)
	}
}

func TestScheduler_fractionsCarry(t *testing.T) {
	s := NewScheduler(100, 60)

	c, tk := s.Advance(5 * time.Millisecond)
	assert.Equal(t, 0, c)
	assert.Equal(t, 0, tk)

	c, tk = s.Advance(15 * time.Millisecond)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1, tk)
}

func TestScheduler_catchUpLimit(t *testing.T) {
	s := NewScheduler(1000, 60)
	c, tk := s.Advance(10 * time.Second)
	assert.Equal(t, 250, c)
	assert.Equal(t, 15, tk)

	c, _ = s.Advance(-time.Second)
	assert.Equal(t, 0, c)
}

func TestScheduler_reset(t *testing.T) {
	s := NewScheduler(100, 60)
	s.Advance(15 * time.Millisecond)
	s.Reset()
	c, _ := s.Advance(5 * time.Millisecond)
	assert.Equal(t, 0, c)
}
