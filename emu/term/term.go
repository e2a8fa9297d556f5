// Package term is a terminal frontend on termbox: one block character per
// pixel and the keypad on the left of the keyboard.
package term

import (
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/display"
	"github.com/nsf/termbox-go"
)

// Terminals only report key presses, never releases, so a key counts as
// held for this long after its last press or auto-repeat.
const keyRepeatDuration = time.Second / 5

var keyMap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

type Terminal struct {
	events    chan termbox.Event
	lastPress [cpu.NumKeys]time.Time
	closed    bool
	now       func() time.Time
}

// New takes over the terminal. Close gives it back.
func New() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initialising terminal: %w", err)
	}
	termbox.HideCursor()

	t := newTerminal()
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()
	return t, nil
}

func newTerminal() *Terminal {
	return &Terminal{
		events: make(chan termbox.Event, 64),
		now:    time.Now,
	}
}

func (t *Terminal) Close() {
	termbox.Interrupt()
	termbox.Close()
}

// Poll drains pending key events without blocking. ESC or Ctrl-C close the
// session.
func (t *Terminal) Poll(keys *cpu.Keypad) bool {
	now := t.now()
	for pending := true; pending; {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.closed = true
				pending = false
				break
			}
			t.handle(ev, now)
		default:
			pending = false
		}
	}
	if t.closed {
		return false
	}

	for k := range t.lastPress {
		held := !t.lastPress[k].IsZero() && now.Sub(t.lastPress[k]) < keyRepeatDuration
		keys.Set(uint8(k), held)
	}
	return true
}

func (t *Terminal) handle(ev termbox.Event, now time.Time) {
	if ev.Type != termbox.EventKey {
		return
	}
	if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
		t.closed = true
		return
	}
	if k, ok := keyMap[ev.Ch]; ok {
		t.lastPress[k] = now
	}
}

func (t *Terminal) Render(frame display.Frame) {
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			ch := ' '
			if frame.At(x, y) {
				ch = '█'
			}
			termbox.SetCell(x, y, ch, termbox.ColorDefault, termbox.ColorDefault)
		}
	}
	termbox.Flush()
}
