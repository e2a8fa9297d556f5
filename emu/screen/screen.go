// Package screen is the windowed frontend, drawing the framebuffer with
// pixelgl and reading the keypad from the keyboard.
//
// pixelgl needs the main thread: NewWindow must be called from inside
// pixelgl.Run.
package screen

import (
	"fmt"
	"image/color"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/display"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const DefaultScale = 10

type Window struct {
	*pixelgl.Window
	KeyMap map[uint8]pixelgl.Button
	scale  float64
	imd    *imdraw.IMDraw

	fg, bg color.Color
}

func NewWindow(title string, scale int) (*Window, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(display.Width*scale), float64(display.Height*scale)),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	return &Window{
		Window: win,
		KeyMap: KeyMap,
		scale:  float64(scale),
		imd:    imdraw.New(nil),
		fg:     colornames.White,
		bg:     colornames.Black,
	}, nil
}

// Poll copies the mapped keys into the keypad. ESC or closing the window
// ends the session.
func (w *Window) Poll(keys *cpu.Keypad) bool {
	w.UpdateInput()
	if w.Closed() || w.Pressed(pixelgl.KeyEscape) {
		return false
	}
	for key, btn := range w.KeyMap {
		keys.Set(key, w.Pressed(btn))
	}
	return true
}

func (w *Window) Render(frame display.Frame) {
	w.Clear(w.bg)
	w.imd.Clear()
	w.imd.Color = w.fg

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if !frame.At(x, y) {
				continue
			}
			// pixel's origin is bottom left
			top := float64(display.Height-y) * w.scale
			left := float64(x) * w.scale
			w.imd.Push(pixel.V(left, top-w.scale), pixel.V(left+w.scale, top))
			w.imd.Rectangle(0)
		}
	}
	w.imd.Draw(w)
	w.Update()
}

func (w *Window) Close() {
	w.Destroy()
}
