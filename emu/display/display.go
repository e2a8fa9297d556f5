// Package display is the 64x32 monochrome framebuffer. Sprites are XORed onto
// it and wrap around both edges.
package display

import "strings"

const (
	Width  = 64
	Height = 32

	// MaxSpriteRows is the tallest sprite a single draw can blit.
	MaxSpriteRows = 15
)

// Frame is a read-only copy of the pixel grid, row major.
type Frame [Width * Height]bool

func (f *Frame) At(x, y int) bool {
	return f[y*Width+x]
}

// String renders the frame with one character per pixel. Used by tests and
// debug logging.
func (f *Frame) String() string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type Buffer struct {
	pixels Frame
	dirty  bool //set on every mutation, cleared by the renderer
}

func New() *Buffer {
	return &Buffer{dirty: true}
}

func (b *Buffer) Clear() {
	b.pixels = Frame{}
	b.dirty = true
}

func (b *Buffer) Pixel(x, y int) bool {
	return b.pixels.At(mod(x, Width), mod(y, Height))
}

// DrawSprite XORs each row of 8 bits onto the buffer at (x, y), most
// significant bit leftmost. The origin is taken modulo the buffer size and
// every pixel that runs off an edge wraps to the opposite one. It reports
// whether any pixel that was on got turned off.
func (b *Buffer) DrawSprite(x, y int, rows []byte) bool {
	if len(rows) > MaxSpriteRows {
		rows = rows[:MaxSpriteRows]
	}
	x, y = mod(x, Width), mod(y, Height)

	collision := false
	for row, bits := range rows {
		py := (y + row) % Height
		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			px := (x + bit) % Width
			i := py*Width + px
			if b.pixels[i] {
				collision = true
			}
			b.pixels[i] = !b.pixels[i]
		}
	}
	b.dirty = true
	return collision
}

// Snapshot copies the current pixels for a renderer.
func (b *Buffer) Snapshot() Frame {
	return b.pixels
}

// Dirty reports whether the buffer changed since the last ClearDirty.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

func (b *Buffer) ClearDirty() {
	b.dirty = false
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
