package cpu

// NumKeys is the size of the hex keypad, keys 0 to F.
const NumKeys = 16

// Keypad is the press state of the 16 keys. The input side writes it between
// cycles and the interpreter only reads it.
type Keypad [NumKeys]bool

func (k *Keypad) Press(key uint8) {
	k[key&0x0F] = true
}

func (k *Keypad) Release(key uint8) {
	k[key&0x0F] = false
}

// Set is Press or Release depending on down.
func (k *Keypad) Set(key uint8, down bool) {
	k[key&0x0F] = down
}

func (k *Keypad) Pressed(key uint8) bool {
	return k[key&0x0F]
}

// First returns the lowest numbered key held down.
func (k *Keypad) First() (uint8, bool) {
	for i, down := range k {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

func (k *Keypad) ReleaseAll() {
	*k = Keypad{}
}
