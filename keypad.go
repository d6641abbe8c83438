package chip8

import "math/bits"

// Keypad owns the 16-key pressed/released snapshot. The host updates it
// once per cycle through SetKeys; the CPU only reads it. Key-press edges
// are derived from consecutive snapshots, in the same way a gamepad
// driver distinguishes pressed from just-pressed.
type Keypad struct {
	keys uint16 // Currently pressed keys; bit n = key n.
	prev uint16 // Keys already seen pressed; masks the press edge.
}

// SetKeys replaces the key snapshot with the given mask.
func (k *Keypad) SetKeys(mask uint16) {
	k.prev = k.keys
	k.keys = mask
}

// Pressed returns true if the given key is currently held down.
func (k *Keypad) Pressed(key byte) bool {
	return k.keys&(1<<(key&0xf)) != 0
}

// WaitForKey returns the lowest-numbered key that was pressed since the
// previous snapshot and consumes its edge, so a held key satisfies only
// one wait. Returns false if no new key press has arrived.
func (k *Keypad) WaitForKey() (byte, bool) {
	edge := k.keys &^ k.prev
	if edge == 0 {
		return 0, false
	}

	key := byte(bits.TrailingZeros16(edge))
	k.prev |= 1 << key
	return key, true
}
