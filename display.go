package chip8

import "math/bits"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display owns the 64x32 monochrome framebuffer. Each row is a single
// 64-bit word with bit 63 representing column 0. Only the clear-screen
// and draw-sprite instructions mutate it.
type Display struct {
	rows [DisplayHeight]uint64
}

// Clear zeroes all pixels.
func (d *Display) Clear() {
	d.rows = [DisplayHeight]uint64{}
}

// DrawSprite XORs the given sprite rows into the framebuffer at (x, y).
// Rows past the bottom edge wrap to the top; pixels past the right edge
// wrap within their row. Returns true if any pixel transitioned from set
// to clear.
func (d *Display) DrawSprite(x, y int, sprite []byte) bool {
	x &= DisplayWidth - 1
	y &= DisplayHeight - 1

	var collision bool
	for r, b := range sprite {
		row := (y + r) & (DisplayHeight - 1)
		mask := bits.RotateLeft64(uint64(b)<<56, -x)

		if d.rows[row]&mask != 0 {
			collision = true
		}
		d.rows[row] ^= mask
	}
	return collision
}

// Pixel returns true if the pixel at (x, y) is lit.
// Coordinates wrap like DrawSprite's.
func (d *Display) Pixel(x, y int) bool {
	x &= DisplayWidth - 1
	y &= DisplayHeight - 1
	return d.rows[y]&(1<<uint(63-x)) != 0
}

// Framebuffer returns a copy of the framebuffer rows for rendering.
func (d *Display) Framebuffer() [DisplayHeight]uint64 {
	return d.rows
}
