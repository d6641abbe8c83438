package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypadPressed(t *testing.T) {
	var k Keypad

	k.SetKeys(1<<0x4 | 1<<0xf)

	assert.True(t, k.Pressed(0x4))
	assert.True(t, k.Pressed(0xf))
	assert.True(t, !k.Pressed(0x0))

	k.SetKeys(0)
	assert.True(t, !k.Pressed(0x4))
}

func TestKeypadWaitForKey(t *testing.T) {
	var k Keypad

	_, ok := k.WaitForKey()
	assert.True(t, !ok)

	k.SetKeys(1 << 0xa)

	key, ok := k.WaitForKey()
	assert.True(t, ok)
	assert.Equal(t, byte(0xa), key)

	// The edge is consumed; holding the key does not satisfy a second wait.
	_, ok = k.WaitForKey()
	assert.True(t, !ok)

	k.SetKeys(1 << 0xa)
	_, ok = k.WaitForKey()
	assert.True(t, !ok)

	// Releasing and pressing again produces a fresh edge.
	k.SetKeys(0)
	k.SetKeys(1 << 0xa)

	key, ok = k.WaitForKey()
	assert.True(t, ok)
	assert.Equal(t, byte(0xa), key)
}

func TestKeypadWaitForKeyLowestFirst(t *testing.T) {
	var k Keypad

	k.SetKeys(1<<0x3 | 1<<0x9)

	key, ok := k.WaitForKey()
	assert.True(t, ok)
	assert.Equal(t, byte(0x3), key)

	key, ok = k.WaitForKey()
	assert.True(t, ok)
	assert.Equal(t, byte(0x9), key)
}
