package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeArrowKeys(t *testing.T) {
	pressed, toggles, quit := decodeBuffer([]byte{0x1b, 0x5b, 0x41}, true) // ESC [ A
	assert.Equal(t, []int{Rotate}, pressed)
	assert.Equal(t, 0, toggles)
	assert.False(t, quit)

	pressed, _, _ = decodeBuffer([]byte{0x1b, 0x5b, 0x44}, true) // ESC [ D
	assert.Equal(t, []int{Left}, pressed)
}

func TestDecodeBareEscapeAtEndOfShortReadIsQuit(t *testing.T) {
	_, _, quit := decodeBuffer([]byte{0x1b}, false)
	assert.True(t, quit)
}

func TestDecodeBareEscapeInFullReadIsNotQuit(t *testing.T) {
	_, _, quit := decodeBuffer([]byte{0x1b}, true)
	assert.False(t, quit)
}

func TestDecodeLetterShortcutsCaseInsensitive(t *testing.T) {
	pressed, _, _ := decodeBuffer([]byte{'W', 'a', 'S', 'D', 'P', 'm', 'R'}, true)
	assert.Equal(t, []int{Rotate, Left, Down, Right, Start, Mute, OnOff}, pressed)
}

func TestDecodeEnterAndSpace(t *testing.T) {
	pressed, _, _ := decodeBuffer([]byte{10, 32}, true)
	assert.Equal(t, []int{Start, Rotate}, pressed)
}

func TestDecodeTabTogglesUI(t *testing.T) {
	_, toggles, _ := decodeBuffer([]byte{9}, true)
	assert.Equal(t, 1, toggles)
}

func TestPartialEscapeResetsOnUnrecognizedByte(t *testing.T) {
	// ESC [ followed by a byte that isn't A/B/C/D: consumes the triplet,
	// resets to status 0, and recognizes no key.
	pressed, _, quit := decodeBuffer([]byte{0x1b, 0x5b, 'z'}, true)
	assert.Empty(t, pressed)
	assert.False(t, quit)
}
