// Package input turns raw terminal bytes (and, optionally, a Linux
// joystick) into the two 4-bit port values the CPU polls once per frame:
// PP (rotate/down/right/left) and PS (start-pause/mute/on-off/unused).
package input

// Key indices into the 8-slot hold-timer table (bit positions 0..7 of the
// logical key bitmask). Bit 7 is reserved and never set.
const (
	Rotate = iota // 0: rotate / up
	Down          // 1
	Right         // 2
	Left          // 3
	Start         // 4: start/pause
	Mute          // 5
	OnOff         // 6
	reserved7     // 7: unused
	numDebouncedKeys
)

// UIToggleBit identifies the edge-triggered debug memory-map toggle as a
// pseudo-key, so a Gamepad can report it through the same GamepadEvent
// shape as an ordinary button. The quit signal (bit 16 in the bitmask
// the keys field models conceptually) has no gamepad equivalent and is
// tracked directly as Controller.quit instead.
const UIToggleBit = 17
