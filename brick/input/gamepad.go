package input

// GamepadEvent is a single button or axis transition reported by a
// Gamepad, already translated to a logical key index (or UIToggleBit for
// the shoulder-button debug toggle).
type GamepadEvent struct {
	Key     int
	Pressed bool
}

// Gamepad is an optional input source layered on top of the terminal
// decoder. Implementations enumerate their device's axis/button layout
// once at Open time and translate raw events to GamepadEvents afterward.
type Gamepad interface {
	// Poll returns any events queued since the last call, non-blocking. A
	// non-nil error means the device should be treated as gone; the
	// caller closes it and stops polling.
	Poll() ([]GamepadEvent, error)
	Close() error
}

// axisThreshold is the fraction of full scale (±1.0) an axis must cross
// before it registers as a directional press, per the "at or beyond ±50%
// of full scale" rule.
const axisThreshold = 0.5
