package input

import "time"

// DefaultHoldTime is the original's "-k" default (50ms): a key stays
// latched for this long after its last press before auto-releasing, which
// is what lets a single terminal keypress register as "held" across
// several emulated frames.
const DefaultHoldTime = 50 * time.Millisecond

// Controller tracks which of the seven logical keys are currently held and
// derives the CPU's two input ports from that state. Only bits 0..6
// participate in debounce/auto-release; quit and the UI-toggle bit are
// latched separately and never expire on their own.
type Controller struct {
	holdTime  time.Duration
	keys      uint32
	keyTimers [numDebouncedKeys]time.Time

	quit    bool
	uiShown bool

	gamepad Gamepad
}

// NewController returns a controller with no keys held and no gamepad
// attached.
func NewController(holdTime time.Duration) *Controller {
	return &Controller{holdTime: holdTime}
}

// AttachGamepad wires an optional gamepad source; nil disables it.
func (c *Controller) AttachGamepad(g Gamepad) { c.gamepad = g }

// Feed decodes one raw read of stdin, updating held keys, the quit latch,
// and the UI-toggle edge. full reports whether the read filled the
// caller's buffer completely — see decodeBuffer.
func (c *Controller) Feed(buf []byte, full bool) {
	now := time.Now()
	c.expire(now)

	pressed, toggles, quit := decodeBuffer(buf, full)
	for _, k := range pressed {
		c.press(k, now)
	}
	if toggles%2 != 0 {
		c.uiShown = !c.uiShown
	}
	if quit {
		c.quit = true
	}
}

// PollGamepad reads pending events from the attached gamepad, if any, and
// folds them into the same key state Feed maintains. A read error closes
// and disables the device for the rest of the session, per the original's
// recovery policy for runtime gamepad faults.
func (c *Controller) PollGamepad() {
	if c.gamepad == nil {
		return
	}
	now := time.Now()
	events, err := c.gamepad.Poll()
	if err != nil {
		c.gamepad.Close()
		c.gamepad = nil
		return
	}
	for _, e := range events {
		switch {
		case e.Key == UIToggleBit:
			if e.Pressed {
				c.uiShown = !c.uiShown
			}
		case e.Pressed:
			c.press(e.Key, now)
		default:
			c.release(e.Key)
		}
	}
}

// Quit reports whether a bare, unterminated ESC was ever decoded. The
// gamepad has no quit event.
func (c *Controller) Quit() bool { return c.quit }

// UIToggled reports the current state of the edge-triggered debug
// memory-map toggle.
func (c *Controller) UIToggled() bool { return c.uiShown }

func (c *Controller) press(key int, at time.Time) {
	c.keys |= 1 << uint(key)
	c.keyTimers[key] = at
}

func (c *Controller) release(key int) {
	c.keys &^= 1 << uint(key)
	c.keyTimers[key] = time.Time{}
}

// expire clears any key whose hold window has elapsed, mirroring
// sys_events's per-poll debounce pass.
func (c *Controller) expire(now time.Time) {
	for i := 0; i < numDebouncedKeys; i++ {
		if !c.keyTimers[i].IsZero() && now.Sub(c.keyTimers[i]) > c.holdTime {
			c.keys &^= 1 << uint(i)
		}
	}
}

// Ports returns the CPU-facing PP (rotate/down/right/left, low nibble) and
// PS (start/mute/on-off/unused, low nibble) port values for the current
// key state, inverted to active-low as the original's
// "pp = ~keys & 0xF; ps = ~keys >> 4 & 0xF" does.
func (c *Controller) Ports() (pp, ps uint8) {
	inverted := ^c.keys
	pp = uint8(inverted) & 0xF
	ps = uint8(inverted>>4) & 0xF
	return pp, ps
}
