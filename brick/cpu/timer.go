package cpu

// DefaultTimerDivisor is the original's default "-i" argument (32): the
// timer register increments roughly once every 32 instructions once
// TimerIncrement has been derived from it via TimerIncrementFor.
const DefaultTimerDivisor = 32

// TimerIncrementFor converts a "ticks per timer increment" divisor into the
// 16.16 fixed-point fractional step tickTimer accumulates, matching the
// original's "timer_inc = divisor ? 0x10000/divisor : 0x10000", capped so a
// divisor of 1 advances the timer once per instruction rather than
// overflowing past a full step.
func TimerIncrementFor(divisor uint32) uint32 {
	if divisor == 0 {
		return 0x10000
	}
	inc := uint32(0x10000) / divisor
	if inc > 0x10000 {
		inc = 0x10000
	}
	return inc
}

// SetTimerIncrement sets the 16.16 fixed-point fractional step added to the
// timer accumulator on every Step call while TimerEnable is set.
func (ip *Interpreter) SetTimerIncrement(inc uint32) {
	ip.timerInc = inc
}

// tickTimer advances the fractional timer accumulator by one instruction's
// worth of timer_inc when the timer is enabled. Each time the accumulator
// crosses a full 0x10000 unit, Timer increments by one and wraps; wrapping
// from 0xFF to 0x00 sets TF, exactly as the original's "if (!++tmr) tf = 1".
func (ip *Interpreter) tickTimer() {
	s := ip.State
	if !s.TimerEnable {
		return
	}
	ip.tmrFrac += ip.timerInc
	if ip.tmrFrac >= 0x10000 {
		ip.tmrFrac -= 0x10000
		s.Timer++
		if s.Timer == 0 {
			s.TF = true
		}
	}
}
