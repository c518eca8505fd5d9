package input

// decodeBuffer decodes one raw, non-blocking read of stdin into logical key
// presses, UI-toggle edges, and a quit signal, per the terminal decoder
// described for the input controller: a minimal ANSI CSI state machine for
// arrow keys, plus single-byte shortcuts. Each call starts the state
// machine fresh — a CSI sequence split across two separate reads is not
// recognized, since there is no state carried between calls.
//
// full reports whether the read filled the caller's buffer completely. A
// standalone ESC with nothing following it in a short read is the quit
// signal; the same ESC at the end of a full read is indistinguishable from
// the start of a sequence still in flight and is not treated as quit.
func decodeBuffer(buf []byte, full bool) (pressed []int, toggles int, quit bool) {
	status := 0
	for _, b := range buf {
		key := -1
		switch {
		case b == 0x1b:
			status = 1
		case b == 0x5b && status == 1:
			status = 2
		case status == 2:
			switch b {
			case 0x41:
				key = Rotate // UP
			case 0x42:
				key = Down
			case 0x43:
				key = Right
			case 0x44:
				key = Left
			}
			status = 0
		case b == 10: // LF
			key = Start
		case b == 32: // SPACE
			key = Rotate
		case b == 9: // TAB
			toggles++
		default:
			switch b | 0x20 {
			case 'w':
				key = Rotate
			case 'a':
				key = Left
			case 's':
				key = Down
			case 'd':
				key = Right
			case 'p':
				key = Start
			case 'm':
				key = Mute
			case 'r':
				key = OnOff
			}
			status = 0
		}
		if key >= 0 {
			pressed = append(pressed, key)
		}
	}
	if !full && status == 1 {
		quit = true
	}
	return pressed, toggles, quit
}
