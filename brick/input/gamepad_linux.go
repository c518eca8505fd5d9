//go:build linux

package input

import (
	"encoding/binary"
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// Linux joystick driver ABI (linux/joystick.h): an event is a packed
// {time uint32, value int16, type uint8, number uint8} little-endian
// struct, and JSIOCGAXES/JSIOCGBUTTONS return the device's axis/button
// counts as a single byte via ioctl.
const (
	jsEventButton    = 0x01
	jsEventAxis      = 0x02
	jsEventInitFlag  = 0x80
	jsEventSize      = 8
	ioctlGetAxes     = 0x80016a11
	ioctlGetButtons  = 0x80016a12
	axisFullScale    = 32767.0
)

// LinuxGamepad reads a Linux joystick device (/dev/input/jsN) through its
// raw event ABI, translating axis and button events into logical keys.
// Axis 0 is treated as horizontal (left=bit 3, right=bit 2) and axis 1 as
// vertical (up=bit 0, down=bit 1); see DESIGN.md for why the device's full
// axis-code map (JSIOCGAXMAP) is not decoded.
type LinuxGamepad struct {
	f         *os.File
	fd        uintptr
	numAxes   uint8
	numBtns   uint8
	axisState map[uint8]int16
}

// OpenGamepad opens path in non-blocking mode and queries its axis/button
// counts. Failure here is fatal per the error taxonomy: a gamepad that
// fails to report its capabilities at init time cannot be used safely.
func OpenGamepad(path string) (Gamepad, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|syscall.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("input: open gamepad %s: %w", path, err)
	}
	fd := f.Fd()

	var axes, buttons uint8
	if err := ioctlByte(fd, ioctlGetAxes, &axes); err != nil {
		f.Close()
		return nil, fmt.Errorf("input: query axis count for %s: %w", path, err)
	}
	if err := ioctlByte(fd, ioctlGetButtons, &buttons); err != nil {
		f.Close()
		return nil, fmt.Errorf("input: query button count for %s: %w", path, err)
	}

	return &LinuxGamepad{
		f:         f,
		fd:        fd,
		numAxes:   axes,
		numBtns:   buttons,
		axisState: make(map[uint8]int16),
	}, nil
}

func ioctlByte(fd uintptr, request uintptr, out *uint8) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, request, uintptr(unsafe.Pointer(out)))
	if errno != 0 {
		return errno
	}
	return nil
}

// Poll drains pending joystick events without blocking and translates them
// into logical key presses/releases.
func (g *LinuxGamepad) Poll() ([]GamepadEvent, error) {
	var events []GamepadEvent
	buf := make([]byte, jsEventSize)
	// OpenGamepad's f.Fd() call puts the descriptor into blocking mode, so
	// it is made non-blocking again and read directly rather than via g.f.
	if err := syscall.SetNonblock(int(g.fd), true); err != nil {
		return nil, fmt.Errorf("input: gamepad set non-blocking: %w", err)
	}
	for {
		n, err := syscall.Read(int(g.fd), buf)
		if err != nil {
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				return events, nil
			}
			return events, fmt.Errorf("input: gamepad read: %w", err)
		}
		if n < jsEventSize {
			return events, nil
		}

		value := int16(binary.LittleEndian.Uint16(buf[4:6]))
		typ := buf[6] &^ jsEventInitFlag
		number := buf[7]

		switch typ {
		case jsEventButton:
			events = append(events, g.buttonEvent(number, value != 0)...)
		case jsEventAxis:
			events = append(events, g.axisEvent(number, value)...)
		}
	}
}

// buttonEvent maps the first button to rotate, the second to mute, the
// third to start/pause, the fourth to on/off, and treats button 4 (a
// shoulder button) as the edge-triggered UI toggle, per the controller's
// documented button layout.
func (g *LinuxGamepad) buttonEvent(number uint8, pressed bool) []GamepadEvent {
	var key int
	switch number {
	case 0:
		key = Rotate
	case 1:
		key = Mute
	case 2:
		key = Start
	case 3:
		key = OnOff
	case 4:
		key = UIToggleBit
	default:
		return nil
	}
	return []GamepadEvent{{Key: key, Pressed: pressed}}
}

// axisEvent maps axis 0 to the horizontal pair and axis 1 to the vertical
// pair, setting or clearing each directional bit independently as the
// axis crosses axisThreshold in either direction.
func (g *LinuxGamepad) axisEvent(number uint8, value int16) []GamepadEvent {
	prev := g.axisState[number]
	g.axisState[number] = value

	norm := float64(value) / axisFullScale
	prevNorm := float64(prev) / axisFullScale

	var negKey, posKey int
	switch number {
	case 0:
		negKey, posKey = Left, Right
	case 1:
		negKey, posKey = Rotate, Down
	default:
		return nil
	}

	var events []GamepadEvent
	if crossed := norm <= -axisThreshold; crossed != (prevNorm <= -axisThreshold) {
		events = append(events, GamepadEvent{Key: negKey, Pressed: crossed})
	}
	if crossed := norm >= axisThreshold; crossed != (prevNorm >= axisThreshold) {
		events = append(events, GamepadEvent{Key: posKey, Pressed: crossed})
	}
	return events
}

// Close releases the underlying device file.
func (g *LinuxGamepad) Close() error {
	return g.f.Close()
}
