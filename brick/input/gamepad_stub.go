//go:build !linux

package input

import "fmt"

// OpenGamepad is unsupported outside Linux: the joystick ABI this reads
// (/dev/input/jsN) is Linux-specific. Callers treat this the same as any
// other gamepad init failure — fatal, per the error taxonomy.
func OpenGamepad(path string) (Gamepad, error) {
	return nil, fmt.Errorf("input: gamepad support requires linux (got %s)", path)
}
