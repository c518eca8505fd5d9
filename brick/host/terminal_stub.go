//go:build !linux && !darwin

package host

import "fmt"

// Terminal is unavailable outside Linux/macOS: the non-blocking read path
// relies on syscall.SetNonblock plus a raw fd-level read, neither of which
// this build target supports the way OpenTerminal needs.
type Terminal struct{}

func OpenTerminal() (*Terminal, error) {
	return nil, fmt.Errorf("host: raw terminal mode is not supported on this platform")
}

func (t *Terminal) Read(buf []byte) (int, error) { return 0, nil }
func (t *Terminal) Close() error                 { return nil }
