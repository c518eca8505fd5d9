package cpu

import (
	"fmt"
	"os"
)

// saveSize is the raw byte-dump layout of cpu_state_t: 256 mem bytes (one
// nibble each, stored unpacked), pc (2 bytes, little-endian), stack (2
// bytes, little-endian), a (1), r[0..4] (5), cf (1), tmr (1), tf (1),
// timer_en (1). Kept unpacked rather than bit-packed so a save file is a
// byte-for-byte match of the original's fwrite(&s, sizeof(s), 1, f).
const saveSize = 256 + 2 + 2 + 1 + 5 + 1 + 1 + 1 + 1

// Save writes the state as a raw byte dump to path.
func Save(path string, s *State) error {
	buf := make([]byte, 0, saveSize)
	buf = append(buf, s.Mem[:]...)
	buf = appendUint16(buf, s.PC)
	buf = appendUint16(buf, s.Stack)
	buf = append(buf, s.A)
	buf = append(buf, s.R[:]...)
	buf = append(buf, boolByte(s.CF))
	buf = append(buf, s.Timer)
	buf = append(buf, boolByte(s.TF))
	buf = append(buf, boolByte(s.TimerEnable))

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("cpu: save %s: %w", path, err)
	}
	return nil
}

// LoadSave reads a raw byte-dump state from path and validates it, mirroring
// the original's exact-size check plus check_state() call before a save
// file is trusted.
func LoadSave(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cpu: load save %s: %w", path, err)
	}
	if len(data) != saveSize {
		return nil, &SaveSizeError{Path: path, Want: saveSize, Got: len(data)}
	}

	s := &State{}
	copy(s.Mem[:], data[0:256])
	s.PC = readUint16(data[256:258])
	s.Stack = readUint16(data[258:260])
	s.A = data[260]
	copy(s.R[:], data[261:266])
	s.CF = data[266] != 0
	s.Timer = data[267]
	s.TF = data[268] != 0
	s.TimerEnable = data[269] != 0

	for _, f := range []struct {
		name string
		off  int
	}{{"cf", 266}, {"tf", 268}, {"timer_en", 269}} {
		if data[f.off] > 1 {
			return nil, fmt.Errorf("cpu: load save %s: %w", path, &StateError{Field: f.name, Value: uint64(data[f.off])})
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cpu: load save %s: %w", path, err)
	}
	return s, nil
}

// SaveSizeError reports a save file that isn't exactly saveSize bytes.
type SaveSizeError struct {
	Path string
	Want int
	Got  int
}

func (e *SaveSizeError) Error() string {
	return fmt.Sprintf("%s: corrupted save (want %d bytes, got %d)", e.Path, e.Want, e.Got)
}

func appendUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v), byte(v>>8))
}

func readUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
