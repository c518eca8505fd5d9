// Package rom loads and addresses the 4096-byte flat program ROM that the
// CPU interpreter executes and reads lookup tables from.
package rom

import (
	"fmt"
	"os"
)

// Size is the fixed size of a brick4bit ROM image, in bytes.
const Size = 4096

// SizeError reports a ROM (or save file) that did not come out to the
// expected byte count.
type SizeError struct {
	Path string
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: unexpected size (want %d bytes, got %d)", e.Path, e.Want, e.Got)
}

// ROM is an immutable, flat 4096-byte program image.
type ROM struct {
	data [Size]byte
}

// Load reads a ROM image from path. The file must be exactly Size bytes.
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: %w", err)
	}
	if len(data) != Size {
		return nil, &SizeError{Path: path, Want: Size, Got: len(data)}
	}

	r := &ROM{}
	copy(r.data[:], data)
	return r, nil
}

// FromBytes wraps an in-memory image, for tests and tools that build a ROM
// programmatically instead of loading one from disk.
func FromBytes(data []byte) (*ROM, error) {
	if len(data) != Size {
		return nil, &SizeError{Path: "<memory>", Want: Size, Got: len(data)}
	}
	r := &ROM{}
	copy(r.data[:], data)
	return r, nil
}

// Read returns the byte at the given 12-bit address, wrapping at 4096.
func (r *ROM) Read(addr uint16) byte {
	return r.data[addr&0xFFF]
}

// ReadPage reads a byte from an explicit 256-byte page (0x0..0xF), used by
// the READF family of opcodes which always target page 0xF regardless of
// the instruction's own address.
func (r *ROM) ReadPage(page uint8, index uint8) byte {
	return r.data[uint16(page&0xF)<<8|uint16(index)]
}

// Bytes returns the raw backing array, for the offline analysis tool.
func (r *ROM) Bytes() *[Size]byte {
	return &r.data
}
