package emulator

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const BIOS_SIZE uint32 = 512 * 1024 // BIOS images are always 512KB in length

// Returned when a BIOS image holds less than BIOS_SIZE bytes. Images
// bigger than that are fine, everything past the cap is ignored
var ErrBIOSSize = errors.New("BIOS file must be exactly 512 KB big")

// This stores the raw BIOS data
type BIOS struct {
	Data []byte // Raw BIOS data, read only after construction
}

// Loads a BIOS from a reader. The reader must yield at least BIOS_SIZE
// bytes; trailing bytes beyond that are never consumed
func LoadBIOS(r io.Reader) (*BIOS, error) {
	data := make([]byte, BIOS_SIZE)
	n, err := io.ReadFull(r, data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w (expected %d, got %d bytes)", ErrBIOSSize, BIOS_SIZE, n)
	}
	if err != nil {
		return nil, err
	}
	// success
	return &BIOS{Data: data}, nil
}

// Loads a BIOS image from the file at `path`. Open and read failures
// are returned wrapped, so they stay distinguishable from ErrBIOSSize
func LoadBIOSFromFile(path string) (*BIOS, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bios: %w", err)
	}
	defer file.Close()
	return LoadBIOS(file)
}

// Returns the 32 bit little endian value at `offset` (the byte at
// `offset` is the least significant). The second return value is false
// when the full 4 byte read does not fit inside the image. Note that
// `offset` is not the absolute address used by the CPU, instead it is
// an offset in the BIOS memory range
func (bios *BIOS) ReadWord(offset uint32) (uint32, bool) {
	if offset > BIOS_SIZE-4 {
		return 0, false
	}
	b0 := uint32(bios.Data[offset+0])
	b1 := uint32(bios.Data[offset+1])
	b2 := uint32(bios.Data[offset+2])
	b3 := uint32(bios.Data[offset+3])
	return b0 | (b1 << 8) | (b2 << 16) | (b3 << 24), true
}
