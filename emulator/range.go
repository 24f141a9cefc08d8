package emulator

// The range of the BIOS in the address space. It is mapped at the reset
// vector, so this is where the first instruction fetches will land
var BIOS_RANGE = NewRange(BIOS_START, BIOS_SIZE)

// A contiguous address range, used to locate components in the address
// space before any bus logic exists
type Range struct {
	Start  uint32 // Start address
	Length uint32 // Length of the mapping
}

func NewRange(start, length uint32) Range {
	return Range{Start: start, Length: length}
}

// Returns whether `addr` is located inside this range
func (r Range) Contains(addr uint32) bool {
	return addr >= r.Start && addr < r.Start+r.Length
}

// Returns the offset of `addr` from the start of the range. Only
// meaningful when the range contains the address, an `addr` below
// `Start` overflows
func (r Range) Offset(addr uint32) uint32 {
	return addr - r.Start
}
