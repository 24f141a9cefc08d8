package emulator

// Amount of addressable words in the CPU memory. Note that this counts
// 32 bit words, not bytes
const MEMORY_SIZE uint32 = 5 * 1024 * 1024

// Word addressable memory attached to the CPU. The buffer has a fixed
// size and is never resized
type Memory struct {
	Data [MEMORY_SIZE]uint32 // Word buffer
}

// Creates a new Memory instance with every word set to 0
func NewMemory() *Memory {
	return &Memory{}
}

// Resets all memory contents to 0
func (mem *Memory) Clear() {
	for i := range mem.Data {
		mem.Data[i] = 0
	}
}

// Writes `val` to `addr` if it is in range. An out of range write is a
// bug in the emulator, not a runtime fault, so it panics with the valid
// address range and the offending address
func (mem *Memory) Write(addr, val uint32) {
	if addr >= MEMORY_SIZE {
		panicFmt(
			"memory: write out of bounds, expected address between 0 and %d, got %d",
			MEMORY_SIZE-1, addr,
		)
	}
	mem.Data[addr] = val
}

// Attempts to read the word at `addr`. The second return value reports
// whether the address is in range; unlike writes, an out of range read
// is recoverable
func (mem *Memory) Read(addr uint32) (uint32, bool) {
	if addr >= MEMORY_SIZE {
		return 0, false
	}
	return mem.Data[addr], true
}
