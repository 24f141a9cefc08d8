package emulator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryReadWrite(t *testing.T) {
	mem := NewMemory()

	addrs := []uint32{0, 1, 17, 0xbeef, MEMORY_SIZE - 1}
	for _, addr := range addrs {
		mem.Write(addr, addr^0xdeadbeef)
	}
	for _, addr := range addrs {
		val, ok := mem.Read(addr)
		assert.True(t, ok, "address %d should be in range", addr)
		assert.Equal(t, addr^0xdeadbeef, val)
	}
}

func TestMemoryStartsZeroed(t *testing.T) {
	mem := NewMemory()
	for _, addr := range []uint32{0, 1, 0x1000, MEMORY_SIZE / 2, MEMORY_SIZE - 1} {
		val, ok := mem.Read(addr)
		assert.True(t, ok)
		assert.EqualValues(t, 0, val)
	}
}

func TestMemoryReadOutOfBounds(t *testing.T) {
	mem := NewMemory()
	for _, addr := range []uint32{MEMORY_SIZE, MEMORY_SIZE + 1, 0xffffffff} {
		val, ok := mem.Read(addr)
		assert.False(t, ok, "address %d should be out of range", addr)
		assert.EqualValues(t, 0, val)
	}
}

func TestMemoryWriteOutOfBounds(t *testing.T) {
	mem := NewMemory()
	want := fmt.Sprintf(
		"memory: write out of bounds, expected address between 0 and %d, got %d",
		MEMORY_SIZE-1, MEMORY_SIZE,
	)
	assert.PanicsWithValue(t, want, func() {
		mem.Write(MEMORY_SIZE, 1)
	})
	assert.Panics(t, func() {
		mem.Write(0xffffffff, 1)
	})
}

func TestMemoryClear(t *testing.T) {
	mem := NewMemory()
	mem.Write(0, 0xcafe)
	mem.Write(123, 0xffffffff)
	mem.Write(MEMORY_SIZE-1, 0xbabe)

	mem.Clear()

	for _, addr := range []uint32{0, 123, MEMORY_SIZE - 1} {
		val, ok := mem.Read(addr)
		assert.True(t, ok)
		assert.EqualValues(t, 0, val, "address %d should be cleared", addr)
	}
}
