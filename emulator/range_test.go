package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeContains(t *testing.T) {
	r := NewRange(0x100, 0x10)

	cases := []struct {
		addr uint32
		want bool
	}{
		{0x0ff, false},
		{0x100, true},
		{0x108, true},
		{0x10f, true},
		{0x110, false},
		{0xffffffff, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, r.Contains(c.addr), "address 0x%x", c.addr)
	}
}

func TestRangeOffset(t *testing.T) {
	r := NewRange(0x100, 0x10)
	assert.EqualValues(t, 0, r.Offset(0x100))
	assert.EqualValues(t, 0xf, r.Offset(0x10f))
}

func TestBIOSRange(t *testing.T) {
	assert.True(t, BIOS_RANGE.Contains(BIOS_START))
	assert.True(t, BIOS_RANGE.Contains(BIOS_START+BIOS_SIZE-1))
	assert.False(t, BIOS_RANGE.Contains(BIOS_START-1))
	assert.False(t, BIOS_RANGE.Contains(BIOS_START+BIOS_SIZE))

	assert.EqualValues(t, 0, BIOS_RANGE.Offset(BIOS_START))
	assert.EqualValues(t, 0x420, BIOS_RANGE.Offset(BIOS_START+0x420))
}
