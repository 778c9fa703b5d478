package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwap16(t *testing.T) {
	assert.Equal(t, uint16(0x3000), Swap16(0x0030))
	assert.Equal(t, uint16(0x1234), Swap16(Swap16(0x1234)))
	assert.Equal(t, uint16(0x0000), Swap16(0x0000))
}

func TestSignExtend(t *testing.T) {
	// 5-bit immediates, as used by ADD/AND
	assert.Equal(t, uint16(0x0001), SignExtend(0b00001, 5))
	assert.Equal(t, uint16(0xFFFF), SignExtend(0b11111, 5)) // -1
	assert.Equal(t, uint16(0xFFFE), SignExtend(0b11110, 5)) // -2

	// 9-bit PC offsets, as used by LD/LDI/LEA/ST/STI/BR
	assert.Equal(t, uint16(0x0001), SignExtend(0x001, 9))  // small positive offset
	assert.Equal(t, uint16(0xFF00), SignExtend(0x100, 9))  // bit 8 set -> negative
	assert.Equal(t, uint16(0xFFFF), SignExtend(0x1FF, 9))  // all 9 bits set -> -1

	// 11-bit JSR offsets
	assert.Equal(t, uint16(0xFFFF), SignExtend(0x7FF, 11))
}
