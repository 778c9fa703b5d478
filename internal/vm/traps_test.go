package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lc3vm/internal/console"
)

func TestTrapGetcDoesNotTouchFlags(t *testing.T) {
	fake := console.NewFake("q")
	m := New(fake)
	m.Cond = FlagNeg

	m.trapGetc()
	assert.Equal(t, uint16('q'), m.Reg[R0])
	assert.Equal(t, FlagNeg, m.Cond, "GETC must not update condition flags")
}

func TestTrapOutWritesSingleChar(t *testing.T) {
	fake := console.NewFake("")
	m := New(fake)
	m.Reg[R0] = uint16('!')
	m.trapOut()
	assert.Equal(t, "!", fake.Output.String())
}

func TestTrapInPromptsWithoutEchoing(t *testing.T) {
	fake := console.NewFake("y")
	m := New(fake)
	m.Cond = FlagZero

	m.trapIn()
	assert.Equal(t, uint16('y'), m.Reg[R0])
	assert.Equal(t, "Enter a character: ", fake.Output.String(), "IN must not echo the character itself")
	assert.Equal(t, FlagZero, m.Cond, "IN must not update condition flags")
}

func TestTrapPutspTwoCharsPerWord(t *testing.T) {
	fake := console.NewFake("")
	m := New(fake)
	m.Bus.Write(0x4000, uint16('h')|uint16('i')<<8)
	m.Bus.Write(0x4001, uint16('!'))
	m.Reg[R0] = 0x4000

	m.trapPutsp()
	assert.Equal(t, "hi!", fake.Output.String())
}

// TestTrapPutspZeroHighByteMidStringKeepsScanning guards against stopping
// at the first zero high byte instead of the first zero word: a word with
// a zero high byte should suppress only that byte, not end the string.
func TestTrapPutspZeroHighByteMidStringKeepsScanning(t *testing.T) {
	fake := console.NewFake("")
	m := New(fake)
	m.Bus.Write(0x4000, uint16('A'))                    // hi byte 0 -- not the terminator
	m.Bus.Write(0x4001, uint16('B')|uint16('C')<<8)
	m.Bus.Write(0x4002, 0x0000)
	m.Reg[R0] = 0x4000

	m.trapPutsp()
	assert.Equal(t, "ABC", fake.Output.String())
}

func TestTrapHaltPrintsMessageAndStops(t *testing.T) {
	fake := console.NewFake("")
	m := New(fake)
	m.running = true
	m.trapHalt()
	assert.False(t, m.running)
	assert.Equal(t, "HALT\n", fake.Output.String())
}
