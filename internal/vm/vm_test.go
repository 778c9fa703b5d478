package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lc3vm/internal/console"
)

// TestHaltStopsDispatchLoop is scenario S1: a bare HALT trap must stop Run
// and print the closing message, with no error.
func TestHaltStopsDispatchLoop(t *testing.T) {
	fake := console.NewFake("")
	m := New(fake)
	m.Bus.Write(PCStart, 0xF025) // TRAP x25 (HALT)

	err := m.Run()
	require.NoError(t, err)
	assert.False(t, m.running)
	assert.Contains(t, fake.Output.String(), "HALT\n")
}

// TestPutsWritesString is scenario S3.
func TestPutsWritesString(t *testing.T) {
	fake := console.NewFake("")
	m := New(fake)

	str := "hi\x00"
	for i, r := range str {
		m.Bus.Write(0x4000+uint16(i), uint16(r))
	}
	m.Reg[R0] = 0x4000

	m.Bus.Write(PCStart, 0xF022)   // TRAP x22 (PUTS)
	m.Bus.Write(PCStart+1, 0xF025) // TRAP x25 (HALT)

	err := m.Run()
	require.NoError(t, err)
	assert.Contains(t, fake.Output.String(), "hi")
}

// TestKBSRReflectsKeyReady is scenario S6: reading KBSR must poll the
// console and latch a pending key into KBDR exactly when one is ready.
func TestKBSRReflectsKeyReady(t *testing.T) {
	fake := console.NewFake("A")
	m := New(fake)

	status := m.memRead(MMIOKBSR)
	assert.Equal(t, uint16(0x8000), status)
	assert.Equal(t, uint16('A'), m.memRead(MMIOKBDR))

	status = m.memRead(MMIOKBSR)
	assert.Equal(t, uint16(0), status)
}

func TestUnrecognizedOpcodeIsUnreachableButDefensivelyFaults(t *testing.T) {
	m := New(console.NewFake(""))
	delete(Opcodes, OpRES) // simulate a table edited down to 15 entries
	defer func() { Opcodes[OpRES] = Instruction{Name: "RES", Exec: (*Machine).res} }()

	m.Bus.Write(PCStart, OpRES<<12)
	err := m.Run()
	require.Error(t, err)
	var fe *FatalExecError
	require.ErrorAs(t, err, &fe)
}

func TestStepPausesBetweenInstructions(t *testing.T) {
	m := New(console.NewFake(""))
	m.Bus.Write(PCStart, 0xF025) // HALT

	running, err := m.Step()
	require.NoError(t, err)
	assert.False(t, running)
}
