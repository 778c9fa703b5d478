// Package vm implements the LC-3 machine: registers, memory-mapped I/O,
// the opcode dispatch table, and the fetch-execute loop.
package vm

import (
	"fmt"

	"lc3vm/internal/console"
	"lc3vm/internal/mem"
)

// Register indices. R0-R7 are general purpose; R7 additionally holds the
// return address after JSR/JSRR.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	RCount
)

// PCStart is the address execution begins at, as fixed by convention for
// LC-3 object files: user programs are loaded at or above this address.
const PCStart uint16 = 0x3000

// Condition flags. Exactly one is set after any flag-updating instruction
// (ADD, AND, NOT, LD, LDI, LDR, LEA). JSR and the GETC/IN traps write a
// register without touching them.
const (
	FlagPos  uint16 = 1 << 0
	FlagZero uint16 = 1 << 1
	FlagNeg  uint16 = 1 << 2
)

// Memory-mapped I/O registers for the keyboard device.
const (
	MMIOKBSR uint16 = 0xFE00
	MMIOKBDR uint16 = 0xFE00 + 2
)

// Opcodes, indexed by the top 4 bits of an instruction word.
const (
	OpBR uint16 = iota
	OpADD
	OpLD
	OpST
	OpJSR
	OpAND
	OpLDR
	OpSTR
	OpRTI
	OpNOT
	OpLDI
	OpSTI
	OpJMP
	OpRES
	OpLEA
	OpTRAP
)

// Trap vectors.
const (
	TrapGETC  uint16 = 0x20
	TrapOUT   uint16 = 0x21
	TrapPUTS  uint16 = 0x22
	TrapIN    uint16 = 0x23
	TrapPUTSP uint16 = 0x24
	TrapHALT  uint16 = 0x25
)

// A LoadError reports a failure to read or parse an object file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// A FatalExecError is raised when the dispatch loop reaches RTI, RES, a TRAP
// with an unknown vector, or an opcode with no registered handler -- in the
// original implementation an unhandled opcode
// prints "BAD OPCODE" and aborts; here it unwinds Run as an error instead.
type FatalExecError struct {
	Opcode uint16
	PC     uint16
}

func (e *FatalExecError) Error() string {
	return fmt.Sprintf("BAD OPCODE %04x at pc=%#04x", e.Opcode, e.PC)
}

// A Machine is one LC-3: its registers, its memory, and the console its
// keyboard/display traps talk to. It carries no global state, so multiple
// Machines can coexist (e.g. in tests).
type Machine struct {
	Reg  [RCount]uint16
	PC   uint16
	Cond uint16

	Bus     *mem.Bus
	Console console.Console

	running bool
	fault   error
}

// New returns a Machine with memory zeroed, PC at PCStart, and the Zero
// condition flag set, ready to have an image loaded into it.
func New(c console.Console) *Machine {
	return &Machine{
		Bus:     &mem.Bus{},
		Console: c,
		PC:      PCStart,
		Cond:    FlagZero,
	}
}

// memRead reads a word from memory, servicing the keyboard device if addr
// is KBSR: a pending key is latched into KBDR and KBSR's ready bit is set,
// otherwise the ready bit is cleared. This is the only place device side
// effects occur; everywhere else memory is just memory.
func (m *Machine) memRead(addr uint16) uint16 {
	if addr == MMIOKBSR {
		if m.Console.KeyReady() {
			m.Bus.Write(MMIOKBSR, 0x8000)
			m.Bus.Write(MMIOKBDR, uint16(m.Console.ReadChar()))
		} else {
			m.Bus.Write(MMIOKBSR, 0)
		}
	}
	return m.Bus.Read(addr)
}

func (m *Machine) memWrite(addr, val uint16) {
	m.Bus.Write(addr, val)
}

// updateFlags sets Cond from the current value of register r. It runs after
// ADD, AND, NOT, LD, LDI, LDR and LEA; JSR (R7) and the GETC/IN traps (R0)
// write a register without calling it.
func (m *Machine) updateFlags(r uint16) {
	switch {
	case m.Reg[r] == 0:
		m.Cond = FlagZero
	case m.Reg[r]>>15 == 1:
		m.Cond = FlagNeg
	default:
		m.Cond = FlagPos
	}
}

func (m *Machine) raiseFault(err error) {
	m.fault = err
	m.running = false
}

// Run drives the fetch-decode-execute loop until a HALT trap clears
// running, or an instruction raises a fault (RTI, RES, a TRAP with an
// unknown vector, or an unrecognized opcode), whichever happens first.
func (m *Machine) Run() error {
	m.running = true
	m.fault = nil
	for m.running {
		instr := m.memRead(m.PC)
		m.PC++

		op := instr >> 12
		handler, ok := Opcodes[op]
		if !ok {
			return &FatalExecError{Opcode: op, PC: m.PC - 1}
		}
		handler.Exec(m, instr)
		if m.fault != nil {
			return m.fault
		}
	}
	return nil
}

// Step executes a single instruction and reports whether the machine is
// still running afterwards. It is used by the interactive debugger, which
// needs to pause between instructions rather than run Machine.Run to
// completion.
func (m *Machine) Step() (bool, error) {
	if !m.running {
		m.running = true
		m.fault = nil
	}
	instr := m.memRead(m.PC)
	m.PC++

	op := instr >> 12
	handler, ok := Opcodes[op]
	if !ok {
		return false, &FatalExecError{Opcode: op, PC: m.PC - 1}
	}
	handler.Exec(m, instr)
	if m.fault != nil {
		return false, m.fault
	}
	return m.running, nil
}
