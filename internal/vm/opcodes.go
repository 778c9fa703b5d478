package vm

// An Instruction pairs an opcode's mnemonic with the method that executes
// it. Exec receives the full 16-bit instruction word; it is responsible
// for picking apart whatever operand fields that opcode defines.
type Instruction struct {
	Name string
	Exec func(m *Machine, instr uint16)
}

// Opcodes is the dispatch table, total over the 4-bit opcode field. RTI and
// RES have no legal use in this machine (no privileged mode, no reserved
// instruction) and are wired to raise a fault rather than omitted, so the
// table lookup in Machine.Run never needs a default case.
var Opcodes = map[uint16]Instruction{
	OpBR:   {Name: "BR", Exec: (*Machine).br},
	OpADD:  {Name: "ADD", Exec: (*Machine).add},
	OpLD:   {Name: "LD", Exec: (*Machine).ld},
	OpST:   {Name: "ST", Exec: (*Machine).st},
	OpJSR:  {Name: "JSR", Exec: (*Machine).jsr},
	OpAND:  {Name: "AND", Exec: (*Machine).and},
	OpLDR:  {Name: "LDR", Exec: (*Machine).ldr},
	OpSTR:  {Name: "STR", Exec: (*Machine).str},
	OpRTI:  {Name: "RTI", Exec: (*Machine).rti},
	OpNOT:  {Name: "NOT", Exec: (*Machine).not},
	OpLDI:  {Name: "LDI", Exec: (*Machine).ldi},
	OpSTI:  {Name: "STI", Exec: (*Machine).sti},
	OpJMP:  {Name: "JMP", Exec: (*Machine).jmp},
	OpRES:  {Name: "RES", Exec: (*Machine).res},
	OpLEA:  {Name: "LEA", Exec: (*Machine).lea},
	OpTRAP: {Name: "TRAP", Exec: (*Machine).trap},
}
