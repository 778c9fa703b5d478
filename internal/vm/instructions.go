package vm

import "lc3vm/internal/bits"

// ADD - DR = SR1 + (SR2 or a sign-extended 5-bit immediate)
func (m *Machine) add(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	if (instr>>5)&0x1 == 1 {
		imm5 := bits.SignExtend(instr&0x1F, 5)
		m.Reg[dr] = m.Reg[sr1] + imm5
	} else {
		sr2 := instr & 0x7
		m.Reg[dr] = m.Reg[sr1] + m.Reg[sr2]
	}
	m.updateFlags(dr)
}

// AND - DR = SR1 & (SR2 or a sign-extended 5-bit immediate)
func (m *Machine) and(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	if (instr>>5)&0x1 == 1 {
		imm5 := bits.SignExtend(instr&0x1F, 5)
		m.Reg[dr] = m.Reg[sr1] & imm5
	} else {
		sr2 := instr & 0x7
		m.Reg[dr] = m.Reg[sr1] & m.Reg[sr2]
	}
	m.updateFlags(dr)
}

// NOT - DR = ~SR
func (m *Machine) not(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr := (instr >> 6) & 0x7
	m.Reg[dr] = ^m.Reg[sr]
	m.updateFlags(dr)
}

// BR - branch to PC + offset if any of the tested condition bits is set in
// Cond. An all-zero condition field ([n,z,p] all clear) never branches.
func (m *Machine) br(instr uint16) {
	condFlag := (instr >> 9) & 0x7
	pcOffset := bits.SignExtend(instr&0x1FF, 9)
	if condFlag&m.Cond != 0 {
		m.PC += pcOffset
	}
}

// JMP - PC = BaseR. RET is this instruction with BaseR = R7.
func (m *Machine) jmp(instr uint16) {
	baseR := (instr >> 6) & 0x7
	m.PC = m.Reg[baseR]
}

// JSR/JSRR - R7 = PC (the return address), then jump to either PC + an
// 11-bit offset (JSR) or the address in BaseR (JSRR), selected by bit 11.
func (m *Machine) jsr(instr uint16) {
	m.Reg[R7] = m.PC
	if (instr>>11)&0x1 == 1 {
		pcOffset := bits.SignExtend(instr&0x7FF, 11)
		m.PC += pcOffset
	} else {
		baseR := (instr >> 6) & 0x7
		m.PC = m.Reg[baseR]
	}
}

// LD - DR = mem[PC + offset]
func (m *Machine) ld(instr uint16) {
	dr := (instr >> 9) & 0x7
	pcOffset := bits.SignExtend(instr&0x1FF, 9)
	m.Reg[dr] = m.memRead(m.PC + pcOffset)
	m.updateFlags(dr)
}

// LDI - DR = mem[mem[PC + offset]]
func (m *Machine) ldi(instr uint16) {
	dr := (instr >> 9) & 0x7
	pcOffset := bits.SignExtend(instr&0x1FF, 9)
	m.Reg[dr] = m.memRead(m.memRead(m.PC + pcOffset))
	m.updateFlags(dr)
}

// LDR - DR = mem[BaseR + offset]
func (m *Machine) ldr(instr uint16) {
	dr := (instr >> 9) & 0x7
	baseR := (instr >> 6) & 0x7
	offset := bits.SignExtend(instr&0x3F, 6)
	m.Reg[dr] = m.memRead(m.Reg[baseR] + offset)
	m.updateFlags(dr)
}

// LEA - DR = PC + offset (the address itself, not its contents)
func (m *Machine) lea(instr uint16) {
	dr := (instr >> 9) & 0x7
	pcOffset := bits.SignExtend(instr&0x1FF, 9)
	m.Reg[dr] = m.PC + pcOffset
	m.updateFlags(dr)
}

// ST - mem[PC + offset] = SR
func (m *Machine) st(instr uint16) {
	sr := (instr >> 9) & 0x7
	pcOffset := bits.SignExtend(instr&0x1FF, 9)
	m.memWrite(m.PC+pcOffset, m.Reg[sr])
}

// STI - mem[mem[PC + offset]] = SR
func (m *Machine) sti(instr uint16) {
	sr := (instr >> 9) & 0x7
	pcOffset := bits.SignExtend(instr&0x1FF, 9)
	m.memWrite(m.memRead(m.PC+pcOffset), m.Reg[sr])
}

// STR - mem[BaseR + offset] = SR
func (m *Machine) str(instr uint16) {
	sr := (instr >> 9) & 0x7
	baseR := (instr >> 6) & 0x7
	offset := bits.SignExtend(instr&0x3F, 6)
	m.memWrite(m.Reg[baseR]+offset, m.Reg[sr])
}

// RTI has no privileged mode to return from in this machine; reaching it
// is a program error, not a no-op.
func (m *Machine) rti(instr uint16) {
	m.raiseFault(&FatalExecError{Opcode: OpRTI, PC: m.PC - 1})
}

// RES is the reserved opcode; like RTI, executing it is a fault.
func (m *Machine) res(instr uint16) {
	m.raiseFault(&FatalExecError{Opcode: OpRES, PC: m.PC - 1})
}
