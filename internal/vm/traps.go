package vm

// trap dispatches TRAP instructions by the 8-bit trap vector in the low
// byte of the instruction word. GETC and IN deliberately do not update the
// condition flags, matching the reference trap routines -- only R0 is
// written.
func (m *Machine) trap(instr uint16) {
	switch instr & 0xFF {
	case TrapGETC:
		m.trapGetc()
	case TrapOUT:
		m.trapOut()
	case TrapPUTS:
		m.trapPuts()
	case TrapIN:
		m.trapIn()
	case TrapPUTSP:
		m.trapPutsp()
	case TrapHALT:
		m.trapHalt()
	default:
		m.raiseFault(&FatalExecError{Opcode: OpTRAP, PC: m.PC - 1})
	}
}

// GETC - read a single character from the keyboard into R0, without echo.
func (m *Machine) trapGetc() {
	m.Reg[R0] = uint16(m.Console.ReadChar())
}

// OUT - write the character in R0 to the display.
func (m *Machine) trapOut() {
	m.Console.WriteChar(byte(m.Reg[R0]))
	m.Console.Flush()
}

// PUTS - write the null-terminated string of one-character-per-word
// starting at the address in R0.
func (m *Machine) trapPuts() {
	for addr := m.Reg[R0]; ; addr++ {
		w := m.memRead(addr)
		if w == 0 {
			break
		}
		m.Console.WriteChar(byte(w))
	}
	m.Console.Flush()
}

// IN - prompt, then read a single character, storing it in R0. (Echoing is
// the Console's responsibility, not this trap's.)
func (m *Machine) trapIn() {
	m.Console.WriteString("Enter a character: ")
	m.Console.Flush()
	c := m.Console.ReadChar()
	m.Reg[R0] = uint16(c)
}

// PUTSP - write the null-terminated string of two-characters-per-word
// starting at the address in R0; the low byte of each word prints before
// the high byte, a zero high byte just suppresses that byte, and a zero
// word ends the string.
func (m *Machine) trapPutsp() {
	for addr := m.Reg[R0]; ; addr++ {
		w := m.memRead(addr)
		if w == 0 {
			break
		}
		m.Console.WriteChar(byte(w & 0xFF))
		if hi := byte(w >> 8); hi != 0 {
			m.Console.WriteChar(hi)
		}
	}
	m.Console.Flush()
}

// HALT - print a closing message and stop the dispatch loop. The original
// reference's final variant sets a running flag rather than calling
// exit(0); Machine.running mirrors that.
func (m *Machine) trapHalt() {
	m.Console.WriteString("HALT\n")
	m.Console.Flush()
	m.running = false
}
