// Package console abstracts the terminal I/O the LC-3's memory-mapped
// keyboard device and trap routines are built on, so the dispatch loop in
// package vm never talks to os.Stdin/os.Stdout directly.
package console

// A Console is whatever the running program's keyboard and display are
// connected to: a real raw-mode terminal, or a scripted double in tests.
type Console interface {
	// KeyReady reports whether a byte is available to read, without
	// blocking. It backs the KBSR memory-mapped register.
	KeyReady() bool

	// ReadChar blocks until a byte is available and returns it. It backs
	// the KBDR register and the GETC/IN traps.
	ReadChar() byte

	// WriteChar queues a single byte of program output.
	WriteChar(b byte)

	// WriteString queues a string of program output (used by the IN
	// trap's prompt).
	WriteString(s string)

	// Flush delivers any buffered output to the underlying device.
	Flush()
}
