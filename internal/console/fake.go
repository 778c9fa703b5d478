package console

import "bytes"

// A Fake is a scripted Console for tests: ReadChar drains a fixed input
// queue instead of blocking on a real device, and all output lands in a
// buffer the test can inspect afterwards.
type Fake struct {
	Input  []byte
	Output bytes.Buffer

	pos int
}

// NewFake returns a Fake whose ReadChar calls will drain input in order.
func NewFake(input string) *Fake {
	return &Fake{Input: []byte(input)}
}

func (f *Fake) KeyReady() bool {
	return f.pos < len(f.Input)
}

// ReadChar returns the next scripted byte, or 0 once the input is
// exhausted -- there is no real device to block on.
func (f *Fake) ReadChar() byte {
	if f.pos >= len(f.Input) {
		return 0
	}
	b := f.Input[f.pos]
	f.pos++
	return b
}

func (f *Fake) WriteChar(b byte) {
	f.Output.WriteByte(b)
}

func (f *Fake) WriteString(s string) {
	f.Output.WriteString(s)
}

func (f *Fake) Flush() {}
