package vm

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	"lc3vm/internal/bits"
)

// LoadImage reads an LC-3 object file from path and loads it into memory.
// The file's first word gives the origin address; every word after that
// is placed at consecutive addresses starting there.
func (m *Machine) LoadImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	if err := m.loadFrom(f); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// loadFrom reads raw 16-bit words and byte-swaps each one: object files are
// big-endian, and the words are read here in whatever order the host's
// native encoding/binary.LittleEndian decoding gives them, then corrected
// with bits.Swap16 -- the same two-step the original reference performs
// with fread + an explicit swap16 call. The collected, swapped words are
// then placed in memory in one call to Bus.LoadWords.
func (m *Machine) loadFrom(r io.Reader) error {
	origin, err := readWord(r)
	if err != nil {
		return err
	}
	origin = bits.Swap16(origin)

	var program []uint16
	for {
		w, err := readWord(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		program = append(program, bits.Swap16(w))
	}
	m.Bus.LoadWords(origin, program)
	return nil
}

func readWord(r io.Reader) (uint16, error) {
	var w uint16
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return 0, err
	}
	return w, nil
}
