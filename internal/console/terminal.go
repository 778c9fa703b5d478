package console

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// A Terminal drives a real raw-mode tty. It owns the raw-mode acquisition:
// NewTerminal puts stdin into raw (non-canonical, no-echo) mode, and Close
// restores the previous state. Callers must always defer Close after a
// successful NewTerminal, even on a later error path -- this is the single
// scoped acquire/release the dispatch loop relies on.
type Terminal struct {
	fd       int
	oldState *term.State
	in       *os.File
	out      *bufio.Writer
}

// NewTerminal acquires raw mode on stdin and buffers stdout.
func NewTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw terminal mode: %w", err)
	}
	return &Terminal{
		fd:       fd,
		oldState: old,
		in:       os.Stdin,
		out:      bufio.NewWriter(os.Stdout),
	}, nil
}

// Close flushes any buffered output and restores the terminal's prior mode.
func (t *Terminal) Close() error {
	t.out.Flush()
	return term.Restore(t.fd, t.oldState)
}

// KeyReady polls stdin's file descriptor for pending input without
// blocking, mirroring the original check_key's use of select().
func (t *Terminal) KeyReady() bool {
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	return err == nil && n > 0 && fds[0].Revents&unix.POLLIN != 0
}

// ReadChar blocks on a single-byte read from stdin.
func (t *Terminal) ReadChar() byte {
	var buf [1]byte
	if _, err := t.in.Read(buf[:]); err != nil {
		return 0
	}
	return buf[0]
}

func (t *Terminal) WriteChar(b byte) {
	t.out.WriteByte(b)
}

func (t *Terminal) WriteString(s string) {
	t.out.WriteString(s)
}

func (t *Terminal) Flush() {
	t.out.Flush()
}
