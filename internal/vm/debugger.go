package vm

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea model for the single-step register/memory
// inspector. It wraps a *Machine rather than owning state itself, so the
// same Machine a caller loaded an image into can be stepped interactively.
type model struct {
	m      *Machine
	prevPC uint16
	err    error
	done   bool
}

func (model) Init() tea.Cmd { return nil }

func (mo model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return mo, tea.Quit
		case " ", "j":
			if mo.done {
				return mo, nil
			}
			mo.prevPC = mo.m.PC
			running, err := mo.m.Step()
			if err != nil {
				mo.err = err
				mo.done = true
				return mo, nil
			}
			if !running {
				mo.done = true
			}
		}
	}
	return mo, nil
}

// renderPage renders one 16-word row of memory as a line of hex, bracketing
// the word the PC currently points at.
func (mo model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		w := mo.m.Bus.Read(addr)
		if addr == mo.m.PC {
			s += fmt.Sprintf("[%04x] ", w)
		} else {
			s += fmt.Sprintf(" %04x  ", w)
		}
	}
	return s
}

func (mo model) pageTable() string {
	header := "addr | " + strings.Repeat(" ", 1)
	rows := []string{header}
	base := mo.m.PC &^ 0xF
	for p := -2; p <= 2; p++ {
		rows = append(rows, mo.renderPage(base+uint16(p*16)))
	}
	return strings.Join(rows, "\n")
}

func (mo model) status() string {
	flagName := map[uint16]string{FlagNeg: "N", FlagZero: "Z", FlagPos: "P"}[mo.m.Cond]
	return fmt.Sprintf(`
PC: %04x (was %04x)
Cond: %s
R0: %04x  R1: %04x  R2: %04x  R3: %04x
R4: %04x  R5: %04x  R6: %04x  R7: %04x
`,
		mo.m.PC, mo.prevPC, flagName,
		mo.m.Reg[R0], mo.m.Reg[R1], mo.m.Reg[R2], mo.m.Reg[R3],
		mo.m.Reg[R4], mo.m.Reg[R5], mo.m.Reg[R6], mo.m.Reg[R7],
	)
}

func (mo model) View() string {
	next := mo.m.Bus.Read(mo.m.PC)
	opcode := next >> 12
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, mo.pageTable(), mo.status()),
		"",
		fmt.Sprintf("next: %s", spew.Sdump(Opcodes[opcode])),
	)
	if mo.err != nil {
		view += fmt.Sprintf("\nfault: %v\n", mo.err)
	}
	if mo.done {
		view += "\n(halted -- press q to quit)\n"
	}
	return view
}

// Debug starts an interactive single-step session over m, which must
// already have an image loaded and its PC positioned at the entry point.
func (m *Machine) Debug() error {
	final, err := tea.NewProgram(model{m: m}).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
