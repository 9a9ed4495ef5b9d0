package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu     *Cpu
	program []byte

	prevPC uint16
	done   bool
	error  error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	m.cpu.Load(m.program)
	m.cpu.Reset()
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			if m.done {
				return m, nil
			}
			m.prevPC = m.cpu.ProgramCounter
			done, err := m.cpu.Step()
			m.done = done
			if err != nil {
				m.error = err
				return m, tea.Quit
			}

		case "r":
			m.cpu.Reset()
			m.done = false
		}
	}
	return m, nil
}

// renderPage renders a 16-byte row of memory as a line. The current PC is
// highlighted.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range m.cpu.Bus.Ram[start : start+16] {
		if start+uint16(i) == m.cpu.ProgramCounter {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) statusPanel() string {
	state := "running"
	if m.done {
		state = "halted"
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
 A: %02x
 X: %02x
 Y: %02x
 P: %s
cycles: %d
%s
`,
		m.cpu.ProgramCounter,
		m.prevPC,
		m.cpu.StackAddr(),
		m.cpu.Accumulator,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.Status,
		m.cpu.ClockCount,
		state,
	)
}

func (m model) pageTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}

	offsets := []int{
		// zero page, then the stack page top, then the program
		0, 16, 32, 48,
		int(m.cpu.StackAddr() &^ 0x000f),
		int(LoadBase),
		int(LoadBase + 16*1),
		int(LoadBase + 16*2),
		int(LoadBase + 16*3),
		int(LoadBase + 16*4),
	}
	for _, i := range offsets {
		rows = append(rows, m.renderPage(uint16(i)))
	}
	return strings.Join(rows, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.statusPanel(),
		),
		"",
		strings.Join(m.cpu.Disassemble(m.cpu.ProgramCounter, m.cpu.ProgramCounter), "\n"),
		spew.Sdump(Opcodes[m.cpu.Read(m.cpu.ProgramCounter)]),
	)
}

// Debug loads the program, resets, then starts an interactive TUI that
// single-steps it: space/j executes one instruction, r resets, q quits.
func (c *Cpu) Debug(program []byte) {
	m, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
	}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
