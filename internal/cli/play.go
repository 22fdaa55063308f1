package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Interactive cube session.

Type move sequences to scramble the cube and watch the solver's answer
update live. Commands: "scramble" for a random state, "reset" to start
over, "solve" to apply the current solution, "q" to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(newPlayModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("interactive session error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

type playModel struct {
	facelets string
	solution string
	input    string
	message  string
	history  []string
	quitting bool
}

func newPlayModel() *playModel {
	return &playModel{
		facelets: cubesolver.SolvedFacelets,
		solution: "",
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.submit()

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	default:
		if len(key.String()) == 1 {
			m.input += key.String()
		}
	}
	return m, nil
}

func (m *playModel) submit() {
	line := strings.TrimSpace(m.input)
	m.input = ""
	m.message = ""

	switch strings.ToLower(line) {
	case "":
		return
	case "q", "quit", "exit":
		m.quitting = true
		return
	case "reset":
		m.facelets = cubesolver.SolvedFacelets
		m.history = nil
	case "scramble":
		m.facelets = cubesolver.RandomCube()
		m.history = append(m.history, "(scramble)")
	case "solve":
		if m.solution != "" {
			m.facelets = cubesolver.ApplyMoves(m.facelets, m.solution)
			m.history = append(m.history, m.solution)
		}
	default:
		next := cubesolver.ApplyMoves(m.facelets, line)
		if next == "" {
			m.message = "invalid move sequence"
			return
		}
		m.facelets = next
		m.history = append(m.history, line)
	}
	m.resolve()
}

func (m *playModel) resolve() {
	if m.facelets == cubesolver.SolvedFacelets {
		m.solution = ""
		return
	}
	m.solution = cubesolver.Solve(m.facelets, 21)
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cubesolver play"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.facelets))
	b.WriteString("\n")

	if m.facelets == cubesolver.SolvedFacelets {
		b.WriteString(statusStyle.Render("Solved."))
	} else if strings.HasPrefix(m.solution, "Error") {
		b.WriteString(errorStyle.Render(m.solution))
	} else {
		b.WriteString("Solution: ")
		b.WriteString(moveStyle.Render(m.solution))
	}
	b.WriteString("\n")

	if len(m.history) > 0 {
		start := 0
		if len(m.history) > 5 {
			start = len(m.history) - 5
		}
		b.WriteString(statusStyle.Render("Applied: " + strings.Join(m.history[start:], " | ")))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n> ")
	b.WriteString(m.input)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("moves e.g. \"R U R' U'\"  |  scramble  reset  solve  q"))
	b.WriteString("\n")
	return b.String()
}
