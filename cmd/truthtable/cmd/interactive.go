package cmd

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	truthtable "github.com/nbugaenco/truthtable-go"
)

var (
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const interactiveHelp = `Enter a logical expression over uppercase variables.
Operators: ! & | / \ ^ -> <->    Enter evaluates, Esc quits.`

type interactiveModel struct {
	input  textinput.Model
	opts   truthtable.RenderOptions
	logger *zap.Logger
	output string
	errMsg string
}

func newInteractiveModel(opts truthtable.RenderOptions, logger *zap.Logger) interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "(A -> B) & (!B | A)"
	ti.Prompt = "Expression: "
	ti.Focus()
	return interactiveModel{input: ti, opts: opts, logger: logger}
}

func (m interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			expr := m.input.Value()
			if expr == "" {
				return m, nil
			}
			out, err := generate(expr, m.opts, m.logger)
			if err != nil {
				m.errMsg = err.Error()
				m.output = ""
			} else {
				m.errMsg = ""
				m.output = out
			}
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m interactiveModel) View() string {
	view := helpStyle.Render(interactiveHelp) + "\n\n" + m.input.View() + "\n"
	if m.errMsg != "" {
		view += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.output != "" {
		view += "\n" + m.output + "\n"
	}
	return view
}

func runInteractive(opts truthtable.RenderOptions, logger *zap.Logger) error {
	_, err := tea.NewProgram(newInteractiveModel(opts, logger)).Run()
	return err
}
