// Package shell is the interactive front end: a single-view command REPL
// driving the command service. All catalog state changes flow through the
// Bubble Tea event loop, one command at a time.
package shell

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelterm/reel/internal/command"
)

// maxScrollback caps the kept output history.
const maxScrollback = 500

// Model is the Bubble Tea model for the shell.
type Model struct {
	exec   *executor
	input  textinput.Model
	st     styleSet
	logger *slog.Logger

	lines    []string // Rendered scrollback
	width    int
	height   int
	quitting bool
}

// NewModel creates the shell model over a command service.
func NewModel(svc *command.Service, color bool, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	st := newStyleSet(color)

	ti := textinput.New()
	ti.Placeholder = "Type a command (HELP lists them all)"
	ti.Prompt = "> "
	ti.PromptStyle = st.Prompt
	ti.CharLimit = 200
	ti.Focus()

	return Model{
		exec:   newExecutor(svc, color),
		input:  ti,
		st:     st,
		logger: logger,
		lines: []string{
			st.Accent.Render("Hello and welcome to the video catalog shell!"),
			st.Dim.Render("Type HELP for a list of commands, EXIT to leave."),
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the entered line through the executor.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	m.append(m.st.Echo.Render("> " + line))
	m.logger.Debug("shell command", "input", line)

	out, quit := m.exec.Execute(line)
	for _, l := range out {
		m.append(l)
	}
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) append(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxScrollback {
		m.lines = m.lines[len(m.lines)-maxScrollback:]
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Show the tail of the scrollback that fits above the input line.
	visible := m.lines
	if m.height > 1 && len(visible) > m.height-2 {
		visible = visible[len(visible)-(m.height-2):]
	}

	var b strings.Builder
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

// Run starts the interactive shell and blocks until it exits.
func Run(svc *command.Service, color bool, logger *slog.Logger) error {
	p := tea.NewProgram(NewModel(svc, color, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
