package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxTranscript bounds the number of transcript lines kept for display.
const maxTranscript = 500

// maxHistory bounds the input history.
const maxHistory = 100

// Model is the Bubbletea model for the interactive REPL
type Model struct {
	session *Session
	prompts Prompts

	input      textinput.Model
	transcript []string

	// Input history
	history      []string
	historyIndex int    // -1 while editing a fresh line
	currentInput string // line being edited before history navigation

	width    int
	quitting bool
}

// NewModel creates a REPL model driving s.
func NewModel(s *Session, prompts Prompts) Model {
	ti := textinput.New()
	ti.Placeholder = "def, extern or an expression"
	ti.Prompt = prompts.Primary
	ti.PromptStyle = PromptStyle
	ti.Focus()

	return Model{
		session:      s,
		prompts:      prompts,
		input:        ti,
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.prompts.Primary) - 1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			if err := m.session.Finish(); err != nil {
				m.appendLine(renderError(err))
			}
			m.quitting = true
			return m, tea.Quit
		}

	case tea.KeyEsc:
		// Drop an unfinished construct.
		if m.session.Pending() {
			m.session.Reset()
			m.appendLine(HelpStyle.Render("(input discarded)"))
		}
		m.input.Reset()
		m.syncPrompt()
		return m, nil

	case tea.KeyEnter:
		m.submit(m.input.Value())
		return m, nil

	case tea.KeyUp:
		if len(m.history) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.input.Value()
				m.historyIndex = len(m.history) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.input.SetValue(m.history[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.history)-1 {
				m.historyIndex++
				m.input.SetValue(m.history[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.input.SetValue(m.currentInput)
			}
			m.input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit echoes line into the transcript and feeds it to the session.
func (m *Model) submit(line string) {
	m.appendLine(m.input.PromptStyle.Render(m.input.Prompt) + line)

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		if len(m.history) == 0 || m.history[len(m.history)-1] != trimmed {
			m.history = append(m.history, trimmed)
			if len(m.history) > maxHistory {
				m.history = m.history[len(m.history)-maxHistory:]
			}
		}
	}
	m.historyIndex = -1
	m.currentInput = ""

	results, err := m.session.Submit(line)
	for _, r := range results {
		m.appendLine(renderResult(r))
	}
	if err != nil {
		m.appendLine(renderError(err))
	}

	m.input.Reset()
	m.syncPrompt()
}

// syncPrompt shows the continuation prompt while a construct is open.
func (m *Model) syncPrompt() {
	if m.session.Pending() {
		m.input.Prompt = m.prompts.Continuation
		m.input.PromptStyle = ContinuationStyle
		return
	}
	m.input.Prompt = m.prompts.Primary
	m.input.PromptStyle = PromptStyle
}

func (m *Model) appendLine(line string) {
	m.transcript = append(m.transcript, line)
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
}

// Transcript returns the lines printed so far, styled.
func (m Model) Transcript() []string {
	return m.transcript
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(HelpStyle.Render("enter: submit  esc: discard  ↑/↓: history  ctrl+d: quit"))
	b.WriteByte('\n')
	return b.String()
}
