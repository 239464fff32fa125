package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() Model {
	return NewModel(NewSession(0), DefaultPrompts())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	if line != "" {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func transcript(m Model) string {
	return strings.Join(m.Transcript(), "\n")
}

func TestModelSubmit(t *testing.T) {
	m := typeLine(t, newTestModel(), "1 + 2")

	out := transcript(m)
	for _, want := range []string{"1 + 2", "Parsed a top-level expr.", "(+ 1 2)"} {
		if !strings.Contains(out, want) {
			t.Errorf("transcript missing %q:\n%s", want, out)
		}
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
}

func TestModelContinuation(t *testing.T) {
	m := typeLine(t, newTestModel(), "def f(x)")

	if m.input.Prompt != "...> " {
		t.Errorf("prompt = %q, want continuation prompt", m.input.Prompt)
	}
	if !strings.Contains(m.View(), "...> ") {
		t.Errorf("view does not show continuation prompt:\n%s", m.View())
	}

	m = typeLine(t, m, "x")
	if !strings.Contains(transcript(m), "Parsed a function definition.") {
		t.Errorf("definition not reported:\n%s", transcript(m))
	}
	if m.input.Prompt != "ready> " {
		t.Errorf("prompt = %q, want primary prompt", m.input.Prompt)
	}
}

func TestModelError(t *testing.T) {
	m := typeLine(t, newTestModel(), "f(1,,2)")

	out := transcript(m)
	if !strings.Contains(out, "Error:") || !strings.Contains(out, "unexpected ','") {
		t.Errorf("error not reported:\n%s", out)
	}
	if m.input.Prompt != "ready> " {
		t.Errorf("prompt = %q after error, want primary prompt", m.input.Prompt)
	}
}

func TestModelEscDiscardsPending(t *testing.T) {
	m := typeLine(t, newTestModel(), "if a then")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.session.Pending() {
		t.Error("Esc did not discard pending input")
	}
	if !strings.Contains(transcript(m), "(input discarded)") {
		t.Errorf("discard not reported:\n%s", transcript(m))
	}
	if m.input.Prompt != "ready> " {
		t.Errorf("prompt = %q, want primary prompt", m.input.Prompt)
	}
}

func TestModelHistory(t *testing.T) {
	m := newTestModel()
	m = typeLine(t, m, "1")
	m = typeLine(t, m, "2")

	steps := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyUp, "2"},
		{tea.KeyUp, "1"},
		{tea.KeyUp, "1"},
		{tea.KeyDown, "2"},
		{tea.KeyDown, ""},
	}
	for i, step := range steps {
		m, _ = update(t, m, tea.KeyMsg{Type: step.key})
		if got := m.input.Value(); got != step.want {
			t.Errorf("step %d: input = %q, want %q", i, got, step.want)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m, cmd := update(t, newTestModel(), tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Ctrl+C returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+C did not quit")
	}
	if strings.Contains(m.View(), "ready> ") {
		t.Error("view still shows the prompt after quitting")
	}
}

func TestModelCtrlDReportsOpenConstruct(t *testing.T) {
	m := typeLine(t, newTestModel(), "{ 1")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	if cmd == nil {
		t.Fatal("Ctrl+D on empty input returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+D did not quit")
	}
	if !strings.Contains(transcript(m), "expected '}'") {
		t.Errorf("open block not reported:\n%s", transcript(m))
	}
}

func TestModelWindowSize(t *testing.T) {
	m, _ := update(t, newTestModel(), tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.width != 80 {
		t.Errorf("width = %d, want 80", m.width)
	}
	if m.input.Width != 80-len("ready> ")-1 {
		t.Errorf("input width = %d", m.input.Width)
	}
}

func TestModelTranscriptBounded(t *testing.T) {
	m := newTestModel()
	for i := 0; i < maxTranscript; i++ {
		m.appendLine("x")
	}
	m = typeLine(t, m, "1")
	if n := len(m.Transcript()); n != maxTranscript {
		t.Errorf("transcript has %d lines, want %d", n, maxTranscript)
	}
}
