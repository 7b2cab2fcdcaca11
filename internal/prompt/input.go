package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	q        Input
	styles   Styles
	input    textinput.Model
	errMsg   string
	value    string
	done     bool
	canceled bool
}

func newInputModel(q Input, st Styles) inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = q.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = q.Default
	}
	ti.CharLimit = 214
	ti.Focus()
	return inputModel{q: q, styles: st, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case isCancelKey(key):
			m.canceled = true
			return m, tea.Quit
		case key.Type == tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) submit() (tea.Model, tea.Cmd) {
	// Validate exactly what was typed; only an empty answer takes the default.
	v := m.input.Value()
	if v == "" {
		v = m.q.Default
	}
	if m.q.Validate != nil {
		if err := m.q.Validate(v); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
	}
	m.errMsg = ""
	m.value = v
	m.done = true
	return m, tea.Quit
}

func (m inputModel) View() string {
	if m.done {
		return m.styles.answered(m.q.Message, m.value)
	}
	if m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.header(m.q.Message))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render("✘ " + m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}
