package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type selectModel struct {
	q        Select
	styles   Styles
	cursor   int
	done     bool
	canceled bool
}

func newSelectModel(q Select, st Styles) selectModel {
	m := selectModel{q: q, styles: st}
	for i, c := range q.Choices {
		if c.Value == q.Default {
			m.cursor = i
			break
		}
	}
	return m
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if isCancelKey(key) {
		m.canceled = true
		return m, tea.Quit
	}
	n := len(m.q.Choices)
	switch key.String() {
	case "up", "k", "shift+tab":
		m.cursor = (m.cursor - 1 + n) % n
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % n
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = n - 1
	case "enter":
		m.done = true
		return m, tea.Quit
	default:
		// 1-9 jump straight to a choice.
		if s := key.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < n {
				m.cursor = i
			}
		}
	}
	return m, nil
}

func (m selectModel) value() string {
	if len(m.q.Choices) == 0 {
		return ""
	}
	return m.q.Choices[m.cursor].Value
}

func (m selectModel) View() string {
	if m.done {
		return m.styles.answered(m.q.Message, m.value())
	}
	if m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.header(m.q.Message))
	b.WriteString(" ")
	b.WriteString(m.styles.Hint.Render("(↑/↓ to move, enter to select)"))
	b.WriteString("\n")
	for i, c := range m.q.Choices {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("❯") + " ")
			b.WriteString(m.styles.Selected.Render(c.Value))
		} else {
			b.WriteString("  ")
			b.WriteString(m.styles.Choice.Render(c.Value))
		}
		if c.Hint != "" {
			b.WriteString(" " + m.styles.Hint.Render(c.Hint))
		}
		b.WriteString("\n")
	}
	return b.String()
}
