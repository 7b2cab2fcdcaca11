package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	q        Confirm
	styles   Styles
	value    bool
	done     bool
	canceled bool
}

func newConfirmModel(q Confirm, st Styles) confirmModel {
	return confirmModel{q: q, styles: st, value: q.Default}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if isCancelKey(key) {
		m.canceled = true
		return m, tea.Quit
	}
	switch key.String() {
	case "y", "Y":
		m.value = true
	case "n", "N":
		m.value = false
	case "enter":
		m.value = m.q.Default
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		ans := "no"
		if m.value {
			ans = "yes"
		}
		return m.styles.answered(m.q.Message, ans)
	}
	if m.canceled {
		return ""
	}
	hint := "(y/N)"
	if m.q.Default {
		hint = "(Y/n)"
	}
	return m.styles.header(m.q.Message) + " " + m.styles.Hint.Render(hint) + "\n"
}
