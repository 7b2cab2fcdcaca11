package prompt

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Mark     lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Choice   lipgloss.Style
}

func DefaultStyles() Styles {
	accent := lipgloss.Color("#7D56F4")
	return Styles{
		Mark:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB3B3")).Bold(true),
		Question: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E1FF")).Bold(true),
		Answer:   lipgloss.NewStyle().Foreground(accent),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5E5A72")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F25F5C")),
		Cursor:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Choice:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D1CFF6")),
	}
}

func (s Styles) header(msg string) string {
	return s.Mark.Render("?") + " " + s.Question.Render(msg)
}

// answered is the single line left behind once a question is done.
func (s Styles) answered(msg, answer string) string {
	return s.Mark.Render("✔") + " " + s.Question.Render(msg) + " " + s.Answer.Render(answer) + "\n"
}
