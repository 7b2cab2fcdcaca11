// Package prompt asks the user one question at a time on the terminal.
//
// Each question runs as its own small bubbletea program so output stays
// inline (no alternate screen) and the answer remains visible in the
// scrollback after the program exits.
package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ge0rg3e/init-tp/internal/errdef"
)

// Prompter is the question surface the resolver depends on.
type Prompter interface {
	Input(ctx context.Context, q Input) (string, error)
	Select(ctx context.Context, q Select) (string, error)
	Confirm(ctx context.Context, q Confirm) (bool, error)
}

// Input asks for free text. Validate, when set, is called on every submit;
// a non-nil error is shown and the question stays open.
type Input struct {
	Message     string
	Placeholder string
	Default     string
	Validate    func(string) error
}

type Choice struct {
	Value string
	Hint  string
}

// Select asks for exactly one of Choices. Default names the value the
// cursor starts on.
type Select struct {
	Message string
	Choices []Choice
	Default string
}

type Confirm struct {
	Message string
	Default bool
}

// Terminal is a Prompter backed by bubbletea.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{in: in, out: out, styles: DefaultStyles()}
}

func (t *Terminal) Input(ctx context.Context, q Input) (string, error) {
	m, err := t.run(ctx, newInputModel(q, t.styles))
	if err != nil {
		return "", err
	}
	res := m.(inputModel)
	if res.canceled {
		return "", errdef.ErrCanceled
	}
	return res.value, nil
}

func (t *Terminal) Select(ctx context.Context, q Select) (string, error) {
	if len(q.Choices) == 0 {
		return "", errdef.New(errdef.CodePrompt, "%s: no choices", q.Message)
	}
	m, err := t.run(ctx, newSelectModel(q, t.styles))
	if err != nil {
		return "", err
	}
	res := m.(selectModel)
	if res.canceled {
		return "", errdef.ErrCanceled
	}
	return res.value(), nil
}

func (t *Terminal) Confirm(ctx context.Context, q Confirm) (bool, error) {
	m, err := t.run(ctx, newConfirmModel(q, t.styles))
	if err != nil {
		return false, err
	}
	res := m.(confirmModel)
	if res.canceled {
		return false, errdef.ErrCanceled
	}
	return res.value, nil
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil, errdef.ErrCanceled
		}
		return nil, errdef.Wrap(errdef.CodePrompt, err, "run prompt")
	}
	return final, nil
}

func isCancelKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc":
		return true
	}
	return false
}
