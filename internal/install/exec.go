package install

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ExecRunner runs commands with os/exec. The child shares the parent's
// terminal so install output shows up live.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Cmd) error {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, c.Name)
	}

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = os.Stdin
	if c.Stdin != nil {
		cmd.Stdin = c.Stdin
	}
	cmd.Stdout = os.Stdout
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	cmd.Stderr = os.Stderr
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}

	err = cmd.Run()
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ProcessState != nil {
		return &ExitError{Code: ee.ProcessState.ExitCode()}
	}
	return err
}
