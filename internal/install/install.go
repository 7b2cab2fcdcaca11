// Package install runs the package manager's install command in a new
// project directory.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ge0rg3e/init-tp/internal/errdef"
	"github.com/ge0rg3e/init-tp/internal/project"
)

// Cmd is one subprocess invocation. Nil streams mean "inherit from the
// parent process".
type Cmd struct {
	Name   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (c Cmd) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner starts a command, waits for it, and reports how it ended.
// A command that ran but exited non-zero yields *ExitError.
type Runner interface {
	Run(ctx context.Context, c Cmd) error
}

// ExitError reports a non-zero exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ErrNotFound is returned by runners when the executable is missing.
var ErrNotFound = errors.New("executable not found")

var commands = map[project.PackageManager][]string{
	project.PackageManagerNPM:  {"npm", "install"},
	project.PackageManagerPNPM: {"pnpm", "install"},
}

// Command returns the install command for pm, run from dir.
func Command(pm project.PackageManager, dir string) (Cmd, error) {
	argv, ok := commands[pm]
	if !ok {
		return Cmd{}, errdef.New(errdef.CodeInput, "no install command for package manager %q", pm)
	}
	return Cmd{Name: argv[0], Args: append([]string(nil), argv[1:]...), Dir: dir}, nil
}

type Installer struct {
	Runner Runner
	Log    *slog.Logger
}

func New(r Runner, log *slog.Logger) Installer {
	if r == nil {
		r = ExecRunner{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return Installer{Runner: r, Log: log}
}

// Install runs pm's install command in dir once. There is no retry; a
// failed install leaves the generated files in place.
func (i Installer) Install(ctx context.Context, pm project.PackageManager, dir string) error {
	c, err := Command(pm, dir)
	if err != nil {
		return err
	}
	i.Log.Debug("running install", "cmd", c.String(), "dir", dir)

	err = i.Runner.Run(ctx, c)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return errdef.ErrCanceled
	}

	var exitErr *ExitError
	switch {
	case errors.Is(err, ErrNotFound):
		return errdef.Wrap(errdef.CodeInstall, err, "%s not found in PATH", pm)
	case errors.As(err, &exitErr):
		return errdef.Wrap(errdef.CodeInstall, err, "%s failed", c.String())
	default:
		return errdef.Wrap(errdef.CodeInstall, err, "run %s", c.String())
	}
}
