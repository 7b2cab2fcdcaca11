package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ge0rg3e/init-tp/internal/config"
	"github.com/ge0rg3e/init-tp/internal/errdef"
	"github.com/ge0rg3e/init-tp/internal/initcmd"
	"github.com/ge0rg3e/init-tp/internal/install"
	"github.com/ge0rg3e/init-tp/internal/project"
	"github.com/ge0rg3e/init-tp/internal/prompt"
	"github.com/ge0rg3e/init-tp/internal/render"
	"github.com/ge0rg3e/init-tp/internal/resolve"
)

// app carries everything the pipeline touches outside of pure code, so
// tests can swap the terminal, the subprocess runner and the config dir.
type app struct {
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	prompter  prompt.Prompter
	runner    install.Runner
	isTTY     func() bool
	configDir string
	version   string
}

func newApp() *app {
	return &app{
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		runner:    install.ExecRunner{},
		isTTY:     stdinIsTerminal,
		configDir: config.Dir(),
		version:   version,
	}
}

// main runs the command and maps the outcome to an exit status.
func (a *app) main(ctx context.Context, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	err := cmd.ExecuteContext(ctx)
	if err != nil && ctx.Err() != nil {
		err = errdef.ErrCanceled
	}
	switch {
	case err == nil:
	case errdef.Canceled(err):
		printCanceled(a.out)
	default:
		printError(a.errOut, err)
	}
	return errdef.ExitCode(err)
}

func (a *app) run(ctx context.Context, p resolve.Partial, o options) error {
	defaults, handle, err := config.LoadDefaultsFrom(a.configDir)
	if err != nil {
		return err
	}
	log := newLogger(logLevel(o.verbose, defaults.LogLevel), a.errOut)
	if handle.Path != "" {
		log.Debug("loaded defaults", "path", handle.Path, "format", string(handle.Format))
	}

	mode := a.mode(o)
	r := resolve.Resolver{Mode: mode, Defaults: defaults, Log: log}
	if mode == project.ModeInteractive {
		r.Prompt = a.prompter
		if r.Prompt == nil {
			r.Prompt = prompt.NewTerminal(a.in, a.out)
		}
	}
	cfg, err := r.Resolve(ctx, p)
	if err != nil {
		return err
	}

	files, err := render.Render(cfg, a.version)
	if err != nil {
		return err
	}
	log.Debug("rendered files", "count", len(files), "paths", render.Paths(files))

	dir := filepath.Join(o.dir, cfg.Name)
	if _, err := initcmd.Run(initcmd.Opt{
		Dir:    dir,
		Files:  files,
		Force:  o.force,
		DryRun: o.dryRun,
		Out:    a.out,
	}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errdef.ErrCanceled
	}

	installed := false
	if cfg.Install && !o.dryRun {
		if err := install.New(a.runner, log).Install(ctx, cfg.PackageManager, dir); err != nil {
			return err
		}
		installed = true
	}

	if !o.dryRun {
		printNextSteps(a.out, cfg, dir, installed)
	}
	return nil
}

// mode is decided once: the resolver never infers it per field.
// Supplying name and compiler only drops the install question and is
// handled by the resolver.
func (a *app) mode(o options) project.Mode {
	if o.yes {
		return project.ModeScripted
	}
	if a.isTTY != nil && !a.isTTY() {
		return project.ModeScripted
	}
	return project.ModeInteractive
}

func logLevel(verbose bool, configured string) string {
	if verbose {
		return "debug"
	}
	if configured != "" {
		return configured
	}
	return "warn"
}

// newLogger creates a text slog.Logger at the given level. It does not set
// the global logger.
func newLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
