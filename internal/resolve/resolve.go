// Package resolve merges command-line values, user defaults and prompted
// answers into a complete project config.
package resolve

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ge0rg3e/init-tp/internal/config"
	"github.com/ge0rg3e/init-tp/internal/errdef"
	"github.com/ge0rg3e/init-tp/internal/project"
	"github.com/ge0rg3e/init-tp/internal/prompt"
)

// Partial holds what was supplied on the command line. Nil means the
// value was not given.
type Partial struct {
	Name           *string
	Compiler       *string
	PackageManager *string
	Install        *bool
}

// SkipsInstallQuestion reports whether the install confirm is left out
// even in interactive mode: name and compiler given up front mark the
// run as scripted usage, so install falls back to its default.
func (p Partial) SkipsInstallQuestion() bool {
	return p.Name != nil && p.Compiler != nil
}

var compilerHints = map[project.Compiler]string{
	project.CompilerTSC:     "TypeScript compiler",
	project.CompilerESBuild: "fast bundler",
	project.CompilerSWC:     "Rust-based transpiler",
}

var managerHints = map[project.PackageManager]string{
	project.PackageManagerNPM:  "bundled with Node.js",
	project.PackageManagerPNPM: "disk-efficient, strict",
}

// Resolver produces a project.Config. Prompt is only used in
// interactive mode and may be nil otherwise.
type Resolver struct {
	Mode     project.Mode
	Defaults config.Defaults
	Prompt   prompt.Prompter
	Log      *slog.Logger
}

// Resolve validates every supplied value before asking anything, then
// fills the gaps by prompting or by falling back to defaults.
func (r Resolver) Resolve(ctx context.Context, p Partial) (project.Config, error) {
	var cfg project.Config
	log := r.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	name, comp, pm, err := parseSupplied(p)
	if err != nil {
		return project.Config{}, err
	}
	if r.Mode == project.ModeInteractive && r.Prompt == nil {
		return project.Config{}, errdef.New(errdef.CodePrompt, "interactive mode needs a prompter")
	}
	log.Debug("resolving project config", "mode", r.Mode.String())

	if p.Name != nil {
		cfg.Name = name
	} else if cfg.Name, err = r.askName(ctx); err != nil {
		return project.Config{}, err
	}

	if p.Compiler != nil {
		cfg.Compiler = comp
	} else if cfg.Compiler, err = r.askCompiler(ctx); err != nil {
		return project.Config{}, err
	}

	if p.PackageManager != nil {
		cfg.PackageManager = pm
	} else if cfg.PackageManager, err = r.askPackageManager(ctx); err != nil {
		return project.Config{}, err
	}

	if p.Install != nil {
		cfg.Install = *p.Install
	} else if cfg.Install, err = r.askInstall(ctx, cfg.PackageManager, p.SkipsInstallQuestion()); err != nil {
		return project.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return project.Config{}, err
	}
	log.Debug("resolved project config", "config", cfg.String())
	return cfg, nil
}

func parseSupplied(p Partial) (string, project.Compiler, project.PackageManager, error) {
	var (
		name string
		comp project.Compiler
		pm   project.PackageManager
		err  error
	)
	if p.Name != nil {
		name = *p.Name
		if err = project.ValidateName(name); err != nil {
			return "", "", "", err
		}
	}
	if p.Compiler != nil {
		if comp, err = project.ParseCompiler(*p.Compiler); err != nil {
			return "", "", "", err
		}
	}
	if p.PackageManager != nil {
		if pm, err = project.ParsePackageManager(*p.PackageManager); err != nil {
			return "", "", "", err
		}
	}
	return name, comp, pm, nil
}

func (r Resolver) askName(ctx context.Context) (string, error) {
	if r.Mode == project.ModeScripted {
		return "", errdef.New(errdef.CodeInput, "project name is required in non-interactive mode")
	}
	name, err := r.Prompt.Input(ctx, prompt.Input{
		Message:     "Project name:",
		Placeholder: "my-app",
		Validate: func(s string) error {
			if project.ValidateName(s) != nil {
				return nameHint(s)
			}
			return nil
		},
	})
	if err != nil {
		return "", wrapPrompt(err, "project name")
	}
	return name, nil
}

func (r Resolver) askCompiler(ctx context.Context) (project.Compiler, error) {
	def := r.Defaults.CompilerOr(project.CompilerTSC)
	if r.Mode == project.ModeScripted {
		return def, nil
	}
	choices := make([]prompt.Choice, len(project.Compilers))
	for i, c := range project.Compilers {
		choices[i] = prompt.Choice{Value: string(c), Hint: compilerHints[c]}
	}
	v, err := r.Prompt.Select(ctx, prompt.Select{
		Message: "Compiler:",
		Choices: choices,
		Default: string(def),
	})
	if err != nil {
		return "", wrapPrompt(err, "compiler")
	}
	return project.ParseCompiler(v)
}

func (r Resolver) askPackageManager(ctx context.Context) (project.PackageManager, error) {
	def := r.Defaults.PackageManagerOr(project.PackageManagerNPM)
	if r.Mode == project.ModeScripted {
		return def, nil
	}
	choices := make([]prompt.Choice, len(project.PackageManagers))
	for i, pm := range project.PackageManagers {
		choices[i] = prompt.Choice{Value: string(pm), Hint: managerHints[pm]}
	}
	v, err := r.Prompt.Select(ctx, prompt.Select{
		Message: "Package manager:",
		Choices: choices,
		Default: string(def),
	})
	if err != nil {
		return "", wrapPrompt(err, "package manager")
	}
	return project.ParsePackageManager(v)
}

func (r Resolver) askInstall(ctx context.Context, pm project.PackageManager, skip bool) (bool, error) {
	def := r.Defaults.InstallOr(false)
	if r.Mode == project.ModeScripted || skip {
		return def, nil
	}
	ok, err := r.Prompt.Confirm(ctx, prompt.Confirm{
		Message: "Install dependencies with " + string(pm) + "?",
		Default: def,
	})
	if err != nil {
		return false, wrapPrompt(err, "install")
	}
	return ok, nil
}

// nameHint is the message shown under the name prompt.
func nameHint(s string) error {
	if s == "" {
		return errors.New("project name is required")
	}
	return errors.New("use lowercase letters, digits and hyphens only")
}

func wrapPrompt(err error, what string) error {
	if errdef.Canceled(err) {
		return err
	}
	return errdef.Wrap(errdef.CodePrompt, err, "ask %s", what)
}
