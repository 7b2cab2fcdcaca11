package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/ge0rg3e/init-tp/internal/config"
	"github.com/ge0rg3e/init-tp/internal/errdef"
	"github.com/ge0rg3e/init-tp/internal/project"
	"github.com/ge0rg3e/init-tp/internal/prompt"
)

// fakePrompter answers from queues and records what was asked.
type fakePrompter struct {
	inputs   []string
	selects  []string
	confirms []bool
	err      error

	asked    []string
	rejected []string
	defaults map[string]string
}

func (f *fakePrompter) Input(_ context.Context, q prompt.Input) (string, error) {
	f.asked = append(f.asked, q.Message)
	if f.err != nil {
		return "", f.err
	}
	// Mimic the terminal: keep asking until validation passes.
	for len(f.inputs) > 0 {
		v := f.inputs[0]
		f.inputs = f.inputs[1:]
		if q.Validate != nil {
			if err := q.Validate(v); err != nil {
				f.rejected = append(f.rejected, err.Error())
				continue
			}
		}
		return v, nil
	}
	return "", errors.New("no more inputs")
}

func (f *fakePrompter) Select(_ context.Context, q prompt.Select) (string, error) {
	f.asked = append(f.asked, q.Message)
	if f.defaults == nil {
		f.defaults = map[string]string{}
	}
	f.defaults[q.Message] = q.Default
	if f.err != nil {
		return "", f.err
	}
	v := f.selects[0]
	f.selects = f.selects[1:]
	return v, nil
}

func (f *fakePrompter) Confirm(_ context.Context, q prompt.Confirm) (bool, error) {
	f.asked = append(f.asked, q.Message)
	if f.err != nil {
		return false, f.err
	}
	v := f.confirms[0]
	f.confirms = f.confirms[1:]
	return v, nil
}

func str(s string) *string { return &s }
func boolp(b bool) *bool   { return &b }

func TestResolveInteractiveAsksMissing(t *testing.T) {
	fp := &fakePrompter{
		inputs:   []string{"demo"},
		selects:  []string{"swc", "pnpm"},
		confirms: []bool{true},
	}
	r := Resolver{Mode: project.ModeInteractive, Prompt: fp}
	cfg, err := r.Resolve(context.Background(), Partial{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := project.Config{
		Name:           "demo",
		Compiler:       project.CompilerSWC,
		PackageManager: project.PackageManagerPNPM,
		Install:        true,
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
	if len(fp.asked) != 4 {
		t.Fatalf("expected four questions, got %v", fp.asked)
	}
}

func TestResolveFlagsTakePrecedence(t *testing.T) {
	fp := &fakePrompter{selects: []string{"esbuild"}, confirms: []bool{true}}
	r := Resolver{Mode: project.ModeInteractive, Prompt: fp}
	cfg, err := r.Resolve(context.Background(), Partial{
		Name:           str("demo"),
		PackageManager: str("pnpm"),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := project.Config{
		Name:           "demo",
		Compiler:       project.CompilerESBuild,
		PackageManager: project.PackageManagerPNPM,
		Install:        true,
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
	if len(fp.asked) != 2 {
		t.Fatalf("expected compiler and install questions, got %v", fp.asked)
	}
}

func TestResolveNameAndCompilerSkipInstallQuestion(t *testing.T) {
	fp := &fakePrompter{}
	r := Resolver{Mode: project.ModeInteractive, Prompt: fp}
	cfg, err := r.Resolve(context.Background(), Partial{
		Name:           str("demo"),
		Compiler:       str("esbuild"),
		PackageManager: str("npm"),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Install {
		t.Fatalf("expected install to default to false")
	}
	if len(fp.asked) != 0 {
		t.Fatalf("expected no questions, got %v", fp.asked)
	}
}

func TestResolveNameRepromptsUntilValid(t *testing.T) {
	fp := &fakePrompter{
		inputs:   []string{"My App", "", "my-app"},
		selects:  []string{"tsc", "npm"},
		confirms: []bool{false},
	}
	r := Resolver{Mode: project.ModeInteractive, Prompt: fp}
	cfg, err := r.Resolve(context.Background(), Partial{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Name != "my-app" {
		t.Fatalf("expected my-app, got %q", cfg.Name)
	}
	if len(fp.rejected) != 2 {
		t.Fatalf("expected two rejections, got %v", fp.rejected)
	}
	if fp.rejected[1] != "project name is required" {
		t.Fatalf("unexpected empty-name message %q", fp.rejected[1])
	}
}

func TestResolveInvalidFlagsFailBeforePrompting(t *testing.T) {
	tests := []struct {
		name string
		p    Partial
	}{
		{"name", Partial{Name: str("Bad Name")}},
		{"compiler", Partial{Compiler: str("rustc")}},
		{"manager", Partial{PackageManager: str("yarn")}},
	}
	for _, tt := range tests {
		fp := &fakePrompter{}
		r := Resolver{Mode: project.ModeInteractive, Prompt: fp}
		_, err := r.Resolve(context.Background(), tt.p)
		if !errdef.Is(err, errdef.CodeInput) {
			t.Fatalf("%s: expected input error, got %v", tt.name, err)
		}
		if len(fp.asked) != 0 {
			t.Fatalf("%s: expected no prompts, got %v", tt.name, fp.asked)
		}
	}
}

func TestResolveScriptedNeverPrompts(t *testing.T) {
	r := Resolver{Mode: project.ModeScripted}
	cfg, err := r.Resolve(context.Background(), Partial{Name: str("demo"), Compiler: str("tsc")})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := project.Config{Name: "demo", Compiler: project.CompilerTSC, PackageManager: project.PackageManagerNPM}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestResolveScriptedUsesDefaults(t *testing.T) {
	r := Resolver{
		Mode: project.ModeScripted,
		Defaults: config.Defaults{
			Compiler:       "swc",
			PackageManager: "pnpm",
			Install:        boolp(true),
		},
	}
	cfg, err := r.Resolve(context.Background(), Partial{Name: str("demo")})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Compiler != project.CompilerSWC || cfg.PackageManager != project.PackageManagerPNPM || !cfg.Install {
		t.Fatalf("expected defaults to apply, got %+v", cfg)
	}

	cfg, err = r.Resolve(context.Background(), Partial{Name: str("demo"), Install: boolp(false)})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Install {
		t.Fatalf("expected --no-install to beat the defaults file")
	}
}

func TestResolveScriptedRequiresName(t *testing.T) {
	r := Resolver{Mode: project.ModeScripted}
	_, err := r.Resolve(context.Background(), Partial{Compiler: str("tsc")})
	if !errdef.Is(err, errdef.CodeInput) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestResolveInteractivePreselectsDefaults(t *testing.T) {
	fp := &fakePrompter{selects: []string{"esbuild", "npm"}, confirms: []bool{false}}
	r := Resolver{
		Mode:     project.ModeInteractive,
		Prompt:   fp,
		Defaults: config.Defaults{Compiler: "esbuild"},
	}
	if _, err := r.Resolve(context.Background(), Partial{Name: str("demo")}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if fp.defaults["Compiler:"] != "esbuild" {
		t.Fatalf("expected esbuild preselected, got %q", fp.defaults["Compiler:"])
	}
	if fp.defaults["Package manager:"] != "npm" {
		t.Fatalf("expected npm preselected, got %q", fp.defaults["Package manager:"])
	}
}

func TestResolveCancelPassesThrough(t *testing.T) {
	fp := &fakePrompter{err: errdef.ErrCanceled}
	r := Resolver{Mode: project.ModeInteractive, Prompt: fp}
	_, err := r.Resolve(context.Background(), Partial{})
	if !errdef.Canceled(err) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestResolvePromptFailure(t *testing.T) {
	fp := &fakePrompter{err: errors.New("tty gone")}
	r := Resolver{Mode: project.ModeInteractive, Prompt: fp}
	_, err := r.Resolve(context.Background(), Partial{Name: str("demo")})
	if !errdef.Is(err, errdef.CodePrompt) {
		t.Fatalf("expected prompt error, got %v", err)
	}
}

func TestResolveInteractiveNeedsPrompter(t *testing.T) {
	r := Resolver{Mode: project.ModeInteractive}
	if _, err := r.Resolve(context.Background(), Partial{}); err == nil {
		t.Fatalf("expected error without prompter")
	}
}

func TestPartialSkipsInstallQuestion(t *testing.T) {
	if (Partial{Name: str("demo")}).SkipsInstallQuestion() {
		t.Fatalf("name alone should keep the install question")
	}
	if !(Partial{Name: str("demo"), Compiler: str("tsc")}).SkipsInstallQuestion() {
		t.Fatalf("name and compiler should skip the install question")
	}
}

func TestResolveInteractiveNameAndCompilerStillAsksManager(t *testing.T) {
	fp := &fakePrompter{selects: []string{"pnpm"}}
	r := Resolver{Mode: project.ModeInteractive, Prompt: fp}
	cfg, err := r.Resolve(context.Background(), Partial{Name: str("demo"), Compiler: str("tsc")})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(fp.asked) != 1 || fp.asked[0] != "Package manager:" {
		t.Fatalf("expected only the package manager question, got %v", fp.asked)
	}
	want := project.Config{Name: "demo", Compiler: project.CompilerTSC, PackageManager: project.PackageManagerPNPM}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}
