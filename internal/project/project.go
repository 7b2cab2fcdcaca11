// Package project holds the resolved configuration that drives generation.
package project

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ge0rg3e/init-tp/internal/errdef"
)

type Compiler string

const (
	CompilerTSC     Compiler = "tsc"
	CompilerESBuild Compiler = "esbuild"
	CompilerSWC     Compiler = "swc"
)

// Compilers lists the accepted compilers in prompt order.
var Compilers = []Compiler{CompilerTSC, CompilerESBuild, CompilerSWC}

type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerPNPM PackageManager = "pnpm"
)

// PackageManagers lists the accepted package managers in prompt order.
var PackageManagers = []PackageManager{PackageManagerNPM, PackageManagerPNPM}

// Config is the complete set of choices for one invocation.
// It is built once by the resolver and never mutated afterwards.
type Config struct {
	Name           string
	Compiler       Compiler
	PackageManager PackageManager
	Install        bool
}

// Mode decides whether missing values are asked for or defaulted.
type Mode int

const (
	ModeInteractive Mode = iota
	ModeScripted
)

func (m Mode) String() string {
	if m == ModeScripted {
		return "scripted"
	}
	return "interactive"
}

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateName reports why name is not usable as a project name.
func ValidateName(name string) error {
	if name == "" {
		return errdef.New(errdef.CodeInput, "project name is required")
	}
	if !namePattern.MatchString(name) {
		return errdef.New(
			errdef.CodeInput,
			"invalid project name %q: use lowercase letters, digits and hyphens only",
			name,
		)
	}
	return nil
}

// ParseCompiler accepts exactly one of Compilers. Case and surrounding
// whitespace are not folded.
func ParseCompiler(s string) (Compiler, error) {
	for _, c := range Compilers {
		if Compiler(s) == c {
			return c, nil
		}
	}
	return "", errdef.New(
		errdef.CodeInput,
		"invalid compiler %q (available: %s)",
		s,
		joinNames(Compilers),
	)
}

// ParsePackageManager accepts exactly one of PackageManagers.
func ParsePackageManager(s string) (PackageManager, error) {
	for _, pm := range PackageManagers {
		if PackageManager(s) == pm {
			return pm, nil
		}
	}
	return "", errdef.New(
		errdef.CodeInput,
		"invalid package manager %q (available: %s)",
		s,
		joinNames(PackageManagers),
	)
}

// Validate checks every invariant of a resolved config.
func (c Config) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if _, err := ParseCompiler(string(c.Compiler)); err != nil {
		return err
	}
	if _, err := ParsePackageManager(string(c.PackageManager)); err != nil {
		return err
	}
	return nil
}

func joinNames[T ~string](vals []T) string {
	names := make([]string, len(vals))
	for i, v := range vals {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

func (c Config) String() string {
	return fmt.Sprintf("%s (%s, %s, install=%t)", c.Name, c.Compiler, c.PackageManager, c.Install)
}
