package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ge0rg3e/init-tp/internal/project"
	"github.com/ge0rg3e/init-tp/internal/resolve"
)

// options mirrors the command-line flags.
type options struct {
	compiler  string
	pm        string
	install   bool
	noInstall bool
	yes       bool
	dir       string
	force     bool
	dryRun    bool
	verbose   bool
}

func newRootCmd(a *app) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "init-tp [project-name]",
		Short: "Scaffold a new TypeScript project",
		Long: "init-tp creates a TypeScript project with package.json, tsconfig.json,\n" +
			"a .gitignore, a README and src/index.ts, then optionally installs\n" +
			"dependencies. Anything not passed as a flag is asked for interactively.",
		Example: "  init-tp\n" +
			"  init-tp my-app -c esbuild -p pnpm -i\n" +
			"  init-tp my-app -c swc --no-install --dry-run",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), partialFrom(cmd.Flags(), args, o), o)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("init-tp {{.Version}}\n  commit: %s\n  built:  %s\n", commit, date))

	f := cmd.Flags()
	f.StringVarP(&o.compiler, "compiler", "c", "", "Compiler to build with ("+choiceList(project.Compilers)+")")
	f.StringVarP(&o.pm, "package-manager", "p", "", "Package manager to use ("+choiceList(project.PackageManagers)+")")
	f.BoolVarP(&o.install, "install", "i", false, "Install dependencies after generating")
	f.BoolVar(&o.noInstall, "no-install", false, "Do not install dependencies")
	f.BoolVarP(&o.yes, "yes", "y", false, "Never prompt; use defaults for anything not given")
	f.StringVarP(&o.dir, "dir", "d", ".", "Parent directory for the new project")
	f.BoolVar(&o.force, "force", false, "Overwrite existing files")
	f.BoolVar(&o.dryRun, "dry-run", false, "Print actions without writing files")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("install", "no-install")

	return cmd
}

// partialFrom keeps only the values the user actually supplied, so the
// resolver can tell "not given" apart from a zero value.
func partialFrom(fs *pflag.FlagSet, args []string, o options) resolve.Partial {
	var p resolve.Partial
	if len(args) == 1 {
		name := args[0]
		p.Name = &name
	}
	if fs.Changed("compiler") {
		c := o.compiler
		p.Compiler = &c
	}
	if fs.Changed("package-manager") {
		pm := o.pm
		p.PackageManager = &pm
	}
	switch {
	case fs.Changed("install"):
		v := o.install
		p.Install = &v
	case fs.Changed("no-install"):
		v := !o.noInstall
		p.Install = &v
	}
	return p
}

func choiceList[T ~string](vals []T) string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return strings.Join(out, "|")
}
