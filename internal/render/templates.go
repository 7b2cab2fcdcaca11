package render

import (
	"strings"

	"github.com/MakeNowJust/heredoc"
)

var gitignoreEntries = []string{
	"node_modules/",
	"dist/",
	".env",
}

var gitignore = strings.Join(gitignoreEntries, "\n") + "\n"

const indexTS = `console.log("Hello, world!");` + "\n"

var npmrc = heredoc.Doc(`
	auto-install-peers=true
	strict-peer-dependencies=false
`)

type compilerOptions struct {
	Target                           string `json:"target"`
	Module                           string `json:"module"`
	OutDir                           string `json:"outDir"`
	RootDir                          string `json:"rootDir"`
	Strict                           bool   `json:"strict"`
	ESModuleInterop                  bool   `json:"esModuleInterop"`
	SkipLibCheck                     bool   `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool   `json:"forceConsistentCasingInFileNames"`
}

type tsconfig struct {
	CompilerOptions compilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
}

var defaultTSConfig = tsconfig{
	CompilerOptions: compilerOptions{
		Target:                           "ES2022",
		Module:                           "commonjs",
		OutDir:                           "dist",
		RootDir:                          "src",
		Strict:                           true,
		ESModuleInterop:                  true,
		SkipLibCheck:                     true,
		ForceConsistentCasingInFileNames: true,
	},
	Include: []string{"src"},
}

func readme(name string, m manager) string {
	return heredoc.Docf(`
		# %s

		Generated with `+"`%s`"+`.

		## Usage

		`+"```sh"+`
		%s
		%s dev
		%s build
		%s start
		`+"```"+`
	`, name, m.Invoke, m.Install, m.Run, m.Run, m.Run)
}
