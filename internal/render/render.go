// Package render turns a resolved project config into file contents.
// Rendering is pure: the same config and generator version always produce
// the same bytes.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/ge0rg3e/init-tp/internal/errdef"
	"github.com/ge0rg3e/init-tp/internal/project"
)

const (
	FileManifest      = "package.json"
	FileTSConfig      = "tsconfig.json"
	FileGitignore     = ".gitignore"
	FileReadme        = "README.md"
	FileEntry         = "src/index.ts"
	FileNpmrc         = ".npmrc"
	FilePnpmWorkspace = "pnpm-workspace.yaml"
)

// SourceDir is created even when no rendered file lives in it.
const SourceDir = "src"

const initialVersion = "1.0.0"

// File is one rendered output, Path is slash separated and relative to the
// project root.
type File struct {
	Path string
	Data string
}

type generatorMarker struct {
	Version string `json:"version"`
}

type manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Main            string            `json:"main"`
	Scripts         scripts           `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Generator       generatorMarker   `json:"init-tp"`
}

type workspace struct {
	Packages []string `yaml:"packages"`
}

var pnpmWorkspace = mustYAML(workspace{Packages: []string{"."}})

// Render produces every file of a new project in a stable order.
func Render(cfg project.Config, version string) ([]File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pm, ok := managers[cfg.PackageManager]
	if !ok {
		return nil, errdef.New(errdef.CodeInput, "no settings for package manager %q", cfg.PackageManager)
	}

	pkg, err := Manifest(cfg, version)
	if err != nil {
		return nil, err
	}
	tsc, err := marshalJSON(defaultTSConfig)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", FileTSConfig, err)
	}

	files := []File{
		{Path: FileManifest, Data: pkg},
		{Path: FileTSConfig, Data: tsc},
		{Path: FileGitignore, Data: gitignore},
		{Path: FileReadme, Data: readme(cfg.Name, pm)},
		{Path: FileEntry, Data: indexTS},
	}
	return append(files, pm.Extras...), nil
}

// Manifest renders package.json for cfg.
func Manifest(cfg project.Config, version string) (string, error) {
	tc, ok := toolchains[cfg.Compiler]
	if !ok {
		return "", errdef.New(errdef.CodeInput, "no toolchain for compiler %q", cfg.Compiler)
	}
	dev := make(map[string]string, len(baseDevDeps)+len(tc.DevDeps))
	maps.Copy(dev, baseDevDeps)
	maps.Copy(dev, tc.DevDeps)

	m := manifest{
		Name:            cfg.Name,
		Version:         initialVersion,
		Main:            tc.Main,
		Scripts:         tc.Scripts,
		Dependencies:    map[string]string{},
		DevDependencies: dev,
		Generator:       generatorMarker{Version: version},
	}
	out, err := marshalJSON(m)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", FileManifest, err)
	}
	return out, nil
}

// Paths lists the relative path of each file.
func Paths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

// marshalJSON writes two-space indented JSON with a trailing newline.
// Map keys come out sorted, so output is stable.
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func mustYAML(v any) string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		panic(fmt.Sprintf("render: encode yaml: %v", err))
	}
	if err := enc.Close(); err != nil {
		panic(fmt.Sprintf("render: encode yaml: %v", err))
	}
	return buf.String()
}
