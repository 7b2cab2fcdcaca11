package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/ge0rg3e/init-tp/internal/project"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FB3B3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F25F5C")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6A1BB"))
	cmdStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
)

var runPrefix = map[project.PackageManager]string{
	project.PackageManagerNPM:  "npm run",
	project.PackageManagerPNPM: "pnpm",
}

func printNextSteps(w io.Writer, cfg project.Config, dir string, installed bool) {
	fmt.Fprintf(w, "\n%s Created %s in %s\n\n", successStyle.Render("✔"), cfg.Name, filepath.ToSlash(dir))
	fmt.Fprintln(w, hintStyle.Render("Next steps:"))
	fmt.Fprintf(w, "  %s\n", cmdStyle.Render("cd "+filepath.ToSlash(dir)))
	if !installed {
		fmt.Fprintf(w, "  %s\n", cmdStyle.Render(string(cfg.PackageManager)+" install"))
	}
	fmt.Fprintf(w, "  %s\n", cmdStyle.Render(runPrefix[cfg.PackageManager]+" dev"))
}

func printCanceled(w io.Writer) {
	fmt.Fprintln(w, hintStyle.Render("Canceled. Nothing else was done."))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}
