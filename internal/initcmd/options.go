package initcmd

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ge0rg3e/init-tp/internal/render"
)

// Opt describes one materialization.
// Dir is the project directory itself, not its parent.
type Opt struct {
	Dir    string
	Files  []render.File
	Force  bool
	DryRun bool
	Out    io.Writer
}

func withDefaults(opt Opt) Opt {
	opt.Dir = filepath.Clean(strings.TrimSpace(opt.Dir))
	return opt
}
