package initcmd

import (
	"io"
	"os"
	"strings"

	"github.com/ge0rg3e/init-tp/internal/errdef"
)

// Command writes rendered projects with injectable dependencies.
type Command struct {
	fs  FS
	out io.Writer
}

func New() *Command {
	return &Command{
		fs:  OSFS{},
		out: os.Stdout,
	}
}

// NewWithFS returns a Command that writes through fsys.
func NewWithFS(fsys FS, out io.Writer) *Command {
	if out == nil {
		out = io.Discard
	}
	return &Command{fs: fsys, out: out}
}

// Run materializes o.Files under o.Dir using the real filesystem.
func Run(o Opt) (Result, error) {
	return New().Run(o)
}

// Run creates the project directory and writes every file into it.
// Writes are not transactional: if one fails, files written before it
// stay on disk.
func (c *Command) Run(o Opt) (Result, error) {
	if strings.TrimSpace(o.Dir) == "" {
		return Result{}, errdef.New(errdef.CodeInput, "target directory is required")
	}
	if len(o.Files) == 0 {
		return Result{}, errdef.New(errdef.CodeInput, "nothing to write")
	}
	o = withDefaults(o)
	if o.Out == nil {
		o.Out = c.out
	}

	r := runner{fs: c.fs, o: o}
	if err := r.run(); err != nil {
		return r.res, err
	}
	return r.res, nil
}
