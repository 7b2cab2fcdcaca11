package initcmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/ge0rg3e/init-tp/internal/errdef"
	"github.com/ge0rg3e/init-tp/internal/render"
)

type runner struct {
	fs  FS
	o   Opt
	res Result
}

// run plans every write before touching the disk, so a conflict or a bad
// path leaves the target exactly as it was.
func (r *runner) run() error {
	r.res.Dir = r.o.Dir
	src := filepath.Join(r.o.Dir, render.SourceDir)
	for _, d := range []string{r.o.Dir, src} {
		if err := r.checkDir(d); err != nil {
			return err
		}
	}
	ops, err := r.plan()
	if err != nil {
		return err
	}
	for _, d := range []string{r.o.Dir, src} {
		if err := r.ensureDir(d); err != nil {
			return err
		}
	}
	return r.apply(ops)
}

// checkDir fails when d exists but is not a directory.
func (r *runner) checkDir(d string) error {
	info, err := r.fs.Stat(d)
	switch {
	case err == nil && !info.IsDir():
		return errdef.New(errdef.CodeFilesystem, "%s is not a directory", d)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return errdef.Wrap(errdef.CodeFilesystem, err, "stat %s", d)
	}
	return nil
}

func (r *runner) ensureDir(d string) error {
	if r.o.DryRun {
		return nil
	}
	if err := r.fs.MkdirAll(d, dirPerm); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create %s", d)
	}
	return nil
}

func (r *runner) writeAtomic(p string, m fs.FileMode, data string, force bool) (err error) {
	d := filepath.Dir(p)
	f, err := r.fs.CreateTemp(d, tempPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = r.fs.Remove(tmp)
		}
	}()
	if err = f.Chmod(m); err != nil {
		return err
	}
	if _, err = io.WriteString(f, data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if !force {
		if _, err = r.fs.Stat(p); err == nil {
			return fs.ErrExist
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err = r.fs.Rename(tmp, p); err == nil {
		return nil
	}
	if !force || !errors.Is(err, fs.ErrExist) {
		return err
	}
	if err = r.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return r.fs.Rename(tmp, p)
}

func (r *runner) report(act Action, path string) error {
	r.res.Actions = append(r.res.Actions, Entry{Action: act, Path: filepath.ToSlash(path)})
	if r.o.Out == nil || act == "" {
		return nil
	}
	prefix := ""
	if r.o.DryRun {
		prefix = "dry-run: "
	}
	if _, err := fmt.Fprintf(r.o.Out, "%s%s %s\n", prefix, act, filepath.ToSlash(path)); err != nil {
		return fmt.Errorf("report %s %s: %w", act, path, err)
	}
	return nil
}
