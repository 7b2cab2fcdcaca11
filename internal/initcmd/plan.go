package initcmd

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ge0rg3e/init-tp/internal/errdef"
)

func (r *runner) plan() ([]op, error) {
	var ops []op
	var conflicts []string

	for _, f := range r.o.Files {
		rel := normalizeFilePath(f.Path)
		abs, err := safeJoin(r.o.Dir, rel)
		if err != nil {
			return nil, err
		}

		info, err := r.fs.Stat(abs)
		switch {
		case err == nil && info.IsDir():
			conflicts = append(conflicts, rel+" (dir)")
			continue
		case err == nil && rel == gitignoreFile && !r.o.Force:
			o, err := r.planGitignore(abs, info, f.Data)
			if err != nil {
				return nil, err
			}
			ops = append(ops, o)
			continue
		case err == nil && !r.o.Force:
			conflicts = append(conflicts, rel)
			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return nil, errdef.Wrap(errdef.CodeFilesystem, err, "stat %s", rel)
		}

		act := ActionCreate
		if err == nil {
			act = ActionOverwrite
		}

		ops = append(ops, op{
			Action: act,
			Path:   rel,
			Abs:    abs,
			Mode:   filePerm,
			Data:   f.Data,
		})
	}

	if len(conflicts) > 0 {
		return nil, errdef.New(
			errdef.CodeInput,
			"files already exist: %s (use --force to overwrite)",
			strings.Join(conflicts, ", "),
		)
	}

	return ops, nil
}

func (r *runner) apply(ops []op) error {
	for _, op := range ops {
		if r.o.DryRun || op.Action == ActionSkip {
			if err := r.report(op.Action, op.Path); err != nil {
				return err
			}
			continue
		}

		if err := r.fs.MkdirAll(filepath.Dir(op.Abs), dirPerm); err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "create dir for %s", op.Path)
		}

		force := op.Action != ActionCreate
		if err := r.writeAtomic(op.Abs, op.Mode, op.Data, force); err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "write %s", op.Path)
		}

		if err := r.report(op.Action, op.Path); err != nil {
			return err
		}
	}
	return nil
}
