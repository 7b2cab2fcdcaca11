package initcmd

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ge0rg3e/init-tp/internal/errdef"
)

type TempFile interface {
	io.Writer
	Name() string
	Chmod(fs.FileMode) error
	Sync() error
	Close() error
}

// FS is the slice of the filesystem the materializer needs.
type FS interface {
	Stat(string) (fs.FileInfo, error)
	MkdirAll(string, fs.FileMode) error
	ReadFile(string) ([]byte, error)
	CreateTemp(string, string) (TempFile, error)
	Rename(string, string) error
	Remove(string) error
}

type OSFS struct{}

func (OSFS) Stat(p string) (fs.FileInfo, error) { return os.Stat(p) }
func (OSFS) MkdirAll(p string, m fs.FileMode) error {
	return os.MkdirAll(p, m)
}
func (OSFS) ReadFile(p string) ([]byte, error)          { return os.ReadFile(p) }
func (OSFS) CreateTemp(d, pat string) (TempFile, error) { return os.CreateTemp(d, pat) }
func (OSFS) Rename(a, b string) error                   { return os.Rename(a, b) }
func (OSFS) Remove(p string) error                      { return os.Remove(p) }

func normalizeFilePath(path string) string {
	return filepath.FromSlash(strings.TrimSpace(path))
}

// safeJoin keeps every write inside baseDir.
func safeJoin(baseDir, rel string) (string, error) {
	rel = filepath.Clean(rel)
	if rel == "" || rel == "." || rel == ".." {
		return "", errdef.New(errdef.CodeInput, "invalid file path %q", rel)
	}
	if filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", errdef.New(errdef.CodeInput, "invalid file path %q", rel)
	}
	if strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", errdef.New(errdef.CodeInput, "invalid file path %q", rel)
	}
	return filepath.Join(baseDir, rel), nil
}
