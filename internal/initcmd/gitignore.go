package initcmd

import (
	"io/fs"
	"strings"

	"github.com/ge0rg3e/init-tp/internal/errdef"
)

// planGitignore merges the rendered entries into an existing .gitignore
// instead of treating it as a conflict.
func (r *runner) planGitignore(abs string, info fs.FileInfo, rendered string) (op, error) {
	data, err := r.fs.ReadFile(abs)
	if err != nil {
		return op{}, errdef.Wrap(errdef.CodeFilesystem, err, "read %s", gitignoreFile)
	}
	merged := mergeGitignore(string(data), gitignoreEntries(rendered))
	act := ActionAppend
	if merged == string(data) {
		act = ActionSkip
	}
	return op{
		Action: act,
		Path:   gitignoreFile,
		Abs:    abs,
		Mode:   info.Mode().Perm(),
		Data:   merged,
	}, nil
}

func gitignoreEntries(data string) []string {
	var out []string
	for line := range strings.SplitSeq(data, "\n") {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			continue
		}
		out = append(out, trim)
	}
	return out
}

func mergeGitignore(data string, entries []string) string {
	for _, e := range entries {
		if hasGitignoreEntry(data, e) {
			continue
		}
		data = appendGitignoreEntry(data, e)
	}
	return data
}

func appendGitignoreEntry(data, entry string) string {
	if data == "" {
		return entry + "\n"
	}
	if data[len(data)-1] != '\n' {
		return data + "\n" + entry + "\n"
	}
	return data + entry + "\n"
}

func hasGitignoreEntry(data, entry string) bool {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return true
	}
	entrySlash := "/" + entry
	for line := range strings.SplitSeq(data, "\n") {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			continue
		}
		if matchesGitignoreEntry(trim, entry, entrySlash) {
			return true
		}
	}
	return false
}

// matchesGitignoreEntry treats "dist" and "dist/" as the same entry.
func matchesGitignoreEntry(line, entry, entrySlash string) bool {
	line = strings.TrimSuffix(stripComment(line), "/")
	entry = strings.TrimSuffix(entry, "/")
	entrySlash = strings.TrimSuffix(entrySlash, "/")
	return line == entry || line == entrySlash
}

func stripComment(line string) string {
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
