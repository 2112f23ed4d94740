package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludeDirs are directory names skipped entirely during traversal:
// virtual environments, VCS metadata, bytecode caches, notebook checkpoints,
// and vendored dependencies.
func DefaultExcludeDirs() []string {
	return []string{"venv", ".venv", ".git", "__pycache__", ".ipynb_checkpoints", "node_modules", "vendor"}
}

// DefaultExtensions are the source-file extensions considered by the scanner.
func DefaultExtensions() []string {
	return []string{".go", ".py"}
}

// Walk traverses the tree under cfg.Root in lexical order and invokes handle
// for each qualifying file with its path (relative to the root) and content.
// Unreadable and non-UTF-8 files are reported through warn and skipped; a
// single bad file never aborts the walk.
func Walk(cfg Config, handle func(rel string, data []byte), warn func(rel string, err error)) error {
	skipDirs := map[string]bool{}
	for _, d := range cfg.ExcludeDirs {
		skipDirs[d] = true
	}
	exts := map[string]bool{}
	for _, e := range cfg.Extensions {
		exts[strings.ToLower(e)] = true
	}

	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == cfg.Root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !exts[strings.ToLower(filepath.Ext(rel))] {
			return nil
		}
		if excludedByGlobs(rel, cfg.ExcludeGlobs) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		b, err := os.ReadFile(p)
		if err != nil {
			warn(rel, err)
			return nil
		}
		if !utf8.Valid(b) {
			warn(rel, errNotText)
			return nil
		}
		handle(rel, b)
		return nil
	})
}

// excludedByGlobs reports whether rel matches any of the comma-separated
// doublestar globs. Matching uses forward-slash semantics; a glob also
// matches against the bare file name.
func excludedByGlobs(rel, globs string) bool {
	if globs == "" {
		return false
	}
	rp := strings.ReplaceAll(rel, "\\", "/")
	for _, g := range strings.Split(globs, ",") {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if ok, _ := doublestar.Match(g, rp); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rp)); ok {
			return true
		}
	}
	return false
}
