// Package gitexec shells out to the git binary for the two queries the
// security checks need: whether a path is tracked and which paths are
// staged. git being unavailable is never fatal to a check; callers degrade
// to a warning.
package gitexec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const queryTimeout = 10 * time.Second

// ErrNotAvailable is returned when the git binary is not on PATH.
var ErrNotAvailable = fmt.Errorf("git binary not found in PATH")

// validateRoot validates and normalizes a repository root path.
func validateRoot(root string) (string, error) {
	if strings.ContainsRune(root, 0) {
		return "", fmt.Errorf("invalid path: contains null byte")
	}
	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}
	return abs, nil
}

func git(root string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, ErrNotAvailable
	}
	validRoot, err := validateRoot(root)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	full := append([]string{"-C", validRoot}, args...)
	return exec.CommandContext(ctx, "git", full...).Output()
}

// IsRepo reports whether root is inside a git work tree.
func IsRepo(root string) bool {
	out, err := git(root, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// IsTracked reports whether rel (relative to root) is tracked by git.
func IsTracked(root, rel string) (bool, error) {
	out, err := git(root, "ls-files", "--", rel)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// StagedPaths returns the paths currently staged for the next commit.
func StagedPaths(root string) ([]string, error) {
	out, err := git(root, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}
