package gitexec

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// initRepo creates a throwaway git repository with one committed file and
// one staged file. Tests are skipped when git is not installed.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	run("init", "-q")
	if err := os.WriteFile(filepath.Join(dir, "tracked.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	run("add", "tracked.txt")
	run("commit", "-q", "-m", "init")
	if err := os.WriteFile(filepath.Join(dir, "staged.env"), []byte("y"), 0644); err != nil {
		t.Fatal(err)
	}
	run("add", "staged.env")
	return dir
}

func TestIsRepo(t *testing.T) {
	dir := initRepo(t)
	if !IsRepo(dir) {
		t.Error("initialized repo not detected")
	}
	if IsRepo(t.TempDir()) {
		t.Error("plain directory reported as repo")
	}
}

func TestIsTracked(t *testing.T) {
	dir := initRepo(t)
	tracked, err := IsTracked(dir, "tracked.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !tracked {
		t.Error("committed file not tracked")
	}
	tracked, err = IsTracked(dir, "absent.txt")
	if err != nil {
		t.Fatal(err)
	}
	if tracked {
		t.Error("missing file reported tracked")
	}
}

func TestStagedPaths(t *testing.T) {
	dir := initRepo(t)
	paths, err := StagedPaths(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != "staged.env" {
		t.Fatalf("staged paths = %v", paths)
	}
}
