package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestWalkFiltersExtensionsAndDirs(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.py":              "ok",
		"b.go":              "ok",
		"notes.txt":         "skipped",
		"venv/c.py":         "skipped",
		"__pycache__/d.py":  "skipped",
		"nested/deep/e.py":  "ok",
		"node_modules/f.go": "skipped",
	})
	cfg := Config{Root: dir, Extensions: DefaultExtensions(), ExcludeDirs: DefaultExcludeDirs(), MaxBytes: 1 << 20}
	var seen []string
	err := Walk(cfg, func(rel string, _ []byte) {
		seen = append(seen, filepath.ToSlash(rel))
	}, func(rel string, err error) {
		t.Errorf("unexpected warning for %s: %v", rel, err)
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"a.py": true, "b.go": true, "nested/deep/e.py": true}
	if len(seen) != len(want) {
		t.Fatalf("visited %v, want %v", seen, want)
	}
	for _, p := range seen {
		if !want[p] {
			t.Errorf("unexpected visit: %s", p)
		}
	}
}

func TestWalkSkipsOversizedFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{"small.py": "x"})
	big := filepath.Join(dir, "big.py")
	if err := os.WriteFile(big, make([]byte, 2048), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Config{Root: dir, Extensions: []string{".py"}, ExcludeDirs: nil, MaxBytes: 1024}
	var seen []string
	if err := Walk(cfg, func(rel string, _ []byte) { seen = append(seen, rel) }, func(string, error) {}); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || seen[0] != "small.py" {
		t.Fatalf("visited %v", seen)
	}
}

func TestWalkWarnsOnNonUTF8AndContinues(t *testing.T) {
	dir := t.TempDir()
	// invalid encoding first so traversal order would abort early if fatal
	if err := os.WriteFile(filepath.Join(dir, "a_binary.py"), []byte{0xff, 0xfe, 0x00, 0x81}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b_secret.py"), []byte(`password = "supersecretvalue"`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Config{Root: dir, Extensions: []string{".py"}, MaxBytes: 1 << 20}
	warned := 0
	var seen []string
	if err := Walk(cfg, func(rel string, _ []byte) { seen = append(seen, rel) }, func(string, error) { warned++ }); err != nil {
		t.Fatal(err)
	}
	if warned != 1 {
		t.Errorf("warnings = %d, want 1", warned)
	}
	if len(seen) != 1 || seen[0] != "b_secret.py" {
		t.Fatalf("visited %v, want only b_secret.py", seen)
	}
}

func TestExcludedByGlobs(t *testing.T) {
	cases := []struct {
		rel, globs string
		want       bool
	}{
		{"a/b/gen.py", "**/gen.py", true},
		{"a/b/gen.py", "gen.py", true}, // base-name match
		{"a/b/other.py", "**/gen.py", false},
		{"testdata/x.py", "testdata/**", true},
		{"x.py", "", false},
	}
	for _, tc := range cases {
		if got := excludedByGlobs(tc.rel, tc.globs); got != tc.want {
			t.Errorf("excludedByGlobs(%q, %q) = %v", tc.rel, tc.globs, got)
		}
	}
}
