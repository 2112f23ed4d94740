package insightctl

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func runCLI(t *testing.T, args ...string) (stdout string, exitCode int) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err != nil {
		ee, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("execute: %v", err)
		}
		return out.String(), ee.ExitCode()
	}
	return out.String(), 0
}

func TestCLI_Scan_JSON_FindingAndExitCode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.py"), []byte("password = \"supersecret99\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, code := runCLI(t, "scan", "--json", "--no-cache", "-p", dir)
	if code != 1 {
		t.Fatalf("expected exit 1 with findings, got %d", code)
	}
	var arr []map[string]any
	if err := json.Unmarshal([]byte(out), &arr); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(arr) != 1 {
		t.Fatalf("expected one finding, got %d", len(arr))
	}
	if arr[0]["category"] != "Hardcoded password" {
		t.Fatalf("unexpected category %v", arr[0]["category"])
	}
}

func TestCLI_Scan_CleanTreeExitsZero(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, code := runCLI(t, "scan", "--json", "--no-cache", "-p", dir)
	if code != 0 {
		t.Fatalf("expected exit 0 on clean tree, got %d\n%s", code, out)
	}
	var arr []map[string]any
	if err := json.Unmarshal([]byte(out), &arr); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(arr) != 0 {
		t.Fatalf("expected no findings, got %d", len(arr))
	}
}

func TestCLI_Check_JSON_ReportsEveryCheck(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(".env\nvenv/\n*.log\n*.key\n*.pem\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// .env.example is missing, so the verification must fail
	out, code := runCLI(t, "check", "--json", "--no-cache", "-p", dir)
	if code != 1 {
		t.Fatalf("expected exit 1 with a failing check, got %d", code)
	}
	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 checks, got %d", len(results))
	}
	names := map[string]bool{}
	for _, r := range results {
		name, _ := r["name"].(string)
		names[name] = true
	}
	for _, want := range []string{"gitignore", "env file", "env example", "secrets in code", "staged paths"} {
		if !names[want] {
			t.Fatalf("missing check %q in %v", want, names)
		}
	}
}

func TestCLI_Check_AllPassingExitsZero(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		".gitignore":   ".env\nvenv/\n*.log\n*.key\n*.pem\n",
		".env.example": "MONGODB_URI=mongodb+srv://<username>:<password>@cluster0.example.net/\n",
		"main.go":      "package main\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	out, code := runCLI(t, "check", "--json", "--no-cache", "-p", dir)
	if code != 0 {
		t.Fatalf("expected exit 0 when every check passes, got %d\n%s", code, out)
	}
	var results []map[string]any
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	for _, r := range results {
		if passed, _ := r["passed"].(bool); !passed {
			t.Fatalf("check %v did not pass: %v", r["name"], r)
		}
	}
}

func TestCLI_Patterns_ListsCategories(t *testing.T) {
	out, code := runCLI(t, "patterns")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !bytes.Contains([]byte(out), []byte("Hardcoded password")) {
		t.Fatalf("patterns output missing category:\n%s", out)
	}
}
