package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingReturnsEmptyDB(t *testing.T) {
	db, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing cache file")
	}
	if db.Entries == nil {
		t.Fatal("Entries must be non-nil even on error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	db := DB{Entries: map[string]Entry{
		"a.go": {Hash: Hash([]byte("content")), Findings: []Finding{
			{Category: "API key", Line: 3},
		}},
		"b.go": {Hash: Hash([]byte("other"))},
	}}
	if err := Save(dir, db); err != nil {
		t.Fatal(err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := got.Entries["a.go"]
	if !ok || len(e.Findings) != 1 || e.Findings[0].Category != "API key" || e.Findings[0].Line != 3 {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestCacheFileHoldsNoSnippetField(t *testing.T) {
	dir := t.TempDir()
	db := DB{Entries: map[string]Entry{
		"leak.py": {Hash: Hash([]byte("x")), Findings: []Finding{
			{Category: "Hardcoded password", Line: 1},
		}},
	}}
	if err := Save(dir, db); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, ".insightctl_cache.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "snippet") {
		t.Fatalf("cache file must not carry snippets:\n%s", raw)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
}

func TestHashStableAndDistinct(t *testing.T) {
	if Hash([]byte("x")) != Hash([]byte("x")) {
		t.Fatal("hash not stable")
	}
	if Hash([]byte("x")) == Hash([]byte("y")) {
		t.Fatal("hash collision on trivial inputs")
	}
	if h := Hash(nil); h != "0000000000000000" {
		t.Fatalf("empty hash: %s", h)
	}
	if len(Hash([]byte("abc"))) != 16 {
		t.Fatal("hash must be 16 hex chars")
	}
}
