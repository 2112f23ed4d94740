// Package cache persists per-file scan results keyed by content hash so
// unchanged files are not re-matched on the next run. Cached findings are
// replayed, not dropped: skipping a file must never hide its secrets.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
)

// Finding is the cached shape of one match: category and line only. The
// snippet is rebuilt from file content on replay, so the cache file never
// holds the matched secret text.
type Finding struct {
	Category string `json:"category"`
	Line     int    `json:"line"`
}

// Entry records the content hash of a scanned file and the findings it
// produced at that hash.
type Entry struct {
	Hash     string    `json:"hash"`
	Findings []Finding `json:"findings,omitempty"`
}

type DB struct {
	// Path relative to scan root -> entry
	Entries map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "insightctl_cache.json")
	}
	return filepath.Join(root, ".insightctl_cache.json")
}

func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0644)
}

// Hash returns a 16-char hex xxhash of the given content.
func Hash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
