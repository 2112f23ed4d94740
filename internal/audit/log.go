// Package audit appends one JSON line per security verification run so a
// team can answer "when did this checkout last pass". Records carry check
// outcomes only, never secret values.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/startup-insights/insightctl/internal/types"
)

// Record is one verification run.
type Record struct {
	Timestamp    time.Time           `json:"timestamp"`
	Root         string              `json:"root"`
	Passed       bool                `json:"passed"`
	Checks       []types.CheckResult `json:"checks"`
	FindingCount int                 `json:"finding_count"`
	FilesScanned int                 `json:"files_scanned"`
	Duration     string              `json:"duration"`
}

type Log struct {
	path string
}

// New places the audit log under .git when available so it is never
// committed, falling back to a dotfile in the root.
func New(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	path := filepath.Join(root, ".insightctl_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		path = filepath.Join(gitDir, "insightctl_audit.jsonl")
	}
	return &Log{path: path}
}

// Append writes one record. Snippets are redacted first: the audit trail
// records that a category fired, not what matched.
func (l *Log) Append(rec Record) error {
	rec.Checks = redact(rec.Checks)
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns past records, newest first. Malformed lines are skipped.
func (l *Log) History() ([]Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []Record
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func redact(checks []types.CheckResult) []types.CheckResult {
	out := make([]types.CheckResult, len(checks))
	for i, c := range checks {
		out[i] = c
		if c.Name == "secrets in code" && len(c.Failures) > 0 {
			out[i].Failures = []string{fmt.Sprintf("%d finding(s) [redacted]", len(c.Failures))}
		}
	}
	return out
}
