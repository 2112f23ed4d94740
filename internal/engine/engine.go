package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/startup-insights/insightctl/internal/cache"
	"github.com/startup-insights/insightctl/internal/detectors"
	"github.com/startup-insights/insightctl/internal/types"
)

var errNotText = errors.New("not valid UTF-8 text")

// Config controls a single scan: where to look, what to match, and what to
// skip.
type Config struct {
	Root         string
	Patterns     []detectors.Pattern
	Extensions   []string
	ExcludeDirs  []string
	ExcludeGlobs string
	MaxBytes     int64
	NoCache      bool
	Logger       zerolog.Logger
}

// Result is the aggregate outcome of one scan. It is append-only during
// traversal and read-only afterwards.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Warnings     int
	Duration     time.Duration
}

// Clean reports whether the scan produced zero findings.
func (r Result) Clean() bool { return len(r.Findings) == 0 }

func (cfg *Config) applyDefaults() {
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = detectors.Defaults()
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions()
	}
	if cfg.ExcludeDirs == nil {
		cfg.ExcludeDirs = DefaultExcludeDirs()
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = 1 << 20
	}
}

// Scan walks cfg.Root and matches every qualifying file against the pattern
// set. Per-file read failures are warnings, not errors; only a missing or
// unreadable root fails the scan itself.
func Scan(cfg Config) (Result, error) {
	cfg.applyDefaults()
	var res Result

	st, err := os.Stat(cfg.Root)
	if err != nil {
		return res, fmt.Errorf("scan root: %w", err)
	}
	if !st.IsDir() {
		return res, fmt.Errorf("scan root %s is not a directory", cfg.Root)
	}

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]cache.Entry{}
	}
	updated := map[string]cache.Entry{}

	started := time.Now()
	warn := func(rel string, err error) {
		res.Warnings++
		cfg.Logger.Warn().Str("file", rel).Err(err).Msg("could not scan file")
	}
	err = Walk(cfg, func(rel string, data []byte) {
		res.FilesScanned++
		h := cache.Hash(data)
		if !cfg.NoCache {
			if e, ok := db.Entries[rel]; ok && e.Hash == h {
				res.Findings = append(res.Findings, replayFindings(rel, string(data), e.Findings)...)
				return
			}
		}
		found := MatchContent(rel, string(data), cfg.Patterns)
		res.Findings = append(res.Findings, found...)
		updated[rel] = cache.Entry{Hash: h, Findings: cacheFindings(found)}
	}, warn)
	if err != nil {
		return res, err
	}

	res.Duration = time.Since(started)
	if !cfg.NoCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]cache.Entry{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return res, nil
}

// cacheFindings strips findings down to the cacheable shape. Snippets stay
// out of the cache file.
func cacheFindings(found []types.Finding) []cache.Finding {
	if len(found) == 0 {
		return nil
	}
	out := make([]cache.Finding, len(found))
	for i, f := range found {
		out[i] = cache.Finding{Category: f.Category, Line: f.Line}
	}
	return out
}

// replayFindings rebuilds full findings from cached ones, deriving each
// snippet from the current file content.
func replayFindings(rel, content string, cached []cache.Finding) []types.Finding {
	if len(cached) == 0 {
		return nil
	}
	out := make([]types.Finding, len(cached))
	for i, c := range cached {
		out[i] = types.Finding{
			Path:     rel,
			Category: c.Category,
			Line:     c.Line,
			Snippet:  snippetAt(content, c.Line),
		}
	}
	return out
}
