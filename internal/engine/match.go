package engine

import (
	"path/filepath"
	"strings"

	"github.com/startup-insights/insightctl/internal/detectors"
	"github.com/startup-insights/insightctl/internal/types"
)

const snippetLimit = 80

// commentMarkers maps a file extension to its single-line comment marker.
// Matches on lines whose stripped content starts with the marker are
// suppressed: a commented-out credential is a documented example, not a
// live secret.
var commentMarkers = map[string]string{
	".go":   "//",
	".js":   "//",
	".ts":   "//",
	".java": "//",
	".c":    "//",
	".h":    "//",
	".py":   "#",
	".rb":   "#",
	".sh":   "#",
	".yml":  "#",
	".yaml": "#",
	".toml": "#",
}

func markerFor(path string) string {
	if m, ok := commentMarkers[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return "#"
}

// MatchContent runs every pattern over the full file content and returns one
// finding per non-overlapping match on a non-comment line. Line bounds are
// located by the nearest line breaks around the match; the snippet is the
// stripped line truncated to 80 characters.
func MatchContent(path, content string, patterns []detectors.Pattern) []types.Finding {
	marker := markerFor(path)
	var out []types.Finding
	for _, p := range patterns {
		for _, loc := range p.Re.FindAllStringIndex(content, -1) {
			start := strings.LastIndexByte(content[:loc[0]], '\n') + 1
			end := strings.IndexByte(content[loc[0]:], '\n')
			if end < 0 {
				end = len(content)
			} else {
				end += loc[0]
			}
			line := strings.TrimSpace(content[start:end])
			if strings.HasPrefix(line, marker) {
				continue
			}
			out = append(out, types.Finding{
				Path:     path,
				Category: p.Category,
				Line:     1 + strings.Count(content[:loc[0]], "\n"),
				Snippet:  truncate(line, snippetLimit),
			})
		}
	}
	return out
}

// snippetAt returns the stripped, truncated content of the 1-based line, or
// "" when the line is out of range.
func snippetAt(content string, line int) string {
	lines := strings.Split(content, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return truncate(strings.TrimSpace(lines[line-1]), snippetLimit)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
