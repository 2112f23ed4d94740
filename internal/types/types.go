package types

// Finding describes one pattern match that survived comment suppression:
// the file it was found in, the human-readable category of secret, the
// stripped source line truncated to 80 characters, and the 1-based line
// number within the file.
type Finding struct {
	Path     string `json:"path"`
	Category string `json:"category"`
	Line     int    `json:"line"`
	Snippet  string `json:"snippet"`
}

// CheckResult is the outcome of one independent security check. Failures
// are policy violations; Warnings are non-fatal infrastructure notes (for
// example, git not being installed). A check with warnings but no failures
// still passes.
type CheckResult struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Hint     string   `json:"hint,omitempty"`
}
