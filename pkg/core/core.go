package core

import (
	"github.com/startup-insights/insightctl/internal/checks"
	"github.com/startup-insights/insightctl/internal/detectors"
	"github.com/startup-insights/insightctl/internal/engine"
	"github.com/startup-insights/insightctl/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type Finding = types.Finding
type CheckResult = types.CheckResult

// Scan runs the secret scanner over cfg.Root and returns the result.
func Scan(cfg Config) (Result, error) {
	return engine.Scan(cfg)
}

// Verify runs the full pre-commit security verification against root,
// scanning with cfg. The verification passes iff every returned check did.
func Verify(root string, cfg Config) []CheckResult {
	return checks.All(root, cfg)
}

// Passed reports whether a verification passed overall.
func Passed(results []CheckResult) bool {
	return checks.Passed(results)
}

// Categories returns the category labels of the built-in pattern set.
// Exposed for convenience to avoid importing internals directly.
func Categories() []string { return detectors.Categories() }
