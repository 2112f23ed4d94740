// Package checks implements the pre-commit security verification: four
// policy checks over the checkout plus the secret scanner. Every check is
// independent and returns a boolean result with diagnostics; the driver
// ANDs them with no shared state.
package checks

import (
	"fmt"

	"github.com/startup-insights/insightctl/internal/engine"
	"github.com/startup-insights/insightctl/internal/types"
)

// RequiredIgnoreEntries are the .gitignore entries every checkout must carry.
func RequiredIgnoreEntries() []string {
	return []string{".env", "venv/", "*.log", "*.key", "*.pem"}
}

// SensitivePathFragments flag a staged path when its lower-cased form
// contains any of them.
func SensitivePathFragments() []string {
	return []string{".env", "credentials", "secrets", ".pem", ".key"}
}

// Secrets runs the secret scanner over the root and converts the outcome
// into a check result. Scanner warnings (unreadable files) carry over as
// check warnings; findings are policy failures.
func Secrets(cfg engine.Config) (types.CheckResult, engine.Result) {
	res := types.CheckResult{Name: "secrets in code", Hint: "move the value to an environment variable and rotate it"}
	scan, err := engine.Scan(cfg)
	if err != nil {
		res.Failures = append(res.Failures, fmt.Sprintf("scan failed: %v", err))
		return res, scan
	}
	if scan.Warnings > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d file(s) could not be scanned", scan.Warnings))
	}
	for _, f := range scan.Findings {
		res.Failures = append(res.Failures, fmt.Sprintf("%s: %s\n      %s", f.Path, f.Category, f.Snippet))
	}
	res.Passed = len(res.Failures) == 0
	return res, scan
}

// All runs every check against root. The slice order is the report order;
// the overall verification passes iff every element passed.
func All(root string, scanCfg engine.Config) []types.CheckResult {
	secrets, _ := Secrets(scanCfg)
	return []types.CheckResult{
		IgnoreRules(root),
		EnvNotTracked(root),
		EnvExample(root),
		secrets,
		StagedSensitive(root),
	}
}

// Passed reports whether every check in results passed.
func Passed(results []types.CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
