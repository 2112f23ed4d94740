package checks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/startup-insights/insightctl/internal/gitexec"
	"github.com/startup-insights/insightctl/internal/types"
)

// EnvNotTracked verifies that .env, when present, is not tracked by git.
// A tracked .env is a committed credential file. A missing .env passes; so
// does an environment where git cannot be queried, with a warning.
func EnvNotTracked(root string) types.CheckResult {
	res := types.CheckResult{Name: "env file", Hint: "run: git rm --cached .env"}
	if _, err := os.Stat(filepath.Join(root, ".env")); err != nil {
		res.Passed = true
		res.Warnings = append(res.Warnings, ".env not found (OK if not set up yet)")
		return res
	}
	if !gitexec.IsRepo(root) {
		res.Passed = true
		res.Warnings = append(res.Warnings, "not a git repository")
		return res
	}
	tracked, err := gitexec.IsTracked(root, ".env")
	if err != nil {
		res.Passed = true
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not query git: %v", err))
		return res
	}
	if tracked {
		res.Failures = append(res.Failures, ".env file is tracked by git")
		return res
	}
	res.Passed = true
	return res
}
