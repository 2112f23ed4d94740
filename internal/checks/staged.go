package checks

import (
	"fmt"
	"strings"

	"github.com/startup-insights/insightctl/internal/gitexec"
	"github.com/startup-insights/insightctl/internal/types"
)

// StagedSensitive fails when any path staged for the next commit looks like
// a credential file. Outside a repository, or with git unavailable, the
// check passes with a warning.
func StagedSensitive(root string) types.CheckResult {
	res := types.CheckResult{Name: "staged paths", Hint: "run: git reset HEAD <file> to unstage"}
	if !gitexec.IsRepo(root) {
		res.Passed = true
		res.Warnings = append(res.Warnings, "not a git repository")
		return res
	}
	paths, err := gitexec.StagedPaths(root)
	if err != nil {
		res.Passed = true
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not query git: %v", err))
		return res
	}
	for _, p := range paths {
		lower := strings.ToLower(p)
		for _, frag := range SensitivePathFragments() {
			if strings.Contains(lower, frag) {
				res.Failures = append(res.Failures, fmt.Sprintf("sensitive file staged for commit: %s", p))
				break
			}
		}
	}
	res.Passed = len(res.Failures) == 0
	return res
}
