package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/startup-insights/insightctl/internal/types"
)

// IgnoreRules verifies that .gitignore exists and textually contains each
// required entry. Failures list exactly the entries that are missing.
func IgnoreRules(root string) types.CheckResult {
	res := types.CheckResult{Name: "gitignore", Hint: "add the missing entries to .gitignore"}
	b, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		res.Failures = append(res.Failures, ".gitignore file not found")
		return res
	}
	content := string(b)
	for _, entry := range RequiredIgnoreEntries() {
		if !strings.Contains(content, entry) {
			res.Failures = append(res.Failures, fmt.Sprintf("missing entry: %s", entry))
		}
	}
	res.Passed = len(res.Failures) == 0
	return res
}
