package checks

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/startup-insights/insightctl/internal/types"
)

// reLiveMongoURI matches a mongodb+srv URI whose credentials are not
// placeholder markers.
var reLiveMongoURI = regexp.MustCompile(`mongodb\+srv://[^<][^@]+@`)

// EnvExample verifies that .env.example exists and does not carry real
// credentials: either it uses <username>/<password> placeholders, or at
// minimum it contains no live-looking connection string.
func EnvExample(root string) types.CheckResult {
	res := types.CheckResult{Name: "env example", Hint: "replace real values with <username>/<password> placeholders"}
	b, err := os.ReadFile(filepath.Join(root, ".env.example"))
	if err != nil {
		res.Failures = append(res.Failures, ".env.example not found")
		return res
	}
	content := string(b)
	if strings.Contains(content, "<username>") && strings.Contains(content, "<password>") {
		res.Passed = true
		return res
	}
	if reLiveMongoURI.MatchString(content) {
		res.Failures = append(res.Failures, ".env.example may contain real credentials")
		return res
	}
	res.Passed = true
	return res
}
