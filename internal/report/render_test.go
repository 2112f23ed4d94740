package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/startup-insights/insightctl/internal/insights"
	"github.com/startup-insights/insightctl/internal/startup"
	"github.com/startup-insights/insightctl/internal/types"
)

func TestPrintFindingsGroupsByFile(t *testing.T) {
	var buf bytes.Buffer
	findings := []types.Finding{
		{Path: "b.py", Category: "API key", Line: 4, Snippet: `api_key = "x"`},
		{Path: "a.py", Category: "Hardcoded password", Line: 2, Snippet: `password = "supersecretvalue"`},
		{Path: "a.py", Category: "Secret key", Line: 9, Snippet: `secret = "y"`},
	}
	PrintFindings(&buf, findings, PrintOptions{NoColor: true, Duration: time.Second, FilesScanned: 3})
	out := buf.String()

	// a.py comes first and is printed once
	if strings.Count(out, "a.py:") != 1 {
		t.Errorf("a.py header repeated:\n%s", out)
	}
	if strings.Index(out, "a.py:") > strings.Index(out, "b.py:") {
		t.Errorf("files not sorted:\n%s", out)
	}
	for _, want := range []string{"Hardcoded password", "API key", "Found 3", "Files scanned: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintFindingsClean(t *testing.T) {
	var buf bytes.Buffer
	PrintFindings(&buf, nil, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "No hardcoded secrets detected") {
		t.Errorf("clean banner missing:\n%s", buf.String())
	}
}

func TestPrintChecksVerdicts(t *testing.T) {
	pass := []types.CheckResult{{Name: "gitignore", Passed: true}}
	fail := []types.CheckResult{
		{Name: "gitignore", Passed: true},
		{Name: "env file", Passed: false, Failures: []string{".env file is tracked by git"}, Hint: "run: git rm --cached .env"},
	}

	var buf bytes.Buffer
	PrintChecks(&buf, pass, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "All security checks passed") {
		t.Errorf("pass verdict missing:\n%s", buf.String())
	}

	buf.Reset()
	PrintChecks(&buf, fail, PrintOptions{NoColor: true})
	out := buf.String()
	for _, want := range []string{"checks failed", ".env file is tracked by git", "git rm --cached"} {
		if !strings.Contains(out, want) {
			t.Errorf("fail output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	stats := insights.FundingStats{Total: 3_000_000_000, Average: 1_500_000_000, Max: 2_000_000_000, Min: 1_000_000_000}
	top := []startup.Startup{{Name: "Stripe", Country: "USA", TotalFundingUSD: 2_000_000_000}}
	countries := []insights.CountryCount{{Country: "USA", Count: 2}}
	PrintStats(&buf, 2, stats, top, countries)
	out := buf.String()
	for _, want := range []string{"$3.00B", "$1.50B", "Stripe", "USA", "Countries represented: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}
