// Package report renders scan results, check outcomes, and funding
// statistics for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/startup-insights/insightctl/internal/insights"
	"github.com/startup-insights/insightctl/internal/startup"
	"github.com/startup-insights/insightctl/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

// ColorEnabled reports whether colored output should be used: not explicitly
// disabled and stdout is a terminal.
func ColorEnabled(noColorFlag bool) bool {
	return !noColorFlag && term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintFindings writes findings grouped by file, sorted by path and line.
func PrintFindings(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No hardcoded secrets detected ✅")
	} else {
		sorted := make([]types.Finding, len(findings))
		copy(sorted, findings)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Path == sorted[j].Path {
				return sorted[i].Line < sorted[j].Line
			}
			return sorted[i].Path < sorted[j].Path
		})
		fmt.Fprintf(w, "Found %d potential security issue(s):\n", len(sorted))
		last := ""
		for _, f := range sorted {
			if f.Path != last {
				fmt.Fprintf(w, "%s:\n", f.Path)
				last = f.Path
			}
			fmt.Fprintf(w, "   line %d: %s\n      %s\n", f.Line, colorize(f.Category, opts), f.Snippet)
		}
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
}

func colorize(s string, opts PrintOptions) string {
	if opts.NoColor {
		return s
	}
	return "\x1b[33m" + s + "\x1b[0m" // yellow
}

// PrintChecks writes one banner per check plus a final verdict line.
func PrintChecks(w io.Writer, results []types.CheckResult, opts PrintOptions) {
	for _, r := range results {
		fmt.Fprintf(w, "Checking %s...\n", r.Name)
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "   ⚠️  %s\n", warning)
		}
		if r.Passed {
			fmt.Fprintf(w, "   ✅ %s OK\n", r.Name)
			continue
		}
		for _, failure := range r.Failures {
			fmt.Fprintf(w, "   ❌ %s\n", failure)
		}
		if r.Hint != "" {
			fmt.Fprintf(w, "      hint: %s\n", r.Hint)
		}
	}
	fmt.Fprintln(w)
	if allPassed(results) {
		fmt.Fprintln(w, "✅ All security checks passed")
	} else {
		fmt.Fprintln(w, "❌ Some security checks failed — fix the issues above before committing")
	}
}

func allPassed(results []types.CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// PrintStats renders the funding summary, the top-N ranking, and the
// by-country grouping.
func PrintStats(w io.Writer, total int64, stats insights.FundingStats, top []startup.Startup, countries []insights.CountryCount) {
	fmt.Fprintf(w, "Total startups:  %d\n", total)
	fmt.Fprintf(w, "Total funding:   %s\n", insights.FormatCurrency(stats.Total))
	fmt.Fprintf(w, "Average funding: %s\n", insights.FormatCurrency(stats.Average))
	fmt.Fprintf(w, "Max funding:     %s\n", insights.FormatCurrency(stats.Max))
	fmt.Fprintf(w, "Min funding:     %s\n", insights.FormatCurrency(stats.Min))

	if len(top) > 0 {
		fmt.Fprintf(w, "\nTop %d most funded:\n", len(top))
		table := tablewriter.NewTable(w)
		table.Header("#", "Name", "Country", "Funding")
		for i, s := range top {
			_ = table.Append([]string{
				strconv.Itoa(i + 1), s.Name, s.Country,
				insights.FormatCurrency(s.TotalFundingUSD),
			})
		}
		_ = table.Render()
	}

	if len(countries) > 0 {
		fmt.Fprintf(w, "\nCountries represented: %d\n", len(countries))
		table := tablewriter.NewTable(w)
		table.Header("Country", "Startups")
		for _, c := range countries {
			_ = table.Append([]string{c.Country, strconv.Itoa(c.Count)})
		}
		_ = table.Render()
	}
}
