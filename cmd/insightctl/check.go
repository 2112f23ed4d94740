package insightctl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/audit"
	"github.com/startup-insights/insightctl/internal/checks"
	"github.com/startup-insights/insightctl/internal/report"
	"github.com/startup-insights/insightctl/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the pre-commit security verification",
		Long:  "Runs every pre-commit security check: .gitignore coverage, .env tracking, .env.example placeholders, the secret scanner and staged sensitive paths. Exits 1 unless all pass.",
		RunE:  runCheck,
	}
	rootCmd.AddCommand(cmd)
	addScanFlags(cmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	lcfg, gcfg := loadConfigs(abs)
	log := newLogger(lcfg, gcfg)
	updateBanner()

	// Run the scanner check separately so its stats feed the audit record.
	secrets, scanRes := checks.Secrets(scanConfig(abs, lcfg, gcfg, log))
	results := []types.CheckResult{
		checks.IgnoreRules(abs),
		checks.EnvNotTracked(abs),
		checks.EnvExample(abs),
		secrets,
		checks.StagedSensitive(abs),
	}
	passed := checks.Passed(results)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		report.PrintChecks(os.Stdout, results, report.PrintOptions{
			NoColor:      !report.ColorEnabled(flagNoColor),
			Duration:     scanRes.Duration,
			FilesScanned: scanRes.FilesScanned,
		})
	}

	if err := audit.New(abs).Append(audit.Record{
		Timestamp:    time.Now().UTC(),
		Root:         abs,
		Passed:       passed,
		Checks:       results,
		FindingCount: len(scanRes.Findings),
		FilesScanned: scanRes.FilesScanned,
		Duration:     scanRes.Duration.String(),
	}); err != nil {
		log.Warn().Err(err).Msg("audit append failed")
	}

	if !passed {
		if !flagJSON {
			_, _ = fmt.Fprintln(os.Stderr, "fix the issues above before committing")
		}
		os.Exit(1)
	}
	return nil
}
