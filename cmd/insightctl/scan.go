package insightctl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/engine"
	"github.com/startup-insights/insightctl/internal/report"
	"github.com/startup-insights/insightctl/internal/types"
	"github.com/startup-insights/insightctl/internal/update"
)

var (
	flagPath        string
	flagExts        []string
	flagExcludeDirs []string
	flagExclude     string
	flagMaxBytes    int64
	flagNoCache     bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan source files for hardcoded secrets",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)
	addScanFlags(cmd)
}

// addScanFlags registers the scanner flags shared by scan and check.
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringSliceVar(&flagExts, "ext", nil, "file extensions to scan (default .go,.py)")
	cmd.Flags().StringSliceVar(&flagExcludeDirs, "exclude-dir", nil, "directory names to skip")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 1MiB)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental scan cache")
}

// updateBanner prints a one-line upgrade hint when a newer release exists.
// Suppressed for JSON output so stdout stays machine-readable.
func updateBanner() {
	if flagJSON || flagNoUpdateCheck {
		return
	}
	if latest, newer, _ := update.Check(version, false); newer && latest != "" {
		_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'insightctl update' to upgrade\n", latest)
	}
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	lcfg, gcfg := loadConfigs(abs)
	log := newLogger(lcfg, gcfg)
	updateBanner()

	res, err := engine.Scan(scanConfig(abs, lcfg, gcfg, log))
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	if flagJSON {
		findings := res.Findings
		if findings == nil {
			findings = []types.Finding{}
		} // no `null` in JSON
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	} else {
		report.PrintFindings(os.Stdout, res.Findings, report.PrintOptions{
			NoColor:      !report.ColorEnabled(flagNoColor),
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
	}

	if !res.Clean() {
		os.Exit(1)
	}
	return nil
}
