package insightctl

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/config"
	"github.com/startup-insights/insightctl/internal/engine"
	"github.com/startup-insights/insightctl/internal/logging"
	"github.com/startup-insights/insightctl/internal/report"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagVerbose       bool
	flagQuiet         bool
	flagLogFile       string
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the insightctl CLI.
var rootCmd = &cobra.Command{
	Use:           "insightctl",
	Short:         "Startup-insights data loader and pre-commit security checks",
	Long:          "insightctl loads startup-company records into MongoDB, computes funding statistics, and verifies a checkout contains no secrets before committing.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the insightctl CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "errors only")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also log to this file (rotated)")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.Version = version
}

// newLogger builds the process logger from persistent flags and config.
func newLogger(lcfg, gcfg config.FileConfig) zerolog.Logger {
	logFile := flagLogFile
	if logFile == "" {
		logFile = pickString("", lcfg.LogFile, gcfg.LogFile)
	}
	return logging.New(logging.Options{
		Verbose: flagVerbose,
		Quiet:   flagQuiet,
		NoColor: !report.ColorEnabled(flagNoColor),
		LogFile: logFile,
	})
}

// loadConfigs loads local and global file configs, ignoring their absence.
func loadConfigs(root string) (lcfg, gcfg config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}
	return lcfg, gcfg
}

// scanConfig assembles the engine configuration for root, merging scan flags
// with file config (CLI > local > global).
func scanConfig(root string, lcfg, gcfg config.FileConfig, log zerolog.Logger) engine.Config {
	return engine.Config{
		Root:         root,
		Extensions:   pickStrings(flagExts, lcfg.Extensions, gcfg.Extensions),
		ExcludeDirs:  pickStrings(flagExcludeDirs, lcfg.ExcludeDirs, gcfg.ExcludeDirs),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		NoCache:      pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		Logger:       log,
	}
}
