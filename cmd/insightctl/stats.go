package insightctl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/insights"
	"github.com/startup-insights/insightctl/internal/report"
)

var flagTop int

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print funding statistics for the stored startups",
		RunE:  runStats,
	}
	rootCmd.AddCommand(cmd)
	addMongoFlags(cmd)
	cmd.Flags().IntVar(&flagTop, "top", 3, "number of top-funded startups to list")
}

func runStats(cmd *cobra.Command, _ []string) error {
	root, _ := filepath.Abs(".")
	lcfg, gcfg := loadConfigs(root)
	log := newLogger(lcfg, gcfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	s, _, err := openStore(ctx, root, log)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	records, err := s.All(ctx)
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}
	total, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}

	stats := insights.Funding(records)
	top := insights.TopFunded(records, flagTop)
	countries := insights.ByCountry(records)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"documents":  total,
			"funding":    stats,
			"top_funded": top,
			"by_country": countries,
		})
	}

	report.PrintStats(os.Stdout, total, stats, top, countries)
	return nil
}
