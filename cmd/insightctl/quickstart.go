package insightctl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/config"
	"github.com/startup-insights/insightctl/internal/insights"
	"github.com/startup-insights/insightctl/internal/report"
	"github.com/startup-insights/insightctl/internal/startup"
)

func init() {
	cmd := &cobra.Command{
		Use:   "quickstart",
		Short: "Check the environment, connect, set up and print first insights",
		Long:  "Walks a fresh checkout through the full setup: verifies the environment, tests the database connection, creates the collection with sample data and prints the first funding statistics.",
		RunE:  runQuickstart,
	}
	rootCmd.AddCommand(cmd)
	addMongoFlags(cmd)
}

func runQuickstart(cmd *cobra.Command, _ []string) error {
	root, _ := filepath.Abs(".")
	lcfg, gcfg := loadConfigs(root)
	log := newLogger(lcfg, gcfg)

	fmt.Println("Step 1/4: environment")
	m := mongoSettings(root, lcfg, gcfg)
	if _, err := os.Stat(filepath.Join(root, ".env")); err != nil {
		fmt.Println("  no .env file found; using flags, config and defaults")
	}
	if strings.Contains(m.URI, "<password>") {
		return fmt.Errorf("MONGODB_URI still contains the <password> placeholder; edit .env and fill in your credentials")
	}
	if m.URI == config.DefaultMongoURI {
		fmt.Println("  MONGODB_URI not set; using local default", config.DefaultMongoURI)
	}
	fmt.Printf("  database %q, collection %q\n", m.Database, m.Collection)

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	fmt.Println("Step 2/4: connection")
	s, _, err := openStore(ctx, root, log)
	if err != nil {
		return err
	}
	defer s.Close(ctx)
	fmt.Println("  connected")

	fmt.Println("Step 3/4: collection and sample data")
	if err := s.EnsureCollection(ctx); err != nil {
		return fmt.Errorf("ensure collection: %w", err)
	}
	sum, err := s.InsertStartups(ctx, startup.SampleData())
	if err != nil {
		return fmt.Errorf("insert sample data: %w", err)
	}
	fmt.Printf("  inserted %d record(s), skipped %d duplicate(s)\n", sum.Inserted, sum.Duplicates)

	fmt.Println("Step 4/4: first insights")
	records, err := s.All(ctx)
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}
	total, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	report.PrintStats(os.Stdout, total, insights.Funding(records), insights.TopFunded(records, 3), insights.ByCountry(records))

	fmt.Println("\nAll set. Try 'insightctl stats' or 'insightctl load <file>' next.")
	return nil
}
