package insightctl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/config"
	"github.com/startup-insights/insightctl/internal/startup"
	"github.com/startup-insights/insightctl/internal/store"
)

var (
	flagMongoURI  string
	flagMongoDB   string
	flagMongoColl string
	flagNoSample  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the startup collection, indexes and sample data",
		RunE:  runSetup,
	}
	rootCmd.AddCommand(cmd)
	addMongoFlags(cmd)
	cmd.Flags().BoolVar(&flagNoSample, "no-sample", false, "skip inserting the sample records")
}

// addMongoFlags registers the database flags shared by the data commands.
func addMongoFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagMongoURI, "uri", "", "MongoDB connection string (default env MONGODB_URI)")
	cmd.Flags().StringVar(&flagMongoDB, "db", "", "database name (default env DATABASE_NAME)")
	cmd.Flags().StringVar(&flagMongoColl, "collection", "", "collection name (default env COLLECTION_NAME)")
}

// mongoSettings resolves database settings: CLI > local config > global
// config > environment (.env included) > defaults.
func mongoSettings(root string, lcfg, gcfg config.FileConfig) config.Mongo {
	file := gcfg.Mongo
	if lcfg.Mongo != nil {
		file = lcfg.Mongo
	}
	m := config.LoadMongo(root, file)
	if flagMongoURI != "" {
		m.URI = flagMongoURI
	}
	if flagMongoDB != "" {
		m.Database = flagMongoDB
	}
	if flagMongoColl != "" {
		m.Collection = flagMongoColl
	}
	return m
}

// openStore connects to MongoDB using the resolved settings.
func openStore(ctx context.Context, root string, log zerolog.Logger) (*store.Store, config.Mongo, error) {
	lcfg, gcfg := loadConfigs(root)
	m := mongoSettings(root, lcfg, gcfg)
	if strings.Contains(m.URI, "<password>") {
		return nil, m, fmt.Errorf("MONGODB_URI still contains the <password> placeholder; edit .env first")
	}
	s, err := store.Open(ctx, m.URI, m.Database, m.Collection, log)
	if err != nil {
		return nil, m, fmt.Errorf("connect to %s: %w", m.Database, err)
	}
	return s, m, nil
}

func runSetup(cmd *cobra.Command, _ []string) error {
	root, _ := filepath.Abs(".")
	lcfg, gcfg := loadConfigs(root)
	log := newLogger(lcfg, gcfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	s, m, err := openStore(ctx, root, log)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	if err := s.EnsureCollection(ctx); err != nil {
		return fmt.Errorf("ensure collection: %w", err)
	}

	var sum store.InsertSummary
	if !flagNoSample {
		sum, err = s.InsertStartups(ctx, startup.SampleData())
		if err != nil {
			return fmt.Errorf("insert sample data: %w", err)
		}
	}

	total, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	indexes, err := s.IndexNames(ctx)
	if err != nil {
		return fmt.Errorf("list indexes: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"database":   m.Database,
			"collection": m.Collection,
			"inserted":   sum.Inserted,
			"duplicates": sum.Duplicates,
			"documents":  total,
			"indexes":    indexes,
		})
	}

	fmt.Printf("Database %q ready (collection %q)\n", m.Database, m.Collection)
	if !flagNoSample {
		fmt.Printf("Inserted %d record(s), skipped %d duplicate(s)\n", sum.Inserted, sum.Duplicates)
	}
	fmt.Printf("Documents: %d\n", total)
	fmt.Printf("Indexes: %s\n", strings.Join(indexes, ", "))
	return nil
}
