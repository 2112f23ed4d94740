package insightctl

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	var yes bool
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop the startup collection (DANGEROUS: deletes all records)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to drop the collection without --yes")
			}
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

			if err := s.Drop(ctx); err != nil {
				return fmt.Errorf("drop collection: %w", err)
			}
			fmt.Printf("Dropped collection %q from database %q\n", m.Collection, m.Database)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm dropping the collection")
	rootCmd.AddCommand(cmd)
	addMongoFlags(cmd)
}
