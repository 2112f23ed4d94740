package insightctl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/startup-insights/insightctl/internal/audit"
)

func init() {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past security verification runs",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, _ := filepath.Abs(flagPath)
			records, err := audit.New(abs).History()
			if err != nil {
				return fmt.Errorf("read audit log: %w", err)
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			if len(records) == 0 {
				fmt.Println("no verification runs recorded yet")
				return nil
			}
			for _, r := range records {
				verdict := "PASS"
				if !r.Passed {
					verdict = "FAIL"
				}
				fmt.Printf("%s  %s  %d finding(s)  %d file(s)  %s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), verdict, r.FindingCount, r.FilesScanned, r.Duration)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "repository root")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most N runs (0 = all)")
	rootCmd.AddCommand(cmd)
}
